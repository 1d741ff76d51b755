package azdata

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"

	"arcctl/internal/system"
)

// CommandResult is the parsed JSON envelope azdata emits in --output json
// mode. Result is the command-specific payload, already unmarshalled into
// the caller's requested shape.
type CommandResult[T any] struct {
	Logs   []string
	Stdout []string
	Stderr []string
	Result T
}

// Client is the typed command surface over a discovered azdata binary.
type Client struct {
	Tool *Tool
	Run  system.RunFunc
	// Debug adds --debug to every invocation.
	Debug bool
}

// NewClient wraps a tool handle with the real executor.
func NewClient(t *Tool) *Client {
	return &Client{Tool: t, Run: system.Run}
}

// envelope mirrors azdata's JSON output contract.
type envelope struct {
	Log    []string        `json:"log"`
	Stdout []string        `json:"stdout"`
	Stderr []string        `json:"stderr"`
	Result json.RawMessage `json:"result"`
}

// Invoke runs azdata with args plus exactly one trailing `--output json`
// flag, ACCEPT_EULA preset, and env merged in for the duration of this
// single call. The JSON envelope is decoded and its result unmarshalled
// into T.
//
// Failure classification: a non-zero exit first gets one layer of stderr
// refinement (azdata embeds a JSON error object in stderr); if no embedded
// message is found and the binary no longer exists on disk, the tool is
// marked not found and *NotFoundError is returned; otherwise the original
// *system.ExitError surfaces unchanged.
func Invoke[T any](ctx context.Context, c *Client, args []string, env map[string]string) (CommandResult[T], error) {
	var res CommandResult[T]

	if c.Tool == nil || c.Tool.Path == "" {
		return res, &NotFoundError{}
	}

	full := make([]string, 0, len(args)+3)
	full = append(full, args...)
	full = append(full, "--output", "json")
	if c.Debug {
		full = append(full, "--debug")
	}

	merged := map[string]string{"ACCEPT_EULA": "yes"}
	for k, v := range env {
		merged[k] = v
	}

	out, err := c.Run(ctx, c.Tool.Path, full, merged)
	if err != nil {
		return res, c.classify(err)
	}

	var parsed envelope
	if uerr := json.Unmarshal([]byte(out.Stdout), &parsed); uerr != nil {
		return res, &ParseError{Source: BinaryName + " " + strings.Join(args, " "), Raw: out.Stdout, Err: uerr}
	}
	res.Logs = parsed.Log
	res.Stdout = parsed.Stdout
	res.Stderr = parsed.Stderr
	if len(parsed.Result) > 0 && string(parsed.Result) != "null" {
		if uerr := json.Unmarshal(parsed.Result, &res.Result); uerr != nil {
			return res, &ParseError{Source: BinaryName + " " + strings.Join(args, " "), Raw: string(parsed.Result), Err: uerr}
		}
	}
	return res, nil
}

// classify applies the facade's single layer of error refinement.
func (c *Client) classify(err error) error {
	var xe *system.ExitError
	if errors.As(err, &xe) {
		if msg, ok := embeddedStderr(xe.Stderr); ok {
			return &system.ExitError{Command: xe.Command, Code: xe.Code, Stderr: msg}
		}
		if c.missingFromDisk() {
			return &NotFoundError{Path: c.Tool.Path}
		}
		return xe
	}
	// Spawn-level failures: the most common cause is the binary having been
	// removed or moved since discovery.
	if c.missingFromDisk() {
		return &NotFoundError{Path: c.Tool.Path}
	}
	return err
}

func (c *Client) missingFromDisk() bool {
	if _, serr := os.Stat(c.Tool.Path); os.IsNotExist(serr) {
		c.Tool.Found = false
		return true
	}
	return false
}

// embeddedStderr extracts a refined message from azdata's stderr, which on
// failure usually carries `ERROR: {json}`. The object is located by the
// first `{` and the last `}`; this is a best-effort heuristic and breaks
// down when stderr holds several unrelated JSON objects.
func embeddedStderr(stderr string) (string, bool) {
	start := strings.Index(stderr, "{")
	end := strings.LastIndex(stderr, "}")
	if start < 0 || end <= start {
		return "", false
	}
	var obj struct {
		Stderr string `json:"stderr"`
	}
	if err := json.Unmarshal([]byte(stderr[start:end+1]), &obj); err != nil || obj.Stderr == "" {
		return "", false
	}
	return obj.Stderr, true
}
