package azdata

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	version "github.com/hashicorp/go-version"
	"github.com/pkg/errors"

	"arcctl/internal/channel"
	"arcctl/internal/system"
)

// ParseVersion extracts the version from an `azdata --version` banner.
// The banner is multi-line (build metadata follows); only the first line,
// trimmed, is authoritative.
func ParseVersion(banner string) (*version.Version, error) {
	line, _, _ := strings.Cut(strings.TrimLeft(banner, "\r\n \t"), "\n")
	line = strings.TrimSpace(line)
	v, err := version.NewVersion(line)
	if err != nil {
		return nil, &ParseError{Source: BinaryName + " --version", Raw: banner, Err: err}
	}
	return v, nil
}

// Resolver discovers the latest published azdata version for a platform.
// Darwin asks Homebrew; every other platform fetches the hosted release
// descriptor.
type Resolver struct {
	Run     system.RunFunc
	HTTP    *http.Client
	Channel channel.Channel
}

// NewResolver returns a resolver bound to the real executor and HTTP client.
func NewResolver(ch channel.Channel) *Resolver {
	return &Resolver{Run: system.Run, HTTP: http.DefaultClient, Channel: ch}
}

// Latest returns the newest version available for goos.
func (r *Resolver) Latest(ctx context.Context, goos string) (*version.Version, error) {
	if goos == "darwin" {
		return r.latestFromBrew(ctx)
	}
	return r.latestFromDescriptor(ctx, goos)
}

// latestFromBrew shells out to `brew info <formula> --json` and reads the
// stable version of the first entry.
func (r *Resolver) latestFromBrew(ctx context.Context) (*version.Version, error) {
	src := "brew info " + r.Channel.BrewFormula + " --json"
	out, err := r.Run(ctx, "brew", []string{"info", r.Channel.BrewFormula, "--json"}, nil)
	if err != nil {
		return nil, errors.Wrap(err, "querying brew for latest version")
	}
	var entries []struct {
		Versions struct {
			Stable string `json:"stable"`
		} `json:"versions"`
	}
	if err := json.Unmarshal([]byte(out.Stdout), &entries); err != nil {
		return nil, &ParseError{Source: src, Raw: out.Stdout, Err: err}
	}
	if len(entries) == 0 || entries[0].Versions.Stable == "" {
		return nil, &ParseError{Source: src, Raw: out.Stdout, Err: errors.New("no stable version in brew metadata")}
	}
	v, err := version.NewVersion(entries[0].Versions.Stable)
	if err != nil {
		return nil, &ParseError{Source: src, Raw: out.Stdout, Err: err}
	}
	return v, nil
}

// latestFromDescriptor fetches the release descriptor and picks the entry
// for goos. Descriptor shape: {"<goos>": {"version": "x.y.z"}}.
func (r *Resolver) latestFromDescriptor(ctx context.Context, goos string) (*version.Version, error) {
	url := r.Channel.ReleaseURL
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	resp, err := r.HTTP.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &NetworkError{URL: url, Err: errors.Errorf("unexpected status %s", resp.Status)}
	}

	var descriptor map[string]struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(body, &descriptor); err != nil {
		return nil, &ParseError{Source: url, Raw: string(body), Err: err}
	}
	entry, ok := descriptor[goos]
	if !ok || entry.Version == "" {
		return nil, &ParseError{Source: url, Raw: string(body), Err: errors.Errorf("no release entry for platform %q", goos)}
	}
	v, err := version.NewVersion(entry.Version)
	if err != nil {
		return nil, &ParseError{Source: url, Raw: string(body), Err: err}
	}
	return v, nil
}

// UpdateAvailable reports whether latest is strictly newer than current.
// Equal or older never proposes an update.
func UpdateAvailable(current, latest *version.Version) bool {
	if current == nil || latest == nil {
		return false
	}
	return latest.Compare(current) > 0
}
