package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"arcctl/internal/azdata"
	"arcctl/internal/channel"
	"arcctl/internal/consent"
	"arcctl/internal/system"
)

// newClient discovers azdata and wraps it in a facade client. Discovery
// failure is surfaced to the caller; install/update commands handle it by
// offering an install instead.
func newClient(ctx context.Context) (*azdata.Client, error) {
	t, err := azdata.Find(ctx, system.Run)
	if err != nil {
		return nil, err
	}
	c := azdata.NewClient(t)
	c.Debug = debugFlag
	return c, nil
}

// newController builds the consent controller over the default store and
// interactive prompter.
func newController() (*consent.Controller, error) {
	p, err := consent.DefaultPath()
	if err != nil {
		return nil, err
	}
	return &consent.Controller{
		Store:    consent.NewStore(p),
		Prompter: consent.HuhPrompter{},
		Log:      system.Logger,
	}, nil
}

// loadChannel reads the release channel, falling back to defaults with a
// warning when the override file is broken.
func loadChannel() channel.Channel {
	ch, err := channel.Load()
	if err != nil {
		system.Logger.Warn("falling back to default release channel", "err", err)
	}
	return ch
}

// printJSON pretty-prints v to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printResultLogs relays the tool's own log lines for transparency.
func printResultLogs(logs []string) {
	for _, line := range logs {
		fmt.Println(line)
	}
}
