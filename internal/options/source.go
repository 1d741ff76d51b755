// Package options supplies dynamic value sources for deployment prompts:
// each source can enumerate choices, resolve named variables, and flag
// which variables are secrets.
package options

import (
	"context"
	"fmt"

	"arcctl/internal/azdata"
)

// SourceType selects a source variant. Dispatch is a plain table keyed by
// this type; no reflection or name lookup.
type SourceType string

const (
	// SourceArcControllers enumerates reachable Arc data controller
	// endpoints through the azdata facade.
	SourceArcControllers SourceType = "arc-controllers"
)

// Source is the capability contract deployment prompts consume.
type Source interface {
	Options(ctx context.Context) ([]string, error)
	VariableValue(ctx context.Context, name string) (string, error)
	IsPassword(name string) bool
}

type constructor func(c *azdata.Client) Source

var constructors = map[SourceType]constructor{
	SourceArcControllers: newArcControllers,
}

// New builds the source for t over the given client.
func New(t SourceType, c *azdata.Client) (Source, error) {
	ctor, ok := constructors[t]
	if !ok {
		return nil, fmt.Errorf("unknown options source type %q", t)
	}
	return ctor(c), nil
}

// arcControllers lists controller endpoints and exposes the credential
// variable names a connection needs.
type arcControllers struct {
	client *azdata.Client
}

func newArcControllers(c *azdata.Client) Source {
	return &arcControllers{client: c}
}

func (s *arcControllers) Options(ctx context.Context) ([]string, error) {
	res, err := azdata.ListDataControllerEndpoints(ctx, s.client)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(res.Result))
	for _, ep := range res.Result {
		out = append(out, ep.Endpoint)
	}
	return out, nil
}

func (s *arcControllers) VariableValue(ctx context.Context, name string) (string, error) {
	switch name {
	case "endpoint":
		opts, err := s.Options(ctx)
		if err != nil {
			return "", err
		}
		if len(opts) == 0 {
			return "", fmt.Errorf("no controller endpoints available")
		}
		return opts[0], nil
	case "username", "password":
		// Credentials are supplied by the caller, never derived here.
		return "", nil
	default:
		return "", fmt.Errorf("unknown variable %q", name)
	}
}

func (s *arcControllers) IsPassword(name string) bool {
	return name == "password"
}
