package consent

import (
	"context"

	clog "github.com/charmbracelet/log"
)

// Response is what the user picked when prompted.
type Response int

const (
	ResponseNo Response = iota
	ResponseYes
	ResponseLater
	ResponseNever
)

// Prompter presents one consent question. User-initiated flows get a
// binary yes/no; system-initiated flows additionally offer "ask later"
// and "don't ask again".
type Prompter interface {
	Ask(ctx context.Context, message string, userInitiated bool) (Response, error)
}

// Controller decides whether to run a consented action.
type Controller struct {
	Store    *Store
	Prompter Prompter
	Log      *clog.Logger
}

// Confirm runs the consent flow for key.
//
// A stored DontPrompt policy silently declines unless the user initiated
// the flow themselves. "Don't ask again" persists DontPrompt for this key
// only. "Yes" runs action and reports its success; every other answer
// declines and leaves persisted state unchanged.
func (c *Controller) Confirm(ctx context.Context, key Key, userInitiated bool, message string, action func(context.Context) error) (bool, error) {
	if !userInitiated && c.Store.Policy(key) == PolicyDontPrompt {
		if c.Log != nil {
			c.Log.Debug("skipping prompt", "key", string(key), "reason", "dontPrompt")
		}
		return false, nil
	}

	resp, err := c.Prompter.Ask(ctx, message, userInitiated)
	if err != nil {
		return false, err
	}
	switch resp {
	case ResponseYes:
		if action != nil {
			if err := action(ctx); err != nil {
				return false, err
			}
		}
		return true, nil
	case ResponseNever:
		if err := c.Store.SetPolicy(key, PolicyDontPrompt); err != nil {
			return false, err
		}
		return false, nil
	default:
		return false, nil
	}
}

// Reset restores the prompt policy for key so the user is asked again.
func (c *Controller) Reset(key Key) error {
	return c.Store.SetPolicy(key, PolicyPrompt)
}
