package install

import (
	"context"

	"github.com/pkg/errors"

	"arcctl/internal/channel"
	"arcctl/internal/system"
)

// darwinInstaller drives Homebrew: register the tap, then install or
// upgrade the formula. Both steps are idempotent on brew's side.
type darwinInstaller struct {
	ch  channel.Channel
	run system.RunFunc
}

func newDarwin(ch channel.Channel) *darwinInstaller {
	return &darwinInstaller{ch: ch, run: system.Run}
}

func (d *darwinInstaller) Install(ctx context.Context) error {
	return d.brew(ctx, "install")
}

func (d *darwinInstaller) Upgrade(ctx context.Context) error {
	return d.brew(ctx, "upgrade")
}

func (d *darwinInstaller) brew(ctx context.Context, verb string) error {
	if _, err := d.run(ctx, "brew", []string{"tap", d.ch.BrewTap}, nil); err != nil {
		return errors.Wrapf(err, "tapping %s", d.ch.BrewTap)
	}
	if _, err := d.run(ctx, "brew", []string{verb, d.ch.BrewFormula}, nil); err != nil {
		return errors.Wrapf(err, "brew %s %s", verb, d.ch.BrewFormula)
	}
	return nil
}
