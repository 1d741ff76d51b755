package install

import (
	"context"
	"errors"

	pkgerrors "github.com/pkg/errors"

	"arcctl/internal/channel"
	"arcctl/internal/system"
)

// msiexec returns 1602 when the user dismisses the installer UI.
const msiexecUserCancelled = 1602

// ErrCancelled marks an installation the user backed out of; callers
// should treat it as a non-failure and skip warning notifications.
var ErrCancelled = errors.New("installation cancelled by user")

// windowsInstaller downloads the MSI artifact to a temp location and runs
// a silent install. The installer itself is idempotent, so Upgrade simply
// re-runs the full sequence.
type windowsInstaller struct {
	ch       channel.Channel
	run      system.RunFunc
	download downloadFunc
}

func newWindows(ch channel.Channel) *windowsInstaller {
	return &windowsInstaller{ch: ch, run: system.Run, download: downloadToTemp}
}

func (w *windowsInstaller) Install(ctx context.Context) error {
	msiPath, err := w.download(ctx, w.ch.MSIURL, "azdata-*.msi")
	if err != nil {
		return pkgerrors.Wrap(err, "downloading installer")
	}
	if _, err := w.run(ctx, "msiexec", []string{"/qn", "/i", msiPath}, nil); err != nil {
		var xe *system.ExitError
		if errors.As(err, &xe) && xe.Code == msiexecUserCancelled {
			return ErrCancelled
		}
		return pkgerrors.Wrap(err, "running installer")
	}
	return nil
}

func (w *windowsInstaller) Upgrade(ctx context.Context) error {
	return w.Install(ctx)
}

// IsCancelled reports whether err (anywhere in its chain) is a
// user-cancelled install.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
