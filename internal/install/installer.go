// Package install acquires and upgrades the azdata CLI through each
// platform's native packaging mechanism. Every procedure is a linear step
// sequence: the first failing step aborts the rest, and no rollback is
// attempted (the package manager's own atomicity is relied upon).
package install

import (
	"context"
	"fmt"

	"arcctl/internal/channel"
)

// Installer is the per-platform acquisition strategy.
type Installer interface {
	Install(ctx context.Context) error
	Upgrade(ctx context.Context) error
}

// PlatformUnsupportedError reports that no install procedure exists for
// the current OS.
type PlatformUnsupportedError struct {
	GOOS string
}

func (e *PlatformUnsupportedError) Error() string {
	return fmt.Sprintf("no azdata install procedure for platform %q", e.GOOS)
}

// ForPlatform selects the strategy for goos once at startup.
func ForPlatform(goos string, ch channel.Channel) (Installer, error) {
	switch goos {
	case "windows":
		return newWindows(ch), nil
	case "darwin":
		return newDarwin(ch), nil
	case "linux":
		return newLinux(ch), nil
	default:
		return nil, &PlatformUnsupportedError{GOOS: goos}
	}
}
