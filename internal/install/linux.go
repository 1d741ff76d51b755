package install

import (
	"context"

	"github.com/pkg/errors"

	"arcctl/internal/channel"
	"arcctl/internal/system"
)

// linuxInstaller drives apt: refresh the index, install prerequisites,
// register the Microsoft signing key and repository, refresh again, then
// install the package. apt upgrades an already-installed package
// naturally, so Upgrade reuses the same sequence.
type linuxInstaller struct {
	ch       channel.Channel
	sudo     system.RunFunc
	download downloadFunc
}

func newLinux(ch channel.Channel) *linuxInstaller {
	return &linuxInstaller{ch: ch, sudo: system.RunSudo, download: downloadToTemp}
}

func (l *linuxInstaller) Install(ctx context.Context) error {
	steps := []struct {
		desc string
		run  func(context.Context) error
	}{
		{"updating package index", l.aptGet("update")},
		{"installing prerequisites", l.aptGet("install", "-y", "gnupg", "ca-certificates", "curl", "apt-transport-https", "software-properties-common")},
		{"adding signing key", l.addSigningKey},
		{"adding package repository", l.addRepository},
		{"refreshing package index", l.aptGet("update")},
		{"installing " + l.ch.AptPackage, l.aptGet("install", "-y", l.ch.AptPackage)},
	}
	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			return errors.Wrap(err, step.desc)
		}
	}
	return nil
}

func (l *linuxInstaller) Upgrade(ctx context.Context) error {
	return l.Install(ctx)
}

func (l *linuxInstaller) aptGet(args ...string) func(context.Context) error {
	return func(ctx context.Context) error {
		_, err := l.sudo(ctx, "apt-get", args, nil)
		return err
	}
}

func (l *linuxInstaller) addSigningKey(ctx context.Context) error {
	keyPath, err := l.download(ctx, l.ch.AptKeyURL, "microsoft-*.asc")
	if err != nil {
		return err
	}
	_, err = l.sudo(ctx, "apt-key", []string{"add", keyPath}, nil)
	return err
}

func (l *linuxInstaller) addRepository(ctx context.Context) error {
	_, err := l.sudo(ctx, "add-apt-repository", []string{"deb " + l.ch.AptRepo}, nil)
	return err
}
