package install

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcctl/internal/channel"
	"arcctl/internal/system"
)

type call struct {
	name string
	args []string
}

// recorder returns a RunFunc that logs calls and fails on the given
// (1-based) step.
func recorder(calls *[]call, failAt int, failWith error) system.RunFunc {
	return func(ctx context.Context, name string, args []string, env map[string]string) (system.Output, error) {
		*calls = append(*calls, call{name: name, args: args})
		if failAt > 0 && len(*calls) == failAt {
			return system.Output{}, failWith
		}
		return system.Output{}, nil
	}
}

func fakeDownload(path string, err error) downloadFunc {
	return func(ctx context.Context, url, pattern string) (string, error) {
		return path, err
	}
}

func TestForPlatform(t *testing.T) {
	ch := channel.Default()
	for _, goos := range []string{"windows", "darwin", "linux"} {
		inst, err := ForPlatform(goos, ch)
		require.NoError(t, err, goos)
		require.NotNil(t, inst)
	}

	_, err := ForPlatform("plan9", ch)
	var pu *PlatformUnsupportedError
	require.True(t, errors.As(err, &pu))
	assert.Equal(t, "plan9", pu.GOOS)
}

func TestDarwin_InstallSequence(t *testing.T) {
	var calls []call
	d := &darwinInstaller{ch: channel.Default(), run: recorder(&calls, 0, nil)}

	require.NoError(t, d.Install(context.Background()))
	require.Len(t, calls, 2)
	assert.Equal(t, call{"brew", []string{"tap", "microsoft/azdata-cli-release"}}, calls[0])
	assert.Equal(t, call{"brew", []string{"install", "azdata-cli"}}, calls[1])
}

func TestDarwin_UpgradeUsesBrewUpgrade(t *testing.T) {
	var calls []call
	d := &darwinInstaller{ch: channel.Default(), run: recorder(&calls, 0, nil)}

	require.NoError(t, d.Upgrade(context.Background()))
	require.Len(t, calls, 2)
	assert.Equal(t, []string{"upgrade", "azdata-cli"}, calls[1].args)
}

func TestDarwin_TapFailureAbortsInstall(t *testing.T) {
	var calls []call
	boom := errors.New("tap broken")
	d := &darwinInstaller{ch: channel.Default(), run: recorder(&calls, 1, boom)}

	err := d.Install(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Len(t, calls, 1)
}

func TestLinux_InstallSequenceOrder(t *testing.T) {
	var calls []call
	l := &linuxInstaller{
		ch:       channel.Default(),
		sudo:     recorder(&calls, 0, nil),
		download: fakeDownload("/tmp/microsoft.asc", nil),
	}

	require.NoError(t, l.Install(context.Background()))
	require.Len(t, calls, 6)
	assert.Equal(t, call{"apt-get", []string{"update"}}, calls[0])
	assert.Equal(t, "apt-get", calls[1].name)
	assert.Contains(t, calls[1].args, "gnupg")
	assert.Equal(t, call{"apt-key", []string{"add", "/tmp/microsoft.asc"}}, calls[2])
	assert.Equal(t, "add-apt-repository", calls[3].name)
	assert.True(t, strings.HasPrefix(calls[3].args[0], "deb "))
	assert.Equal(t, call{"apt-get", []string{"update"}}, calls[4])
	assert.Equal(t, call{"apt-get", []string{"install", "-y", "azdata-cli"}}, calls[5])
}

func TestLinux_FirstFailureAbortsRemainingSteps(t *testing.T) {
	var calls []call
	boom := errors.New("no network")
	l := &linuxInstaller{
		ch:       channel.Default(),
		sudo:     recorder(&calls, 2, boom),
		download: fakeDownload("/tmp/microsoft.asc", nil),
	}

	err := l.Install(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Len(t, calls, 2)
}

func TestLinux_UpgradeReusesInstall(t *testing.T) {
	var calls []call
	l := &linuxInstaller{
		ch:       channel.Default(),
		sudo:     recorder(&calls, 0, nil),
		download: fakeDownload("/tmp/microsoft.asc", nil),
	}

	require.NoError(t, l.Upgrade(context.Background()))
	assert.Len(t, calls, 6)
}

func TestWindows_SilentInstall(t *testing.T) {
	var calls []call
	w := &windowsInstaller{
		ch:       channel.Default(),
		run:      recorder(&calls, 0, nil),
		download: fakeDownload(`C:\Temp\azdata-1.msi`, nil),
	}

	require.NoError(t, w.Install(context.Background()))
	require.Len(t, calls, 1)
	assert.Equal(t, call{"msiexec", []string{"/qn", "/i", `C:\Temp\azdata-1.msi`}}, calls[0])
}

func TestWindows_UserCancellation(t *testing.T) {
	var calls []call
	cancelled := &system.ExitError{Command: "msiexec", Code: msiexecUserCancelled}
	w := &windowsInstaller{
		ch:       channel.Default(),
		run:      recorder(&calls, 1, cancelled),
		download: fakeDownload(`C:\Temp\azdata-1.msi`, nil),
	}

	err := w.Install(context.Background())
	require.True(t, IsCancelled(err))
}

func TestWindows_RealFailureIsNotCancellation(t *testing.T) {
	var calls []call
	failed := &system.ExitError{Command: "msiexec", Code: 1603}
	w := &windowsInstaller{
		ch:       channel.Default(),
		run:      recorder(&calls, 1, failed),
		download: fakeDownload(`C:\Temp\azdata-1.msi`, nil),
	}

	err := w.Install(context.Background())
	require.Error(t, err)
	assert.False(t, IsCancelled(err))
}

func TestWindows_DownloadFailureAborts(t *testing.T) {
	var calls []call
	boom := errors.New("dns failure")
	w := &windowsInstaller{
		ch:       channel.Default(),
		run:      recorder(&calls, 0, nil),
		download: fakeDownload("", boom),
	}

	err := w.Install(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Empty(t, calls)
}
