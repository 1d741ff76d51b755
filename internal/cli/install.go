package cli

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"arcctl/internal/azdata"
	"arcctl/internal/consent"
	"arcctl/internal/install"
	"arcctl/internal/system"
)

func init() {
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the azdata CLI",
	Long:  "Installs azdata through the platform package manager (brew/apt) or the downloaded installer on Windows.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if client, err := newClient(ctx); err == nil {
			ver := "unknown version"
			if client.Tool.Version != nil {
				ver = "v" + client.Tool.Version.String()
			}
			fmt.Printf("azdata already installed at %s (%s)\n", client.Tool.Path, ver)
			return nil
		} else {
			var nf *azdata.NotFoundError
			if !errors.As(err, &nf) {
				system.Logger.Warn("azdata discovery failed", "err", err)
			}
		}

		ctrl, err := newController()
		if err != nil {
			return err
		}
		if ok, err := requireEULA(ctx, ctrl); err != nil || !ok {
			return err
		}

		installer, err := install.ForPlatform(runtime.GOOS, loadChannel())
		if err != nil {
			return err
		}
		accepted, err := ctrl.Confirm(ctx, consent.KeyInstall, true,
			"Install the azdata CLI now?",
			func(ctx context.Context) error {
				system.Logger.Info("installing azdata")
				return installer.Install(ctx)
			})
		if err != nil {
			if install.IsCancelled(err) {
				system.Logger.Info("install cancelled")
				return nil
			}
			return err
		}
		if !accepted {
			return nil
		}

		client, err := newClient(ctx)
		if err != nil {
			return err
		}
		if client.Tool.Version != nil {
			fmt.Printf("✓ installed azdata v%s\n", client.Tool.Version.String())
		} else {
			fmt.Println("✓ installed azdata")
		}
		return nil
	},
}

// requireEULA makes sure the license terms are accepted before any install
// or update proceeds. Acceptance is persisted as a one-time memento.
func requireEULA(ctx context.Context, ctrl *consent.Controller) (bool, error) {
	if ctrl.Store.EULAAccepted() {
		return true, nil
	}
	ok, err := ctrl.Confirm(ctx, consent.KeyEULA, true,
		"azdata is covered by the Microsoft EULA (https://aka.ms/eula-azdata-en). Accept?",
		func(context.Context) error {
			return ctrl.Store.SetEULAAccepted(true)
		})
	if err != nil {
		return false, err
	}
	if !ok {
		system.Logger.Info("EULA not accepted; aborting")
	}
	return ok, nil
}
