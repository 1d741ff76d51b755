package cli

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"arcctl/internal/azdata"
	"arcctl/internal/consent"
	"arcctl/internal/install"
	"arcctl/internal/system"
)

func init() {
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update azdata to the latest available version",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		client, err := newClient(ctx)
		if err != nil {
			return fmt.Errorf("azdata not installed; run `arcctl install` first")
		}

		resolver := azdata.NewResolver(loadChannel())
		latest, err := resolver.Latest(ctx, runtime.GOOS)
		if err != nil {
			return err
		}
		if !azdata.UpdateAvailable(client.Tool.Version, latest) {
			cur := "unknown"
			if client.Tool.Version != nil {
				cur = "v" + client.Tool.Version.String()
			}
			fmt.Printf("✓ azdata %s is up to date (latest v%s)\n", cur, latest.String())
			return nil
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
		accepted, err := ctrl.Confirm(ctx, consent.KeyUpdate, true,
			fmt.Sprintf("Update azdata to v%s?", latest.String()),
			func(ctx context.Context) error {
				system.Logger.Info("updating azdata", "to", latest.String())
				return installer.Upgrade(ctx)
			})
		if err != nil {
			if install.IsCancelled(err) {
				system.Logger.Info("update cancelled")
				return nil
			}
			return err
		}
		if !accepted {
			return nil
		}

		if err := client.Tool.RefreshVersion(ctx, system.Run); err != nil {
			system.Logger.Warn("could not re-read version after update", "err", err)
			fmt.Println("✓ update finished")
			return nil
		}
		fmt.Printf("✓ updated azdata to v%s\n", client.Tool.Version.String())
		return nil
	},
}
