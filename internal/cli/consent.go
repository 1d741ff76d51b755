package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"arcctl/internal/consent"
)

func init() {
	rootCmd.AddCommand(consentCmd)
	consentCmd.AddCommand(consentResetCmd)
}

var consentCmd = &cobra.Command{
	Use:   "consent",
	Short: "Manage install/update prompt preferences",
}

var consentResetCmd = &cobra.Command{
	Use:   "reset [install|update|eula]...",
	Short: "Re-enable prompts that were dismissed with \"don't ask again\"",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		keys := []consent.Key{consent.KeyInstall, consent.KeyUpdate, consent.KeyEULA}
		if len(args) > 0 {
			keys = keys[:0]
			for _, a := range args {
				switch consent.Key(a) {
				case consent.KeyInstall, consent.KeyUpdate, consent.KeyEULA:
					keys = append(keys, consent.Key(a))
				default:
					return fmt.Errorf("unknown consent key %q", a)
				}
			}
		}
		ctrl, err := newController()
		if err != nil {
			return err
		}
		for _, k := range keys {
			if err := ctrl.Reset(k); err != nil {
				return err
			}
			fmt.Printf("✓ %s prompt re-enabled\n", k)
		}
		return nil
	},
}
