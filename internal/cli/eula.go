package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"arcctl/internal/consent"
)

func init() {
	rootCmd.AddCommand(eulaCmd)
	eulaCmd.AddCommand(eulaShowCmd, eulaAcceptCmd)
}

var eulaCmd = &cobra.Command{
	Use:   "eula",
	Short: "Show or accept the azdata license terms",
}

var eulaShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show EULA acceptance state",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := consent.DefaultPath()
		if err != nil {
			return err
		}
		if consent.NewStore(p).EULAAccepted() {
			fmt.Println("EULA: accepted")
		} else {
			fmt.Println("EULA: not accepted (https://aka.ms/eula-azdata-en)")
		}
		return nil
	},
}

var eulaAcceptCmd = &cobra.Command{
	Use:   "accept",
	Short: "Accept the EULA",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := newController()
		if err != nil {
			return err
		}
		ok, err := requireEULA(cmd.Context(), ctrl)
		if err != nil {
			return err
		}
		if ok {
			fmt.Println("✓ EULA accepted")
		}
		return nil
	},
}
