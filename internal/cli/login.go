package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"arcctl/internal/azdata"
)

var loginArgs azdata.LoginArgs

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginArgs.Namespace, "namespace", "", "Kubernetes namespace of the data controller")
	loginCmd.Flags().StringVarP(&loginArgs.Username, "username", "u", "", "controller username (or AZDATA_USERNAME)")
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to an Arc data controller",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, err := newClient(ctx)
		if err != nil {
			return err
		}

		if loginArgs.Username == "" {
			loginArgs.Username = os.Getenv("AZDATA_USERNAME")
		}
		// The password never appears on the command line; it is read from
		// the environment or prompted, then injected only into the single
		// login invocation.
		loginArgs.Password = os.Getenv("AZDATA_PASSWORD")
		if loginArgs.Password == "" {
			prompt := huh.NewForm(huh.NewGroup(
				huh.NewInput().
					Title("Controller password").
					EchoMode(huh.EchoModePassword).
					Value(&loginArgs.Password),
			))
			if err := prompt.RunWithContext(ctx); err != nil {
				return err
			}
		}

		if err := azdata.Login(ctx, client, loginArgs); err != nil {
			return err
		}
		fmt.Println("✓ logged in")
		return nil
	},
}
