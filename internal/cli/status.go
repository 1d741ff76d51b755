package cli

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"arcctl/internal/azdata"
	"arcctl/internal/system"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var (
	statusOK   = lipgloss.NewStyle().Foreground(lipgloss.Color("#03BF87"))
	statusWarn = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	statusBad  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show azdata install status and available updates",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		client, err := newClient(ctx)
		if err != nil {
			var nf *azdata.NotFoundError
			if errors.As(err, &nf) {
				fmt.Printf("- azdata: %s\n", statusBad.Render("not installed")+" (run `arcctl install`)")
				return nil
			}
			return err
		}

		line := fmt.Sprintf("- azdata: %s", client.Tool.Path)
		if client.Tool.Version != nil {
			line += fmt.Sprintf(" %s", statusOK.Render("v"+client.Tool.Version.String()))
		}

		resolver := azdata.NewResolver(loadChannel())
		latest, lerr := resolver.Latest(ctx, runtime.GOOS)
		switch {
		case lerr != nil:
			system.Logger.Debug("latest version lookup failed", "err", lerr)
			line += " (latest unknown)"
		case azdata.UpdateAvailable(client.Tool.Version, latest):
			line += statusWarn.Render(fmt.Sprintf(" → v%s available", latest.String()))
		default:
			line += fmt.Sprintf(" (latest v%s)", latest.String())
		}
		fmt.Println(line)
		return nil
	},
}
