package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"arcctl/internal/azdata"
)

var postgresCmd = &cobra.Command{
	Use:   "postgres",
	Short: "Manage Arc PostgreSQL server groups",
}

var pgCreateArgs azdata.PostgresCreateArgs

var pgCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a PostgreSQL server group",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		if err := azdata.CreatePostgresServer(cmd.Context(), client, pgCreateArgs); err != nil {
			return err
		}
		fmt.Printf("✓ PostgreSQL server group %s created\n", pgCreateArgs.Name)
		return nil
	},
}

var pgDeleteName string

var pgDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a PostgreSQL server group",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		if err := azdata.DeletePostgresServer(cmd.Context(), client, pgDeleteName); err != nil {
			return err
		}
		fmt.Printf("✓ PostgreSQL server group %s deleted\n", pgDeleteName)
		return nil
	},
}

var pgListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List PostgreSQL server groups",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		res, err := azdata.ListPostgresServers(cmd.Context(), client)
		if err != nil {
			return err
		}
		return printJSON(res.Result)
	},
}

var pgShowName string

var pgShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show one PostgreSQL server group",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		res, err := azdata.ShowPostgresServer(cmd.Context(), client, pgShowName)
		if err != nil {
			return err
		}
		return printJSON(res.Result)
	},
}

var pgEditArgs azdata.PostgresEditArgs

var pgEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit resource settings of a PostgreSQL server group",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		if err := azdata.EditPostgresServer(cmd.Context(), client, pgEditArgs); err != nil {
			return err
		}
		fmt.Printf("✓ PostgreSQL server group %s updated\n", pgEditArgs.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(postgresCmd)
	postgresCmd.AddCommand(pgCreateCmd, pgDeleteCmd, pgListCmd, pgShowCmd, pgEditCmd)

	f := pgCreateCmd.Flags()
	f.StringVarP(&pgCreateArgs.Name, "name", "n", "", "server group name")
	f.StringVar(&pgCreateArgs.Workers, "workers", "", "worker node count")
	f.StringVar(&pgCreateArgs.StorageClass, "storage-class", "", "storage class")
	_ = pgCreateCmd.MarkFlagRequired("name")

	pgDeleteCmd.Flags().StringVarP(&pgDeleteName, "name", "n", "", "server group name")
	_ = pgDeleteCmd.MarkFlagRequired("name")

	pgShowCmd.Flags().StringVarP(&pgShowName, "name", "n", "", "server group name")
	_ = pgShowCmd.MarkFlagRequired("name")

	e := pgEditCmd.Flags()
	e.StringVarP(&pgEditArgs.Name, "name", "n", "", "server group name")
	e.StringVar(&pgEditArgs.CoresLimit, "cores-limit", "", "cores limit")
	e.StringVar(&pgEditArgs.CoresRequest, "cores-request", "", "cores request")
	e.StringVar(&pgEditArgs.MemoryLimit, "memory-limit", "", "memory limit")
	e.StringVar(&pgEditArgs.MemoryRequest, "memory-request", "", "memory request")
	e.StringVar(&pgEditArgs.Workers, "workers", "", "worker node count")
	_ = pgEditCmd.MarkFlagRequired("name")
}
