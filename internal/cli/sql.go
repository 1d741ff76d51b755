package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"arcctl/internal/azdata"
)

var sqlCmd = &cobra.Command{
	Use:   "sql",
	Short: "Manage Arc SQL managed instances",
}

var sqlCreateArgs azdata.SqlMiCreateArgs

var sqlCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a SQL managed instance",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		if err := azdata.CreateSqlMi(cmd.Context(), client, sqlCreateArgs); err != nil {
			return err
		}
		fmt.Printf("✓ SQL managed instance %s created\n", sqlCreateArgs.Name)
		return nil
	},
}

var sqlDeleteName string

var sqlDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a SQL managed instance",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		if err := azdata.DeleteSqlMi(cmd.Context(), client, sqlDeleteName); err != nil {
			return err
		}
		fmt.Printf("✓ SQL managed instance %s deleted\n", sqlDeleteName)
		return nil
	},
}

var sqlListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List SQL managed instances",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		res, err := azdata.ListSqlMi(cmd.Context(), client)
		if err != nil {
			return err
		}
		return printJSON(res.Result)
	},
}

var sqlShowName string

var sqlShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show one SQL managed instance",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		res, err := azdata.ShowSqlMi(cmd.Context(), client, sqlShowName)
		if err != nil {
			return err
		}
		return printJSON(res.Result)
	},
}

var sqlEditArgs azdata.SqlMiEditArgs

var sqlEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit resource settings of a SQL managed instance",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		if err := azdata.EditSqlMi(cmd.Context(), client, sqlEditArgs); err != nil {
			return err
		}
		fmt.Printf("✓ SQL managed instance %s updated\n", sqlEditArgs.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sqlCmd)
	sqlCmd.AddCommand(sqlCreateCmd, sqlDeleteCmd, sqlListCmd, sqlShowCmd, sqlEditCmd)

	f := sqlCreateCmd.Flags()
	f.StringVarP(&sqlCreateArgs.Name, "name", "n", "", "instance name")
	f.StringVar(&sqlCreateArgs.CoresLimit, "cores-limit", "", "cores limit")
	f.StringVar(&sqlCreateArgs.CoresRequest, "cores-request", "", "cores request")
	f.StringVar(&sqlCreateArgs.MemoryLimit, "memory-limit", "", "memory limit")
	f.StringVar(&sqlCreateArgs.MemoryRequest, "memory-request", "", "memory request")
	f.StringVar(&sqlCreateArgs.StorageClassData, "storage-class-data", "", "storage class for data files")
	f.StringVar(&sqlCreateArgs.StorageClassLogs, "storage-class-logs", "", "storage class for logs")
	f.StringVar(&sqlCreateArgs.Replicas, "replicas", "", "replica count")
	_ = sqlCreateCmd.MarkFlagRequired("name")

	sqlDeleteCmd.Flags().StringVarP(&sqlDeleteName, "name", "n", "", "instance name")
	_ = sqlDeleteCmd.MarkFlagRequired("name")

	sqlShowCmd.Flags().StringVarP(&sqlShowName, "name", "n", "", "instance name")
	_ = sqlShowCmd.MarkFlagRequired("name")

	e := sqlEditCmd.Flags()
	e.StringVarP(&sqlEditArgs.Name, "name", "n", "", "instance name")
	e.StringVar(&sqlEditArgs.CoresLimit, "cores-limit", "", "cores limit")
	e.StringVar(&sqlEditArgs.CoresRequest, "cores-request", "", "cores request")
	e.StringVar(&sqlEditArgs.MemoryLimit, "memory-limit", "", "memory limit")
	e.StringVar(&sqlEditArgs.MemoryRequest, "memory-request", "", "memory request")
	_ = sqlEditCmd.MarkFlagRequired("name")
}
