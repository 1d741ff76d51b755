package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"arcctl/internal/azdata"
)

var dcCmd = &cobra.Command{
	Use:   "dc",
	Short: "Manage Arc data controllers",
}

var dcCreateArgs azdata.DataControllerCreateArgs

var dcCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Deploy a new data controller",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		if err := azdata.CreateDataController(cmd.Context(), client, dcCreateArgs); err != nil {
			return err
		}
		fmt.Printf("✓ data controller %s created\n", dcCreateArgs.Name)
		return nil
	},
}

var (
	dcDeleteName      string
	dcDeleteNamespace string
)

var dcDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a data controller",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		if err := azdata.DeleteDataController(cmd.Context(), client, dcDeleteName, dcDeleteNamespace); err != nil {
			return err
		}
		fmt.Printf("✓ data controller %s deleted\n", dcDeleteName)
		return nil
	},
}

var dcEndpointCmd = &cobra.Command{
	Use:   "endpoint",
	Short: "Data controller endpoints",
}

var dcEndpointListCmd = &cobra.Command{
	Use:   "list",
	Short: "List controller service endpoints",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		res, err := azdata.ListDataControllerEndpoints(cmd.Context(), client)
		if err != nil {
			return err
		}
		printResultLogs(res.Logs)
		return printJSON(res.Result)
	},
}

func init() {
	rootCmd.AddCommand(dcCmd)
	dcCmd.AddCommand(dcCreateCmd, dcDeleteCmd, dcEndpointCmd)
	dcEndpointCmd.AddCommand(dcEndpointListCmd)

	f := dcCreateCmd.Flags()
	f.StringVarP(&dcCreateArgs.Name, "name", "n", "", "controller name")
	f.StringVar(&dcCreateArgs.Namespace, "namespace", "", "Kubernetes namespace")
	f.StringVar(&dcCreateArgs.Subscription, "subscription", "", "Azure subscription id")
	f.StringVar(&dcCreateArgs.ResourceGroup, "resource-group", "", "Azure resource group")
	f.StringVar(&dcCreateArgs.Location, "location", "", "Azure region")
	f.StringVar(&dcCreateArgs.ConnectivityMode, "connectivity-mode", "indirect", "direct or indirect connectivity")
	f.StringVar(&dcCreateArgs.ProfileName, "profile-name", "", "deployment profile")
	f.StringVar(&dcCreateArgs.StorageClass, "storage-class", "", "storage class for data")
	_ = dcCreateCmd.MarkFlagRequired("name")
	_ = dcCreateCmd.MarkFlagRequired("namespace")

	dcDeleteCmd.Flags().StringVarP(&dcDeleteName, "name", "n", "", "controller name")
	dcDeleteCmd.Flags().StringVar(&dcDeleteNamespace, "namespace", "", "Kubernetes namespace")
	_ = dcDeleteCmd.MarkFlagRequired("name")
	_ = dcDeleteCmd.MarkFlagRequired("namespace")
}
