// Package cli implements the cfgctl commands for managing remote config
// entries through the service's HTTP API.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	token   string
	client  *apiClient
)

var rootCmd = &cobra.Command{
	Use:   "cfgctl",
	Short: "Manage remote config entries",
	Long: `cfgctl drives the remote config service's API: fetch the published
view for an app, create or overwrite individual entries, delete them,
and bulk-load entries from a YAML seed file.

Admin commands need a bearer token whose claims carry role=admin; pass
it with --token or the CFGCTL_TOKEN environment variable.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if token == "" {
			token = os.Getenv("CFGCTL_TOKEN")
		}
		client = newAPIClient(baseURL, token)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "http://localhost:8080", "config API base URL")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "bearer token for admin endpoints (defaults to $CFGCTL_TOKEN)")
}
