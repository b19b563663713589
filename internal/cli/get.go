package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <app>",
	Short: "Fetch the published config view for an app",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := client.fetchConfig(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		var view any
		if err := json.Unmarshal(data, &view); err != nil {
			return fmt.Errorf("decode config view: %w", err)
		}
		pretty, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(pretty))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
