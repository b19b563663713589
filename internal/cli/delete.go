package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <app> <screen> <key>",
	Short: "Delete a config entry",
	Long: `Delete a single config entry by exact identity. Deletion is
idempotent; deleting an entry that does not exist still succeeds.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, screen, key := args[0], args[1], args[2]
		if err := client.deleteEntry(cmd.Context(), app, screen, key); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s/%s/%s\n", app, screen, key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
