package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mealhub/remote-config/internal/content"
)

var putType string

var putCmd = &cobra.Command{
	Use:   "put <app> <screen> <key> <value>",
	Short: "Create or overwrite a config entry",
	Long: `Create or overwrite a single config entry. The write is an
unconditional overwrite: putting an existing identity replaces it.

For --type json the value argument must be a valid JSON document.`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, screen, key, value := args[0], args[1], args[2], args[3]

		// Run the server's own validation locally so mistakes fail
		// before any network round trip.
		quoted, err := json.Marshal(value)
		if err != nil {
			return err
		}
		raw := content.RawPayload{
			App:    app,
			Screen: screen,
			Key:    key,
			Value:  json.RawMessage(quoted),
			Type:   putType,
		}
		if _, err := content.ValidatePayload(raw); err != nil {
			return err
		}
		if !content.IsValidApp(app) {
			return fmt.Errorf("unknown app %q", app)
		}
		if putType == string(content.TypeJSON) && !json.Valid([]byte(value)) {
			return fmt.Errorf("value is not valid JSON")
		}

		if err := client.putEntry(cmd.Context(), app, screen, key, value, putType); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "put %s/%s/%s\n", app, screen, key)
		return nil
	},
}

func init() {
	putCmd.Flags().StringVar(&putType, "type", string(content.TypeText), "content type: text, image, or json")
	rootCmd.AddCommand(putCmd)
}
