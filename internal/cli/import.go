package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mealhub/remote-config/internal/content"
)

// seedFile is the YAML format accepted by cfgctl import:
//
//	app: customer
//	entries:
//	  - screen: home
//	    key: title
//	    value: Hello
//	    type: text
//	  - screen: home
//	    key: banner
//	    value: {headline: "50% off", cta: order_now}
//	    type: json
type seedFile struct {
	App     string      `yaml:"app"`
	Entries []seedEntry `yaml:"entries"`
}

type seedEntry struct {
	Screen string `yaml:"screen"`
	Key    string `yaml:"key"`
	Value  any    `yaml:"value"`
	Type   string `yaml:"type"`
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Bulk-load config entries from a YAML seed file",
	Long: `Validate and upload every entry in a YAML seed file. The whole file
is validated before the first write, so a bad entry stops the import
without touching the store.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := parseSeedFile(args[0])
		if err != nil {
			return err
		}

		for _, entry := range seed.Entries {
			if err := client.putEntry(cmd.Context(), seed.App, entry.Screen, entry.Key, entry.Value, entry.Type); err != nil {
				return fmt.Errorf("entry %s/%s: %w", entry.Screen, entry.Key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "put %s/%s/%s\n", seed.App, entry.Screen, entry.Key)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d entries\n", len(seed.Entries))
		return nil
	},
}

// parseSeedFile reads and fully validates a seed file using the same
// rules the server applies.
func parseSeedFile(path string) (seedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return seedFile{}, err
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return seedFile{}, fmt.Errorf("parse seed file: %w", err)
	}

	if !content.IsValidApp(seed.App) {
		return seedFile{}, fmt.Errorf("unknown app %q", seed.App)
	}
	if len(seed.Entries) == 0 {
		return seedFile{}, fmt.Errorf("seed file has no entries")
	}

	for i, entry := range seed.Entries {
		rawValue, err := json.Marshal(entry.Value)
		if err != nil {
			return seedFile{}, fmt.Errorf("entry %d: value is not representable as JSON: %w", i, err)
		}
		raw := content.RawPayload{
			Screen: entry.Screen,
			Key:    entry.Key,
			Value:  json.RawMessage(rawValue),
			Type:   entry.Type,
		}
		if _, err := content.ValidatePayload(raw); err != nil {
			return seedFile{}, fmt.Errorf("entry %d (%s/%s): %w", i, entry.Screen, entry.Key, err)
		}
	}

	return seed, nil
}

func init() {
	rootCmd.AddCommand(importCmd)
}
