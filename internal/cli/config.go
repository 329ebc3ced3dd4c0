package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/flex-plugins/flex-plugin/internal/config"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/.twilio-cli/flex/config.yaml.

Preflight keys (true or false):
  skip_preflight_check  downgrade version mismatches to warnings
  unbundled_react       allow plugins to bundle their own React

Both can also be set for a single run with SKIP_PREFLIGHT_CHECK and
UNBUNDLED_REACT.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the effective preflight settings",
	Long: `Show each preflight key with the value check-start will use, after
environment variables are applied.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		effective := map[string]bool{
			config.KeySkipPreflightCheck: config.SkipPreflightCheck(),
			config.KeyUnbundledReact:     config.AllowUnbundledReact(),
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"Key", "Value"})
		for _, key := range config.Keys() {
			t.AppendRow(table.Row{key, effective[key]})
		}
		style := table.StyleLight
		style.Options.DrawBorder = false
		t.SetStyle(style)
		t.Render()
		fmt.Fprintf(cmd.OutOrStdout(), "\nConfig file: %s\n", config.FilePath())
		return nil
	},
}
