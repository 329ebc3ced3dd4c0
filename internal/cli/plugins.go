package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/flex-plugins/flex-plugin/internal/paths"
	"github.com/flex-plugins/flex-plugin/internal/registry"
)

var pluginsListJSON bool

func init() {
	pluginsListCmd.Flags().BoolVar(&pluginsListJSON, "json", false, "Output in JSON format")
	pluginsCmd.AddCommand(pluginsListCmd)
	rootCmd.AddCommand(pluginsCmd)
}

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "Inspect the local plugin registry",
}

var pluginsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List plugins recorded in the local plugin registry",
	Long:  `List every plugin recorded in ~/.twilio-cli/flex/plugins.json.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cli, err := paths.ResolveCLI()
		if err != nil {
			return err
		}

		fsys := afero.NewOsFs()
		if ok, _ := afero.Exists(fsys, cli.PluginsJSON); !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "No plugins registered yet.")
			return nil
		}

		entries, err := registry.New(fsys, cli.PluginsJSON, nil, logger).List()
		if err != nil {
			return err
		}

		if pluginsListJSON {
			out, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling plugins: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No plugins registered yet.")
			return nil
		}
		renderPlugins(cmd, entries)
		return nil
	},
}

func renderPlugins(cmd *cobra.Command, entries []registry.Entry) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Name", "Directory", "Port"})
	for _, e := range entries {
		port := "-"
		if e.Port != 0 {
			port = fmt.Sprint(e.Port)
		}
		t.AppendRow(table.Row{e.Name, e.Dir, port})
	}
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	t.Render()
}
