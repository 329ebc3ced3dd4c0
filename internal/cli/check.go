package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/flex-plugins/flex-plugin/internal/config"
	"github.com/flex-plugins/flex-plugin/internal/paths"
	"github.com/flex-plugins/flex-plugin/internal/preflight"
	"github.com/flex-plugins/flex-plugin/internal/prompt"
	"github.com/flex-plugins/flex-plugin/internal/registry"
	"github.com/flex-plugins/flex-plugin/internal/report"
)

var (
	checkDir       string
	checkSkip      bool
	checkUnbundled bool
)

var checkStartCmd = &cobra.Command{
	Use:     "check-start",
	Aliases: []string{"preflight"},
	Short:   "Validate the plugin project before a build or start",
	Long: `Run the preflight checks on a Flex plugin project:

  1. public/appConfig.js exists
  2. public/index.html is synced from the bundled template
  3. react and react-dom match the versions @twilio/flex-ui expects
  4. src/index.* calls loadPlugin exactly once
  5. TypeScript projects have typescript installed and a tsconfig.json
  6. the plugin is recorded in ~/.twilio-cli/flex/plugins.json

The command exits with status 1 on the first failing check. Set
SKIP_PREFLIGHT_CHECK=true to downgrade version mismatches to warnings and
UNBUNDLED_REACT=true to allow a plugin to bring its own React.`,
	Args: cobra.NoArgs,
	RunE: runCheckStart,
}

func init() {
	checkStartCmd.Flags().StringVar(&checkDir, "dir", ".", "Plugin project directory")
	checkStartCmd.Flags().BoolVar(&checkSkip, "skip-preflight-check", false, "Downgrade version mismatches to warnings")
	checkStartCmd.Flags().BoolVar(&checkUnbundled, "unbundled-react", false, "Allow the plugin to bundle its own React")
	rootCmd.AddCommand(checkStartCmd)
}

func runCheckStart(cmd *cobra.Command, args []string) error {
	fsys := afero.NewOsFs()
	settings, err := loadSettings(fsys, checkDir)
	if err != nil {
		return err
	}
	settings.AllowSkip = settings.AllowSkip || checkSkip
	settings.AllowUnbundledReact = settings.AllowUnbundledReact || checkUnbundled

	confirm := prompt.NewTerminal(cmd.InOrStdin(), cmd.ErrOrStderr())
	confirm.Logger = logger
	p := &preflight.Pipeline{
		Fs:       fsys,
		Settings: settings,
		Registry: registry.New(fsys, settings.CLI.PluginsJSON, confirm, logger),
		Reporter: report.NewTerminal(cmd.ErrOrStderr()),
		Logger:   logger,
	}
	return p.Run(cmd.Context())
}

// loadSettings resolves the project in dir, the CLI home and the
// environment-derived flags.
func loadSettings(fsys afero.Fs, dir string) (preflight.Settings, error) {
	project, err := paths.ResolveProject(fsys, dir)
	if err != nil {
		return preflight.Settings{}, fmt.Errorf("loading plugin project: %w", err)
	}
	cli, err := paths.ResolveCLI()
	if err != nil {
		return preflight.Settings{}, err
	}
	return preflight.Settings{
		AllowSkip:           config.SkipPreflightCheck(),
		AllowUnbundledReact: config.AllowUnbundledReact(),
		Project:             project,
		CLI:                 cli,
	}, nil
}
