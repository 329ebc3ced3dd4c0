package cli

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/flex-plugins/flex-plugin/internal/manifest"
	"github.com/flex-plugins/flex-plugin/internal/paths"
	"github.com/flex-plugins/flex-plugin/internal/preflight"
	"github.com/flex-plugins/flex-plugin/internal/registry"
)

var doctorDir string

func init() {
	doctorCmd.Flags().StringVar(&doctorDir, "dir", ".", "Plugin project directory")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for a plugin project",
	Long: `Run every preflight check and print the result of each one without stopping
at the first failure. Unlike check-start, doctor never writes to the project
or to the plugin registry.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		runRuntimeCheck(out)

		fsys := afero.NewReadOnlyFs(afero.NewOsFs())
		settings, err := loadSettings(fsys, doctorDir)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Project %s (%s):\n", settings.Project.Name, settings.Project.Dir)
		failed := 0
		for _, c := range doctorChecks(fsys, settings) {
			if !c(out) {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d check(s) failed", failed)
		}
		return nil
	},
}

func runRuntimeCheck(out io.Writer) {
	fmt.Fprintln(out, "Runtime check:")
	checkBinary(out, "node")
	checkBinary(out, "npm")
}

func checkBinary(out io.Writer, name string) {
	path, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(out, "  [MISS] %s not found\n", name)
		return
	}
	fmt.Fprintf(out, "  [ OK ] %s found at %s\n", name, path)
}

// doctorCheck prints one result line and reports whether it passed.
type doctorCheck func(out io.Writer) bool

func doctorChecks(fsys afero.Fs, s preflight.Settings) []doctorCheck {
	return []doctorCheck{
		func(out io.Writer) bool {
			return printResult(out, "app config present", preflight.CheckAppConfig(fsys, s))
		},
		func(out io.Writer) bool {
			return checkDeps(out, fsys, s)
		},
		func(out io.Writer) bool {
			return printResult(out, "single loadPlugin call", preflight.CheckPluginCount(fsys, s))
		},
		func(out io.Writer) bool {
			return checkTypeScript(out, fsys, s)
		},
		func(out io.Writer) bool {
			return checkRegistryEntry(out, fsys, s)
		},
	}
}

func printResult(out io.Writer, label string, err error) bool {
	if err == nil {
		fmt.Fprintf(out, "  [ OK ] %s\n", label)
		return true
	}
	if pe, ok := preflight.AsError(err); ok && !pe.Fatal {
		fmt.Fprintf(out, "  [WARN] %s: %s\n", label, pe.Message)
		return true
	}
	fmt.Fprintf(out, "  [FAIL] %s: %v\n", label, err)
	return false
}

func checkDeps(out io.Writer, fsys afero.Fs, s preflight.Settings) bool {
	host, err := manifest.Read(fsys, s.Project.FlexUIManifest())
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %s installed: %v\n", paths.FlexUIPackage, err)
		return false
	}
	fmt.Fprintf(out, "  [ OK ] %s %s installed\n", paths.FlexUIPackage, host.Version)

	ok := true
	installed := preflight.InstalledFrom(fsys, s.Project)
	for _, name := range preflight.PackagesToVerify {
		err := preflight.VerifyPackageVersion(host, name, installed, s.AllowSkip, s.AllowUnbundledReact)
		ok = printResult(out, name+" version", err) && ok
	}
	return ok
}

func checkTypeScript(out io.Writer, fsys afero.Fs, s preflight.Settings) bool {
	typed, err := preflight.HasTypedSources(fsys, s.Project.Dir)
	if err != nil {
		return printResult(out, "TypeScript sources", err)
	}
	if !typed {
		fmt.Fprintln(out, "  [ OK ] no TypeScript sources")
		return true
	}
	dir, found := preflight.ResolveModule(fsys, s.Project.Dir, paths.TypeScriptModule)
	if !found {
		fmt.Fprintf(out, "  [FAIL] %s not installed\n", paths.TypeScriptModule)
		return false
	}
	fmt.Fprintf(out, "  [ OK ] %s found at %s\n", paths.TypeScriptModule, dir)
	if exists, _ := afero.Exists(fsys, s.Project.TSConfig); !exists {
		fmt.Fprintf(out, "  [WARN] %s missing; check-start will create a default one\n", paths.TSConfigFile)
	}
	return true
}

func checkRegistryEntry(out io.Writer, fsys afero.Fs, s preflight.Settings) bool {
	if exists, _ := afero.Exists(fsys, s.CLI.PluginsJSON); !exists {
		fmt.Fprintf(out, "  [WARN] %s does not exist yet\n", s.CLI.PluginsJSON)
		return true
	}
	f, err := registry.New(fsys, s.CLI.PluginsJSON, nil, logger).Load()
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] plugin registry: %v\n", err)
		return false
	}
	e := f.Find(s.Project.Name)
	switch {
	case e == nil:
		fmt.Fprintf(out, "  [WARN] %s is not registered yet\n", s.Project.Name)
	case e.Dir != s.Project.Dir:
		fmt.Fprintf(out, "  [WARN] %s is registered at %s\n", s.Project.Name, e.Dir)
	default:
		fmt.Fprintf(out, "  [ OK ] %s registered\n", s.Project.Name)
	}
	return true
}
