package preflight

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/flex-plugins/flex-plugin/internal/registry"
)

// Reconciler records the current plugin in the local plugin registry.
// *registry.Registry implements it.
type Reconciler interface {
	Reconcile(ctx context.Context, name, dir string) (registry.Outcome, error)
}

// Step is one named check in the pipeline.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Pipeline runs the preflight checks for one project.
type Pipeline struct {
	Fs       afero.Fs
	Settings Settings
	Registry Reconciler
	Reporter Reporter
	Logger   *slog.Logger
}

// Steps returns the checks in the order they run.
func (p *Pipeline) Steps() []Step {
	r := p.reporter()
	return []Step{
		{"app-config", func(context.Context) error { return CheckAppConfig(p.Fs, p.Settings) }},
		{"public-dir", func(context.Context) error { return SyncPublicDir(p.Fs, p.Settings) }},
		{"external-deps", func(context.Context) error { return CheckExternalDeps(p.Fs, p.Settings, r) }},
		{"plugin-count", func(context.Context) error { return CheckPluginCount(p.Fs, p.Settings) }},
		{"typescript", func(context.Context) error { return ValidateTypeScript(p.Fs, p.Settings, r) }},
		{"registry", p.reconcile},
	}
}

// Run executes every step in order and stops at the first failure, which
// is reported and returned. Warnings do not stop the run. Changes made by
// steps that already ran are kept.
func (p *Pipeline) Run(ctx context.Context) error {
	log := p.logger()
	log.Debug("Checking Flex plugin project directory", "dir", p.Settings.Project.Dir)

	for _, step := range p.Steps() {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Debug("running preflight step", "step", step.Name)
		if err := step.Run(ctx); err != nil {
			log.Debug("preflight step failed", "step", step.Name, "error", err)
			var pe *Error
			if errors.As(err, &pe) {
				p.reporter().Report(pe)
			}
			return err
		}
	}

	log.Debug("preflight checks passed", "plugin", p.Settings.Project.Name)
	return nil
}

func (p *Pipeline) reconcile(ctx context.Context) error {
	if p.Registry == nil {
		return nil
	}
	name, dir := p.Settings.Project.Name, p.Settings.Project.Dir
	outcome, err := p.Registry.Reconcile(ctx, name, dir)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fatal(RegistryFailure, "could not record %s in the local plugin registry", name).
			withDetail("%v", err).
			wrap(err)
	}
	p.logger().Debug("plugin registry reconciled", "plugin", name, "dir", dir, "outcome", outcome.String())
	return nil
}

func (p *Pipeline) reporter() Reporter {
	if p.Reporter == nil {
		return discardReporter{}
	}
	return p.Reporter
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p.Logger
}
