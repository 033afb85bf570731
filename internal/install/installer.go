// Package install implements the installation sequence for the Cafe
// Management System: prerequisite probes, dependency install and build,
// database bootstrap, startup-script generation and the final summary.
package install

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/dongho-jung/cafeinstall/internal/config"
	"github.com/dongho-jung/cafeinstall/internal/logging"
	"github.com/dongho-jung/cafeinstall/internal/platform"
	"github.com/dongho-jung/cafeinstall/internal/runner"
)

// Installer runs the installation steps against injected host capabilities.
type Installer struct {
	cfg      *config.Config
	fs       afero.Fs
	platform platform.Platform
	runner   runner.Runner
	pauser   Pauser
	log      logging.Logger
	report   *Reporter
}

// Option configures an Installer.
type Option func(*Installer)

// WithPauser sets the acknowledgment prompt used before exiting.
func WithPauser(p Pauser) Option {
	return func(i *Installer) {
		i.pauser = p
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l logging.Logger) Option {
	return func(i *Installer) {
		i.log = l
	}
}

// New creates an Installer. fs is rooted at the project directory.
// Without options the installer never pauses and logs nothing.
func New(cfg *config.Config, fs afero.Fs, p platform.Platform, r runner.Runner, out io.Writer, opts ...Option) *Installer {
	inst := &Installer{
		cfg:      cfg,
		fs:       fs,
		platform: p,
		runner:   r,
		pauser:   NopPauser(),
		log:      logging.NewNop(),
		report:   NewReporter(out),
	}
	for _, opt := range opts {
		opt(inst)
	}
	return inst
}

// Run executes the full installation. Fatal failures are reported, the
// operator is asked to acknowledge, and a *StepError is returned.
func (i *Installer) Run(ctx context.Context) error {
	i.report.Banner(strings.ToUpper(i.cfg.Title) + " INSTALLER")

	if err := i.CheckEnvironment(ctx); err != nil {
		return i.abort(ctx, err)
	}
	i.report.Blank()

	if err := i.CheckLayout(); err != nil {
		return i.abort(ctx, err)
	}
	i.report.Blank()

	i.report.Plain("Installing %s...", i.cfg.Title)
	i.report.Blank()

	if err := i.RunCommand(ctx, StepInstall, i.cfg.InstallCommand, "Installing dependencies"); err != nil {
		return i.abort(ctx, err)
	}
	if err := i.RunCommand(ctx, StepBuild, i.cfg.BuildCommand, "Building application"); err != nil {
		return i.abort(ctx, err)
	}

	i.CheckBuildOutput()

	summary := Summary{
		OS:           i.platform.OS(),
		DatabaseFile: i.cfg.DatabaseFile,
	}
	summary.DatabaseReady = i.BootstrapDatabase()
	summary.ScriptFile, summary.ScriptWritten = i.GenerateStartupScript()

	i.Summarize(summary)
	i.pauser.Pause(ctx)
	return nil
}

// Check runs only the environment and layout probes. Unlike Run it does
// not stop at the first failure and never pauses.
func (i *Installer) Check(ctx context.Context) error {
	envErr := i.CheckEnvironment(ctx)
	i.report.Blank()
	layoutErr := i.CheckLayout()
	return errors.Join(envErr, layoutErr)
}

func (i *Installer) abort(ctx context.Context, err error) error {
	i.log.Debug("installation aborted: %v", err)
	i.pauser.Pause(ctx)
	return err
}
