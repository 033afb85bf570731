// Package app provides the main application context and dependency injection.
package app

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/dongho-jung/cafeinstall/internal/config"
	"github.com/dongho-jung/cafeinstall/internal/install"
	"github.com/dongho-jung/cafeinstall/internal/logging"
	"github.com/dongho-jung/cafeinstall/internal/platform"
	"github.com/dongho-jung/cafeinstall/internal/runner"
)

// App represents the main application context with all dependencies.
type App struct {
	// Paths
	ProjectDir string // Directory the installer runs in

	// Host capabilities
	Fs       afero.Fs          // Filesystem rooted at ProjectDir
	Platform platform.Platform // OS classification and runtime probe
	Runner   runner.Runner     // Shell command runner working in ProjectDir

	// State
	Config *config.Config // Installer configuration

	// Runtime
	Debug bool // Debug mode enabled
}

// New creates a new App instance for the given project directory.
// Paths given to Fs are resolved relative to the project directory.
func New(projectDir string) (*App, error) {
	absPath, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project path: %w", err)
	}

	p := platform.New()
	return &App{
		ProjectDir: absPath,
		Fs:         afero.NewBasePathFs(afero.NewOsFs(), absPath),
		Platform:   p,
		Runner:     runner.New(p.OS(), absPath),
		Config:     config.DefaultConfig(),
	}, nil
}

// LoadConfig loads the installer configuration. An empty path reads the
// optional config file in the project directory; otherwise path is read
// from the host filesystem and must exist.
func (a *App) LoadConfig(path string) error {
	var (
		cfg *config.Config
		err error
	)
	if path == "" {
		cfg, err = config.Load(a.Fs)
	} else {
		cfg, err = config.LoadFile(afero.NewOsFs(), path)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	for _, warning := range cfg.Normalize() {
		logging.Warn("config: %s", warning)
	}
	a.Config = cfg
	return nil
}

// SetRunner replaces the command runner, e.g. to decorate it.
func (a *App) SetRunner(r runner.Runner) {
	a.Runner = r
}

// SetDebug enables debug mode.
func (a *App) SetDebug(debug bool) {
	a.Debug = debug
}

// Installer builds an Installer wired to the app's capabilities.
func (a *App) Installer(out io.Writer, opts ...install.Option) *install.Installer {
	opts = append([]install.Option{install.WithLogger(logging.Global())}, opts...)
	return install.New(a.Config, a.Fs, a.Platform, a.Runner, out, opts...)
}
