// Package main provides the entry point for the cafe-install CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dongho-jung/cafeinstall/internal/app"
	"github.com/dongho-jung/cafeinstall/internal/constants"
	"github.com/dongho-jung/cafeinstall/internal/install"
	"github.com/dongho-jung/cafeinstall/internal/logging"
	"github.com/dongho-jung/cafeinstall/internal/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// Installer failures were already shown to the operator.
		if !install.IsReported(err) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(constants.ExitFailure)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cafe-install",
	Short: "Install the Cafe Management System",
	Long: `cafe-install prepares a Cafe Management System checkout for local use.
It checks for Node.js, installs dependencies, builds the application,
creates the local database file and writes a startup script.`,
	Args:          cobra.NoArgs,
	RunE:          runInstall,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	showVersion bool
	noPause     bool
	debugMode   bool
	configPath  string
)

func init() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Print version information")
	rootCmd.Flags().BoolVar(&noPause, "no-pause", false, "Do not wait for Enter before exiting")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Write debug logs to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a cafe-install.yaml file")
}

// runInstall runs the full installation in the current directory.
func runInstall(cmd *cobra.Command, args []string) error {
	if checkVersionFlag(cmd.OutOrStdout()) {
		return nil
	}

	application, cleanup, err := setupApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	if isTerminal(out) {
		application.SetRunner(tui.NewSpinnerRunner(application.Runner, out))
	}

	var opts []install.Option
	if !noPause {
		opts = append(opts, install.WithPauser(install.NewLinePauser(cmd.InOrStdin(), out)))
	}

	logging.Debug("installing in %s", application.ProjectDir)
	return application.Installer(out, opts...).Run(cmd.Context())
}

// setupApp creates the app for the current directory, installs the global
// logger and loads the configuration.
func setupApp(cmd *cobra.Command) (*app.App, func(), error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	logger := logging.New(cmd.ErrOrStderr(), debugMode)
	logging.SetGlobal(logger)
	cleanup := func() { _ = logger.Close() }

	application, err := app.New(cwd)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create app: %w", err)
	}
	application.SetDebug(debugMode)

	if err := application.LoadConfig(configPath); err != nil {
		cleanup()
		return nil, nil, err
	}
	return application, cleanup, nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
