package main

import (
	"github.com/spf13/cobra"

	"github.com/dongho-jung/cafeinstall/internal/install"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check system requirements without installing",
	Long:  "Verify that Node.js is available and the current directory holds the cafe management project.",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

// runCheck runs the environment and layout probes and prints the results.
// It never runs the install or build commands and writes no files.
func runCheck(cmd *cobra.Command, args []string) error {
	application, cleanup, err := setupApp(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	out := cmd.OutOrStdout()
	report := install.NewReporter(out)
	report.Banner("CAFE INSTALLER REQUIREMENTS CHECK")

	if err := application.Installer(out).Check(cmd.Context()); err != nil {
		report.Blank()
		report.Error("Some requirements are missing. Fix them before installing.")
		return err
	}

	report.Blank()
	report.OK("All requirements are met.")
	return nil
}
