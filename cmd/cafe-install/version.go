package main

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via ldflags
	Version = "dev"
	// Commit is the git commit hash, set at build time via ldflags
	Commit = "unknown"
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		applyBuildInfo(info)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd.OutOrStdout())
	},
}

// checkVersionFlag prints the version if -v was passed.
func checkVersionFlag(w io.Writer) bool {
	if showVersion {
		printVersion(w)
		return true
	}
	return false
}

// printVersion prints the version and commit information
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "cafe-install %s (%s)\n", Version, Commit)
}

// applyBuildInfo fills Version and Commit from module build info when they
// were not set via ldflags (e.g. for `go install`).
func applyBuildInfo(info *debug.BuildInfo) {
	if info == nil {
		return
	}

	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	if Commit == "unknown" {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				Commit = shortCommit(s.Value)
				break
			}
		}
	}
}

func shortCommit(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}
