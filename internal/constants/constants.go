// Package constants defines shared constants used throughout cafe-install.
package constants

import (
	"os"
	"time"
)

// Status markers printed at the start of operator-facing lines.
const (
	MarkerOK    = "[OK]"
	MarkerError = "[ERROR]"
	MarkerInfo  = "[INFO]"
	MarkerWarn  = "[WARN]"
)

// Banner layout
const (
	BannerChar  = "="
	BannerWidth = 50
)

// Project layout
const (
	PackageManifest = "package.json"
	ServerDirName   = "server"
	ClientDirName   = "client"
	BuildOutputPath = "dist/index.js"
)

// Directory and file names
const (
	ConfigFileName   = "cafe-install.yaml"
	DatabaseFileName = "cafe.db"
	ScriptBaseName   = "start-cafe-system"
	BatchScriptExt   = ".bat"
	ShellScriptExt   = ".sh"
)

// Runtime prerequisite and package-manager commands
const (
	DefaultRuntime        = "node"
	DefaultRuntimeName    = "Node.js"
	DefaultRuntimeURL     = "https://nodejs.org"
	DefaultInstallCommand = "npm install"
	DefaultBuildCommand   = "npm run build"
	DefaultStartCommand   = "npm run start"
)

// Installed application defaults
const (
	DefaultTitle         = "Cafe Management System"
	DefaultWebURL        = "http://localhost:5000"
	DefaultLoginUser     = "admin"
	DefaultLoginPassword = "admin123"
	StartupWait          = 30 * time.Second
)

// File modes
const (
	ScriptFileMode os.FileMode = 0755
	DataFileMode   os.FileMode = 0644
)

// ExitFailure is the process exit status after a fatal installation failure.
const ExitFailure = 1

// RequiredPaths returns the project entries that must exist before installing.
// A new slice is returned on every call.
func RequiredPaths() []string {
	return []string{PackageManifest, ServerDirName, ClientDirName}
}
