package install

import (
	"os"

	"github.com/dongho-jung/cafeinstall/internal/constants"
)

// BootstrapDatabase creates the placeholder database file if it is absent.
// An existing file is never opened for writing. Failures are reported as
// warnings and do not stop the installation.
func (i *Installer) BootstrapDatabase() bool {
	i.log.SetStep(string(StepDatabase))
	path := i.cfg.DatabaseFile

	if _, err := i.fs.Stat(path); err == nil {
		i.report.OK("Database file already exists")
		return true
	}

	i.report.Info("Creating database file...")

	// O_EXCL guards against truncating a file that appeared after the Stat.
	f, err := i.fs.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, constants.DataFileMode)
	if err != nil {
		i.report.Warn("Could not create database file %s: %v", path, err)
		i.log.Warn("database bootstrap failed: %v", err)
		return false
	}
	if err := f.Close(); err != nil {
		i.report.Warn("Could not create database file %s: %v", path, err)
		i.log.Warn("database bootstrap failed: %v", err)
		return false
	}

	i.report.OK("Database file created")
	return true
}
