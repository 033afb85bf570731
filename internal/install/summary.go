package install

import (
	"github.com/dongho-jung/cafeinstall/internal/constants"
	"github.com/dongho-jung/cafeinstall/internal/platform"
)

// Summary describes what the installation produced.
type Summary struct {
	OS            platform.OS
	ScriptFile    string
	ScriptWritten bool
	DatabaseFile  string
	DatabaseReady bool
}

// Summarize prints the completion banner and the operator's next steps.
func (i *Installer) Summarize(s Summary) {
	i.log.SetStep(string(StepSummary))
	windows := s.OS == platform.Windows

	i.report.Blank()
	i.report.Banner("INSTALLATION COMPLETE!")

	i.report.Plain("To start your cafe system:")
	if windows {
		i.report.Plain("1. Double-click '%s'", s.ScriptFile)
	} else {
		i.report.Plain("1. Run './%s'", s.ScriptFile)
	}
	i.report.Plain("2. Wait for startup (%d seconds)", int(constants.StartupWait.Seconds()))
	i.report.Plain("3. Open browser to %s", i.cfg.WebURL)
	i.report.Plain("4. Login: %s / %s", i.cfg.LoginUser, i.cfg.LoginPassword)
	i.report.Blank()

	i.report.Plain("Files created:")
	if s.ScriptWritten {
		if windows {
			i.report.Plain("- %s (double-click to start)", s.ScriptFile)
		} else {
			i.report.Plain("- %s (run to start)", s.ScriptFile)
		}
	}
	if s.DatabaseReady {
		i.report.Plain("- %s (your database)", s.DatabaseFile)
	}
	i.report.Blank()

	i.report.Plain("Your cafe management system is ready!")
	i.report.Blank()
}
