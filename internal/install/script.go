package install

import (
	"github.com/spf13/afero"

	"github.com/dongho-jung/cafeinstall/internal/constants"
	"github.com/dongho-jung/cafeinstall/internal/embed"
	"github.com/dongho-jung/cafeinstall/internal/platform"
)

// ScriptFileName returns the startup script file name for an OS classification.
func ScriptFileName(base string, osType platform.OS) string {
	if osType == platform.Windows {
		return base + constants.BatchScriptExt
	}
	return base + constants.ShellScriptExt
}

// RenderStartupScript renders the startup script content for osType.
func (i *Installer) RenderStartupScript(osType platform.OS) (string, error) {
	return embed.RenderStartupScript(osType == platform.Windows, embed.ScriptData{
		Title:         i.cfg.Title,
		LoginUser:     i.cfg.LoginUser,
		LoginPassword: i.cfg.LoginPassword,
		WebURL:        i.cfg.WebURL,
		StartCommand:  i.cfg.StartCommand,
	})
}

// GenerateStartupScript writes the platform startup script, replacing any
// existing file. Shell scripts are made executable. Failures are reported
// as warnings and do not stop the installation.
func (i *Installer) GenerateStartupScript() (string, bool) {
	i.log.SetStep(string(StepScript))
	osType := i.platform.OS()
	name := ScriptFileName(i.cfg.ScriptName, osType)

	i.report.Info("Creating startup files...")

	content, err := i.RenderStartupScript(osType)
	if err != nil {
		i.report.Warn("Could not create %s: %v", name, err)
		return name, false
	}

	if err := afero.WriteFile(i.fs, name, []byte(content), constants.DataFileMode); err != nil {
		i.report.Warn("Could not create %s: %v", name, err)
		i.log.Warn("startup script write failed: %v", err)
		return name, false
	}

	if osType != platform.Windows {
		if err := i.fs.Chmod(name, constants.ScriptFileMode); err != nil {
			i.report.Warn("Could not make %s executable: %v", name, err)
			i.log.Warn("startup script chmod failed: %v", err)
			return name, false
		}
	}

	i.report.OK("Created %s", name)
	i.log.Debug("startup script %s written for %s", name, osType)
	return name, true
}
