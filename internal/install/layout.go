package install

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// MissingPaths returns every entry of required that does not exist in fs,
// in the order given. Files and directories are treated alike.
func MissingPaths(fs afero.Fs, required []string) []string {
	var missing []string
	for _, p := range required {
		if _, err := fs.Stat(p); err != nil {
			missing = append(missing, p)
		}
	}
	return missing
}

// CheckLayout verifies the project directory holds every required path and
// reports all missing entries at once.
func (i *Installer) CheckLayout() error {
	i.log.SetStep(string(StepLayout))

	missing := MissingPaths(i.fs, i.cfg.RequiredPaths)
	if len(missing) > 0 {
		list := strings.Join(missing, ", ")
		i.report.Error("Missing required files: %s", list)
		i.report.Plain("Make sure you're running this from the cafe management folder.")
		return &StepError{Step: StepLayout, Err: fmt.Errorf("%w: %s", ErrMissingArtifacts, list)}
	}

	i.report.OK("Required files found")
	return nil
}
