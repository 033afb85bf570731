package install

import (
	"context"
	"errors"
	"fmt"

	"github.com/dongho-jung/cafeinstall/internal/platform"
)

// CheckEnvironment probes the required runtime and reports its version.
func (i *Installer) CheckEnvironment(ctx context.Context) error {
	i.log.SetStep(string(StepEnvironment))
	name := i.cfg.RuntimeName

	version, err := i.platform.RuntimeVersion(ctx, i.cfg.Runtime)
	if err == nil {
		i.report.OK("%s detected: %s", name, version)
		i.log.Debug("runtime %s version %s", i.cfg.Runtime, version)
		return nil
	}

	if errors.Is(err, platform.ErrRuntimeNotFound) {
		i.report.Error("%s is not installed!", name)
		i.report.Blank()
		i.report.Plain("Please install %s first:", name)
		i.report.Plain("1. Go to %s", i.cfg.RuntimeURL)
		i.report.Plain("2. Download and install %s", name)
		i.report.Plain("3. Restart your computer")
		i.report.Plain("4. Run this installer again")
		i.report.Blank()
	} else {
		i.report.Error("%s not working properly", name)
	}

	return &StepError{Step: StepEnvironment, Err: fmt.Errorf("%w: %w", ErrMissingRuntime, err)}
}
