package install

import (
	"context"
	"fmt"
)

// RunCommand runs a shell command through the injected runner and reports
// the outcome. It carries no command-specific logic.
func (i *Installer) RunCommand(ctx context.Context, step Step, command, description string) error {
	i.log.SetStep(string(step))
	i.report.Info("%s...", description)

	timer := i.log.StartTimer(command)
	result := i.runner.Run(ctx, command)

	if result.Success() {
		timer.Stop()
		i.report.OK("%s completed", description)
		return nil
	}

	timer.StopWithResult(false, fmt.Sprintf("exit code %d", result.ExitCode))
	i.report.Error("%s failed:", description)
	i.report.Plain("Command: %s", command)
	i.report.Plain("Error: %s", result.ErrorText())

	return &StepError{
		Step: step,
		Err:  fmt.Errorf("%w: %s (exit code %d)", ErrCommandFailed, command, result.ExitCode),
	}
}

// CheckBuildOutput warns when the build did not produce the file the start
// command runs. It never fails the installation.
func (i *Installer) CheckBuildOutput() bool {
	i.log.SetStep(string(StepBuildOutput))

	if _, err := i.fs.Stat(i.cfg.BuildOutput); err != nil {
		i.report.Warn("Server file not found: %s", i.cfg.BuildOutput)
		i.report.Plain("The system may not start until the build produces it.")
		i.log.Debug("build output check: %v", err)
		return false
	}
	return true
}
