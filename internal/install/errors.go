package install

import (
	"errors"
	"fmt"
)

// Step identifies an installation step in errors and log context.
type Step string

const (
	StepEnvironment Step = "environment"
	StepLayout      Step = "layout"
	StepInstall     Step = "install"
	StepBuild       Step = "build"
	StepBuildOutput Step = "build-output"
	StepDatabase    Step = "database"
	StepScript      Step = "startup-script"
	StepSummary     Step = "summary"
)

// Fatal failure categories. Every fatal StepError wraps one of them.
var (
	ErrMissingRuntime   = errors.New("required runtime is missing")
	ErrMissingArtifacts = errors.New("required project files are missing")
	ErrCommandFailed    = errors.New("command failed")
)

// StepError is returned for a fatal failure after it was reported to the operator.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// IsReported reports whether err was already shown to the operator by the
// installer, so callers need not print it again.
func IsReported(err error) bool {
	var stepErr *StepError
	return errors.As(err, &stepErr)
}
