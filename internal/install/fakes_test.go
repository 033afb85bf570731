package install

import (
	"context"

	"github.com/dongho-jung/cafeinstall/internal/platform"
	"github.com/dongho-jung/cafeinstall/internal/runner"
)

// fakePlatform simulates runtime presence and OS classification.
type fakePlatform struct {
	os      platform.OS
	version string
	err     error
	probes  []string
}

func (p *fakePlatform) OS() platform.OS {
	return p.os
}

func (p *fakePlatform) RuntimeVersion(_ context.Context, name string) (string, error) {
	p.probes = append(p.probes, name)
	if p.err != nil {
		return "", p.err
	}
	return p.version, nil
}

// fakeRunner returns canned results per command and records invocations.
// Commands without a canned result succeed.
type fakeRunner struct {
	results map[string]runner.Result
	calls   []string
	onRun   func(command string)
}

func (r *fakeRunner) Run(_ context.Context, command string) runner.Result {
	r.calls = append(r.calls, command)
	if r.onRun != nil {
		r.onRun(command)
	}
	if res, ok := r.results[command]; ok {
		res.Command = command
		return res
	}
	return runner.Result{Command: command}
}

// countingPauser records how often the operator was asked to acknowledge.
type countingPauser struct {
	count int
}

func (p *countingPauser) Pause(context.Context) {
	p.count++
}
