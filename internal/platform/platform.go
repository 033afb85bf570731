// Package platform provides the host queries the installer depends on:
// operating-system classification and runtime version probing.
package platform

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// OS is the two-valued operating-system classification used to pick a
// startup script dialect.
type OS int

const (
	Unix    OS = iota // Everything that is not Windows
	Windows           // Windows family
)

// String returns a human-readable name for the classification.
func (o OS) String() string {
	if o == Windows {
		return "windows"
	}
	return "unix"
}

// FromGOOS classifies a GOOS value.
func FromGOOS(goos string) OS {
	if goos == "windows" {
		return Windows
	}
	return Unix
}

// Errors returned by RuntimeVersion.
var (
	ErrRuntimeNotFound = errors.New("runtime not installed")
	ErrRuntimeBroken   = errors.New("runtime not working properly")
)

// Platform defines the interface for host environment queries.
type Platform interface {
	// OS returns the operating-system classification of the host.
	OS() OS

	// RuntimeVersion runs "<runtime> --version" and returns the first line
	// of its output. It returns an error wrapping ErrRuntimeNotFound when the
	// executable cannot be found and ErrRuntimeBroken when it fails.
	RuntimeVersion(ctx context.Context, runtime string) (string, error)
}

// hostPlatform implements the Platform interface against the real host.
type hostPlatform struct {
	os OS
}

// Compile-time check that hostPlatform implements Platform interface.
var _ Platform = (*hostPlatform)(nil)

// New creates a Platform for the current host.
func New() Platform {
	return &hostPlatform{os: FromGOOS(runtime.GOOS)}
}

func (p *hostPlatform) OS() OS {
	return p.os
}

func (p *hostPlatform) RuntimeVersion(ctx context.Context, name string) (string, error) {
	output, err := exec.CommandContext(ctx, name, "--version").Output()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrRuntimeNotFound, name)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrRuntimeBroken, name, err)
	}
	return firstLine(string(output)), nil
}

// firstLine returns the first non-empty line of s, trimmed.
func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "\n"); idx != -1 {
		s = strings.TrimSpace(s[:idx])
	}
	return s
}
