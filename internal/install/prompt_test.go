package install

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

func TestLinePauser(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"enter", "\n", "Press Enter to exit..."},
		{"text then enter", "ok\n", "Press Enter to exit..."},
		{"end of input", "", "Press Enter to exit...\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			NewLinePauser(strings.NewReader(tt.input), &out).Pause(context.Background())
			if got := out.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLinePauserConsumesOneLinePerPause(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("\n\n")
	p := NewLinePauser(in, &out)

	p.Pause(context.Background())
	p.Pause(context.Background())
	p.Pause(context.Background())

	want := strings.Repeat("Press Enter to exit...", 3) + "\n"
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestNopPauser(t *testing.T) {
	NopPauser().Pause(context.Background())
}

func TestLinePauserReturnsOnCancel(t *testing.T) {
	// The pipe is never written or closed, so only cancellation can end the pause.
	in, w := io.Pipe()
	defer w.Close()

	var out bytes.Buffer
	p := NewLinePauser(in, &out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Pause(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Pause() did not return after the context was canceled")
	}

	if got, want := out.String(), "Press Enter to exit...\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestLinePauserLineAfterCancelServesNextPause(t *testing.T) {
	in, w := io.Pipe()
	defer w.Close()

	var out bytes.Buffer
	p := NewLinePauser(in, &out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.Pause(ctx)

	go func() { _, _ = io.WriteString(w, "\n") }()

	done := make(chan struct{})
	go func() {
		p.Pause(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Pause() did not return after a line was entered")
	}
}
