package install

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// Pauser blocks until the operator acknowledges, so diagnostics stay
// readable before a terminal window closes.
type Pauser interface {
	// Pause returns once the operator acknowledged or ctx is done.
	Pause(ctx context.Context)
}

type linePauser struct {
	lines <-chan struct{}
	out   io.Writer
}

// NewLinePauser creates a Pauser that waits for one line on in.
// End of input counts as acknowledgment.
func NewLinePauser(in io.Reader, out io.Writer) Pauser {
	return &linePauser{
		lines: readLines(in),
		out:   out,
	}
}

// readLines signals once per line read from in and closes the channel at
// end of input. A single reader goroutine serves every Pause, so a pause
// abandoned on cancellation does not swallow a later line.
func readLines(in io.Reader) <-chan struct{} {
	lines := make(chan struct{})
	go func() {
		defer close(lines)
		r := bufio.NewReader(in)
		for {
			if _, err := r.ReadString('\n'); err != nil {
				return
			}
			lines <- struct{}{}
		}
	}()
	return lines
}

func (p *linePauser) Pause(ctx context.Context) {
	fmt.Fprint(p.out, "Press Enter to exit...")
	select {
	case _, ok := <-p.lines:
		if !ok {
			fmt.Fprintln(p.out)
		}
	case <-ctx.Done():
		fmt.Fprintln(p.out)
	}
}

type nopPauser struct{}

// NopPauser returns a Pauser that never blocks.
func NopPauser() Pauser {
	return nopPauser{}
}

func (nopPauser) Pause(context.Context) {}
