package install

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dongho-jung/cafeinstall/internal/constants"
)

// Reporter writes line-oriented status output for the operator.
// Styling is dropped automatically when out is not a terminal.
type Reporter struct {
	out         io.Writer
	okStyle     lipgloss.Style
	errorStyle  lipgloss.Style
	infoStyle   lipgloss.Style
	warnStyle   lipgloss.Style
	bannerStyle lipgloss.Style
}

// NewReporter creates a Reporter bound to out.
func NewReporter(out io.Writer) *Reporter {
	r := lipgloss.NewRenderer(out)
	return &Reporter{
		out:         out,
		okStyle:     r.NewStyle().Foreground(lipgloss.Color("40")).Bold(true),
		errorStyle:  r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		infoStyle:   r.NewStyle().Foreground(lipgloss.Color("39")),
		warnStyle:   r.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		bannerStyle: r.NewStyle().Bold(true),
	}
}

// OK writes a line marked [OK].
func (r *Reporter) OK(format string, args ...interface{}) {
	r.marked(r.okStyle, constants.MarkerOK, format, args...)
}

// Error writes a line marked [ERROR].
func (r *Reporter) Error(format string, args ...interface{}) {
	r.marked(r.errorStyle, constants.MarkerError, format, args...)
}

// Info writes a line marked [INFO].
func (r *Reporter) Info(format string, args ...interface{}) {
	r.marked(r.infoStyle, constants.MarkerInfo, format, args...)
}

// Warn writes a line marked [WARN].
func (r *Reporter) Warn(format string, args ...interface{}) {
	r.marked(r.warnStyle, constants.MarkerWarn, format, args...)
}

// Plain writes an unmarked line.
func (r *Reporter) Plain(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Blank writes an empty line.
func (r *Reporter) Blank() {
	fmt.Fprintln(r.out)
}

// Banner writes title between two rules of '=' followed by an empty line.
func (r *Reporter) Banner(title string) {
	rule := strings.Repeat(constants.BannerChar, constants.BannerWidth)
	fmt.Fprintln(r.out, rule)
	fmt.Fprintln(r.out, r.bannerStyle.Render("   "+title))
	fmt.Fprintln(r.out, rule)
	fmt.Fprintln(r.out)
}

func (r *Reporter) marked(style lipgloss.Style, marker, format string, args ...interface{}) {
	fmt.Fprintf(r.out, "%s %s\n", style.Render(marker), fmt.Sprintf(format, args...))
}
