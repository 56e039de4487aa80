package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Reporter prints human-readable diagnostic lines. Status tags are colored only when
// the writer is a terminal.
type Reporter struct {
	w io.Writer

	infoTag    string
	successTag string
	failTag    string
	errorTag   string
	heading    lipgloss.Style
}

// NewReporter creates a reporter writing to w
func NewReporter(w io.Writer) *Reporter {
	r := lipgloss.NewRenderer(w)

	return &Reporter{
		w:          w,
		infoTag:    r.NewStyle().Foreground(lipgloss.Color("12")).Render("[INFO]"),
		successTag: r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true).Render("[SUCCESS]"),
		failTag:    r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true).Render("[FAIL]"),
		errorTag:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true).Render("[ERROR]"),
		heading:    r.NewStyle().Bold(true),
	}
}

// Heading prints "--- title ---"
func (r *Reporter) Heading(title string) {
	r.Line(r.heading.Render(fmt.Sprintf("--- %s ---", title)))
}

// Info prints an [INFO] line
func (r *Reporter) Info(format string, args ...interface{}) {
	r.tagged(r.infoTag, format, args...)
}

// Success prints a [SUCCESS] line
func (r *Reporter) Success(format string, args ...interface{}) {
	r.tagged(r.successTag, format, args...)
}

// Fail prints a [FAIL] line
func (r *Reporter) Fail(format string, args ...interface{}) {
	r.tagged(r.failTag, format, args...)
}

// Error prints an [ERROR] line
func (r *Reporter) Error(format string, args ...interface{}) {
	r.tagged(r.errorTag, format, args...)
}

// Detail prints a continuation line indented under the previous tag
func (r *Reporter) Detail(format string, args ...interface{}) {
	r.Line("       " + fmt.Sprintf(format, args...))
}

// Line prints s verbatim
func (r *Reporter) Line(s string) {
	_, _ = fmt.Fprintln(r.w, s)
}

// Blank prints an empty line
func (r *Reporter) Blank() {
	_, _ = fmt.Fprintln(r.w)
}

func (r *Reporter) tagged(tag, format string, args ...interface{}) {
	r.Line(tag + " " + fmt.Sprintf(format, args...))
}
