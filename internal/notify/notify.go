// Package notify is the toast surface: every user-facing success or
// failure message goes through a Notifier.
package notify

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Notifier publishes one-line messages at four severities.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Warning(msg string)
	Info(msg string)
}

// Terminal renders notifications as styled lines on a writer.
type Terminal struct {
	mu      sync.Mutex
	writer  io.Writer
	noColor bool

	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
	infoStyle    lipgloss.Style
}

// NewTerminal creates a Terminal notifier writing to stderr, so toasts
// never mix with piped data output.
func NewTerminal(noColor bool) *Terminal {
	return newTerminal(os.Stderr, noColor)
}

func newTerminal(w io.Writer, noColor bool) *Terminal {
	t := &Terminal{writer: w, noColor: noColor}
	if noColor {
		return t
	}
	t.successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	t.errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	t.warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	t.infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	return t
}

// Success publishes a success toast.
func (t *Terminal) Success(msg string) { t.emit(t.successStyle, "✓", msg) }

// Error publishes an error toast.
func (t *Terminal) Error(msg string) { t.emit(t.errorStyle, "✗", msg) }

// Warning publishes a warning toast.
func (t *Terminal) Warning(msg string) { t.emit(t.warningStyle, "!", msg) }

// Info publishes an informational toast.
func (t *Terminal) Info(msg string) { t.emit(t.infoStyle, "•", msg) }

func (t *Terminal) emit(style lipgloss.Style, glyph, msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	line := glyph + " " + msg
	if !t.noColor {
		line = style.Render(line)
	}
	_, _ = fmt.Fprintln(t.writer, line)
}

// Recorder captures notifications for tests.
type Recorder struct {
	mu       sync.Mutex
	Messages []Message
}

// Message is one recorded notification.
type Message struct {
	Severity string
	Text     string
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Success records a success notification.
func (r *Recorder) Success(msg string) { r.record("success", msg) }

// Error records an error notification.
func (r *Recorder) Error(msg string) { r.record("error", msg) }

// Warning records a warning notification.
func (r *Recorder) Warning(msg string) { r.record("warning", msg) }

// Info records an info notification.
func (r *Recorder) Info(msg string) { r.record("info", msg) }

func (r *Recorder) record(severity, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Messages = append(r.Messages, Message{Severity: severity, Text: msg})
}

// BySeverity returns the recorded texts for one severity.
func (r *Recorder) BySeverity(severity string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, m := range r.Messages {
		if m.Severity == severity {
			out = append(out, m.Text)
		}
	}
	return out
}
