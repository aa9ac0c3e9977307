package scenario

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// Output records transcript lines. The runner writes one line per played
// step, including the opening scenario record, and never reads them back.
type Output interface {
	WriteLine(message string)
	WriteLinef(format string, args ...any)
}

// WriterOutput writes each line to w followed by a newline. Write errors
// are dropped; a transcript is display-only.
func WriterOutput(w io.Writer) Output {
	return writerOutput{w: w}
}

type writerOutput struct {
	w io.Writer
}

func (o writerOutput) WriteLine(message string) {
	_, _ = io.WriteString(o.w, message+"\n")
}

func (o writerOutput) WriteLinef(format string, args ...any) {
	o.WriteLine(fmt.Sprintf(format, args...))
}

// LogOutput emits each line as an info record with the line as message.
func LogOutput(logger *slog.Logger) Output {
	return logOutput{logger: logger}
}

type logOutput struct {
	logger *slog.Logger
}

func (o logOutput) WriteLine(message string) {
	o.logger.Info(message)
}

func (o logOutput) WriteLinef(format string, args ...any) {
	o.logger.Info(fmt.Sprintf(format, args...))
}

// Recorder keeps transcript lines in memory.
//
// Thread-safety: Recorder is safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	lines []string
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// WriteLine implements Output.
func (r *Recorder) WriteLine(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, message)
}

// WriteLinef implements Output.
func (r *Recorder) WriteLinef(format string, args ...any) {
	r.WriteLine(fmt.Sprintf(format, args...))
}

// Lines returns a copy of the recorded lines.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// String joins the recorded lines, each terminated by a newline.
func (r *Recorder) String() string {
	lines := r.Lines()
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// Reset discards all recorded lines.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
}
