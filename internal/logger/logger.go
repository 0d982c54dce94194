package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
	"unicode/utf8"
)

// DefaultPath is the viewer log file, relative to the working directory.
const DefaultPath = "logs/museum.txt"

// maxLines caps the in-memory history shown by the console.
const maxLines = 500

// Logger keeps recent lines in memory for the console and appends every line to a file.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
	now   func() time.Time
}

// New returns a Logger writing to DefaultPath.
func New() *Logger {
	return NewAt(DefaultPath)
}

// NewAt returns a Logger writing to path. The parent directory is created if needed;
// an empty path keeps lines in memory only.
func NewAt(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, now: time.Now}
}

// Log records line prefixed with a local timestamp.
func (l *Logger) Log(line string) {
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	if len(l.lines) > maxLines {
		l.lines = append(l.lines[:0], l.lines[len(l.lines)-maxLines:]...)
	}
	l.mu.Unlock()

	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Logf formats according to format and logs the result.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Clip shortens line to at most n bytes, ending it with "..." when cut. It never splits a
// UTF-8 sequence.
func Clip(line string, n int) string {
	if len(line) <= n {
		return line
	}
	const ellipsis = "..."
	cut := max(n-len(ellipsis), 0)
	for cut > 0 && !utf8.RuneStart(line[cut]) {
		cut--
	}
	return line[:cut] + ellipsis
}

// Lines returns a copy of the in-memory history, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
