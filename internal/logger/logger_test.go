package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 1, 12, 30, 0, 0, time.Local)
}

func TestClip(t *testing.T) {
	tests := []struct {
		name string
		line string
		n    int
		want string
	}{
		{"short", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"ascii cut", "hello world", 8, "hello..."},
		{"does not split rune", "abcdé!!!", 8, "abcd..."},
		{"multibyte run", "ééééé", 7, "éé..."},
		{"tiny limit", "hello", 2, "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clip(tt.line, tt.n)
			if got != tt.want {
				t.Errorf("Clip(%q, %d) = %q, want %q", tt.line, tt.n, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("Clip(%q, %d) = %q is not valid UTF-8", tt.line, tt.n, got)
			}
		})
	}
}

func TestLogWritesFileAndHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "museum.txt")
	l := NewAt(path)
	l.now = fixedClock

	l.Log("viewer started")
	l.Logf("painting %d/%d", 3, 9)

	want := []string{
		"[2024-03-01 12:30:00] viewer started",
		"[2024-03-01 12:30:00] painting 3/9",
	}
	got := l.Lines()
	if len(got) != len(want) {
		t.Fatalf("Lines() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if string(data) != strings.Join(want, "\n")+"\n" {
		t.Errorf("file = %q", data)
	}
}

func TestHistoryIsCapped(t *testing.T) {
	l := NewAt("")
	for i := 0; i < maxLines+20; i++ {
		l.Log(fmt.Sprint(i))
	}
	lines := l.Lines()
	if len(lines) != maxLines {
		t.Fatalf("len = %d, want %d", len(lines), maxLines)
	}
	if !strings.HasSuffix(lines[0], "] 20") {
		t.Errorf("oldest kept line = %q", lines[0])
	}
}

func TestLinesReturnsCopy(t *testing.T) {
	l := NewAt("")
	l.Log("a")
	lines := l.Lines()
	lines[0] = "changed"
	if l.Lines()[0] == "changed" {
		t.Error("Lines() exposed internal slice")
	}
}
