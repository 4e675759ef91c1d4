// Package testutil provides logging and fixture helpers for tests.
package testutil

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// NewTestLogger returns a debug-level logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// SampleDataset is a small vocabulary file mixing example sentences with
// grammar-explanation rows.
var SampleDataset = []string{
	"ID|英文|日本語訳|備考",
	"1|She is happy.|彼女は幸せです。|",
	"2|go|～ですか|",
	"148|A complete sentence here.|普通の訳。|",
	"3|Where is the station?|駅はどこですか。",
	"||",
	"9|run +noun|動詞＋名詞|",
	"4|I like it.|好き（話し言葉）|",
	"5|It expresses ability.|助動詞の用法です。|",
	"6|The weather is nice today.|今日は天気がいい。|extra|fields",
}

// WriteDataset writes lines joined by "\n" (with a trailing newline) to
// name inside a fresh temp directory and returns the file path.
func WriteDataset(t testing.TB, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// ReadLines returns the lines of path without their terminators.
func ReadLines(t testing.TB, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
