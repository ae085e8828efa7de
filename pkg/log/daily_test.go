package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDailyFileWriter(t *testing.T) {
	dir := t.TempDir()
	current := time.Date(2024, 9, 30, 23, 59, 0, 0, time.Local)
	now := func() time.Time { return current }

	w, err := newDailyFileWriter(dir, "csedbupdate", now)
	if err != nil {
		t.Fatalf("newDailyFileWriter: %v", err)
	}
	defer w.Close()

	if _, err := w.Write([]byte("first\n")); err != nil {
		t.Fatalf("write: %v", err)
	}

	current = current.Add(2 * time.Minute)
	if _, err := w.Write([]byte("second\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}

	day1, err := os.ReadFile(filepath.Join(dir, "csedbupdate-2024-09-30.log"))
	if err != nil {
		t.Fatalf("read day 1: %v", err)
	}
	if string(day1) != "first\n" {
		t.Errorf("day 1 content = %q", day1)
	}

	day2, err := os.ReadFile(filepath.Join(dir, "csedbupdate-2024-10-01.log"))
	if err != nil {
		t.Fatalf("read day 2: %v", err)
	}
	if string(day2) != "second\n" {
		t.Errorf("day 2 content = %q", day2)
	}
}

func TestDailyFileWriterAppends(t *testing.T) {
	dir := t.TempDir()
	now := func() time.Time { return time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local) }

	for _, line := range []string{"a\n", "b\n"} {
		w, err := newDailyFileWriter(dir, "", now)
		if err != nil {
			t.Fatalf("newDailyFileWriter: %v", err)
		}
		w.Write([]byte(line))
		w.Close()
	}

	got, err := os.ReadFile(filepath.Join(dir, "app-2024-03-01.log"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(got), "a\nb\n") {
		t.Errorf("expected both writes, got %q", got)
	}
}

func TestRequestID(t *testing.T) {
	ctx := WithRequestID(t.Context(), "req-1")
	if got := RequestID(ctx); got != "req-1" {
		t.Errorf("RequestID = %q", got)
	}
	if got := RequestID(t.Context()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}
