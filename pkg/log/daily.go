package log

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const dayLayout = "2006-01-02"

// DailyFileWriter is a zapcore.WriteSyncer that appends to
// <dir>/<prefix>-YYYY-MM-DD.log and switches files when the local date
// changes. Safe for concurrent use.
type DailyFileWriter struct {
	dir    string
	prefix string
	now    func() time.Time

	mu   sync.Mutex
	day  string
	file *os.File
}

// NewDailyFileWriter creates dir if needed and opens today's file.
func NewDailyFileWriter(dir, prefix string) (*DailyFileWriter, error) {
	return newDailyFileWriter(dir, prefix, time.Now)
}

func newDailyFileWriter(dir, prefix string, now func() time.Time) (*DailyFileWriter, error) {
	if prefix == "" {
		prefix = "app"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	w := &DailyFileWriter{dir: dir, prefix: prefix, now: now}
	if err := w.rotate(now().Format(dayLayout)); err != nil {
		return nil, err
	}
	return w, nil
}

// FileName returns the log file name used for day t.
func (w *DailyFileWriter) FileName(t time.Time) string {
	return filepath.Join(w.dir, fmt.Sprintf("%s-%s.log", w.prefix, t.Format(dayLayout)))
}

func (w *DailyFileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if day := w.now().Format(dayLayout); day != w.day {
		if err := w.rotate(day); err != nil {
			return 0, err
		}
	}
	return w.file.Write(p)
}

func (w *DailyFileWriter) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	return w.file.Sync()
}

// Close closes the current file.
func (w *DailyFileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}

// rotate must be called with mu held (or before w is shared).
func (w *DailyFileWriter) rotate(day string) error {
	t, _ := time.Parse(dayLayout, day)
	f, err := os.OpenFile(w.FileName(t), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	if w.file != nil {
		_ = w.file.Close()
	}
	w.file = f
	w.day = day
	return nil
}
