package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// dailyFile is a zapcore.WriteSyncer that writes to <dir>/<name>_<YYYYMMDD>.log
// and switches to a new file when the calendar day changes.
type dailyFile struct {
	mu   sync.Mutex
	dir  string
	name string
	now  func() time.Time

	day  string
	file *os.File
}

func newDailyFile(dir, name string) (*dailyFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	d := &dailyFile{dir: dir, name: name, now: time.Now}
	if err := d.rotate(d.now().Format("20060102")); err != nil {
		return nil, err
	}
	return d, nil
}

// FileName returns the log file name for the given day.
func FileName(name string, day time.Time) string {
	return fmt.Sprintf("%s_%s.log", name, day.Format("20060102"))
}

func (d *dailyFile) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if day := d.now().Format("20060102"); day != d.day {
		if err := d.rotate(day); err != nil {
			return 0, err
		}
	}
	return d.file.Write(p)
}

func (d *dailyFile) Sync() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.file == nil {
		return nil
	}
	return d.file.Sync()
}

func (d *dailyFile) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}

// rotate closes the current file and opens the one for day. Caller holds mu
// (or is the constructor).
func (d *dailyFile) rotate(day string) error {
	if d.file != nil {
		_ = d.file.Close()
	}
	path := filepath.Join(d.dir, d.name+"_"+day+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	d.file = f
	d.day = day
	return nil
}
