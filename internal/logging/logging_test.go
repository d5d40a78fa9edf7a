package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_DualSink(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer

	log, closeFn, err := New(Options{Name: "mcqgen", Dir: dir, Console: zapcore.AddSync(&console)})
	require.NoError(t, err)

	log.Debug("debug detail")
	log.Info("batch started")
	log.Error("save failed")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(filepath.Join(dir, FileName("mcqgen", time.Now())))
	require.NoError(t, err)
	file := string(data)

	assert.Contains(t, file, " - mcqgen - DEBUG - debug detail")
	assert.Contains(t, file, " - mcqgen - INFO - batch started")
	assert.Contains(t, file, " - mcqgen - ERROR - save failed")

	out := console.String()
	assert.NotContains(t, out, "debug detail")
	assert.Contains(t, out, "INFO - batch started\n")
	assert.Contains(t, out, "ERROR - save failed\n")
}

func TestNew_FileLineLayout(t *testing.T) {
	dir := t.TempDir()
	log, closeFn, err := New(Options{Name: "mcqgen", Dir: dir, Console: zapcore.AddSync(&bytes.Buffer{})})
	require.NoError(t, err)

	log.With(zap.String("path", "out.json")).Info("results saved", zap.Int("records", 3))
	require.NoError(t, closeFn())

	data, err := os.ReadFile(filepath.Join(dir, FileName("mcqgen", time.Now())))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	line := regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}) - mcqgen - INFO - results saved - (.*)$`)
	m := line.FindStringSubmatch(lines[0])
	require.NotNil(t, m, lines[0])
	assert.Contains(t, m[2], `"path": "out.json"`)
	assert.Contains(t, m[2], `"records": 3`)
}

func TestNew_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	_, closeFn, err := New(Options{Dir: dir, Console: zapcore.AddSync(&bytes.Buffer{})})
	require.NoError(t, err)
	defer closeFn()

	_, err = os.Stat(filepath.Join(dir, FileName(DefaultName, time.Now())))
	assert.NoError(t, err)
}

func TestDailyFile_RotatesOnDayChange(t *testing.T) {
	dir := t.TempDir()
	day1 := time.Date(2026, 3, 1, 23, 59, 0, 0, time.Local)
	day2 := day1.Add(2 * time.Minute)

	current := day1
	d, err := newDailyFile(dir, "mcqgen")
	require.NoError(t, err)
	d.now = func() time.Time { return current }
	defer d.Close()

	_, err = d.Write([]byte("first\n"))
	require.NoError(t, err)

	current = day2
	_, err = d.Write([]byte("second\n"))
	require.NoError(t, err)

	first, err := os.ReadFile(filepath.Join(dir, "mcqgen_20260301.log"))
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(dir, "mcqgen_20260302.log"))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(string(first), "first\n"))
	assert.Equal(t, "second\n", string(second))
}
