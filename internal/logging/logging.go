// Package logging builds the process logger: a daily log file that captures
// everything from debug up, teed with a console stream for info and above.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	// DefaultName is the logger name and the log file prefix.
	DefaultName = "mcqgen"

	// DefaultDir is where log files are written when no directory is configured.
	DefaultDir = "logs"

	timeLayout = "2006-01-02 15:04:05"
)

// Options configures New.
type Options struct {
	Name string
	Dir  string

	// Console receives info-and-above entries. Defaults to stderr.
	Console zapcore.WriteSyncer
}

// New creates the file+console logger. The returned close func flushes and
// closes the log file; callers should defer it.
func New(opts Options) (*zap.Logger, func() error, error) {
	if opts.Name == "" {
		opts.Name = DefaultName
	}
	if opts.Dir == "" {
		opts.Dir = DefaultDir
	}
	if opts.Console == nil {
		opts.Console = zapcore.Lock(os.Stderr)
	}

	file, err := newDailyFile(opts.Dir, opts.Name)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	core := zapcore.NewTee(
		zapcore.NewCore(newFileEncoder(), file, zapcore.DebugLevel),
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEncoderConfig()), opts.Console, zapcore.InfoLevel),
	)

	log := zap.New(core).Named(opts.Name)

	closeFn := func() error {
		_ = log.Sync()
		return file.Close()
	}
	return log, closeFn, nil
}

var linePool = buffer.NewPool()

// fileEncoder renders "2006-01-02 15:04:05 - name - LEVEL - message". The
// console encoder always puts the level before the logger name, so the time
// and name are written here and the rest is delegated.
type fileEncoder struct {
	zapcore.Encoder
}

func newFileEncoder() zapcore.Encoder {
	return fileEncoder{zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " - ",
	})}
}

func (e fileEncoder) Clone() zapcore.Encoder {
	return fileEncoder{e.Encoder.Clone()}
}

func (e fileEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	rest, err := e.Encoder.EncodeEntry(ent, fields)
	if err != nil {
		return nil, err
	}
	defer rest.Free()

	line := linePool.Get()
	line.AppendTime(ent.Time, timeLayout)
	line.AppendString(" - ")
	line.AppendString(ent.LoggerName)
	line.AppendString(" - ")
	_, _ = line.Write(rest.Bytes())
	return line, nil
}

// consoleEncoderConfig renders "LEVEL - message".
func consoleEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " - ",
	}
}
