// Package logging builds the session logger. Logs go to a rotating JSON
// file only; the terminal belongs to the UI.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/five82/platter/internal/logtail"
)

// Options configure New.
type Options struct {
	// Path of the log file. Empty disables logging.
	Path string
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
}

// Logger is a zap logger that owns its log file.
type Logger struct {
	*zap.Logger
	rotator *lumberjack.Logger
}

// New opens the session log.
func New(opts Options) (*Logger, error) {
	if strings.TrimSpace(opts.Path) == "" {
		return Nop(), nil
	}
	level := zapcore.InfoLevel
	if name := strings.TrimSpace(opts.Level); name != "" {
		parsed, err := zapcore.ParseLevel(name)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		level = parsed
	}

	rotator := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = logtail.TimeKey
	encoderConfig.LevelKey = logtail.LevelKey
	encoderConfig.MessageKey = logtail.MessageKey
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(rotator),
		level,
	)
	return &Logger{Logger: zap.New(core), rotator: rotator}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// Module returns a child logger tagged with a module name.
func (l *Logger) Module(name string) *zap.Logger {
	return l.With(zap.String(logtail.ModuleKey, name))
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	_ = l.Sync()
	if l.rotator == nil {
		return nil
	}
	return l.rotator.Close()
}
