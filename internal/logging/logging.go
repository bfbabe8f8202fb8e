// Package logging wraps the global zap logger used by the i64 command.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Level names accepted by [SetLogLevel].
const (
	DebugLevel   = "debug"
	VerboseLevel = "verbose"
	ErrorLevel   = "error"
	PanicLevel   = "panic"
)

var (
	level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	sink  io.Closer
)

func init() {
	replaceCore(zapcore.Lock(os.Stderr))
}

// Debugf defines our printf for debug level.
func Debugf(format string, a ...interface{}) {
	zap.S().Debugf(format, a...)
}

// Verbosef defines our printf for Verbose level.
func Verbosef(format string, a ...interface{}) {
	zap.S().Warnf(format, a...)
}

// Errorf defines our printf for error level.
func Errorf(format string, a ...interface{}) error {
	zap.S().Errorf(format, a...)
	return errors.Errorf(format, a...)
}

// Panicf defines our printf for panic level.
// The message is logged together with a stack trace before panicking.
func Panicf(format string, a ...interface{}) {
	zap.S().Errorf("%+v", errors.Errorf(format, a...))
	zap.S().Panicf(format, a...)
}

// SetLogLevel sets the minimum level of the global logger.
// Valid values are "debug", "verbose", "error" and "panic".
func SetLogLevel(levelStr string) error {
	switch strings.ToLower(levelStr) {
	case DebugLevel:
		level.SetLevel(zapcore.DebugLevel)
	case VerboseLevel:
		level.SetLevel(zapcore.WarnLevel)
	case ErrorLevel:
		level.SetLevel(zapcore.ErrorLevel)
	case PanicLevel:
		level.SetLevel(zapcore.PanicLevel)
	default:
		return errors.Errorf("unknown log level %q", levelStr)
	}
	return nil
}

// GetLoggingLevel returns the name of the current level.
func GetLoggingLevel() string {
	switch level.Level() {
	case zapcore.DebugLevel:
		return DebugLevel
	case zapcore.WarnLevel:
		return VerboseLevel
	case zapcore.PanicLevel:
		return PanicLevel
	}
	return ErrorLevel
}

// ConfigureLogger sets the level of the global logger and redirects it to
// a rotating log file.
// An empty logFile sends the log to stderr.
func ConfigureLogger(levelStr, logFile string) error {
	if err := SetLogLevel(levelStr); err != nil {
		return err
	}
	if logFile == "" {
		replaceCore(zapcore.Lock(os.Stderr))
		return nil
	}
	w := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100, // mb
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	}
	replaceCore(zapcore.AddSync(w))
	sink = w
	zap.S().Debugf("Started zap logger, writing to %s", logFile)
	return nil
}

// Sync flushes buffered log entries and closes the log file, if any.
func Sync() error {
	if sink == nil {
		return nil
	}
	if err := zap.L().Sync(); err != nil {
		return err
	}
	err := sink.Close()
	sink = nil
	return err
}

func replaceCore(w zapcore.WriteSyncer) {
	if sink != nil {
		_ = sink.Close()
		sink = nil
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		w,
		level,
	)
	zap.ReplaceGlobals(zap.New(core))
}
