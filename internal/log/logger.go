package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"pd/internal/errors"
)

const timeFormat = "2006-01-02 15:04:05"

var (
	isDebug = false
	logger  = NewLogger()
)

// Field is one structured key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger wraps a logrus logger. The zero configuration discards all
// output: stdout carries the selection result and stderr belongs to the
// interactive line, so logging only goes where it is explicitly sent.
type Logger struct {
	l    *logrus.Logger
	file *os.File
}

// Option configures a Logger
type Option func(*Logger)

// WithOutput sends log output to w
func WithOutput(w io.Writer) Option {
	return func(lg *Logger) {
		lg.l.SetOutput(w)
	}
}

// WithFile appends log output to the named file, and only there.
func WithFile(path string) Option {
	return func(lg *Logger) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: cannot open log file %s: %v\n", path, err)
			lg.l.SetOutput(io.Discard)
			return
		}
		lg.file = f
		lg.l.SetOutput(f)
	}
}

// WithLevel caps the logger's verbosity. Debug entries additionally
// require SetDebug(true), the package-wide debug switch.
func WithLevel(level logrus.Level) Option {
	return func(lg *Logger) {
		lg.l.SetLevel(level)
	}
}

// WithJSON switches the logger to JSON output
func WithJSON() Option {
	return func(lg *Logger) {
		lg.l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timeFormat,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyMsg:   "message",
				logrus.FieldKeyLevel: "level",
			},
		})
	}
}

// NewLogger creates a logger with the given options applied.
func NewLogger(opts ...Option) *Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&textFormatter{})
	lg := &Logger{l: l}
	for _, opt := range opts {
		opt(lg)
	}
	return lg
}

// Configure replaces the package-level logger
func Configure(opts ...Option) {
	Close()
	logger = NewLogger(opts...)
}

// SetDebug toggles debug-level logging for all loggers
func SetDebug(debug bool) {
	isDebug = debug
}

// Close releases the package logger's file, if it has one
func Close() {
	if logger.file != nil {
		logger.file.Close()
		logger.file = nil
	}
}

// Entry is a log statement under construction, carrying fields
type Entry struct {
	e *logrus.Entry
}

// With returns an Entry carrying the given fields
func (l *Logger) With(fields ...Field) *Entry {
	entry := &Entry{e: logrus.NewEntry(l.l)}
	return entry.With(fields...)
}

// WithContext mirrors logrus.WithContext; no context values are consumed yet
func (l *Logger) WithContext(ctx context.Context) *Entry {
	return &Entry{e: l.l.WithContext(ctx)}
}

// With adds fields to the entry
func (e *Entry) With(fields ...Field) *Entry {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return &Entry{e: e.e.WithFields(data)}
}

func (e *Entry) Debug(msg string, args ...interface{}) { e.log(logrus.DebugLevel, msg, args...) }
func (e *Entry) Info(msg string, args ...interface{})  { e.log(logrus.InfoLevel, msg, args...) }
func (e *Entry) Warn(msg string, args ...interface{})  { e.log(logrus.WarnLevel, msg, args...) }
func (e *Entry) Error(msg string, args ...interface{}) { e.log(logrus.ErrorLevel, msg, args...) }

func (e *Entry) Debugf(format string, args ...interface{}) { e.log(logrus.DebugLevel, format, args...) }
func (e *Entry) Infof(format string, args ...interface{})  { e.log(logrus.InfoLevel, format, args...) }
func (e *Entry) Warnf(format string, args ...interface{})  { e.log(logrus.WarnLevel, format, args...) }
func (e *Entry) Errorf(format string, args ...interface{}) { e.log(logrus.ErrorLevel, format, args...) }

func (e *Entry) log(level logrus.Level, format string, args ...interface{}) {
	if level == logrus.DebugLevel && !isDebug {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	e.e.WithField("caller", caller()).Log(level, msg)
}

func (l *Logger) Debug(msg string, args ...interface{}) { l.With().Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...interface{})  { l.With().Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.With().Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...interface{}) { l.With().Error(msg, args...) }

func (l *Logger) Debugf(format string, args ...interface{}) { l.With().Debugf(format, args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.With().Infof(format, args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.With().Warnf(format, args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.With().Errorf(format, args...) }

// Package-level logging through the configured default logger

func Debug(msg string, args ...interface{}) { logger.Debug(msg, args...) }
func Info(msg string, args ...interface{})  { logger.Info(msg, args...) }
func Warn(msg string, args ...interface{})  { logger.Warn(msg, args...) }
func Error(msg string, args ...interface{}) { logger.Error(msg, args...) }

func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { logger.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { logger.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }

// LogWithFields returns an entry on the package logger carrying fields
func LogWithFields(fields ...Field) *Entry {
	return logger.With(fields...)
}

// LogWithError returns an entry annotated with the error and whatever
// taxonomy context the error carries (kind, param, path, stream).
func LogWithError(err error) *Entry {
	entry := logger.With(F("error", err))
	if err == nil {
		return entry
	}
	var kinded interface{ Kind() errors.ErrorKind }
	if errors.As(err, &kinded) {
		entry = entry.With(F("error_kind", int(errors.KindOf(err))))
	}
	var configErr *errors.ConfigError
	if errors.As(err, &configErr) && configErr.Param() != "" {
		entry = entry.With(F("param", configErr.Param()))
	}
	var pathErr *errors.PathError
	if errors.As(err, &pathErr) && pathErr.Path() != "" {
		entry = entry.With(F("path", pathErr.Path()))
	}
	var termErr *errors.TermError
	if errors.As(err, &termErr) && termErr.Stream() != "" {
		entry = entry.With(F("stream", termErr.Stream()))
	}
	return entry
}

// LogError logs an error message annotated with err's context
func LogError(err error, msg string) {
	LogWithError(err).Error(msg)
}

// textFormatter renders "[timestamp] LEVEL: message key=value ..."
type textFormatter struct{}

func (f *textFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "[%s] %s: %s", entry.Time.Format(timeFormat), strings.ToUpper(entry.Level.String()), entry.Message)
	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

// caller reports the first frame outside this file, as file:line
func caller() string {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.HasSuffix(frame.File, "internal/log/logger.go") && !strings.Contains(frame.File, "sirupsen/logrus") {
			return fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
		}
		if !more {
			break
		}
	}
	return "unknown"
}
