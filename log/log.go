// Package log wraps zap with a small, opinionated API.
// A process-wide default logger is kept so packages can just call
// log.Debug(...) after the command setup called ResetDefault.
package log

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"moul.io/zapfilter"
)

type (
	Level  = zapcore.Level
	Field  = zap.Field
	Option = zap.Option
)

const (
	DebugLevel = zap.DebugLevel
	InfoLevel  = zap.InfoLevel
	WarnLevel  = zap.WarnLevel
	ErrorLevel = zap.ErrorLevel
	FatalLevel = zap.FatalLevel
)

// field helpers, so callers don't need to import zap themselves
var (
	Skip       = zap.Skip
	Binary     = zap.Binary
	Bool       = zap.Bool
	Duration   = zap.Duration
	Float64    = zap.Float64
	Float32    = zap.Float32
	Int        = zap.Int
	Int32      = zap.Int32
	Int64      = zap.Int64
	Uint32     = zap.Uint32
	Uint64     = zap.Uint64
	String     = zap.String
	Stringer   = zap.Stringer
	Time       = zap.Time
	Any        = zap.Any
	ErrorField = zap.Error

	WithCaller    = zap.WithCaller
	AddStacktrace = zap.AddStacktrace
	AddCallerSkip = zap.AddCallerSkip
)

type Logger struct {
	l     *zap.Logger
	level Level
}

func (l *Logger) Debug(msg string, fields ...Field) { l.l.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...Field)  { l.l.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.l.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...Field) { l.l.Error(msg, fields...) }
func (l *Logger) Fatal(msg string, fields ...Field) { l.l.Fatal(msg, fields...) }

func (l *Logger) Named(name string) *Logger {
	return &Logger{l: l.l.Named(name), level: l.level}
}

func (l *Logger) Level() Level {
	return l.level
}

func (l *Logger) Sugar() *zap.SugaredLogger {
	return l.l.Sugar()
}

func (l *Logger) Sync() error {
	return l.l.Sync()
}

func ParseLevel(text string) (Level, error) {
	return zapcore.ParseLevel(text)
}

// New creates a logger with a JSON encoder writing to the given writer.
func New(writer io.Writer, level Level, opts ...Option) *Logger {
	return newLogger(writer, level,
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), "", opts...)
}

// DevLogger creates a logger with a human readable console encoder.
func DevLogger(writer io.Writer, level Level, opts ...Option) *Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return newLogger(writer, level, zapcore.NewConsoleEncoder(cfg), "", opts...)
}

// NewWithRules works like New but restricts output by zapfilter rules
// (for example "debug:chart*,repository* info:*").
func NewWithRules(writer io.Writer, level Level, rules string, opts ...Option) *Logger {
	return newLogger(writer, level,
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), rules, opts...)
}

//nolint:whitespace // can't make both editor and linter happy
func newLogger(
	writer io.Writer, level Level, enc zapcore.Encoder, rules string, opts ...Option,
) *Logger {
	if writer == nil {
		writer = os.Stderr
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(writer), level)
	if rules != "" {
		core = zapfilter.NewFilteringCore(core, zapfilter.MustParseRules(rules))
	}
	return &Logger{l: zap.New(core, opts...), level: level}
}

var std = DevLogger(os.Stderr, InfoLevel)

func Default() *Logger { return std }

// ResetDefault replaces the package-level default logger.
// Not safe for concurrent use, call it once during startup.
func ResetDefault(l *Logger) {
	std = l
}

func Debug(msg string, fields ...Field) { std.l.Debug(msg, fields...) }
func Info(msg string, fields ...Field)  { std.l.Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { std.l.Warn(msg, fields...) }
func Error(msg string, fields ...Field) { std.l.Error(msg, fields...) }
func Fatal(msg string, fields ...Field) { std.l.Fatal(msg, fields...) }
