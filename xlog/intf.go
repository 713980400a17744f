package xlog

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type logLevel string

const (
	LogLevelDebug logLevel = "DEBUG"
	LogLevelInfo  logLevel = "INFO"
	LogLevelWarn  logLevel = "WARN"
	LogLevelError logLevel = "ERROR"
)

func (lvl logLevel) zapLevel() zapcore.Level {
	return getLogLevelOrDefault(string(lvl))
}

func (lvl logLevel) String() string {
	return string(lvl)
}

type logEncoderType uint8

const (
	JSON logEncoderType = iota
	PlainText
	_encMax
)

type logOutWriterType uint8

const (
	StdOut logOutWriterType = iota
	StdErr
	_writerMax
)

const (
	ContextKeyMapToOmitempty = "_"
	ContextKeyMapToItself    = ""
)

// XLogCore is a zap core that can re-encode its stream with another
// encoder config while keeping its writer and level.
type XLogCore interface {
	zapcore.Core

	withEncoderConfig(cfg zapcore.EncoderConfig) XLogCore
}

// XLogger mainly implemented by Uber zap logger.
//
// ErrorStack prints the frames captured by infra.ErrorStack as a JSON
// array instead of the zap stacktrace string.
//
// The context variants copy the configured context keys into fields,
// the command line number for example.
type XLogger interface {
	zap() *zap.Logger
	xCore() XLogCore

	Level() string
	Sync() error

	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(err error, msg string, fields ...zap.Field)
	ErrorStack(err error, msg string, fields ...zap.Field)

	DebugContext(ctx context.Context, msg string, fields ...zap.Field)
	WarnContext(ctx context.Context, msg string, fields ...zap.Field)
	ErrorContext(ctx context.Context, err error, msg string, fields ...zap.Field)
}
