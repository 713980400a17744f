package xlog

import (
	"os"

	"go.uber.org/zap/zapcore"

	"github.com/benz9527/dsviz/lib/infra"
)

const coreKeyIgnored = ""

var (
	// streamEncoderCfg backs every logger built by NewXLogger.
	streamEncoderCfg = zapcore.EncoderConfig{
		MessageKey:    "msg",
		LevelKey:      "lvl",
		TimeKey:       "ts",
		CallerKey:     "callAt",
		EncodeCaller:  zapcore.ShortCallerEncoder,
		FunctionKey:   "fn",
		NameKey:       "component",
		EncodeName:    zapcore.FullNameEncoder,
		StacktraceKey: coreKeyIgnored,
	}
	// componentCoreEncoderCfg is for framework loggers, their callers are
	// never dsviz code.
	componentCoreEncoderCfg = &zapcore.EncoderConfig{
		MessageKey:    "msg",
		LevelKey:      "lvl",
		TimeKey:       "ts",
		CallerKey:     coreKeyIgnored,
		FunctionKey:   coreKeyIgnored,
		NameKey:       "component",
		EncodeName:    zapcore.FullNameEncoder,
		StacktraceKey: coreKeyIgnored,
	}
)

func getEncoderByType(typ logEncoderType) func(cfg zapcore.EncoderConfig) zapcore.Encoder {
	if typ == PlainText {
		return zapcore.NewConsoleEncoder
	}
	return zapcore.NewJSONEncoder
}

func getOutWriterByType(typ logOutWriterType) zapcore.WriteSyncer {
	if typ == StdErr {
		return zapcore.Lock(os.Stderr)
	}
	return zapcore.Lock(os.Stdout)
}

var _ XLogCore = (*core)(nil)

type core struct {
	lvlEnabler zapcore.LevelEnabler
	encoder    logEncoderType
	ws         zapcore.WriteSyncer

	zapcore.Core
}

// newCore fixes the level and time encoders, all dsviz logs share them.
func newCore(lvlEnabler zapcore.LevelEnabler, encoder logEncoderType, ws zapcore.WriteSyncer, cfg zapcore.EncoderConfig) *core {
	if ws == nil {
		ws = getOutWriterByType(StdOut)
	}
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return &core{
		lvlEnabler: lvlEnabler,
		encoder:    encoder,
		ws:         ws,
		Core:       zapcore.NewCore(getEncoderByType(encoder)(cfg), ws, lvlEnabler),
	}
}

func (c *core) withEncoderConfig(cfg zapcore.EncoderConfig) XLogCore {
	return newCore(c.lvlEnabler, c.encoder, c.ws, cfg)
}

// WrapCore rebuilds the core with another encoder config, keeping its
// writer, encoder type and level enabler.
func WrapCore(c XLogCore, cfg *zapcore.EncoderConfig) (XLogCore, error) {
	if c == nil {
		return nil, infra.NewErrorStack("[XLogger] logger core is nil")
	}
	if cfg == nil {
		return nil, infra.NewErrorStack("[XLogger] logger core config is empty")
	}
	return c.withEncoderConfig(*cfg), nil
}
