package xlog

import (
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ fxevent.Logger = (*FxXLogger)(nil)

// FxXLogger prints the fx lifecycle through an XLogger.
// Only failures leave the debug level.
type FxXLogger struct {
	logger XLogger
}

func (l *FxXLogger) LogEvent(event fxevent.Event) {
	if l == nil || l.logger == nil {
		return
	}

	switch e := event.(type) {
	case *fxevent.OnStartExecuted:
		if e.Err != nil {
			l.logger.Error(e.Err, "HOOK OnStart failed",
				zap.String("function", e.FunctionName),
				zap.String("caller", e.CallerName),
			)
		} else {
			l.logger.Debug("HOOK OnStart",
				zap.String("function", e.FunctionName),
				zap.Duration("in", e.Runtime),
			)
		}
	case *fxevent.OnStopExecuted:
		if e.Err != nil {
			l.logger.Error(e.Err, "HOOK OnStop failed",
				zap.String("function", e.FunctionName),
				zap.String("caller", e.CallerName),
			)
		} else {
			l.logger.Debug("HOOK OnStop",
				zap.String("function", e.FunctionName),
				zap.Duration("in", e.Runtime),
			)
		}
	case *fxevent.Supplied:
		if e.Err != nil {
			l.logger.Error(e.Err, "SUPPLY failed", zap.String("type", e.TypeName))
		}
	case *fxevent.Provided:
		if e.Err != nil {
			l.logger.Error(e.Err, "PROVIDE failed", zap.String("constructor", e.ConstructorName))
			return
		}
		l.logger.Debug("PROVIDE",
			zap.String("constructor", e.ConstructorName),
			zap.Strings("types", e.OutputTypeNames),
		)
	case *fxevent.Invoking:
		l.logger.Debug("INVOKING", zap.String("function", e.FunctionName))
	case *fxevent.Invoked:
		if e.Err != nil {
			l.logger.Error(e.Err, "INVOKE failed",
				zap.String("function", e.FunctionName),
				zap.String("trace", e.Trace),
			)
		}
	case *fxevent.Stopping:
		l.logger.Info("STOPPING", zap.String("signal", e.Signal.String()))
	case *fxevent.Stopped:
		if e.Err != nil {
			l.logger.Error(e.Err, "STOP failed")
		}
	case *fxevent.RollingBack:
		l.logger.Warn("START failed, rolling back", zap.Error(e.StartErr))
	case *fxevent.RolledBack:
		if e.Err != nil {
			l.logger.Error(e.Err, "ROLLBACK failed")
		}
	case *fxevent.Started:
		if e.Err != nil {
			l.logger.Error(e.Err, "START failed")
		} else {
			l.logger.Debug("RUNNING")
		}
	case *fxevent.LoggerInitialized:
		if e.Err != nil {
			l.logger.Error(e.Err, "LOGGER failed to initialize")
		}
	default:
	}
}

// NewFxXLogger names the logger "fx" and swaps its encoder config for the
// component one, which drops caller and function keys.
func NewFxXLogger(logger XLogger) *FxXLogger {
	if logger == nil {
		return &FxXLogger{logger: NewNopXLogger()}
	}
	core := logger.xCore()
	if core == nil {
		return &FxXLogger{logger: logger}
	}
	cc, err := WrapCore(core, componentCoreEncoderCfg)
	if err != nil {
		panic(err)
	}
	l := &xLogger{
		core:                cc,
		dynamicLevelEnabler: zap.NewAtomicLevelAt(zapcore.DebugLevel),
	}
	if xl, ok := logger.(*xLogger); ok {
		l.dynamicLevelEnabler = xl.dynamicLevelEnabler
	}
	l.logger.Store(logger.zap().Named("fx").WithOptions(
		zap.WrapCore(func(zapcore.Core) zapcore.Core {
			return cc
		}),
	))
	return &FxXLogger{logger: l}
}
