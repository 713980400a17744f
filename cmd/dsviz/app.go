package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/benz9527/dsviz/observability"
	"github.com/benz9527/dsviz/workbench"
	"github.com/benz9527/dsviz/xlog"
)

const (
	appName = "dsviz"
	// ctxLineNo tags workbench logs with the command line they came from.
	ctxLineNo = "lineNo"
)

func newLogger(cfg config) xlog.XLogger {
	enc := xlog.WithXLoggerEncoder(xlog.JSON)
	if cfg.logText {
		enc = xlog.WithXLoggerEncoder(xlog.PlainText)
	}
	return xlog.NewXLogger(
		enc,
		xlog.WithXLoggerWriter(xlog.StdErr),
		xlog.WithXLoggerStringLevel(cfg.logLevel),
		xlog.WithXLoggerContextFieldExtract(ctxLineNo),
	)
}

func newWorkbench(cfg config, logger xlog.XLogger) *workbench.Workbench {
	opts := []workbench.WorkbenchOption{
		workbench.WithWorkbenchLogger(logger),
		workbench.WithWorkbenchMeterName(appName),
	}
	if cfg.metrics != observability.NoneMetricsExporter {
		opts = append(opts, workbench.WithWorkbenchStats())
	}
	return workbench.New(opts...)
}

// installMetrics must run before the workbench is built, the workbench
// instruments bind to the global meter provider.
func installMetrics(lc fx.Lifecycle, cfg config, logger xlog.XLogger) error {
	// Stdout carries the outcomes.
	shutdown, err := observability.InstallMetricsExporter(cfg.metrics, cfg.metricsInterval,
		stdoutmetric.WithWriter(os.Stderr),
	)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	observability.InitAppStats(ctx, appName, nil)
	lc.Append(fx.StopHook(func(ctx context.Context) error {
		cancel()
		return shutdown(ctx)
	}))
	if cfg.metrics != observability.PrometheusMetricsExporter {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: cfg.metricsAddr, Handler: mux}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("metrics listening", zap.String("addr", ln.Addr().String()))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.ErrorStack(err, "metrics server stopped")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
	return nil
}

func newApp(cfg config, populate ...any) *fx.App {
	return fx.New(
		fx.Supply(cfg),
		fx.Provide(newLogger),
		fx.WithLogger(func(logger xlog.XLogger) fxevent.Logger {
			return xlog.NewFxXLogger(logger)
		}),
		fx.Invoke(installMetrics),
		fx.Provide(newWorkbench),
		fx.Populate(populate...),
	)
}

func isSkipped(line string) bool {
	return len(line) == 0 || strings.HasPrefix(line, "#")
}

func isQuit(line string) bool {
	switch strings.ToLower(line) {
	case "quit", "exit":
		return true
	default:
	}
	return false
}

// serve executes the command lines and writes one JSON outcome per line.
// Rejected or failed commands are reported in their outcome, they do not
// stop the loop.
func serve(ctx context.Context, wb *workbench.Workbench, commands []string, in io.Reader, out io.Writer) (failed int, err error) {
	enc := json.NewEncoder(out)
	lineNo := 0
	exec := func(line string) error {
		o, execErr := wb.ExecLine(context.WithValue(ctx, xlog.ContextKey(ctxLineNo), lineNo), line)
		if execErr != nil {
			failed++
		}
		return enc.Encode(o)
	}

	if len(commands) > 0 {
		for _, line := range commands {
			lineNo++
			if line = strings.TrimSpace(line); isSkipped(line) {
				continue
			}
			if err = exec(line); err != nil {
				return failed, err
			}
		}
		return failed, nil
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lineNo++
		if err = ctx.Err(); err != nil {
			return failed, err
		}
		line := strings.TrimSpace(scanner.Text())
		if isSkipped(line) {
			continue
		}
		if isQuit(line) {
			break
		}
		if err = exec(line); err != nil {
			return failed, err
		}
	}
	return failed, scanner.Err()
}

func run(ctx context.Context, cfg config, in io.Reader, out io.Writer) (int, error) {
	var (
		wb     *workbench.Workbench
		logger xlog.XLogger
	)
	app := newApp(cfg, &wb, &logger)
	if err := app.Start(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = app.Stop(context.Background())
		_ = logger.Sync()
	}()
	return serve(ctx, wb, cfg.commands, in, out)
}
