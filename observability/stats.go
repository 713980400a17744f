package observability

import (
	"context"
	"runtime"
	"strings"
	"sync"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const AppStatsNamePrefix = "dsviz/app"

var appStatsOnce sync.Once

func appStatsName(name string) string {
	if name = strings.TrimSpace(name); len(name) == 0 {
		name = "default"
	}
	return AppStatsNamePrefix + "/" + name
}

// InitAppStats reports the goroutine count and GOMAXPROCS through the global
// meter provider, both from one callback. Only the first call registers.
// Once ctx is done the callback is unregistered and shutdown, if any, runs.
func InitAppStats(ctx context.Context, name string, shutdown func(ctx context.Context) error) {
	appStatsOnce.Do(func() {
		meter := otel.Meter(appStatsName(name))
		goroutines := lo.Must[metric.Int64ObservableUpDownCounter](meter.Int64ObservableUpDownCounter(
			"dsviz.app.goroutines",
			metric.WithDescription("Live goroutines of the dsviz process."),
		))
		maxProcs := lo.Must[metric.Int64ObservableGauge](meter.Int64ObservableGauge(
			"dsviz.app.maxprocs",
			metric.WithDescription("GOMAXPROCS after automaxprocs adjusted it."),
		))
		reg := lo.Must[metric.Registration](meter.RegisterCallback(
			func(_ context.Context, ob metric.Observer) error {
				ob.ObserveInt64(goroutines, int64(runtime.NumGoroutine()))
				ob.ObserveInt64(maxProcs, int64(runtime.GOMAXPROCS(0)))
				return nil
			},
			goroutines, maxProcs,
		))
		go func() {
			<-ctx.Done()
			_ = reg.Unregister()
			if shutdown != nil {
				_ = shutdown(context.Background())
			}
		}()
	})
}
