package observability

// https://opentelemetry.io/docs/languages/go/exporters/

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/sdk/metric"

	"github.com/benz9527/dsviz/lib/infra"
)

type MetricsExporterType uint8

const (
	NoneMetricsExporter MetricsExporterType = iota
	StdoutMetricsExporter
	PrometheusMetricsExporter
)

func (typ MetricsExporterType) String() string {
	switch typ {
	case StdoutMetricsExporter:
		return "stdout"
	case PrometheusMetricsExporter:
		return "prometheus"
	default:
	}
	return "none"
}

// ParseMetricsExporterType accepts stdout, prometheus and none.
// An empty string means none.
func ParseMetricsExporterType(s string) (MetricsExporterType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return NoneMetricsExporter, nil
	case "stdout":
		return StdoutMetricsExporter, nil
	case "prometheus":
		return PrometheusMetricsExporter, nil
	default:
	}
	return NoneMetricsExporter, infra.NewErrorStack("[observability] unknown metrics exporter " + s)
}

// NewConsoleMetricsExporter serves for test/dev environment.
func NewConsoleMetricsExporter(interval, timeout time.Duration, opts ...stdoutmetric.Option) (func(ctx context.Context) error, error) {
	exporter, err := stdoutmetric.New(opts...)
	if err != nil {
		return nil, err
	}
	mp := metric.NewMeterProvider(metric.WithReader(metric.NewPeriodicReader(
		exporter,
		metric.WithInterval(interval),
		metric.WithTimeout(timeout),
	)))
	otel.SetMeterProvider(mp)
	return mp.Shutdown, nil
}

// NewPrometheusMetricsExporter registers into the default prometheus
// registry, scraped through promhttp.
func NewPrometheusMetricsExporter(opts ...prometheus.Option) (func(ctx context.Context) error, error) {
	exporter, err := prometheus.New(opts...)
	if err != nil {
		return nil, err
	}
	mp := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(mp)
	return mp.Shutdown, nil
}

// InstallMetricsExporter sets the global meter provider for typ.
// None keeps the otel no-op provider and returns a no-op shutdown.
// The stdout options default to pretty printing.
func InstallMetricsExporter(typ MetricsExporterType, interval time.Duration, opts ...stdoutmetric.Option) (func(ctx context.Context) error, error) {
	switch typ {
	case StdoutMetricsExporter:
		if interval <= 0 {
			interval = 10 * time.Second
		}
		if len(opts) == 0 {
			opts = []stdoutmetric.Option{stdoutmetric.WithPrettyPrint()}
		}
		return NewConsoleMetricsExporter(interval, interval, opts...)
	case PrometheusMetricsExporter:
		return NewPrometheusMetricsExporter()
	default:
	}
	return func(context.Context) error { return nil }, nil
}
