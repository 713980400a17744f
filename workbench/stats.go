package workbench

import (
	"context"
	"errors"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/benz9527/dsviz/lib/trace"
)

const (
	WorkbenchStatsName = "dsviz/workbench"
)

const (
	resultOK        = "ok"
	resultDuplicate = "duplicate"
	resultNotFound  = "not_found"
	resultEmpty     = "empty"
	resultError     = "error"
)

func resultOf(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, trace.ErrDuplicate):
		return resultDuplicate
	case errors.Is(err, trace.ErrNotFound):
		return resultNotFound
	case errors.Is(err, trace.ErrEmpty):
		return resultEmpty
	default:
	}
	return resultError
}

type workbenchStats struct {
	opCount     metric.Int64Counter
	traceLength metric.Int64Histogram
}

func newWorkbenchStats(provider metric.MeterProvider, meterName string) *workbenchStats {
	meter := provider.Meter(meterName)
	return &workbenchStats{
		opCount: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"dsviz.op.count",
			metric.WithDescription("The number of executed container operations."),
		)),
		traceLength: lo.Must[metric.Int64Histogram](meter.Int64Histogram(
			"dsviz.trace.length",
			metric.WithDescription("The number of nodes or slots one operation visited."),
		)),
	}
}

func (stats *workbenchStats) RecordOp(ctx context.Context, kind Kind, op Op, err error) {
	if stats == nil {
		return
	}
	as := attribute.NewSet(
		attribute.String("dsviz.kind", kind.String()),
		attribute.String("dsviz.op", string(op)),
		attribute.String("dsviz.result", resultOf(err)),
	)
	stats.opCount.Add(ctx, 1, metric.WithAttributeSet(as))
}

func (stats *workbenchStats) RecordTraceLength(ctx context.Context, kind Kind, length int) {
	if stats == nil {
		return
	}
	as := attribute.NewSet(
		attribute.String("dsviz.kind", kind.String()),
	)
	stats.traceLength.Record(ctx, int64(length), metric.WithAttributeSet(as))
}
