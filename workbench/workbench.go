package workbench

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/benz9527/dsviz/lib/list"
	"github.com/benz9527/dsviz/lib/queue"
	"github.com/benz9527/dsviz/lib/stack"
	"github.com/benz9527/dsviz/lib/trace"
	"github.com/benz9527/dsviz/lib/tree"
	"github.com/benz9527/dsviz/xlog"
)

// Workbench holds one container of every kind and runs commands against
// them. It is not safe for concurrent use.
type Workbench struct {
	bst   *tree.BST
	avl   *tree.AVL
	heap  *queue.ArrayMinHeap
	list  *list.SinglyLinkedList
	stack *stack.ArrayStack
	queue *queue.ArrayQueue

	logger         xlog.XLogger
	stats          *workbenchStats
	isStatsEnabled bool
	meterName      string
	meterProvider  metric.MeterProvider
}

type WorkbenchOption func(w *Workbench)

func WithWorkbenchLogger(logger xlog.XLogger) WorkbenchOption {
	return func(w *Workbench) {
		if logger != nil {
			w.logger = logger
		}
	}
}

func WithWorkbenchStats() WorkbenchOption {
	return func(w *Workbench) {
		w.isStatsEnabled = true
	}
}

// WithWorkbenchMeterName suffixes the meter name, "dsviz/workbench/<name>".
func WithWorkbenchMeterName(name string) WorkbenchOption {
	return func(w *Workbench) {
		if name = strings.TrimSpace(name); len(name) > 0 {
			w.meterName = WorkbenchStatsName + "/" + name
		}
	}
}

// WithWorkbenchMeterProvider replaces the global otel meter provider.
func WithWorkbenchMeterProvider(provider metric.MeterProvider) WorkbenchOption {
	return func(w *Workbench) {
		w.meterProvider = provider
	}
}

func New(opts ...WorkbenchOption) *Workbench {
	w := &Workbench{
		bst:       tree.NewBST(),
		avl:       tree.NewAVL(),
		heap:      queue.NewArrayMinHeap(),
		list:      list.NewSinglyLinkedList(),
		stack:     stack.NewArrayStack(),
		queue:     queue.NewArrayQueue(),
		meterName: WorkbenchStatsName,
	}
	for _, o := range opts {
		o(w)
	}
	if w.logger == nil {
		w.logger = xlog.NewNopXLogger()
	}
	if w.isStatsEnabled {
		if w.meterProvider == nil {
			w.meterProvider = otel.GetMeterProvider()
		}
		w.stats = newWorkbenchStats(w.meterProvider, w.meterName)
	}
	return w
}

func (w *Workbench) BST() *tree.BST               { return w.bst }
func (w *Workbench) AVL() *tree.AVL               { return w.avl }
func (w *Workbench) Heap() *queue.ArrayMinHeap    { return w.heap }
func (w *Workbench) List() *list.SinglyLinkedList { return w.list }
func (w *Workbench) Stack() *stack.ArrayStack     { return w.stack }
func (w *Workbench) Queue() *queue.ArrayQueue     { return w.queue }

// Snapshot renders the current content of one container.
func (w *Workbench) Snapshot(kind Kind) string {
	switch kind {
	case KindBST:
		return tree.InOrderString[*tree.BSTNode](w.bst)
	case KindAVL:
		return tree.InOrderString[*tree.AVLNode](w.avl)
	case KindHeap:
		return w.heap.String()
	case KindList:
		return w.list.String()
	case KindStack:
		return w.stack.String()
	case KindQueue:
		return w.queue.String()
	default:
	}
	return ""
}

// Exec runs one command. The outcome is filled in even when err is not nil,
// a failed command still has a status message and possibly a trace.
func (w *Workbench) Exec(ctx context.Context, cmd Command) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{Kind: cmd.Kind, Op: cmd.Op, Level: LevelError, Message: "Error: " + err.Error()}, err
	}
	if cmd.Kind == KindUnknown || cmd.Kind >= _kindMax {
		err := fmt.Errorf("%w: %s", ErrUnknownKind, cmd.Kind)
		return RejectedOutcome(cmd, err), err
	}
	handler, ok := lookup(cmd.Kind, cmd.Op)
	if !ok {
		err := fmt.Errorf("%w: %s %s", ErrUnknownOp, cmd.Kind, cmd.Op)
		return RejectedOutcome(cmd, err), err
	}

	o, err := handler.fn(w, cmd.Arg)
	o.Kind, o.Op = cmd.Kind, cmd.Op
	o.Snapshot = w.Snapshot(cmd.Kind)

	w.stats.RecordOp(ctx, cmd.Kind, cmd.Op, err)
	if length := max(len(o.Path), len(o.Indices)); length > 0 {
		w.stats.RecordTraceLength(ctx, cmd.Kind, length)
	}
	fields := []zap.Field{
		zap.Stringer("kind", cmd.Kind),
		zap.String("op", string(cmd.Op)),
		zap.Int32("value", o.Value),
		zap.Stringer("level", o.Level),
		zap.Int("traceLength", max(len(o.Path), len(o.Indices))),
	}
	if o.Rotation != trace.RotationNone {
		fields = append(fields, zap.Stringer("rotation", o.Rotation))
	}
	switch {
	case err == nil:
		w.logger.DebugContext(ctx, o.Message, fields...)
	case errors.Is(err, trace.ErrDuplicate),
		errors.Is(err, trace.ErrNotFound),
		errors.Is(err, trace.ErrEmpty):
		w.logger.WarnContext(ctx, o.Message, append(fields, zap.Error(err))...)
	default:
		w.logger.ErrorContext(ctx, err, o.Message, fields...)
	}
	return o, err
}

// ExecLine parses and runs one command line. Rejected lines are reported
// through the outcome just like container failures.
func (w *Workbench) ExecLine(ctx context.Context, line string) (Outcome, error) {
	cmd, err := ParseCommand(line)
	if err != nil {
		w.stats.RecordOp(ctx, cmd.Kind, cmd.Op, err)
		w.logger.WarnContext(ctx, "rejected command", zap.String("line", line), zap.Error(err))
		return RejectedOutcome(cmd, err), err
	}
	return w.Exec(ctx, cmd)
}
