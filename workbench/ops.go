package workbench

import (
	"strconv"

	"github.com/samber/lo"

	"github.com/benz9527/dsviz/lib/list"
	"github.com/benz9527/dsviz/lib/queue"
	"github.com/benz9527/dsviz/lib/stack"
	"github.com/benz9527/dsviz/lib/trace"
	"github.com/benz9527/dsviz/lib/tree"
)

type opFn func(w *Workbench, v int32) (Outcome, error)

type opSpec struct {
	needsArg bool
	fn       opFn
}

var handlers = map[Kind]map[Op]opSpec{
	KindBST: treeHandlers(KindBST, func(w *Workbench) tree.SearchTree[*tree.BSTNode] {
		return w.bst
	}),
	KindAVL: treeHandlers(KindAVL, func(w *Workbench) tree.SearchTree[*tree.AVLNode] {
		return w.avl
	}),
	KindHeap:  heapHandlers(),
	KindList:  listHandlers(),
	KindStack: stackHandlers(),
	KindQueue: queueHandlers(),
}

func lookup(kind Kind, op Op) (opSpec, bool) {
	ops, ok := handlers[kind]
	if !ok {
		return opSpec{}, false
	}
	handler, ok := ops[op]
	return handler, ok
}

func rotationSuffix(r trace.Rotation) string {
	if r == trace.RotationNone {
		return ""
	}
	return " (" + r.DisplayName() + ")"
}

func cellPath[N trace.Node](cells ...N) trace.Path[N] {
	return append(trace.Path[N]{}, cells...)
}

func clearOutcome(kind Kind, empty bool, clearFn func()) Outcome {
	o := Outcome{Level: LevelInfo}
	if empty {
		o.Message = kindTitles[kind] + " is already empty."
		return o
	}
	clearFn()
	o.Message = kindTitles[kind] + " cleared!"
	return o
}

func treeHandlers[N trace.Node](kind Kind, get func(*Workbench) tree.SearchTree[N]) map[Op]opSpec {
	return map[Op]opSpec{
		OpInsert: {needsArg: true, fn: func(w *Workbench, v int32) (Outcome, error) {
			res, err := get(w).Insert(v)
			o := withPath(Outcome{Value: v, Rotation: res.Rotation, Rotations: res.Rotations}, res.Path)
			if err != nil {
				o.Level = LevelError
				o.Message = "Error: " + itoa(v) + " already exists!"
				return o, err
			}
			o.Level = LevelSuccess
			o.Message = "Inserted: " + itoa(v) + rotationSuffix(res.Rotation)
			return o, nil
		}},
		OpDelete: {needsArg: true, fn: func(w *Workbench, v int32) (Outcome, error) {
			res, err := get(w).Remove(v)
			o := withPath(Outcome{Value: v, Rotation: res.Rotation, Rotations: res.Rotations}, res.Path)
			// Live node values change when a successor is copied up.
			if len(res.Values) > 0 {
				o.PathValues = res.Values
			}
			if res.Removed {
				o.DeletedID = lo.ToPtr(res.Deleted.ID())
			}
			if res.HasSuccessor {
				o.SuccessorID = lo.ToPtr(res.Successor.ID())
			}
			if err != nil {
				o.Level = LevelError
				o.Message = "Error: " + itoa(v) + " not found!"
				return o, err
			}
			o.Level = LevelSuccess
			o.Message = "Deleted: " + itoa(v) + rotationSuffix(res.Rotation)
			return o, nil
		}},
		OpSearch: {needsArg: true, fn: func(w *Workbench, v int32) (Outcome, error) {
			res := get(w).Search(v)
			o := withPath(Outcome{Value: v}, res.Path)
			if !res.Found {
				o.Level = LevelInfo
				o.Message = itoa(v) + " not found."
				return o, nil
			}
			o.Level = LevelSuccess
			o.Message = "Found: " + itoa(v)
			return o, nil
		}},
		OpClear: {fn: func(w *Workbench, _ int32) (Outcome, error) {
			t := get(w)
			return clearOutcome(kind, t.IsEmpty(), t.Clear), nil
		}},
		OpShow: {fn: func(w *Workbench, _ int32) (Outcome, error) {
			t := get(w)
			o := withPath(Outcome{Level: LevelInfo}, trace.Path[N](t.AllNodes()))
			o.Message = tree.InOrderString(t)
			return o, nil
		}},
	}
}

func heapHandlers() map[Op]opSpec {
	withCell := func(o Outcome, res queue.HeapTrace) Outcome {
		o.Indices = res.Indices
		if res.Cell != nil {
			o = withPath(o, cellPath(res.Cell))
		}
		return o
	}
	return map[Op]opSpec{
		OpInsert: {needsArg: true, fn: func(w *Workbench, v int32) (Outcome, error) {
			res := w.heap.Insert(v)
			o := withCell(Outcome{Value: v, Level: LevelSuccess}, res)
			o.Message = "Inserted: " + itoa(v)
			return o, nil
		}},
		OpExtractMin: {fn: func(w *Workbench, _ int32) (Outcome, error) {
			res, err := w.heap.ExtractMin()
			if err != nil {
				return Outcome{Level: LevelError, Message: "Error: Heap is empty!"}, err
			}
			o := withCell(Outcome{Value: res.Cell.Value(), Level: LevelSuccess}, res)
			o.Message = "Extracted min: " + itoa(o.Value)
			return o, nil
		}},
		OpDelete: {needsArg: true, fn: func(w *Workbench, v int32) (Outcome, error) {
			res, err := w.heap.Remove(v)
			o := withCell(Outcome{Value: v}, res)
			if err != nil {
				o.Level = LevelError
				o.Message = "Error: " + itoa(v) + " not found!"
				return o, err
			}
			o.Level = LevelSuccess
			o.Message = "Deleted: " + itoa(v)
			return o, nil
		}},
		OpPeek: {fn: func(w *Workbench, _ int32) (Outcome, error) {
			c := w.heap.PeekMin()
			if c == nil {
				return Outcome{Level: LevelError, Message: "Error: Heap is empty!"}, queue.ErrHeapEmpty
			}
			o := withPath(Outcome{Value: c.Value(), Level: LevelInfo, Indices: []int{0}}, cellPath(c))
			o.Message = "Min element: " + itoa(o.Value)
			return o, nil
		}},
		OpSearch: {needsArg: true, fn: func(w *Workbench, v int32) (Outcome, error) {
			res := w.heap.Search(v)
			o := withCell(Outcome{Value: v}, res)
			if res.Index < 0 {
				o.Level = LevelInfo
				o.Message = itoa(v) + " not found."
				return o, nil
			}
			o.Level = LevelSuccess
			o.Message = "Found at index " + strconv.Itoa(res.Index)
			return o, nil
		}},
		OpClear: {fn: func(w *Workbench, _ int32) (Outcome, error) {
			return clearOutcome(KindHeap, w.heap.IsEmpty(), w.heap.Clear), nil
		}},
		OpShow: {fn: func(w *Workbench, _ int32) (Outcome, error) {
			o := withPath(Outcome{Level: LevelInfo}, trace.Path[*queue.Cell](w.heap.Cells()))
			o.Message = w.heap.String()
			return o, nil
		}},
	}
}

func listHandlers() map[Op]opSpec {
	insert := func(head bool) opFn {
		return func(w *Workbench, v int32) (Outcome, error) {
			var res list.Trace
			o := Outcome{Value: v, Level: LevelSuccess}
			if head {
				res = w.list.InsertAtHead(v)
				o.Message = "Inserted at head: " + itoa(v)
			} else {
				res = w.list.InsertAtTail(v)
				o.Message = "Inserted at tail: " + itoa(v)
			}
			return withPath(o, res.Path), nil
		}
	}
	return map[Op]opSpec{
		OpInsertHead: {needsArg: true, fn: insert(true)},
		OpInsertTail: {needsArg: true, fn: insert(false)},
		OpDelete: {needsArg: true, fn: func(w *Workbench, v int32) (Outcome, error) {
			res, err := w.list.Remove(v)
			o := withPath(Outcome{Value: v}, res.Path)
			if err != nil {
				o.Level = LevelError
				o.Message = "Error: Value not found!"
				return o, err
			}
			o.Level = LevelSuccess
			o.Message = "Deleted: " + itoa(v)
			return o, nil
		}},
		OpSearch: {needsArg: true, fn: func(w *Workbench, v int32) (Outcome, error) {
			res := w.list.Search(v)
			o := withPath(Outcome{Value: v}, res.Path)
			if res.Node == nil {
				o.Level = LevelInfo
				o.Message = "Value not found."
				return o, nil
			}
			o.Level = LevelSuccess
			o.Message = "Found: " + itoa(v)
			return o, nil
		}},
		// The list screen always reports a clear, even on an empty list.
		OpClear: {fn: func(w *Workbench, _ int32) (Outcome, error) {
			w.list.Clear()
			return Outcome{Level: LevelInfo, Message: "List cleared!"}, nil
		}},
		OpShow: {fn: func(w *Workbench, _ int32) (Outcome, error) {
			o := withPath(Outcome{Level: LevelInfo}, trace.Path[*list.NodeElement](w.list.AllNodes()))
			o.Message = w.list.String()
			return o, nil
		}},
	}
}

func stackHandlers() map[Op]opSpec {
	return map[Op]opSpec{
		OpPush: {needsArg: true, fn: func(w *Workbench, v int32) (Outcome, error) {
			c := w.stack.Push(v)
			return withPath(Outcome{Value: v, Level: LevelSuccess, Message: "Pushed: " + itoa(v)}, cellPath(c)), nil
		}},
		OpPop: {fn: func(w *Workbench, _ int32) (Outcome, error) {
			c, err := w.stack.Pop()
			if err != nil {
				return Outcome{Level: LevelError, Message: "Error: Stack is empty!"}, err
			}
			return withPath(Outcome{Value: c.Value(), Level: LevelSuccess, Message: "Popped: " + itoa(c.Value())}, cellPath(c)), nil
		}},
		OpPeek: {fn: func(w *Workbench, _ int32) (Outcome, error) {
			c := w.stack.Peek()
			if c == nil {
				return Outcome{Level: LevelError, Message: "Error: Stack is empty!"}, stack.ErrStackEmpty
			}
			return withPath(Outcome{Value: c.Value(), Level: LevelInfo, Message: "Top element: " + itoa(c.Value())}, cellPath(c)), nil
		}},
		OpSearch: {needsArg: true, fn: func(w *Workbench, v int32) (Outcome, error) {
			res := w.stack.Search(v)
			o := withPath(Outcome{Value: v}, res.Path)
			if res.Cell == nil {
				o.Level = LevelInfo
				o.Message = "Value not found."
				return o, nil
			}
			o.Level = LevelSuccess
			o.Message = "Found at position " + strconv.Itoa(res.Position) + " from top"
			return o, nil
		}},
		OpClear: {fn: func(w *Workbench, _ int32) (Outcome, error) {
			w.stack.Clear()
			return Outcome{Level: LevelInfo, Message: "Stack cleared!"}, nil
		}},
		OpShow: {fn: func(w *Workbench, _ int32) (Outcome, error) {
			o := withPath(Outcome{Level: LevelInfo}, trace.Path[*stack.Cell](w.stack.Elements()))
			o.Message = w.stack.String()
			return o, nil
		}},
	}
}

func queueHandlers() map[Op]opSpec {
	peek := func(rear bool) opFn {
		return func(w *Workbench, _ int32) (Outcome, error) {
			c, label := w.queue.PeekFront(), "Front element: "
			if rear {
				c, label = w.queue.PeekRear(), "Rear element: "
			}
			if c == nil {
				return Outcome{Level: LevelError, Message: "Error: Queue is empty!"}, queue.ErrQueueEmpty
			}
			return withPath(Outcome{Value: c.Value(), Level: LevelInfo, Message: label + itoa(c.Value())}, cellPath(c)), nil
		}
	}
	return map[Op]opSpec{
		OpEnqueue: {needsArg: true, fn: func(w *Workbench, v int32) (Outcome, error) {
			c := w.queue.Enqueue(v)
			return withPath(Outcome{Value: v, Level: LevelSuccess, Message: "Enqueued: " + itoa(v)}, cellPath(c)), nil
		}},
		OpDequeue: {fn: func(w *Workbench, _ int32) (Outcome, error) {
			c, err := w.queue.Dequeue()
			if err != nil {
				return Outcome{Level: LevelError, Message: "Error: Queue is empty!"}, err
			}
			return withPath(Outcome{Value: c.Value(), Level: LevelSuccess, Message: "Dequeued: " + itoa(c.Value())}, cellPath(c)), nil
		}},
		OpPeek:     {fn: peek(false)},
		OpPeekRear: {fn: peek(true)},
		OpSearch: {needsArg: true, fn: func(w *Workbench, v int32) (Outcome, error) {
			res := w.queue.Search(v)
			o := withPath(Outcome{Value: v}, res.Path)
			if res.Cell == nil {
				o.Level = LevelInfo
				o.Message = "Value not found."
				return o, nil
			}
			o.Level = LevelSuccess
			o.Message = "Found at position " + strconv.Itoa(res.Position) + " from front"
			return o, nil
		}},
		OpClear: {fn: func(w *Workbench, _ int32) (Outcome, error) {
			w.queue.Clear()
			return Outcome{Level: LevelInfo, Message: "Queue cleared!"}, nil
		}},
		OpShow: {fn: func(w *Workbench, _ int32) (Outcome, error) {
			o := withPath(Outcome{Level: LevelInfo}, trace.Path[*queue.Cell](w.queue.Cells()))
			o.Message = w.queue.String()
			return o, nil
		}},
	}
}
