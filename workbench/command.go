package workbench

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownKind   = errors.New("[workbench] unknown container kind")
	ErrUnknownOp     = errors.New("[workbench] unknown operation")
	ErrMissingValue  = errors.New("[workbench] missing value")
	ErrInvalidValue  = errors.New("[workbench] invalid integer")
	ErrUnexpectedArg = errors.New("[workbench] unexpected argument")
)

type Kind uint8

const (
	KindUnknown Kind = iota
	KindBST
	KindAVL
	KindHeap
	KindList
	KindStack
	KindQueue
	_kindMax
)

var kindNames = [_kindMax]string{
	KindUnknown: "unknown",
	KindBST:     "bst",
	KindAVL:     "avl",
	KindHeap:    "heap",
	KindList:    "list",
	KindStack:   "stack",
	KindQueue:   "queue",
}

// Noun used by the clear messages.
var kindTitles = [_kindMax]string{
	KindUnknown: "Container",
	KindBST:     "Tree",
	KindAVL:     "Tree",
	KindHeap:    "Heap",
	KindList:    "List",
	KindStack:   "Stack",
	KindQueue:   "Queue",
}

func (k Kind) String() string {
	if k >= _kindMax {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k := KindBST; k < _kindMax; k++ {
		if kindNames[k] == s {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Kinds lists every container kind in menu order.
func Kinds() []Kind {
	return []Kind{KindBST, KindAVL, KindHeap, KindList, KindStack, KindQueue}
}

type Op string

const (
	OpInsert     Op = "insert"
	OpDelete     Op = "delete"
	OpSearch     Op = "search"
	OpClear      Op = "clear"
	OpShow       Op = "show"
	OpExtractMin Op = "extract-min"
	OpPeek       Op = "peek"
	OpInsertHead Op = "insert-head"
	OpInsertTail Op = "insert-tail"
	OpPush       Op = "push"
	OpPop        Op = "pop"
	OpEnqueue    Op = "enqueue"
	OpDequeue    Op = "dequeue"
	OpPeekRear   Op = "peek-rear"
)

var opAliases = map[string]Op{
	"remove":  OpDelete,
	"del":     OpDelete,
	"find":    OpSearch,
	"extract": OpExtractMin,
	"top":     OpPeek,
	"front":   OpPeek,
	"rear":    OpPeekRear,
}

func normalizeOp(s string) Op {
	s = strings.ToLower(strings.TrimSpace(s))
	if op, ok := opAliases[s]; ok {
		return op
	}
	return Op(s)
}

// Command is one user action against one container.
type Command struct {
	Kind Kind
	Op   Op
	Arg  int32
}

func (c Command) String() string {
	if handler, ok := lookup(c.Kind, c.Op); ok && handler.needsArg {
		return c.Kind.String() + " " + string(c.Op) + " " + strconv.FormatInt(int64(c.Arg), 10)
	}
	return c.Kind.String() + " " + string(c.Op)
}

// ParseValue reads a 32-bit signed integer, surrounding blanks allowed.
func ParseValue(s string) (int32, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return 0, ErrMissingValue
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	return int32(v), nil
}

// ParseCommand reads "<kind> <op> [value]", e.g. "avl insert 30".
// The value is checked here, before any container is touched.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownOp, line)
	}
	kind, err := ParseKind(fields[0])
	if err != nil {
		return Command{}, err
	}
	cmd := Command{
		Kind: kind,
		Op:   normalizeOp(fields[1]),
	}
	handler, ok := lookup(cmd.Kind, cmd.Op)
	if !ok {
		return cmd, fmt.Errorf("%w: %s %s", ErrUnknownOp, cmd.Kind, cmd.Op)
	}
	switch {
	case handler.needsArg && len(fields) < 3:
		return cmd, ErrMissingValue
	case handler.needsArg:
		if len(fields) > 3 {
			return cmd, fmt.Errorf("%w: %q", ErrUnexpectedArg, fields[3])
		}
		if cmd.Arg, err = ParseValue(fields[2]); err != nil {
			return cmd, err
		}
	case len(fields) > 2:
		return cmd, fmt.Errorf("%w: %q", ErrUnexpectedArg, fields[2])
	default:
	}
	return cmd, nil
}
