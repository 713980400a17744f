package workbench

import (
	"errors"
	"strconv"

	"github.com/benz9527/dsviz/lib/id"
	"github.com/benz9527/dsviz/lib/trace"
)

// Level is the message box category a status message is shown with.
type Level uint8

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

func (lvl Level) String() string {
	switch lvl {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	default:
	}
	return "info"
}

func (lvl Level) MarshalText() ([]byte, error) {
	return []byte(lvl.String()), nil
}

// Outcome is everything a presenter needs to animate one command.
// Path lists node ids in visit order, Indices the heap slots touched.
// PathValues are the values held at visit time. A tree delete also names
// the node to fade out and, when a successor took its value, the node
// physically unlinked.
type Outcome struct {
	Kind        Kind                  `json:"kind"`
	Op          Op                    `json:"op"`
	Value       int32                 `json:"value"`
	Level       Level                 `json:"level"`
	Message     string                `json:"message"`
	Path        []id.NodeID           `json:"path,omitempty"`
	PathValues  []int32               `json:"pathValues,omitempty"`
	Indices     []int                 `json:"indices,omitempty"`
	Rotation    trace.Rotation        `json:"rotation,omitempty"`
	Rotations   []trace.RotationEvent `json:"rotations,omitempty"`
	DeletedID   *id.NodeID            `json:"deletedId,omitempty"`
	SuccessorID *id.NodeID            `json:"successorId,omitempty"`
	Snapshot    string                `json:"snapshot"`
}

func withPath[N trace.Node](o Outcome, path trace.Path[N]) Outcome {
	if path.Len() > 0 {
		o.Path = path.IDs()
		o.PathValues = path.Values()
	}
	return o
}

func itoa(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

// RejectedOutcome describes a command line that never reached a container.
func RejectedOutcome(cmd Command, err error) Outcome {
	o := Outcome{
		Kind:  cmd.Kind,
		Op:    cmd.Op,
		Level: LevelError,
	}
	switch {
	case errors.Is(err, ErrMissingValue):
		o.Message = "Error: Please enter a value!"
	case errors.Is(err, ErrInvalidValue):
		o.Message = "Error: Invalid integer!"
	case errors.Is(err, ErrUnknownKind):
		o.Message = "Error: Unknown data structure!"
	case errors.Is(err, ErrUnknownOp), errors.Is(err, ErrUnexpectedArg):
		o.Message = "Error: Unknown operation!"
	case err != nil:
		o.Message = "Error: " + err.Error()
	default:
	}
	return o
}
