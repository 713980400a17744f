package trace

import (
	"errors"

	"github.com/benz9527/dsviz/lib/id"
)

// Node is anything a container hands out as part of a trace.
// Presenters join on ID to keep their own visual state.
type Node interface {
	ID() id.NodeID
	Value() int32
}

// Outcome sentinels. Container packages wrap them with their own prefix,
// so errors.Is classifies a failure from any container.
var (
	ErrDuplicate = errors.New("value already exists")
	ErrNotFound  = errors.New("value not found")
	ErrEmpty     = errors.New("container is empty")
)

type Rotation uint8

const (
	RotationNone      Rotation = iota // none
	RotationLeft                      // left
	RotationRight                     // right
	RotationLeftRight                 // left-right
	RotationRightLeft                 // right-left
	_rotationMax
)

// RotationEvent records one rebalance performed by an AVL operation.
// Pivot is the imbalanced node the rotation was applied on.
type RotationEvent struct {
	Kind       Rotation  `json:"kind"`
	PivotID    id.NodeID `json:"pivotId"`
	PivotValue int32     `json:"pivotValue"`
}
