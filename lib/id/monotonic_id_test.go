package id

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonotonic_Next(t *testing.T) {
	var gen Monotonic
	require.Equal(t, uint64(0), gen.Issued())
	for i := 0; i < 1000; i++ {
		assert.Equal(t, NodeID(i), gen.Next())
	}
	require.Equal(t, uint64(1000), gen.Issued())
}

func TestMonotonic_Gen(t *testing.T) {
	var gen Monotonic
	next := gen.Gen()
	require.Equal(t, NodeID(0), next())
	require.Equal(t, NodeID(1), next())
	require.Equal(t, NodeID(2), gen.Next())
	require.Equal(t, "3", next().String())
}

func TestMonotonic_Overflow(t *testing.T) {
	gen := Monotonic{next: math.MaxUint64 - 1}
	require.Equal(t, NodeID(math.MaxUint64-1), gen.Next())
	require.Panics(t, func() {
		gen.Next()
	})
}
