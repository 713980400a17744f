package workbench

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, parsed)
	}
	k, err := ParseKind(" AVL ")
	require.NoError(t, err)
	require.Equal(t, KindAVL, k)

	_, err = ParseKind("tree")
	require.ErrorIs(t, err, ErrUnknownKind)
	_, err = ParseKind("unknown")
	require.ErrorIs(t, err, ErrUnknownKind)
	require.Equal(t, "Kind(42)", Kind(42).String())

	text, err := KindHeap.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "heap", string(text))
}

func TestParseCommand(t *testing.T) {
	testcases := []struct {
		name     string
		line     string
		expected Command
		err      error
	}{
		{"value", "avl insert 30", Command{Kind: KindAVL, Op: OpInsert, Arg: 30}, nil},
		{"alias", "bst remove 5", Command{Kind: KindBST, Op: OpDelete, Arg: 5}, nil},
		{"no arg", "heap extract", Command{Kind: KindHeap, Op: OpExtractMin}, nil},
		{"blanks", "  queue   Enqueue   -7 ", Command{Kind: KindQueue, Op: OpEnqueue, Arg: -7}, nil},
		{"min int32", "stack push -2147483648", Command{Kind: KindStack, Op: OpPush, Arg: -2147483648}, nil},
		{"peek rear", "queue rear", Command{Kind: KindQueue, Op: OpPeekRear}, nil},
		{"missing value", "stack push", Command{Kind: KindStack, Op: OpPush}, ErrMissingValue},
		{"not a number", "stack push abc", Command{Kind: KindStack, Op: OpPush}, ErrInvalidValue},
		{"overflow", "list insert-head 2147483648", Command{Kind: KindList, Op: OpInsertHead}, ErrInvalidValue},
		{"trailing value", "stack pop 3", Command{Kind: KindStack, Op: OpPop}, ErrUnexpectedArg},
		{"two values", "bst insert 1 2", Command{Kind: KindBST, Op: OpInsert, Arg: 0}, ErrUnexpectedArg},
		{"unknown kind", "tree insert 1", Command{}, ErrUnknownKind},
		{"op of other kind", "list push 1", Command{Kind: KindList, Op: OpPush}, ErrUnknownOp},
		{"no op", "bst", Command{}, ErrUnknownOp},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			cmd, err := ParseCommand(tc.line)
			if tc.err != nil {
				require.ErrorIs(tt, err, tc.err)
			} else {
				require.NoError(tt, err)
			}
			require.Equal(tt, tc.expected, cmd)
		})
	}
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue(" 42 ")
	require.NoError(t, err)
	require.Equal(t, int32(42), v)

	_, err = ParseValue("   ")
	require.ErrorIs(t, err, ErrMissingValue)
	_, err = ParseValue("4.2")
	require.ErrorIs(t, err, ErrInvalidValue)
	_, err = ParseValue("-2147483649")
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestCommandString(t *testing.T) {
	require.Equal(t, "avl insert 30", Command{Kind: KindAVL, Op: OpInsert, Arg: 30}.String())
	require.Equal(t, "stack pop", Command{Kind: KindStack, Op: OpPop, Arg: 9}.String())
	require.Equal(t, "unknown fly", Command{Op: "fly"}.String())
}

func TestRejectedOutcome(t *testing.T) {
	testcases := []struct {
		err     error
		message string
	}{
		{ErrMissingValue, "Error: Please enter a value!"},
		{ErrInvalidValue, "Error: Invalid integer!"},
		{ErrUnknownKind, "Error: Unknown data structure!"},
		{ErrUnknownOp, "Error: Unknown operation!"},
		{ErrUnexpectedArg, "Error: Unknown operation!"},
		{errors.New("boom"), "Error: boom"},
	}
	for _, tc := range testcases {
		o := RejectedOutcome(Command{Kind: KindBST, Op: OpInsert}, tc.err)
		require.Equal(t, LevelError, o.Level)
		require.Equal(t, tc.message, o.Message)
		require.Equal(t, KindBST, o.Kind)
	}
}

func TestEveryKindHasShowAndClear(t *testing.T) {
	for _, k := range Kinds() {
		for _, op := range []Op{OpShow, OpClear, OpSearch} {
			_, ok := lookup(k, op)
			require.True(t, ok, "%s %s", k, op)
		}
	}
	_, ok := lookup(KindUnknown, OpShow)
	require.False(t, ok)
}
