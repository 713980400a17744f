package tree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/benz9527/dsviz/lib/trace"
)

var (
	ErrOrderViolation   = errors.New("[tree] order violation")
	ErrSizeViolation    = errors.New("[tree] size violation")
	ErrHeightViolation  = errors.New("[avl] cached height violation")
	ErrBalanceViolation = errors.New("[avl] balance violation")
)

// search tree rule validation utilities.

// OrderViolationValidate checks that the in-order walk is strictly
// ascending and that it visits exactly Len nodes.
func OrderViolationValidate[N trace.Node](tree SearchTree[N]) error {
	var (
		err     error
		visited int64
		prev    int32
	)
	tree.Foreach(func(idx int64, node N) bool {
		if idx > 0 && node.Value() <= prev {
			err = multierr.Append(err, fmt.Errorf("%w: %d after %d at %d", ErrOrderViolation, node.Value(), prev, idx))
		}
		prev = node.Value()
		visited++
		return true
	})
	if visited != tree.Len() {
		err = multierr.Append(err, fmt.Errorf("%w: visited %d, len %d", ErrSizeViolation, visited, tree.Len()))
	}
	return err
}

// AVLViolationValidate recomputes every subtree height bottom up and
// compares it to the cached one, then checks the balance factor.
func AVLViolationValidate(tree *AVL) error {
	err := OrderViolationValidate[*AVLNode](tree)
	var walk func(node *AVLNode) int
	walk = func(node *AVLNode) int {
		if node == nil {
			return 0
		}
		lh, rh := walk(node.left), walk(node.right)
		h := 1 + max(lh, rh)
		if h != node.height {
			err = multierr.Append(err, fmt.Errorf("%w: node %d caches %d, real %d", ErrHeightViolation, node.value, node.height, h))
		}
		if bal := lh - rh; bal > 1 || bal < -1 {
			err = multierr.Append(err, fmt.Errorf("%w: node %d balance %d", ErrBalanceViolation, node.value, bal))
		}
		return h
	}
	walk(tree.root)
	return err
}

// InOrderString renders the in-order values as "[ 10, 20 ]", or "[ Empty ]".
func InOrderString[N trace.Node](tree SearchTree[N]) string {
	if tree.IsEmpty() {
		return "[ Empty ]"
	}
	var builder strings.Builder
	builder.WriteString("[ ")
	tree.Foreach(func(idx int64, node N) bool {
		if idx > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(strconv.FormatInt(int64(node.Value()), 10))
		return true
	})
	builder.WriteString(" ]")
	return builder.String()
}
