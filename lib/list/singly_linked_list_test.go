package list

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/lists/singlylinkedlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benz9527/dsviz/lib/trace"
)

func listFrom(t *testing.T, values ...int32) *SinglyLinkedList {
	l := NewSinglyLinkedList()
	for _, v := range values {
		l.InsertAtTail(v)
	}
	require.NoError(t, ListViolationValidate(l))
	return l
}

func TestSinglyLinkedList_InsertAtHead(t *testing.T) {
	l := NewSinglyLinkedList()
	assert.Equal(t, "[ Empty ]", l.String())

	res := l.InsertAtHead(5)
	require.Equal(t, []int32{5}, res.Path.Values())
	require.Equal(t, l.Head(), res.Node)
	require.Equal(t, l.Tail(), res.Node)

	res = l.InsertAtHead(3)
	require.Equal(t, 1, res.Path.Len())
	require.Equal(t, int32(3), l.Head().Value())
	require.Equal(t, int32(5), l.Tail().Value())
	require.Equal(t, "[ 3 -> 5 ]", l.String())
	require.NoError(t, ListViolationValidate(l))
}

func TestSinglyLinkedList_InsertAtTail(t *testing.T) {
	l := NewSinglyLinkedList()
	res := l.InsertAtTail(10)
	require.Equal(t, []int32{10}, res.Path.Values())

	l.InsertAtTail(20)
	res = l.InsertAtTail(30)
	require.Equal(t, []int32{10, 20, 30}, res.Path.Values())
	require.Equal(t, res.Node, l.Tail())
	require.False(t, l.Tail().HasNext())
	require.Equal(t, int64(3), l.Len())
	require.Equal(t, "[ 10 -> 20 -> 30 ]", l.String())
	require.NoError(t, ListViolationValidate(l))
}

func TestSinglyLinkedList_RemoveHead(t *testing.T) {
	l := listFrom(t, 10, 20, 30)
	head := l.Head()

	res, err := l.Remove(10)
	require.NoError(t, err)
	require.Equal(t, head, res.Node)
	require.Nil(t, res.Node.Next())
	require.Equal(t, []int32{10}, res.Path.Values())
	require.Equal(t, int32(20), l.Head().Value())
	require.Equal(t, int64(2), l.Len())
	require.NoError(t, ListViolationValidate(l))
}

func TestSinglyLinkedList_RemoveTailAndMiddle(t *testing.T) {
	l := listFrom(t, 10, 20, 30, 40)

	res, err := l.Remove(40)
	require.NoError(t, err)
	require.Equal(t, []int32{10, 20, 30, 40}, res.Path.Values())
	require.Equal(t, int32(30), l.Tail().Value())
	require.False(t, l.Tail().HasNext())

	res, err = l.Remove(20)
	require.NoError(t, err)
	require.Equal(t, []int32{10, 20}, res.Path.Values())
	require.Equal(t, []int32{10, 30}, l.Values())
	require.NoError(t, ListViolationValidate(l))

	_, err = l.Remove(10)
	require.NoError(t, err)
	_, err = l.Remove(30)
	require.NoError(t, err)
	require.True(t, l.IsEmpty())
	require.Nil(t, l.Head())
	require.Nil(t, l.Tail())
	require.NoError(t, ListViolationValidate(l))
}

func TestSinglyLinkedList_RemoveFirstOfDuplicates(t *testing.T) {
	l := listFrom(t, 7, 1, 7, 2)
	second := l.Head().Next().Next()

	res, err := l.Remove(7)
	require.NoError(t, err)
	require.Equal(t, 1, res.Path.Len())
	require.Equal(t, []int32{1, 7, 2}, l.Values())
	require.Equal(t, second, l.Search(7).Node)
}

func TestSinglyLinkedList_RemoveNotFound(t *testing.T) {
	l := NewSinglyLinkedList()
	res, err := l.Remove(1)
	require.ErrorIs(t, err, ErrListValueNotFound)
	require.ErrorIs(t, err, trace.ErrNotFound)
	require.Zero(t, res.Path.Len())
	require.Nil(t, res.Node)

	l = listFrom(t, 1, 2, 3)
	res, err = l.Remove(9)
	require.ErrorIs(t, err, ErrListValueNotFound)
	require.Equal(t, []int32{1, 2, 3}, res.Path.Values())
	require.Equal(t, int64(3), l.Len())
}

func TestSinglyLinkedList_Search(t *testing.T) {
	l := listFrom(t, 4, 8, 15)
	res := l.Search(8)
	require.Equal(t, []int32{4, 8}, res.Path.Values())
	require.Equal(t, int32(8), res.Node.Value())

	res = l.Search(16)
	require.Nil(t, res.Node)
	require.Equal(t, 3, res.Path.Len())
	require.True(t, l.Contains(15))
	require.False(t, l.Contains(16))
}

func TestSinglyLinkedList_ClearKeepsIds(t *testing.T) {
	l := listFrom(t, 1, 2, 3)
	head := l.Head()
	ids := trace.Path[*NodeElement](l.AllNodes()).IDs()
	require.Len(t, ids, 3)

	l.Clear()
	require.True(t, l.IsEmpty())
	require.Zero(t, l.Len())
	require.Nil(t, head.Next())
	require.Nil(t, l.AllNodes())
	require.Equal(t, "[ Empty ]", l.String())
	require.NoError(t, ListViolationValidate(l))

	res := l.InsertAtHead(1)
	require.NotContains(t, ids, res.Node.ID())
}

func TestListViolationValidate_DetectsCorruption(t *testing.T) {
	l := listFrom(t, 1, 2, 3)
	l.len = 5
	require.ErrorIs(t, ListViolationValidate(l), ErrListSizeViolation)

	l = listFrom(t, 1, 2, 3)
	l.tail = l.head
	require.ErrorIs(t, ListViolationValidate(l), ErrListLinkViolation)
}

func TestSinglyLinkedList_RandomAgainstGods(t *testing.T) {
	l := NewSinglyLinkedList()
	oracle := singlylinkedlist.New()
	for i := 0; i < 2_000; i++ {
		v := rand.Int31n(32)
		switch rand.Intn(4) {
		case 0:
			l.InsertAtHead(v)
			oracle.Prepend(v)
		case 1:
			l.InsertAtTail(v)
			oracle.Add(v)
		case 2:
			idx := oracle.IndexOf(v)
			_, err := l.Remove(v)
			require.Equal(t, idx >= 0, err == nil)
			if idx >= 0 {
				oracle.Remove(idx)
			}
		default:
			require.Equal(t, oracle.Contains(v), l.Contains(v))
		}
		require.Equal(t, int64(oracle.Size()), l.Len())
		require.NoError(t, ListViolationValidate(l))
	}
	expected := make([]int32, 0, oracle.Size())
	for _, v := range oracle.Values() {
		expected = append(expected, v.(int32))
	}
	require.Equal(t, expected, l.Values())
}
