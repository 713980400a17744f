package trace

import (
	"github.com/samber/lo"

	"github.com/benz9527/dsviz/lib/id"
)

// Path is the ordered list of nodes an operation visited or created.
type Path[N Node] []N

func (p *Path[N]) Append(nodes ...N) {
	*p = append(*p, nodes...)
}

func (p Path[N]) Len() int {
	return len(p)
}

func (p Path[N]) Last() (n N, ok bool) {
	if len(p) == 0 {
		return n, false
	}
	return p[len(p)-1], true
}

func (p Path[N]) IDs() []id.NodeID {
	return lo.Map(p, func(n N, _ int) id.NodeID {
		return n.ID()
	})
}

func (p Path[N]) Values() []int32 {
	return lo.Map(p, func(n N, _ int) int32 {
		return n.Value()
	})
}

// Indices is the heap trace, array slots touched while sifting.
type Indices []int

func (t *Indices) Append(idx ...int) {
	*t = append(*t, idx...)
}

func (t Indices) Len() int {
	return len(t)
}

func (t Indices) Last() (int, bool) {
	if len(t) == 0 {
		return -1, false
	}
	return t[len(t)-1], true
}
