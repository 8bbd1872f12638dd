package search

import "github.com/katalvlaran/burrow/core"

// entry is a frontier candidate. cost is the accumulated cost at push time;
// the cost map may hold a lower value by the time the entry is popped.
type entry struct {
	positions core.Positions
	key       string
	cost      int64
	priority  int64
	seq       uint64 // push order, breaks priority ties
}

// frontier is a min-heap of *entry ordered by priority, then by push order.
// Decrease-key is lazy: an improved state is pushed again and the older
// entry is skipped when popped.
type frontier []*entry

// Len returns the number of entries in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by priority; equal priorities pop first-in, first-out.
func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two entries in the heap.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push is called by heap.Push; x must be *entry.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*entry)) }

// Pop is called by heap.Pop and returns the last element as *entry.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return item
}
