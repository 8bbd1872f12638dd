package search

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/core"
)

func TestRecoverDefect(t *testing.T) {
	err := func() (err error) {
		defer recoverDefect(&err)
		var slots []core.Slot
		i := 3
		_ = slots[i]

		return nil
	}()
	require.ErrorIs(t, err, core.ErrLogicDefect)
	require.Contains(t, err.Error(), "index out of range")
}

func TestFrontier_TieBreakIsInsertionOrder(t *testing.T) {
	var f frontier
	pushes := []struct {
		key      string
		priority int64
	}{
		{"c", 5}, {"a", 5}, {"z", 1}, {"b", 5}, {"y", 1},
	}
	for i, p := range pushes {
		heap.Push(&f, &entry{key: p.key, priority: p.priority, seq: uint64(i + 1)})
	}

	var order []string
	for f.Len() > 0 {
		order = append(order, heap.Pop(&f).(*entry).key)
	}
	require.Equal(t, []string{"z", "y", "c", "a", "b"}, order)
}
