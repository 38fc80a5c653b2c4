package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlicePool_Get(t *testing.T) {
	t.Run("returns slice with correct size", func(t *testing.T) {
		p := NewSlicePool[int64]()
		slice, cleanup := p.Get(100)
		defer cleanup()

		require.Equal(t, 100, len(slice))
		require.GreaterOrEqual(t, cap(slice), 100)
	})

	t.Run("allocates new slice when capacity insufficient", func(t *testing.T) {
		p := NewSlicePool[int64]()
		_, cleanup1 := p.Get(10)
		cleanup1()

		slice2, cleanup2 := p.Get(1000)
		defer cleanup2()

		require.Equal(t, 1000, len(slice2))
		require.GreaterOrEqual(t, cap(slice2), 1000)
	})

	t.Run("zero size", func(t *testing.T) {
		p := NewSlicePool[string]()
		slice, cleanup := p.Get(0)
		defer cleanup()

		require.Empty(t, slice)
	})
}

func TestSlicePool_CleanupClears(t *testing.T) {
	p := NewSlicePool[*int]()
	slice, cleanup := p.Get(4)

	n := 7
	for i := range slice {
		slice[i] = &n
	}
	cleanup()

	for _, v := range slice {
		require.Nil(t, v)
	}
}

func TestSlicePool_AppendWithinCapacity(t *testing.T) {
	p := NewSlicePool[int]()
	slice, cleanup := p.Get(8)
	defer cleanup()

	list := slice[:0]
	for i := range 8 {
		list = append(list, i)
	}

	require.Equal(t, &slice[0], &list[0])
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, slice)
}
