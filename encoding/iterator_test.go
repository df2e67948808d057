package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSkip(t *testing.T) {
	t.Run("uses skipper", func(t *testing.T) {
		r := Range(0, 10)
		require.Equal(t, 4, Skip[int](r, 4))
		v, ok := r.Next()
		require.True(t, ok)
		require.Equal(t, 4, v)
	})

	t.Run("pulls without skipper", func(t *testing.T) {
		p := &pullOnly[int]{it: Range(0, 10)}
		require.Equal(t, 10, Skip[int](p, 25))
		require.Equal(t, 0, p.Len())
	})

	t.Run("non-positive", func(t *testing.T) {
		r := Range(0, 3)
		require.Equal(t, 0, Skip[int](r, 0))
		require.Equal(t, 0, Skip[int](r, -2))
		require.Equal(t, 3, r.Len())
	})
}

func TestAll(t *testing.T) {
	var got []int
	it := FromSlice([]int{1, 2, 3, 4, 5})
	for v := range All[int](it) {
		if v == 3 {
			break
		}
		got = append(got, v)
	}

	require.Equal(t, []int{1, 2}, got)
	require.Equal(t, 2, it.Len())
}

func TestRange(t *testing.T) {
	require.Equal(t, []int{3, 4, 5}, Collect[int](Range(3, 6)))
	require.Empty(t, Collect[int](Range(6, 3)))

	r := Range(0, 5)
	require.Equal(t, 5, r.Skip(9))
	_, ok := r.Next()
	require.False(t, ok)
}

func TestRepeat(t *testing.T) {
	require.Equal(t, []bool{true, true, true}, Collect[bool](Repeat(true, 3)))
	require.Empty(t, Collect[bool](Repeat(true, -1)))

	r := Repeat("x", 5)
	require.Equal(t, 2, r.Skip(2))
	require.Equal(t, 3, r.Len())
}
