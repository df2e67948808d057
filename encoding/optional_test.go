package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionalValues_Merge(t *testing.T) {
	validity := []bool{true, false, false, true, true, false, true}
	values := []int64{10, 20, 30, 40}

	o := NewOptionalValues[int64](FromSlice(validity), FromSlice(values))
	require.Equal(t, len(validity), o.Len())

	expected := []Optional[int64]{
		Some[int64](10), None[int64](), None[int64](), Some[int64](20),
		Some[int64](30), None[int64](), Some[int64](40),
	}
	require.Equal(t, expected, Collect[Optional[int64]](o))
	require.Equal(t, 0, o.Len())
}

func TestOptionalValues_MergeLaw(t *testing.T) {
	rng := newRand()
	validity := make([]bool, 1000)
	var values []int32
	for i := range validity {
		validity[i] = rng.IntN(3) > 0
		if validity[i] {
			values = append(values, rng.Int32())
		}
	}

	got := Collect[Optional[int32]](NewOptionalValues[int32](FromSlice(validity), FromSlice(values)))
	require.Len(t, got, len(validity))

	var present []int32
	for i, item := range got {
		require.Equal(t, validity[i], item.Valid, "item %d", i)
		if v, ok := item.Get(); ok {
			present = append(present, v)
		}
	}
	require.Equal(t, values, present)
}

func TestOptionalValues_ValuesExhaustedEarly(t *testing.T) {
	o := NewOptionalValues[uint32](FromSlice([]bool{true, true, false, true}), FromSlice([]uint32{7}))

	expected := []Optional[uint32]{Some[uint32](7), None[uint32](), None[uint32](), None[uint32]()}
	require.Equal(t, expected, Collect[Optional[uint32]](o))
}

func TestOptionalValues_Skip(t *testing.T) {
	levels := []uint8{1, 0, 0, 1, 1, 1, 0, 1, 0, 0, 1, 1}
	values := []float64{1, 2, 3, 4, 5, 6, 7}

	expected := make([]Optional[float64], 0, len(levels))
	next := 0
	for _, l := range levels {
		if l == 1 {
			expected = append(expected, Some(values[next]))
			next++
		} else {
			expected = append(expected, None[float64]())
		}
	}

	for skip := range len(levels) + 2 {
		t.Run("bitmap validity", func(t *testing.T) {
			validity, err := NewHybridBitmapDecoder(encodeLevels(t, levels, 1), len(levels))
			require.NoError(t, err)

			o := NewOptionalValues[float64](validity, FromSlice(values))
			require.Equal(t, min(skip, len(levels)), o.Skip(skip))
			require.Equal(t, expected[min(skip, len(levels)):], Collect[Optional[float64]](o))
		})

		t.Run("pull-only validity", func(t *testing.T) {
			validity := make([]bool, len(levels))
			for i, l := range levels {
				validity[i] = l == 1
			}

			o := NewOptionalValues[float64](&pullOnly[bool]{it: FromSlice(validity)}, FromSlice(values))
			require.Equal(t, min(skip, len(levels)), o.Skip(skip))
			require.Equal(t, expected[min(skip, len(levels)):], Collect[Optional[float64]](o))
		})
	}
}
