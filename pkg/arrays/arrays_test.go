package arrays_test

import (
	"math"
	"testing"

	"github.com/aretw0/toolbelt/pkg/arrays"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteps(t *testing.T) {
	got, err := arrays.Steps(0, 10, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2.5, 5, 7.5, 10}, got)

	t.Run("endpoints and even spacing", func(t *testing.T) {
		got, err := arrays.Steps(-3.2, 17.9, 13)
		require.NoError(t, err)
		require.Len(t, got, 13)
		assert.Equal(t, -3.2, got[0])
		assert.InDelta(t, 17.9, got[12], 1e-9)

		step := got[1] - got[0]
		for i := 2; i < len(got); i++ {
			assert.InDelta(t, step, got[i]-got[i-1], 1e-9)
		}
	})

	t.Run("descending range", func(t *testing.T) {
		got, err := arrays.Steps(1, 0, 3)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 0.5, 0}, got)
	})

	for _, steps := range []int{1, 0, -4} {
		_, err := arrays.Steps(0, 1, steps)
		assert.ErrorIs(t, err, arrays.ErrInvalidSteps)
	}
}

func TestChunk(t *testing.T) {
	got, err := arrays.Chunk([]int{1, 2, 3, 4, 5}, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, got)

	t.Run("concatenation reproduces input", func(t *testing.T) {
		in := []string{"a", "b", "c", "d", "e", "f", "g"}
		for size := 1; size <= len(in)+1; size++ {
			chunks, err := arrays.Chunk(in, size)
			require.NoError(t, err)

			var joined []string
			for _, c := range chunks {
				assert.LessOrEqual(t, len(c), size)
				joined = append(joined, c...)
			}
			assert.Equal(t, in, joined, "size %d", size)
		}
	})

	t.Run("appending to a chunk does not clobber the next one", func(t *testing.T) {
		in := []int{1, 2, 3, 4}
		chunks, err := arrays.Chunk(in, 2)
		require.NoError(t, err)
		_ = append(chunks[0], 99)
		assert.Equal(t, []int{3, 4}, chunks[1])
	})

	t.Run("huge size yields one chunk", func(t *testing.T) {
		chunks, err := arrays.Chunk([]int{1, 2}, math.MaxInt)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{1, 2}}, chunks)

		chunks, err = arrays.Chunk([]int{1, 2, 3}, math.MaxInt-1)
		require.NoError(t, err)
		assert.Equal(t, [][]int{{1, 2, 3}}, chunks)
	})

	t.Run("empty input", func(t *testing.T) {
		chunks, err := arrays.Chunk([]int{}, 3)
		require.NoError(t, err)
		assert.Empty(t, chunks)
	})

	_, err = arrays.Chunk([]int{1}, 0)
	assert.ErrorIs(t, err, arrays.ErrInvalidChunkSize)
}

func TestMinMax(t *testing.T) {
	values := []float64{3, -1, 8.5, 2}

	maxV, err := arrays.Max(values)
	require.NoError(t, err)
	assert.Equal(t, 8.5, maxV)

	minV, err := arrays.Min(values)
	require.NoError(t, err)
	assert.Equal(t, -1.0, minV)

	s, err := arrays.Max([]string{"pear", "apple", "zucchini"})
	require.NoError(t, err)
	assert.Equal(t, "zucchini", s)

	_, err = arrays.Max([]int{})
	assert.ErrorIs(t, err, arrays.ErrEmpty)
	_, err = arrays.Min[int](nil)
	assert.ErrorIs(t, err, arrays.ErrEmpty)
}

func TestTrimmedAverage(t *testing.T) {
	in := []float64{2, 1, 5, 4, 3, 10, 7, 8, 9, 6}
	got, ok, err := arrays.TrimmedAverage(in, 20)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []float64{2, 3, 4, 5, 6, 7, 8, 9}, got)

	// Input order is left alone.
	assert.Equal(t, []float64{2, 1, 5, 4, 3, 10, 7, 8, 9, 6}, in)

	t.Run("small trims keep everything", func(t *testing.T) {
		got, ok, err := arrays.TrimmedAverage([]float64{3, 1, 2}, 1)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []float64{1, 2, 3}, got)
	})

	t.Run("nothing left", func(t *testing.T) {
		got, ok, err := arrays.TrimmedAverage([]float64{}, 50)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("out of range", func(t *testing.T) {
		for _, p := range []float64{0, 0.5, 99.5, 100, -10} {
			_, _, err := arrays.TrimmedAverage(in, p)
			assert.ErrorIs(t, err, arrays.ErrTrimPercentRange, "percent %v", p)
		}
	})
}

func TestMean(t *testing.T) {
	m, err := arrays.Mean([]float64{2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	assert.Equal(t, 5.5, m)

	_, err = arrays.Mean(nil)
	assert.ErrorIs(t, err, arrays.ErrEmpty)
}

func TestGroupBy(t *testing.T) {
	words := []string{"apple", "avocado", "banana", "blueberry", "cherry", "apricot"}
	groups := arrays.GroupBy(words, func(w string) byte { return w[0] })

	assert.Len(t, groups, 3)
	assert.Equal(t, []string{"apple", "avocado", "apricot"}, groups['a'])
	assert.Equal(t, []string{"banana", "blueberry"}, groups['b'])
	assert.Equal(t, []string{"cherry"}, groups['c'])

	assert.Empty(t, arrays.GroupBy([]int{}, func(i int) int { return i }))
}

type user struct {
	ID   int
	Name string
}

func TestReplaceBy(t *testing.T) {
	users := []user{{1, "ana"}, {2, "bruno"}, {2, "dup"}}
	byID := func(u user) int { return u.ID }

	assert.True(t, arrays.ReplaceBy(users, byID, user{2, "bia"}))
	assert.Equal(t, []user{{1, "ana"}, {2, "bia"}, {2, "dup"}}, users)

	assert.False(t, arrays.ReplaceBy(users, byID, user{9, "nobody"}))
	assert.Len(t, users, 3)
}

func TestReplaceByField(t *testing.T) {
	items := []map[string]any{
		{"id": "a", "v": 1},
		{"id": "b", "v": 2},
		{"tags": []any{"x"}},
	}

	assert.True(t, arrays.ReplaceByField(items, "id", map[string]any{"id": "b", "v": 3}))
	assert.Equal(t, 3, items[1]["v"])

	assert.False(t, arrays.ReplaceByField(items, "id", map[string]any{"id": "z"}))
	assert.False(t, arrays.ReplaceByField(items, "tags", map[string]any{"tags": []any{"x"}}))

	// A record lacking the field matches an item lacking it too.
	assert.True(t, arrays.ReplaceByField(items, "missing", map[string]any{"id": "c"}))
	assert.Equal(t, "c", items[0]["id"])
}
