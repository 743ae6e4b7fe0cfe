package arrays

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"slices"
)

// Steps returns `steps` values evenly spaced between min and max, both included.
func Steps(min, max float64, steps int) ([]float64, error) {
	if steps < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSteps, steps)
	}

	out := make([]float64, steps)
	distance := max - min
	for i := range steps {
		out[i] = min + distance*(float64(i)/float64(steps-1))
	}
	return out, nil
}

// Chunk splits s into consecutive chunks of size elements. The last chunk may be shorter.
// Chunks share the backing array of s.
func Chunk[T any](s []T, size int) ([][]T, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkSize, size)
	}

	n := len(s) / size
	if len(s)%size != 0 {
		n++
	}
	out := make([][]T, 0, n)
	for i := 0; i < len(s); i += size {
		end := i + min(size, len(s)-i)
		out = append(out, s[i:end:end])
	}
	return out, nil
}

// Max returns the largest element of s.
func Max[T cmp.Ordered](s []T) (T, error) {
	var zero T
	if len(s) == 0 {
		return zero, ErrEmpty
	}

	m := s[0]
	for _, v := range s[1:] {
		if v > m {
			m = v
		}
	}
	return m, nil
}

// Min returns the smallest element of s.
func Min[T cmp.Ordered](s []T) (T, error) {
	var zero T
	if len(s) == 0 {
		return zero, ErrEmpty
	}

	m := s[0]
	for _, v := range s[1:] {
		if v < m {
			m = v
		}
	}
	return m, nil
}

// TrimmedAverage sorts a copy of s and drops trimPercent/2 percent of the values from
// each end. Despite its name it returns the remaining values, not their mean; use Mean
// on the result when the average itself is wanted.
//
// ok is false when nothing is left after trimming.
//
//	trimmed, _, _ := arrays.TrimmedAverage([]float64{2, 1, 5, 4, 3, 10, 7, 8, 9, 6}, 20)
//	// trimmed == [2 3 4 5 6 7 8 9]
func TrimmedAverage(s []float64, trimPercent float64) (trimmed []float64, ok bool, err error) {
	if trimPercent > 99 || trimPercent < 1 {
		return nil, false, fmt.Errorf("%w: got %v", ErrTrimPercentRange, trimPercent)
	}

	sorted := slices.Clone(s)
	slices.Sort(sorted)

	trimCount := int(math.Floor(float64(len(sorted)) * (trimPercent / 2) * 0.01))
	trimmed = sorted[trimCount : len(sorted)-trimCount]
	if len(trimmed) == 0 {
		return nil, false, nil
	}
	return trimmed, true, nil
}

// Mean returns the arithmetic mean of s.
func Mean(s []float64) (float64, error) {
	if len(s) == 0 {
		return 0, ErrEmpty
	}
	var sum float64
	for _, v := range s {
		sum += v
	}
	return sum / float64(len(s)), nil
}

// GroupBy partitions s by the key returned for each element.
// Elements keep their relative order inside each group.
func GroupBy[T any, K comparable](s []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range s {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// ReplaceBy overwrites, in place, the first element of s whose key matches key(item).
// It reports whether an element was replaced.
func ReplaceBy[T any, K comparable](s []T, key func(T) K, item T) bool {
	want := key(item)
	i := slices.IndexFunc(s, func(v T) bool { return key(v) == want })
	if i < 0 {
		return false
	}
	s[i] = item
	return true
}

// ReplaceByField is ReplaceBy for loosely typed records: the first map whose field value
// equals item[field] is overwritten with item. Missing fields compare as nil.
func ReplaceByField(items []map[string]any, field string, item map[string]any) bool {
	want := item[field]
	for i, v := range items {
		if equalValues(v[field], want) {
			items[i] = item
			return true
		}
	}
	return false
}

// equalValues compares two decoded values; maps and slices never match.
func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
