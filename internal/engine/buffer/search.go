package buffer

import "slices"

// clampForward normalizes the start of a forward search.
// ok is false when nothing can match.
func clampForward(start, length int) (int, bool) {
	if start < 0 {
		start = 0
	}
	if start >= length {
		return 0, false
	}
	return start, true
}

// clampBackward normalizes the start of a backward search.
// ok is false when nothing can match.
func clampBackward(start, length int) (int, bool) {
	if start >= length {
		start = length - 1
	}
	if start < 0 {
		return 0, false
	}
	return start, true
}

// indexAny returns the first index in s holding any of values, or -1.
// Sets of one, two and three values avoid the inner loop.
func indexAny[T comparable](s []T, values []T) int {
	switch len(values) {
	case 0:
		return -1
	case 1:
		return slices.Index(s, values[0])
	case 2:
		v0, v1 := values[0], values[1]
		for i, x := range s {
			if x == v0 || x == v1 {
				return i
			}
		}
		return -1
	case 3:
		v0, v1, v2 := values[0], values[1], values[2]
		for i, x := range s {
			if x == v0 || x == v1 || x == v2 {
				return i
			}
		}
		return -1
	}
	for i, x := range s {
		if slices.Contains(values, x) {
			return i
		}
	}
	return -1
}

// lastIndexAny returns the last index in s holding any of values, or -1.
func lastIndexAny[T comparable](s []T, values []T) int {
	switch len(values) {
	case 0:
		return -1
	case 1:
		return lastIndex(s, values[0])
	case 2:
		v0, v1 := values[0], values[1]
		for i := len(s) - 1; i >= 0; i-- {
			if s[i] == v0 || s[i] == v1 {
				return i
			}
		}
		return -1
	case 3:
		v0, v1, v2 := values[0], values[1], values[2]
		for i := len(s) - 1; i >= 0; i-- {
			if s[i] == v0 || s[i] == v1 || s[i] == v2 {
				return i
			}
		}
		return -1
	}
	for i := len(s) - 1; i >= 0; i-- {
		if slices.Contains(values, s[i]) {
			return i
		}
	}
	return -1
}

func lastIndex[T comparable](s []T, v T) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == v {
			return i
		}
	}
	return -1
}

// Slice-backed search primitives shared by ListBuffer, ImmutableBuffer and
// the rune backends.

func sliceIndexOf[T comparable](s []T, value T, start int) int {
	start, ok := clampForward(start, len(s))
	if !ok {
		return -1
	}
	if i := slices.Index(s[start:], value); i >= 0 {
		return i + start
	}
	return -1
}

func sliceLastIndexOf[T comparable](s []T, value T, start int) int {
	start, ok := clampBackward(start, len(s))
	if !ok {
		return -1
	}
	return lastIndex(s[:start+1], value)
}

func sliceIndexOfAny[T comparable](s []T, values []T, start int) int {
	start, ok := clampForward(start, len(s))
	if !ok {
		return -1
	}
	if i := indexAny(s[start:], values); i >= 0 {
		return i + start
	}
	return -1
}

func sliceLastIndexOfAny[T comparable](s []T, values []T, start int) int {
	start, ok := clampBackward(start, len(s))
	if !ok {
		return -1
	}
	return lastIndexAny(s[:start+1], values)
}

func sliceIndexOfSeq[T comparable](s []T, seq []T, start int) int {
	return indexSeqFunc(len(s), func(i int) T { return s[i] }, seq, start)
}

func sliceLastIndexOfSeq[T comparable](s []T, seq []T, start int) int {
	return lastIndexSeqFunc(len(s), func(i int) T { return s[i] }, seq, start)
}

// indexSeqFunc finds the first occurrence of seq starting at or after start
// in a sequence of length n read through at. An empty seq matches at start
// clamped to [0, n].
func indexSeqFunc[T comparable](n int, at func(int) T, seq []T, start int) int {
	if start < 0 {
		start = 0
	}
	if len(seq) == 0 {
		if start > n {
			return -1
		}
		return start
	}
	first := seq[0]
	for i := start; i <= n-len(seq); i++ {
		if at(i) != first {
			continue
		}
		if matchAt(at, seq, i) {
			return i
		}
	}
	return -1
}

// lastIndexSeqFunc finds the last occurrence of seq whose start is at or
// before start. An empty seq matches at start clamped to [.., n].
func lastIndexSeqFunc[T comparable](n int, at func(int) T, seq []T, start int) int {
	if start < 0 {
		return -1
	}
	if len(seq) == 0 {
		if start > n {
			return n
		}
		return start
	}
	if start > n-len(seq) {
		start = n - len(seq)
	}
	first := seq[0]
	for i := start; i >= 0; i-- {
		if at(i) != first {
			continue
		}
		if matchAt(at, seq, i) {
			return i
		}
	}
	return -1
}

func matchAt[T comparable](at func(int) T, seq []T, i int) bool {
	for j := 1; j < len(seq); j++ {
		if at(i+j) != seq[j] {
			return false
		}
	}
	return true
}
