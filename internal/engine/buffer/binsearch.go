package buffer

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// NaturalOrder compares two ordered values.
func NaturalOrder[T constraints.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// BinarySearch searches the sorted range [start, start+count) of r for value
// using compare. It returns the index of a match, or the bitwise complement
// of the insertion point when value is absent.
func BinarySearch[T comparable](r Reader[T], start, count int, value T, compare func(a, b T) int) (int, error) {
	if err := CheckRange("binary search", start, count, r.Len()); err != nil {
		return 0, err
	}
	lo, hi := start, start+count-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		v, err := r.At(mid)
		if err != nil {
			return 0, err
		}
		switch c := compare(v, value); {
		case c == 0:
			return mid, nil
		case c < 0:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return ^lo, nil
}

// BinarySearchAll searches all of r.
func BinarySearchAll[T comparable](r Reader[T], value T, compare func(a, b T) int) int {
	i, _ := BinarySearch(r, 0, r.Len(), value, compare)
	return i
}
