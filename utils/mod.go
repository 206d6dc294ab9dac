package utils

import "golang.org/x/exp/constraints"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// ArgMax returns the index of the first maximum value, or -1 for an empty slice.
func ArgMax[T constraints.Ordered](values []T) int {
	if len(values) == 0 {
		return -1
	}
	best := 0
	for i, v := range values[1:] {
		if v > values[best] {
			best = i + 1
		}
	}
	return best
}

// Indices returns every index holding the given value.
func Indices[T comparable](values []T, item T) []int {
	var indices []int
	for i, v := range values {
		if v == item {
			indices = append(indices, i)
		}
	}
	return indices
}
