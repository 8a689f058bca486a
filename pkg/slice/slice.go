// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice complements the standard [slices] package with the generic
helpers the composers and stores share.
*/
package slice

// Map maps a slice of type T to a slice of type U using the provided transformation function.
func Map[T any, U any](input []T, transform func(T) U) []U {
	if input == nil {
		return nil
	}

	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// Unique returns the distinct non-zero values of input in first-seen order.
func Unique[T comparable](input []T) []T {
	var zero T
	result := make([]T, 0, len(input))
	seen := make(map[T]struct{}, len(input))

	for _, v := range input {
		if _, ok := seen[v]; ok || v == zero {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}
