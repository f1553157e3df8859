// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.

// Package slicest holds the generic slice helpers the TUI models share.
package slicest

// Reduce folds s into a U starting from the zero value. fn is called with
// each element and the accumulator.
func Reduce[T any, S ~[]T, U any](s S, fn func(T, U) U) U {
	var zero U
	return ReduceD(s, zero, fn)
}

// ReduceD is Reduce with an explicit initial accumulator.
func ReduceD[T any, S ~[]T, U any](s S, init U, fn func(T, U) U) U {
	for _, t := range s {
		init = fn(t, init)
	}
	return init
}

// MapI maps s, passing the index to fn.
func MapI[T, U any, S ~[]T](s S, fn func(int, T) U) []U {
	result := make([]U, len(s))
	for i, v := range s {
		result[i] = fn(i, v)
	}
	return result
}

func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	return MapI(s, func(_ int, t T) U {
		return fn(t)
	})
}
