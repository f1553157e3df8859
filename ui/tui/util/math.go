// Copyright (c) 2026 Keymaster Team
// numinput - numeric input control
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import "cmp"

// Clamp limits _wanted to [_min, _max].
func Clamp[T cmp.Ordered](_min, _wanted, _max T) T {
	return min(max(_min, _wanted), _max)
}
