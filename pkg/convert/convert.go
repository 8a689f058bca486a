// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides fault-tolerant conversions for query parameters.

Do not use this package if distinguishing between malformed data and zero
values matters; use [strconv] directly instead.
*/
package convert

import (
	"strconv"
	"strings"
)

// ToIntD converts a string to an int, returning def if the string is empty or malformed.
func ToIntD(str string, def int) int {
	str = strings.TrimSpace(str)
	if str == "" {
		return def
	}

	if v, err := strconv.Atoi(str); err == nil {
		return v
	}

	return def
}

// Clamp limits v to the closed range [low, high].
func Clamp(v, low, high int) int {
	switch {
	case v < low:
		return low
	case v > high:
		return high
	}
	return v
}
