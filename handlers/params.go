// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"strconv"
	"strings"
	"unicode"
)

// parseIDParam reads a path segment the way a base-10 parseInt does:
// leading whitespace and an optional sign are accepted, then the longest
// run of decimal digits is used and anything after it is ignored, so
// "12abc" is 12. ok is false when there are no digits or the value does not
// fit in an int64; such a segment matches no record.
func parseIDParam(raw string) (id int64, ok bool) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign = s[:1]
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	id, err := strconv.ParseInt(sign+s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
