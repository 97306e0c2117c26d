package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIDParam(t *testing.T) {
	cases := []struct {
		raw string
		id  int64
		ok  bool
	}{
		{"1", 1, true},
		{"101", 101, true},
		{"-1", -1, true},
		{"+7", 7, true},
		{"007", 7, true},
		{"  42", 42, true},
		{"12abc", 12, true},
		{"3.9", 3, true},
		{"1e3", 1, true},
		{"abc", 0, false},
		{"", 0, false},
		{"-", 0, false},
		{"+-1", 0, false},
		{" ", 0, false},
		{"0x1A", 0, true},
		{"99999999999999999999", 0, false},
	}

	for _, tc := range cases {
		id, ok := parseIDParam(tc.raw)
		assert.Equal(t, tc.ok, ok, "ok for %q", tc.raw)
		assert.Equal(t, tc.id, id, "id for %q", tc.raw)
	}
}
