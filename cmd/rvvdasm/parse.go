package main

import (
	"strconv"
	"strings"
)

// parseWord parses an instruction literal in hex (0x/0X prefix) or decimal.
// Bits above the low 32 are discarded.
func parseWord(s string) (uint32, error) {
	s = strings.TrimSpace(s)

	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}

	v, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
