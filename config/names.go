package config

import (
	"strings"
	"unicode/utf8"
)

// longest deck name we produce, leaves room for extension within the usual
// 255 byte file name limit
const maxNameLength = 200

const badFileName = "_bad_file_name_"

// CleanFileName turns in into a single path segment: characters the
// platform does not allow and control characters are dropped, surrounding
// spaces and leading dots are trimmed and overly long names are cut on rune
// boundary.
func CleanFileName(in string) string {
	out := strings.Map(func(sym rune) rune {
		if sym < ' ' || strings.ContainsRune(forbiddenNameChars, sym) {
			return -1
		}
		return sym
	}, in)
	out = strings.TrimLeft(strings.TrimSpace(out), ".")

	if len(out) > maxNameLength {
		cut := maxNameLength
		for cut > 0 && !utf8.RuneStart(out[cut]) {
			cut--
		}
		out = strings.TrimSpace(out[:cut])
	}
	if len(out) == 0 {
		out = badFileName
	}
	return out
}
