// Package debug renders deck structures as indented text for reports.
package debug

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultValueLimit is the number of bytes of a value printed before it is
// cut. Image sources are often data URIs hundreds of kilobytes long.
const DefaultValueLimit = 96

// TreeWriter accumulates tree lines, two spaces per depth level.
type TreeWriter struct {
	b     strings.Builder
	limit int
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{limit: DefaultValueLimit}
}

// SetValueLimit changes truncation limit for Value, 0 disables it.
func (tw *TreeWriter) SetValueLimit(limit int) {
	tw.limit = max(limit, 0)
}

func (tw *TreeWriter) String() string {
	return tw.b.String()
}

func (tw *TreeWriter) indent(depth int) {
	tw.b.WriteString(strings.Repeat("  ", max(depth, 0)))
}

// Line writes formatted line at depth.
func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(&tw.b, format, args...)
	tw.b.WriteByte('\n')
}

// Value writes "label: value" with value quoted and shortened. Empty values
// are left bare.
func (tw *TreeWriter) Value(depth int, label, value string) {
	tw.indent(depth)
	tw.b.WriteString(label)
	tw.b.WriteByte(':')
	if len(value) > 0 {
		tw.b.WriteByte(' ')
		tw.b.WriteString(quote(value, tw.limit))
	}
	tw.b.WriteByte('\n')
}

// quote returns Go-quoted value, cut to limit bytes with the number of
// dropped bytes appended.
func quote(value string, limit int) string {
	if limit == 0 || len(value) <= limit {
		return strconv.Quote(value)
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(value[cut]) {
		cut--
	}
	return strconv.Quote(value[:cut]) + "(+" + strconv.Itoa(len(value)-cut) + ")"
}
