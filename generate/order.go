package generate

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"aippt/slides"
)

// numbered slot lists longer than this follow labels printed in the template
// rather than geometry, big grids are often laid out in columns
const numberedAbove = 6

// position is the reading order key: left to right, then top to bottom with
// rows weighted twice.
func position(el slides.Element) float64 {
	b := el.Frame()
	return b.Left + b.Top*2
}

// byRole returns elements having role in reading order.
func byRole(elements []slides.Element, role slides.SlotRole) []slides.Element {
	var out []slides.Element
	for _, el := range elements {
		if slides.Classify(el) == role {
			out = append(out, el)
		}
	}
	slices.SortStableFunc(out, func(a, b slides.Element) int {
		return cmp.Compare(position(a), position(b))
	})
	return out
}

// byLabel reorders elements by numeric labels when both compared elements
// have one, by reading order otherwise.
func byLabel(elements []slides.Element, label func(slides.Element) (int, bool)) {
	slices.SortStableFunc(elements, func(a, b slides.Element) int {
		la, okA := label(a)
		lb, okB := label(b)
		if okA && okB {
			return cmp.Compare(la, lb)
		}
		return cmp.Compare(position(a), position(b))
	})
}

// label reads integer printed in the text slot, "03." gives 3.
func label(el slides.Element) (int, bool) {
	markup, ok := slides.Markup(el)
	if !ok {
		return 0, false
	}
	text := strings.TrimSpace(slides.PlainText(markup))
	end := 0
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(text[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// siblingLabel returns label function looking at the number slot of the same
// group.
func siblingLabel(numbers []slides.Element) func(slides.Element) (int, bool) {
	byGroup := make(map[string]slides.Element, len(numbers))
	for _, n := range numbers {
		gid := n.Frame().GroupID
		if _, ok := byGroup[gid]; !ok && len(gid) > 0 {
			byGroup[gid] = n
		}
	}
	return func(el slides.Element) (int, bool) {
		n, ok := byGroup[el.Frame().GroupID]
		if !ok {
			return 0, false
		}
		return label(n)
	}
}

// indexOf maps element ids to their place in ordered list.
func indexOf(ordered []slides.Element) map[string]int {
	idx := make(map[string]int, len(ordered))
	for i, el := range ordered {
		idx[el.Frame().ID] = i
	}
	return idx
}

// longest returns the first of the longest strings.
func longest(texts []string) string {
	var out string
	for _, s := range texts {
		if len([]rune(s)) > len([]rune(out)) {
			out = s
		}
	}
	return out
}
