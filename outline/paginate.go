package outline

import "slices"

// Paginate splits slides holding more items than templates are able to
// accommodate. Every chunk remembers offset of its first item in the original
// list, so numbering continues across pages. Input slides are not modified.
func Paginate(in []Slide) []Slide {
	out := make([]Slide, 0, len(in))
	for _, s := range in {
		switch v := s.(type) {
		case *Content:
			for _, ch := range chunks(contentChunks(len(v.Items))) {
				out = append(out, &Content{
					Title:  v.Title,
					Items:  slices.Clone(v.Items[ch.start:ch.end]),
					Offset: v.Offset + ch.start,
				})
			}
		case *Contents:
			for _, ch := range chunks(contentsChunks(len(v.Items))) {
				out = append(out, &Contents{
					Items:  slices.Clone(v.Items[ch.start:ch.end]),
					Offset: v.Offset + ch.start,
				})
			}
		default:
			out = append(out, s)
		}
	}
	return out
}

type span struct {
	start, end int
}

// contentChunks returns sizes of the pages, last one is "the rest".
func contentChunks(n int) (int, []int) {
	switch {
	case n == 5 || n == 6:
		return n, []int{3}
	case n == 7 || n == 8:
		return n, []int{4}
	case n == 9 || n == 10:
		return n, []int{3, 3}
	case n > 10:
		return n, []int{4, 4}
	}
	return n, nil
}

func contentsChunks(n int) (int, []int) {
	switch {
	case n == 11:
		return n, []int{6}
	case n > 11:
		return n, []int{10}
	}
	return n, nil
}

func chunks(n int, leading []int) []span {
	spans := make([]span, 0, len(leading)+1)
	start := 0
	for _, size := range leading {
		spans = append(spans, span{start, start + size})
		start += size
	}
	return append(spans, span{start, n})
}
