package slides

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"

	"aippt/utils/debug"
)

// Dump returns human readable tree of the deck for debug reports.
func Dump(deck []*Slide) string {
	tw := debug.NewTreeWriter()
	tw.Line(0, "deck: %d slide(s)", len(deck))
	for i, s := range deck {
		tw.Line(1, "slide[%d] id=%s type=%s", i, s.ID, s.Type)
		if len(s.extra) > 0 {
			keys := make([]string, 0, len(s.extra))
			for k := range s.extra {
				keys = append(keys, k)
			}
			sort.Sort(natural.StringSlice(keys))
			tw.Line(2, "meta: %v", keys)
		}
		for _, el := range s.Elements {
			dumpElement(tw, 2, el)
		}
	}
	return tw.String()
}

func dumpElement(tw *debug.TreeWriter, depth int, el Element) {
	b := el.Frame()
	tw.Line(depth, "%s id=%s role=%s box=(%.1f,%.1f %.1fx%.1f) group=%s",
		el.Kind(), b.ID, Classify(el), b.Left, b.Top, b.Width, b.Height, b.GroupID)
	switch e := el.(type) {
	case *ImageElement:
		tw.Value(depth+1, "src", e.Src)
		if e.Clip != nil {
			tw.Line(depth+1, "clip: %v %s", e.Clip.Range, e.Clip.Shape)
		}
	case *TableElement:
		tw.Line(depth+1, "grid: %dx%d", e.Rows(), e.Columns())
		for r, row := range e.Data {
			for c, cell := range row {
				if len(cell.Text) > 0 {
					tw.Value(depth+2, cellLabel(r, c, cell), cell.Text)
				}
			}
		}
	default:
		if markup, ok := Markup(el); ok {
			tw.Value(depth+1, "text", PlainText(markup))
		}
	}
}

func cellLabel(r, c int, cell TableCell) string {
	if cell.Colspan > 1 || cell.Rowspan > 1 {
		return fmt.Sprintf("cell[%d,%d] span %dx%d", r, c, cell.Rowspan, cell.Colspan)
	}
	return fmt.Sprintf("cell[%d,%d]", r, c)
}
