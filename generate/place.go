package generate

import (
	"math"

	"go.uber.org/zap"

	"aippt/outline"
	"aippt/slides"
)

const (
	// tables go below the title or this line when there is no title
	tablesTop    = 150
	tableSpacing = 20
	tableRowGap  = 30
	tableMargin  = 50
	anchorGap    = 10

	extraImageWidth  = 300
	extraImageHeight = 200
	extraImageTop    = 350
	extraImageLeft   = 50
	extraImageStepX  = 350
	extraImageStepY  = 220

	soloImageWidth  = 600
	soloImageHeight = 400
	soloImageTop    = 100
)

// placeTables appends tables carried by content items. A table goes under
// the text slot of its item when there is one, otherwise tables are laid out
// in a grid of up to two columns.
func (g *Generator) placeTables(s *outline.Content, elements []slides.Element) []slides.Element {
	var withTables []int
	for i, it := range s.Items {
		if len(it.Table) > 0 {
			withTables = append(withTables, i)
		}
	}
	if len(withTables) == 0 {
		return elements
	}

	currentY := float64(tablesTop)
	if titles := byRole(elements, slides.SlotRoleTitle); len(titles) > 0 {
		bottom := math.Inf(-1)
		for _, t := range titles {
			bottom = math.Max(bottom, t.Frame().Bottom())
		}
		currentY = bottom + tableSpacing
	}

	anchors := byRole(elements, slides.SlotRoleItem)
	if len(anchors) == 0 {
		anchors = byRole(elements, slides.SlotRoleItemTitle)
	}

	slideW := g.opts.SlideWidth
	perRow := min(2, len(withTables))
	cellW := (slideW-2*tableMargin)/float64(perRow) - tableSpacing

	for n, itemIndex := range withTables {
		tbl := g.tables.Build(s.Items[itemIndex].Table)
		if tbl == nil {
			g.log.Warn("Skipping item table which could not be built", zap.Int("item", itemIndex+s.Offset))
			continue
		}

		if itemIndex < len(anchors) {
			anchor := anchors[itemIndex].Frame()
			tbl.Top = anchor.Bottom() + anchorGap
			tbl.Left = anchor.Left
			if tbl.Left+tbl.Width > slideW-tableMargin {
				tbl.Left = slideW - tbl.Width - tableMargin
			}
		} else {
			tbl.Width = math.Min(tbl.Width, cellW)
			row, col := n/perRow, n%perRow
			tbl.Left = tableMargin + float64(col)*(cellW+tableSpacing)
			tbl.Top = currentY + float64(row)*(tbl.Height+tableRowGap)
		}
		currentY = math.Max(currentY, tbl.Top+tbl.Height+tableSpacing)

		g.clamp(&tbl.Base)
		elements = append(elements, tbl)
	}
	return elements
}

// placeImages adds images from content which have no slot in the template.
// Lone image becomes the centerpiece, surplus images are tiled under the
// text.
func (g *Generator) placeImages(s *outline.Content, elements []slides.Element, slots int) []slides.Element {
	var images []string
	for _, it := range s.Items {
		if len(it.Image) > 0 {
			images = append(images, it.Image)
		}
	}

	if len(s.Items) == 1 && slots == 0 && len(images) == 1 && len(s.Items[0].Title) == 0 && len(s.Items[0].Text) == 0 {
		img := newImage(images[0], slides.Base{
			Left:   (g.opts.SlideWidth - soloImageWidth) / 2,
			Top:    soloImageTop,
			Width:  soloImageWidth,
			Height: soloImageHeight,
		})
		g.clamp(&img.Base)
		return append(elements, img)
	}

	if len(images) <= slots {
		return elements
	}
	columns := max(1, int((g.opts.SlideWidth-extraImageLeft)/extraImageStepX))
	for i, src := range images[slots:] {
		row, col := i/columns, i%columns
		img := newImage(src, slides.Base{
			Left:   extraImageLeft + float64(col)*extraImageStepX,
			Top:    extraImageTop + float64(row)*extraImageStepY,
			Width:  extraImageWidth,
			Height: extraImageHeight,
		})
		g.clamp(&img.Base)
		elements = append(elements, img)
	}
	return elements
}

func newImage(src string, b slides.Base) *slides.ImageElement {
	b.ID = slides.NewID()
	return &slides.ImageElement{
		Base:       b,
		Src:        src,
		ImageType:  "itemFigure",
		FixedRatio: true,
	}
}

// clamp keeps element inside the slide, shrinking it when it is bigger than
// the slide itself.
func (g *Generator) clamp(b *slides.Base) {
	b.Width = math.Min(b.Width, g.opts.SlideWidth)
	b.Height = math.Min(b.Height, g.opts.SlideHeight)
	b.Left = math.Max(0, math.Min(b.Left, g.opts.SlideWidth-b.Width))
	b.Top = math.Max(0, math.Min(b.Top, g.opts.SlideHeight-b.Height))
}
