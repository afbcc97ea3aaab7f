package generate

import (
	"aippt/fitter"
	"aippt/slides"
)

// text set to small sizes gets tighter line spacing
const (
	smallTextSize   = 15
	smallLineHeight = 1.2
)

type textFill struct {
	text    string
	maxLine int
	longest string
	digits  bool
}

// fillText returns copy of the text bearing element with the text fitted
// into its box.
func (g *Generator) fillText(el slides.Element, f textFill) slides.Element {
	markup, ok := slides.Markup(el)
	if !ok {
		return el.Clone()
	}
	res := g.fitter.Fit(fitter.Request{
		Markup:       markup,
		Width:        el.Frame().Width - g.opts.BoxPadding*2 - 2,
		MaxLine:      f.maxLine,
		Text:         f.text,
		LongestText:  f.longest,
		DigitPadding: f.digits,
	})

	switch e := el.Clone().(type) {
	case *slides.TextElement:
		e.Content = res.Markup
		if res.Size < smallTextSize {
			lh := smallLineHeight
			e.LineHeight = &lh
		}
		return e
	case *slides.ShapeElement:
		e.Text.Content = res.Markup
		return e
	default:
		return e
	}
}

// typedImage returns image element when el is an image slot with a type.
func typedImage(el slides.Element) (*slides.ImageElement, bool) {
	img, ok := el.(*slides.ImageElement)
	if !ok || len(img.ImageType) == 0 {
		return nil, false
	}
	return img, true
}

// refresh replaces picture of the image slot from the pool.
func refresh(ctx Context, img *slides.ImageElement) (slides.Element, Context) {
	out, pool := ctx.Pool.Fill(img, ctx.Rand)
	ctx.Pool = pool
	return out, ctx
}
