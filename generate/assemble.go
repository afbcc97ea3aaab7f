package generate

import (
	"strconv"

	"aippt/common"
	"aippt/outline"
	"aippt/slides"
)

func (g *Generator) cover(ctx Context, s *outline.Cover) (*slides.Slide, Context, error) {
	t, err := g.random(ctx, common.SlideTypeCover)
	if err != nil {
		return nil, ctx, err
	}

	out := make([]slides.Element, 0, len(t.Slide.Elements))
	for _, el := range t.Slide.Elements {
		if img, ok := typedImage(el); ok {
			el, ctx = refresh(ctx, img)
			out = append(out, el)
			continue
		}
		switch slides.Classify(el) {
		case slides.SlotRoleTitle:
			if len(s.Title) > 0 {
				el = g.fillText(el, textFill{text: s.Title, maxLine: 1})
			}
		case slides.SlotRoleContent:
			if len(s.Text) > 0 {
				el = g.fillText(el, textFill{text: s.Text, maxLine: 3})
			}
		}
		out = append(out, el.Clone())
	}
	return emit(t, out), ctx, nil
}

func (g *Generator) contents(ctx Context, s *outline.Contents) (*slides.Slide, Context, error) {
	t, err := g.selected(ctx, common.SlideTypeContents, len(s.Items), slides.SlotRoleItem, false)
	if err != nil {
		return nil, ctx, err
	}

	numbers := byRole(t.Slide.Elements, slides.SlotRoleItemNumber)
	if len(numbers) > numberedAbove {
		byLabel(numbers, label)
	}
	items := byRole(t.Slide.Elements, slides.SlotRoleItem)
	if len(items) > numberedAbove {
		byLabel(items, siblingLabel(numbers))
	}
	itemIdx, numberIdx := indexOf(items), indexOf(numbers)
	longestItem := longest(s.Items)

	rm := slides.NewRemoval(t.Groups)
	out := make([]slides.Element, 0, len(t.Slide.Elements))
	for _, el := range t.Slide.Elements {
		if img, ok := typedImage(el); ok {
			el, ctx = refresh(ctx, img)
			out = append(out, el)
			continue
		}
		switch slides.Classify(el) {
		case slides.SlotRoleItem:
			i := itemIdx[el.Frame().ID]
			if i < len(s.Items) && len(s.Items[i]) > 0 {
				el = g.fillText(el, textFill{text: s.Items[i], maxLine: 1, longest: longestItem})
			} else {
				rm.Add(el)
			}
		case slides.SlotRoleItemNumber:
			n := numberIdx[el.Frame().ID] + s.Offset + 1
			el = g.fillText(el, textFill{text: strconv.Itoa(n), maxLine: 1, digits: true})
		}
		out = append(out, el.Clone())
	}
	return emit(t, rm.Apply(out)), ctx, nil
}

func (g *Generator) transition(ctx Context, s *outline.Transition) (*slides.Slide, Context, error) {
	if ctx.Transition == nil {
		t, err := g.random(ctx, common.SlideTypeTransition)
		if err != nil {
			return nil, ctx, err
		}
		ctx.Transition = t
	}
	t := ctx.Transition
	ctx.PartNumber++

	out := make([]slides.Element, 0, len(t.Slide.Elements))
	for _, el := range t.Slide.Elements {
		if img, ok := typedImage(el); ok {
			el, ctx = refresh(ctx, img)
			out = append(out, el)
			continue
		}
		switch slides.Classify(el) {
		case slides.SlotRoleTitle:
			if len(s.Title) > 0 {
				el = g.fillText(el, textFill{text: s.Title, maxLine: 1})
			}
		case slides.SlotRoleContent:
			if len(s.Text) > 0 {
				el = g.fillText(el, textFill{text: s.Text, maxLine: 3})
			}
		case slides.SlotRolePartNumber:
			el = g.fillText(el, textFill{text: strconv.Itoa(ctx.PartNumber), maxLine: 1, digits: true})
		}
		out = append(out, el.Clone())
	}
	return emit(t, out), ctx, nil
}

func (g *Generator) end(ctx Context) (*slides.Slide, Context, error) {
	t, err := g.random(ctx, common.SlideTypeEnd)
	if err != nil {
		return nil, ctx, err
	}

	out := make([]slides.Element, 0, len(t.Slide.Elements))
	for _, el := range t.Slide.Elements {
		if img, ok := typedImage(el); ok {
			el, ctx = refresh(ctx, img)
			out = append(out, el)
			continue
		}
		out = append(out, el.Clone())
	}
	return emit(t, out), ctx, nil
}
