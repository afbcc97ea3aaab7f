package generate

import (
	"strconv"

	"go.uber.org/zap"

	"aippt/common"
	"aippt/outline"
	"aippt/slides"
)

func (g *Generator) content(ctx Context, s *outline.Content) (*slides.Slide, Context, error) {
	t, err := g.selected(ctx, common.SlideTypeContent, len(s.Items), slides.SlotRoleItem, s.HasImages())
	if err != nil {
		return nil, ctx, err
	}

	els := t.Slide.Elements
	titles := byRole(els, slides.SlotRoleItemTitle)
	texts := byRole(els, slides.SlotRoleItem)
	numbers := byRole(els, slides.SlotRoleItemNumber)
	figures := byRole(els, slides.SlotRoleItemFigure)
	titleIdx, textIdx, numberIdx, figureIdx := indexOf(titles), indexOf(texts), indexOf(numbers), indexOf(figures)

	var itemTitles, itemTexts []string
	for _, it := range s.Items {
		if len(it.Title) > 0 {
			itemTitles = append(itemTitles, it.Title)
		}
		if len(it.Text) > 0 {
			itemTexts = append(itemTexts, it.Text)
		}
	}
	longestTitle, longestText := longest(itemTitles), longest(itemTexts)

	item := func(idx map[string]int, el slides.Element) (outline.Item, bool) {
		i, ok := idx[el.Frame().ID]
		if !ok || i >= len(s.Items) {
			return outline.Item{}, false
		}
		return s.Items[i], true
	}

	// single item goes into content slot when template has one
	single := len(s.Items) == 1 && t.Count(slides.SlotRoleContent) > 0

	rm := slides.NewRemoval(t.Groups)
	out := make([]slides.Element, 0, len(els))
	for _, el := range els {
		role := slides.Classify(el)

		if img, ok := el.(*slides.ImageElement); ok {
			switch role {
			case slides.SlotRolePageFigure:
				el, ctx = refresh(ctx, img)
			case slides.SlotRoleItemFigure:
				it, found := item(figureIdx, el)
				switch {
				case found && len(it.Image) > 0:
					el = modelImage(img, it.Image)
				case found && len(it.Table) > 0:
					rm.Add(el)
				default:
					el, ctx = refresh(ctx, img)
				}
			default:
				el = el.Clone()
			}
			out = append(out, el)
			continue
		}

		switch {
		case single:
			if role == slides.SlotRoleContent && len(s.Items[0].Text) > 0 {
				el = g.fillText(el, textFill{text: s.Items[0].Text, maxLine: 6})
			}
		case role == slides.SlotRoleItemTitle:
			if it, ok := item(titleIdx, el); ok && len(it.Title) > 0 {
				el = g.fillText(el, textFill{text: it.Title, maxLine: 1, longest: longestTitle})
			} else {
				rm.Add(el)
			}
		case role == slides.SlotRoleItem:
			if it, ok := item(textIdx, el); ok && len(it.Text) > 0 {
				el = g.fillText(el, textFill{text: it.Text, maxLine: 4, longest: longestText})
			} else {
				rm.Add(el)
			}
		case role == slides.SlotRoleItemNumber:
			if _, ok := item(numberIdx, el); ok {
				n := numberIdx[el.Frame().ID] + s.Offset + 1
				el = g.fillText(el, textFill{text: strconv.Itoa(n), maxLine: 1, digits: true})
			} else {
				rm.Add(el)
			}
		}
		if role == slides.SlotRoleTitle && len(s.Title) > 0 {
			el = g.fillText(el, textFill{text: s.Title, maxLine: 1})
		}
		out = append(out, el.Clone())
	}
	if rm.Len() > 0 {
		g.log.Debug("Unused slots removed", zap.String("template", t.Slide.ID), zap.Int("count", rm.Len()))
	}
	out = rm.Apply(out)

	out = g.placeTables(s, out)
	out = g.placeImages(s, out, len(figures))
	return emit(t, out), ctx, nil
}

// modelImage puts image supplied with content into the slot, showing it
// whole and unfiltered.
func modelImage(slot *slides.ImageElement, src string) *slides.ImageElement {
	img := slot.Clone().(*slides.ImageElement)
	img.ID = slides.NewID()
	img.Src = src
	img.Clip = nil
	img.Filters = nil
	return img
}
