package library

import (
	"slices"

	"aippt/slides"
)

// Select returns templates whose number of role slots is the best match for
// n pieces of content. For a single piece a minimal template (one title, one
// content and no role slots) wins when the category has any. Otherwise the
// smallest count not below n is picked, or the largest available when nothing
// is big enough. Every template sharing the winning count is returned in
// library order, caller chooses among them.
func Select(templates []*Template, n int, role slides.SlotRole) ([]*Template, error) {
	if len(templates) == 0 {
		return nil, ErrEmptyCategory
	}

	if n == 1 {
		minimal := slices.DeleteFunc(slices.Clone(templates), func(t *Template) bool {
			return !(t.Count(role) == 0 && t.Count(slides.SlotRoleTitle) == 1 && t.Count(slides.SlotRoleContent) == 1)
		})
		if len(minimal) > 0 {
			return minimal, nil
		}
	}

	target, fits := -1, false
	for _, t := range templates {
		c := t.Count(role)
		switch {
		case c >= n && (!fits || c < target):
			target, fits = c, true
		case !fits && c > target:
			target = c
		}
	}

	return slices.DeleteFunc(slices.Clone(templates), func(t *Template) bool {
		return t.Count(role) != target
	}), nil
}

// PreferFigures narrows templates to ones having item figure slots, when
// there are such.
func PreferFigures(templates []*Template) []*Template {
	withFigures := slices.DeleteFunc(slices.Clone(templates), func(t *Template) bool {
		return t.Count(slides.SlotRoleItemFigure) == 0
	})
	if len(withFigures) == 0 {
		return templates
	}
	return withFigures
}
