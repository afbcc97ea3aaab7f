package slides

import (
	"strings"

	"golang.org/x/net/html"
)

// Markup returns rich-text content of text bearing elements.
func Markup(el Element) (string, bool) {
	switch e := el.(type) {
	case *TextElement:
		return e.Content, true
	case *ShapeElement:
		if e.Text != nil {
			return e.Text.Content, true
		}
	}
	return "", false
}

// PlainText returns concatenated text of the markup with surrounding
// whitespace removed.
func PlainText(markup string) string {
	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(sb.String())
		case html.TextToken:
			sb.Write(z.Text())
		}
	}
}
