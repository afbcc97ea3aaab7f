package fitter

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"aippt/css"
)

var fragmentContext = &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}

// FontInfo returns size of the first px font-size declaration and the first
// family of the first font-family declaration found in markup, with defaults
// for missing ones.
func (f *Fitter) FontInfo(markup string) (float64, string) {
	size, family := float64(DefaultSize), DefaultFamily

	nodes, err := html.ParseFragment(strings.NewReader(markup), fragmentContext)
	if err != nil {
		return size, family
	}

	var sizeFound, familyFound bool
	walk(nodes, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		decls := f.css.ParseInline(attr(n, "style"))
		for _, d := range decls {
			switch {
			case !sizeFound && d.Property == "font-size" && d.Value.Unit == "px":
				size, sizeFound = d.Value.Value, true
			case !familyFound && d.Property == "font-family":
				if name := firstFamily(d.Value.Raw); name != "" {
					family, familyFound = name, true
				}
			}
		}
		return !sizeFound || !familyFound
	})
	return size, family
}

func firstFamily(list string) string {
	name, _, _ := strings.Cut(list, ",")
	return css.Unquote(name)
}

// rewrite replaces first text run with text and every px font-size with size.
// When markup has no font-size at all, first paragraph receives one.
func (f *Fitter) rewrite(markup, text string, size float64, digitPadding bool) (string, error) {
	nodes, err := html.ParseFragment(strings.NewReader(markup), fragmentContext)
	if err != nil {
		return "", err
	}

	var firstText, firstPara *html.Node
	hasSize := false
	walk(nodes, func(n *html.Node) bool {
		switch n.Type {
		case html.TextNode:
			if firstText == nil {
				firstText = n
			}
		case html.ElementNode:
			if firstPara == nil && n.DataAtom == atom.P {
				firstPara = n
			}
			if _, ok := f.css.ParseInline(attr(n, "style")).Get("font-size"); ok {
				hasSize = true
			}
		}
		return true
	})

	switch {
	case firstText != nil:
		if digitPadding {
			firstText.Data = PadDigits(firstText.Data, text)
		} else {
			firstText.Data = text
		}
	case firstPara != nil:
		firstPara.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	default:
		nodes = append(nodes, &html.Node{Type: html.TextNode, Data: text})
	}

	if !hasSize && firstPara != nil {
		decls := append(f.css.ParseInline(attr(firstPara, "style")), css.Declaration{Property: "font-size", Value: css.Pixels(DefaultSize)})
		setAttr(firstPara, "style", decls.String())
	}

	walk(nodes, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		style := attr(n, "style")
		if !strings.Contains(style, "font-size") {
			return true
		}
		decls := f.css.ParseInline(style)
		changed := false
		for i := range decls {
			if decls[i].Property == "font-size" && decls[i].Value.Unit == "px" {
				decls[i].Value = css.Pixels(size)
				changed = true
			}
		}
		if changed {
			setAttr(n, "style", decls.String())
		}
		return true
	})

	var sb strings.Builder
	for _, n := range nodes {
		if err := html.Render(&sb, n); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// walk visits nodes depth first in document order until fn returns false.
func walk(nodes []*html.Node, fn func(*html.Node) bool) bool {
	for _, n := range nodes {
		if !fn(n) {
			return false
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if !walk([]*html.Node{c}, fn) {
				return false
			}
		}
	}
	return true
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
