// Package table turns HTML table markup produced by the model into slide
// table elements.
package table

import (
	"errors"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoTable is returned by scanners when markup has no table element.
var ErrNoTable = errors.New("no table in markup")

// RawCell is a td or th element as found in markup.
type RawCell struct {
	Attrs map[string]string
	// trimmed text content of the cell
	Text string
	// trimmed text of the first nested element with "cell-text" class
	NestedText string
}

// Attr returns attribute value or empty string.
func (c RawCell) Attr(name string) string {
	return c.Attrs[name]
}

// RawTable is the table structure before layout: its own style and rows of
// cells in source order.
type RawTable struct {
	Style string
	Rows  [][]RawCell
}

// Scanner extracts raw table from markup.
type Scanner interface {
	Scan(markup string) (*RawTable, error)
}

// HTMLScanner parses markup as HTML document and uses the first table in it.
type HTMLScanner struct{}

func (HTMLScanner) Scan(markup string) (*RawTable, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}
	tableNode := findElement(doc, atom.Table)
	if tableNode == nil {
		return nil, ErrNoTable
	}

	t := &RawTable{Style: attr(tableNode, "style")}
	for c := tableNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.DataAtom {
		case atom.Thead, atom.Tbody, atom.Tfoot:
			for r := c.FirstChild; r != nil; r = r.NextSibling {
				if r.Type == html.ElementNode && r.DataAtom == atom.Tr {
					t.Rows = append(t.Rows, scanRow(r))
				}
			}
		case atom.Tr:
			t.Rows = append(t.Rows, scanRow(c))
		}
	}
	return t, nil
}

func scanRow(tr *html.Node) []RawCell {
	var row []RawCell
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.DataAtom != atom.Td && c.DataAtom != atom.Th) {
			continue
		}
		cell := RawCell{
			Attrs: make(map[string]string, len(c.Attr)),
			Text:  textContent(c),
		}
		for _, a := range c.Attr {
			cell.Attrs[strings.ToLower(a.Key)] = a.Val
		}
		if nested := findClass(c, "cell-text"); nested != nil {
			cell.NestedText = textContent(nested)
		}
		row = append(row, cell)
	}
	return row
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func findClass(n *html.Node, class string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		for cl := range strings.FieldsSeq(attr(c, "class")) {
			if cl == class {
				return c
			}
		}
		if found := findClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return strings.TrimSpace(sb.String())
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
