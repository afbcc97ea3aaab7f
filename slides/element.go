// Package slides defines the deck model shared by templates and generated
// slides: slides, their elements, slot roles and element groups.
package slides

import (
	"encoding/json"
	"slices"
)

// ElementType is the "type" discriminator of a slide element.
type ElementType string

const (
	ElementText  ElementType = "text"
	ElementShape ElementType = "shape"
	ElementImage ElementType = "image"
	ElementTable ElementType = "table"
)

// Element is one of TextElement, ShapeElement, ImageElement, TableElement or
// RawElement (any other kind, kept verbatim).
type Element interface {
	Kind() ElementType
	// Frame gives access to the fields every element has.
	Frame() *Base
	// Clone returns a deep copy, so callers may modify it freely.
	Clone() Element
}

// Base holds identity, geometry and group membership.
type Base struct {
	ID      string  `json:"id"`
	Left    float64 `json:"left"`
	Top     float64 `json:"top"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Rotate  float64 `json:"rotate"`
	GroupID string  `json:"groupId,omitempty"`

	// fields present in the source JSON which we do not model, never
	// modified after decoding and therefore safe to share between copies
	extra map[string]json.RawMessage
}

func (b *Base) Frame() *Base {
	return b
}

// Bottom returns vertical coordinate of the lower edge.
func (b *Base) Bottom() float64 {
	return b.Top + b.Height
}

// TextElement is a rich-text box. Content is an HTML fragment.
type TextElement struct {
	Base
	Content    string   `json:"content"`
	TextType   string   `json:"textType,omitempty"`
	LineHeight *float64 `json:"lineHeight,omitempty"`
}

func (e *TextElement) Kind() ElementType { return ElementText }

func (e *TextElement) Clone() Element {
	c := *e
	if e.LineHeight != nil {
		lh := *e.LineHeight
		c.LineHeight = &lh
	}
	return &c
}

// ShapeText is the optional text embedded into a shape.
type ShapeText struct {
	Content         string `json:"content"`
	Type            string `json:"type,omitempty"`
	DefaultFontName string `json:"defaultFontName,omitempty"`
	DefaultColor    string `json:"defaultColor,omitempty"`
	Align           string `json:"align,omitempty"`

	extra map[string]json.RawMessage
}

// ShapeElement is a vector shape, possibly carrying text.
type ShapeElement struct {
	Base
	Text *ShapeText `json:"text,omitempty"`
}

func (e *ShapeElement) Kind() ElementType { return ElementShape }

func (e *ShapeElement) Clone() Element {
	c := *e
	if e.Text != nil {
		t := *e.Text
		c.Text = &t
	}
	return &c
}

// ImageClip describes visible part of the image as percentages of its size.
type ImageClip struct {
	Range [2][2]float64 `json:"range"`
	Shape string        `json:"shape"`
}

// ImageElement is a picture placeholder or decoration.
type ImageElement struct {
	Base
	Src        string          `json:"src"`
	ImageType  string          `json:"imageType,omitempty"`
	FixedRatio bool            `json:"fixedRatio"`
	Clip       *ImageClip      `json:"clip,omitempty"`
	Filters    json.RawMessage `json:"filters,omitempty"`
}

func (e *ImageElement) Kind() ElementType { return ElementImage }

func (e *ImageElement) Clone() Element {
	c := *e
	if e.Clip != nil {
		clip := *e.Clip
		c.Clip = &clip
	}
	c.Filters = slices.Clone(e.Filters)
	return &c
}

// CellStyle is the formatting of a single table cell.
type CellStyle struct {
	Bold          bool   `json:"bold,omitempty"`
	Em            bool   `json:"em,omitempty"`
	Underline     bool   `json:"underline,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty"`
	Color         string `json:"color,omitempty"`
	Backcolor     string `json:"backcolor,omitempty"`
	FontSize      string `json:"fontsize,omitempty"`
	FontName      string `json:"fontname,omitempty"`
	Align         string `json:"align,omitempty"`
}

// TableCell is a grid position. Cells covered by a span of another cell are
// kept as empty placeholders.
type TableCell struct {
	ID      string     `json:"id"`
	Colspan int        `json:"colspan"`
	Rowspan int        `json:"rowspan"`
	Text    string     `json:"text"`
	Style   *CellStyle `json:"style,omitempty"`
}

// TableTheme controls header/footer highlighting.
type TableTheme struct {
	Color     string `json:"color"`
	RowHeader bool   `json:"rowHeader"`
	RowFooter bool   `json:"rowFooter"`
	ColHeader bool   `json:"colHeader"`
	ColFooter bool   `json:"colFooter"`
}

// Outline is a border specification.
type Outline struct {
	Width int    `json:"width"`
	Style string `json:"style"`
	Color string `json:"color"`
}

// TableElement is a rectangular cell grid.
type TableElement struct {
	Base
	Data          [][]TableCell `json:"data"`
	ColWidths     []float64     `json:"colWidths"`
	CellMinHeight float64       `json:"cellMinHeight"`
	Outline       Outline       `json:"outline"`
	Theme         *TableTheme   `json:"theme,omitempty"`
}

func (e *TableElement) Kind() ElementType { return ElementTable }

func (e *TableElement) Clone() Element {
	c := *e
	c.Data = make([][]TableCell, len(e.Data))
	for i, row := range e.Data {
		c.Data[i] = make([]TableCell, len(row))
		for j, cell := range row {
			if cell.Style != nil {
				st := *cell.Style
				cell.Style = &st
			}
			c.Data[i][j] = cell
		}
	}
	c.ColWidths = slices.Clone(e.ColWidths)
	if e.Theme != nil {
		th := *e.Theme
		c.Theme = &th
	}
	return &c
}

// Rows returns number of grid rows.
func (e *TableElement) Rows() int {
	return len(e.Data)
}

// Columns returns number of grid columns.
func (e *TableElement) Columns() int {
	if len(e.Data) == 0 {
		return 0
	}
	return len(e.Data[0])
}

// RawElement is an element kind the engine never modifies (lines, charts,
// formulas, media). Only the common fields are decoded.
type RawElement struct {
	Base
	Type ElementType
	raw  json.RawMessage
}

func (e *RawElement) Kind() ElementType { return e.Type }

func (e *RawElement) Clone() Element {
	c := *e
	c.raw = slices.Clone(e.raw)
	return &c
}
