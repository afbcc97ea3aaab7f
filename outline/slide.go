// Package outline handles AI produced deck outlines: typed slide descriptors
// without any layout, their decoding and pagination.
package outline

import (
	"encoding/json"
	"errors"
	"fmt"

	"aippt/common"
)

var ErrUnknownSlideType = errors.New("unknown slide type")

// Slide is one of *Cover, *Contents, *Transition, *Content or *End.
type Slide interface {
	Type() common.SlideType
}

type Cover struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Contents is a table of contents. Offset is index of the first item in the
// complete list when slide is a continuation.
type Contents struct {
	Items  []string `json:"items"`
	Offset int      `json:"-"`
}

type Transition struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Item is a single point of a content slide. Table is HTML table markup,
// Image is an image reference.
type Item struct {
	Title string `json:"title,omitempty"`
	Text  string `json:"text,omitempty"`
	Table string `json:"table,omitempty"`
	Image string `json:"image,omitempty"`
}

type Content struct {
	Title  string `json:"title"`
	Items  []Item `json:"items"`
	Offset int    `json:"-"`
}

type End struct{}

func (*Cover) Type() common.SlideType      { return common.SlideTypeCover }
func (*Contents) Type() common.SlideType   { return common.SlideTypeContents }
func (*Transition) Type() common.SlideType { return common.SlideTypeTransition }
func (*Content) Type() common.SlideType    { return common.SlideTypeContent }
func (*End) Type() common.SlideType        { return common.SlideTypeEnd }

// Offset returns item offset of paginated slides, 0 for everything else.
func Offset(s Slide) int {
	switch v := s.(type) {
	case *Contents:
		return v.Offset
	case *Content:
		return v.Offset
	}
	return 0
}

// HasImages reports whether any item refers to an image.
func (c *Content) HasImages() bool {
	for _, it := range c.Items {
		if len(it.Image) > 0 {
			return true
		}
	}
	return false
}

// wire format: {"type": "...", "data": {...}, "offset": n}
type envelope struct {
	Type   string          `json:"type"`
	Data   json.RawMessage `json:"data,omitempty"`
	Offset int             `json:"offset,omitempty"`
}

// DecodeSlide decodes single slide descriptor.
func DecodeSlide(data []byte) (Slide, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("unable to decode slide: %w", err)
	}
	st, err := common.ParseSlideType(env.Type)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSlideType, env.Type)
	}

	var s Slide
	switch st {
	case common.SlideTypeCover:
		s = &Cover{}
	case common.SlideTypeContents:
		s = &Contents{Offset: env.Offset}
	case common.SlideTypeTransition:
		s = &Transition{}
	case common.SlideTypeContent:
		s = &Content{Offset: env.Offset}
	case common.SlideTypeEnd:
		return &End{}, nil
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, fmt.Errorf("%s slide without data", st)
	}
	if err := json.Unmarshal(env.Data, s); err != nil {
		return nil, fmt.Errorf("unable to decode %s slide data: %w", st, err)
	}
	return s, nil
}

// EncodeSlide produces wire representation of the slide.
func EncodeSlide(s Slide) ([]byte, error) {
	env := envelope{Type: s.Type().String(), Offset: Offset(s)}
	if _, ok := s.(*End); !ok {
		data, err := json.Marshal(s)
		if err != nil {
			return nil, err
		}
		env.Data = data
	}
	return json.Marshal(env)
}
