package slides

import (
	"encoding/json"
	"fmt"
)

// JSON handling keeps fields we do not model, so templates survive the
// round trip through the engine with all their styling intact.

var (
	baseKeys      = []string{"id", "type", "left", "top", "width", "height", "rotate", "groupId"}
	textKeys      = append([]string{"content", "textType", "lineHeight"}, baseKeys...)
	shapeKeys     = append([]string{"text"}, baseKeys...)
	shapeTextKeys = []string{"content", "type", "defaultFontName", "defaultColor", "align"}
	imageKeys     = append([]string{"src", "imageType", "fixedRatio", "clip", "filters"}, baseKeys...)
	tableKeys     = append([]string{"data", "colWidths", "cellMinHeight", "outline", "theme"}, baseKeys...)
	slideKeys     = []string{"id", "type", "elements"}
)

// splitFields decodes data into v and returns fields v does not know about.
func splitFields(data []byte, v any, known []string) (map[string]json.RawMessage, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(all, k)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

// joinFields encodes v and puts back fields preserved by splitFields.
func joinFields(v any, extra map[string]json.RawMessage) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return data, err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for k, val := range extra {
		if _, ok := all[k]; !ok {
			all[k] = val
		}
	}
	return json.Marshal(all)
}

type (
	textJSON      TextElement
	shapeJSON     ShapeElement
	shapeTextJSON ShapeText
	imageJSON     ImageElement
	tableJSON     TableElement
)

type typeTag struct {
	Type ElementType `json:"type"`
}

func (e *TextElement) MarshalJSON() ([]byte, error) {
	return joinFields(struct {
		typeTag
		*textJSON
	}{typeTag{ElementText}, (*textJSON)(e)}, e.extra)
}

func (e *TextElement) UnmarshalJSON(data []byte) (err error) {
	e.extra, err = splitFields(data, (*textJSON)(e), textKeys)
	return err
}

func (e *ShapeElement) MarshalJSON() ([]byte, error) {
	return joinFields(struct {
		typeTag
		*shapeJSON
	}{typeTag{ElementShape}, (*shapeJSON)(e)}, e.extra)
}

func (e *ShapeElement) UnmarshalJSON(data []byte) (err error) {
	e.extra, err = splitFields(data, (*shapeJSON)(e), shapeKeys)
	return err
}

func (t *ShapeText) MarshalJSON() ([]byte, error) {
	return joinFields((*shapeTextJSON)(t), t.extra)
}

func (t *ShapeText) UnmarshalJSON(data []byte) (err error) {
	t.extra, err = splitFields(data, (*shapeTextJSON)(t), shapeTextKeys)
	return err
}

func (e *ImageElement) MarshalJSON() ([]byte, error) {
	return joinFields(struct {
		typeTag
		*imageJSON
	}{typeTag{ElementImage}, (*imageJSON)(e)}, e.extra)
}

func (e *ImageElement) UnmarshalJSON(data []byte) (err error) {
	e.extra, err = splitFields(data, (*imageJSON)(e), imageKeys)
	return err
}

func (e *TableElement) MarshalJSON() ([]byte, error) {
	return joinFields(struct {
		typeTag
		*tableJSON
	}{typeTag{ElementTable}, (*tableJSON)(e)}, e.extra)
}

func (e *TableElement) UnmarshalJSON(data []byte) (err error) {
	e.extra, err = splitFields(data, (*tableJSON)(e), tableKeys)
	return err
}

func (e *RawElement) MarshalJSON() ([]byte, error) {
	if len(e.raw) == 0 {
		return json.Marshal(struct {
			typeTag
			*Base
		}{typeTag{e.Type}, &e.Base})
	}
	return e.raw, nil
}

func (e *RawElement) UnmarshalJSON(data []byte) error {
	var tag typeTag
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}
	if err := json.Unmarshal(data, &e.Base); err != nil {
		return err
	}
	e.Type = tag.Type
	e.raw = append(json.RawMessage(nil), data...)
	return nil
}

// DecodeElement decodes single element selecting concrete type by its "type"
// field.
func DecodeElement(data []byte) (Element, error) {
	var tag typeTag
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, fmt.Errorf("unable to decode element type: %w", err)
	}

	var el Element
	switch tag.Type {
	case ElementText:
		el = &TextElement{}
	case ElementShape:
		el = &ShapeElement{}
	case ElementImage:
		el = &ImageElement{}
	case ElementTable:
		el = &TableElement{}
	case "":
		return nil, fmt.Errorf("element without type")
	default:
		el = &RawElement{}
	}
	if err := json.Unmarshal(data, el); err != nil {
		return nil, fmt.Errorf("unable to decode %s element: %w", tag.Type, err)
	}
	return el, nil
}
