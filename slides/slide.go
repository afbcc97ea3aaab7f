package slides

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Slide is a template slide or a generated one. Background, animations,
// notes and other presentation metadata are carried through untouched.
type Slide struct {
	ID       string
	Type     string
	Elements []Element

	extra map[string]json.RawMessage
}

// Derive creates new slide with the same metadata as s, but with provided id
// and elements.
func (s *Slide) Derive(id string, elements []Element) *Slide {
	return &Slide{
		ID:       id,
		Type:     s.Type,
		Elements: elements,
		extra:    s.extra,
	}
}

// IsEmpty reports whether slide has nothing on it.
func (s *Slide) IsEmpty() bool {
	return len(s.Elements) == 0
}

type slideJSON struct {
	ID       string            `json:"id"`
	Type     string            `json:"type,omitempty"`
	Elements []json.RawMessage `json:"elements"`
}

func (s *Slide) MarshalJSON() ([]byte, error) {
	out := slideJSON{
		ID:       s.ID,
		Type:     s.Type,
		Elements: make([]json.RawMessage, 0, len(s.Elements)),
	}
	for _, el := range s.Elements {
		data, err := json.Marshal(el)
		if err != nil {
			return nil, fmt.Errorf("unable to encode element %q: %w", el.Frame().ID, err)
		}
		out.Elements = append(out.Elements, data)
	}
	return joinFields(out, s.extra)
}

func (s *Slide) UnmarshalJSON(data []byte) error {
	var in slideJSON
	extra, err := splitFields(data, &in, slideKeys)
	if err != nil {
		return err
	}
	elements := make([]Element, 0, len(in.Elements))
	for i, raw := range in.Elements {
		el, err := DecodeElement(raw)
		if err != nil {
			return fmt.Errorf("slide %q element %d: %w", in.ID, i, err)
		}
		elements = append(elements, el)
	}
	*s = Slide{ID: in.ID, Type: in.Type, Elements: elements, extra: extra}
	return nil
}

// NewID returns fresh unique identifier for slides, elements and cells.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// clock went wrong, random identifier is still unique
		return uuid.NewString()
	}
	return id.String()
}
