package outline

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Decode reads complete outline. Accepted forms are a JSON array of slide
// descriptors or a stream of descriptors (one object per line, possibly
// separated by blank lines), both optionally wrapped into a ```json fence.
func Decode(r io.Reader) ([]Slide, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read outline: %w", err)
	}
	data = bytes.TrimSpace([]byte(ExtractJSON(string(data))))
	if len(data) == 0 {
		return nil, errors.New("outline is empty")
	}

	var raws []json.RawMessage
	if data[0] == '[' {
		if err := json.Unmarshal(data, &raws); err != nil {
			return nil, fmt.Errorf("unable to decode outline: %w", err)
		}
	} else {
		dec := json.NewDecoder(bytes.NewReader(data))
		for {
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				return nil, fmt.Errorf("unable to decode outline slide %d: %w", len(raws), err)
			}
			raws = append(raws, raw)
		}
	}

	out := make([]Slide, 0, len(raws))
	for i, raw := range raws {
		s, err := DecodeSlide(raw)
		if err != nil {
			return nil, fmt.Errorf("outline slide %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}
