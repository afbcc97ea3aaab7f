package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"

	"aippt/slides"
)

// FileDeck keeps deck as JSON document {"slides": [...]}, the same shape
// template libraries are exported in.
type FileDeck struct {
	path string
}

func NewFileDeck(path string) *FileDeck {
	return &FileDeck{path: path}
}

// fileDoc is the deck document. Top level fields other than slides (title,
// theme, size) belong to the host presentation and are written back as read.
type fileDoc struct {
	Slides []*slides.Slide
	meta   map[string]json.RawMessage
}

func (doc *fileDoc) UnmarshalJSON(data []byte) error {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	if raw, ok := all["slides"]; ok {
		if err := json.Unmarshal(raw, &doc.Slides); err != nil {
			return err
		}
		delete(all, "slides")
	}
	doc.meta = all
	return nil
}

func (doc *fileDoc) MarshalJSON() ([]byte, error) {
	list := doc.Slides
	if list == nil {
		list = []*slides.Slide{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return nil, err
	}
	all := make(map[string]json.RawMessage, len(doc.meta)+1)
	maps.Copy(all, doc.meta)
	all["slides"] = data
	return json.Marshal(all)
}

// read returns deck document, missing file is an empty deck.
func (d *FileDeck) read(ctx context.Context) (*fileDoc, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc := &fileDoc{}
	data, err := os.ReadFile(d.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("unable to decode deck %q: %w", d.path, err)
	}
	return doc, nil
}

func (d *FileDeck) Slides(ctx context.Context) ([]*slides.Slide, error) {
	doc, err := d.read(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Slides, nil
}

// Replace keeps document metadata when existing file could be read, content
// which could not be decoded is replaced as a whole.
func (d *FileDeck) Replace(ctx context.Context, list []*slides.Slide) error {
	doc, err := d.read(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		doc = &fileDoc{}
	}
	doc.Slides = list
	return d.write(doc)
}

func (d *FileDeck) Append(ctx context.Context, list []*slides.Slide) error {
	doc, err := d.read(ctx)
	if err != nil {
		return err
	}
	doc.Slides = append(doc.Slides, list...)
	return d.write(doc)
}

func (d *FileDeck) Close() error {
	return nil
}

// write replaces the file atomically, so failed write never leaves half of
// a deck behind.
func (d *FileDeck) write(doc *fileDoc) (err error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to encode deck: %w", err)
	}

	dir := filepath.Dir(d.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(d.path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), d.path)
}
