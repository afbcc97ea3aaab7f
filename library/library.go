// Package library keeps slide templates grouped by category and selects the
// ones best matching the amount of content.
package library

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"aippt/common"
	"aippt/slides"
)

// ErrEmptyCategory is returned when there is no template for the slide type
// the outline needs.
var ErrEmptyCategory = errors.New("no templates in category")

// Template is a template slide with its slot inventory computed once.
type Template struct {
	Slide  *slides.Slide
	Groups slides.GroupIndex

	roles map[slides.SlotRole]int
}

func NewTemplate(s *slides.Slide) *Template {
	return &Template{
		Slide:  s,
		Groups: slides.BuildGroupIndex(s.Elements),
		roles:  slides.CountRoles(s.Elements),
	}
}

// Count returns number of slots with role.
func (t *Template) Count(role slides.SlotRole) int {
	return t.roles[role]
}

// Library holds templates by category in the order they were loaded.
type Library struct {
	categories map[common.SlideType][]*Template
}

// New groups template slides by type. Slides with unknown type are skipped.
func New(templates []*slides.Slide, log *zap.Logger) *Library {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("library")

	lib := &Library{categories: make(map[common.SlideType][]*Template)}
	for i, s := range templates {
		st, err := common.ParseSlideType(s.Type)
		if err != nil {
			log.Warn("Skipping template of unknown type", zap.Int("index", i), zap.String("id", s.ID), zap.String("type", s.Type))
			continue
		}
		lib.categories[st] = append(lib.categories[st], NewTemplate(s))
	}
	for _, st := range common.SlideTypesInOrder() {
		log.Debug("Templates loaded", zap.Stringer("category", st), zap.Int("count", len(lib.categories[st])))
	}
	return lib
}

// Load reads template library: either JSON array of slides or an object
// with "slides" array in it (presentation export).
func Load(r io.Reader, log *zap.Logger) (*Library, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read templates: %w", err)
	}

	var list []*slides.Slide
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		var doc struct {
			Slides []*slides.Slide `json:"slides"`
		}
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("unable to decode templates: %w", err)
		}
		list = doc.Slides
	} else if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, fmt.Errorf("unable to decode templates: %w", err)
	}
	return New(list, log), nil
}

// LoadFile reads template library from file.
func LoadFile(path string, log *zap.Logger) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open templates: %w", err)
	}
	defer f.Close()

	return Load(f, log)
}

// Category returns templates of slide type in library order.
func (l *Library) Category(st common.SlideType) []*Template {
	return l.categories[st]
}

// Check makes sure every requested category has templates. All missing
// categories are reported at once.
func (l *Library) Check(types ...common.SlideType) (err error) {
	seen := make(map[common.SlideType]bool, len(types))
	for _, st := range types {
		if seen[st] {
			continue
		}
		seen[st] = true
		if len(l.categories[st]) == 0 {
			err = multierr.Append(err, fmt.Errorf("%s: %w", st, ErrEmptyCategory))
		}
	}
	return err
}
