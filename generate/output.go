package generate

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/gosimple/slug"

	"aippt/common"
	"aippt/config"
	"aippt/outline"
)

const defaultDeckName = "deck"

// Values are available for output name template expansion.
type Values struct {
	Context string
	Title   string
	Slides  int
	Seed    uint64
	Store   string
}

// NewValues collects template values for the generated deck. Title is taken
// from the first cover slide of the outline.
func NewValues(in []outline.Slide, generated int, seed uint64, kind common.StoreKind) Values {
	v := Values{
		Context: string(config.OutputNameTemplateFieldName),
		Slides:  generated,
		Seed:    seed,
		Store:   kind.String(),
	}
	for _, s := range in {
		if c, ok := s.(*outline.Cover); ok {
			v.Title = strings.TrimSpace(c.Title)
			break
		}
	}
	return v
}

func expandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	funcMap := sprig.FuncMap()
	funcMap["slug"] = slug.Make

	tmpl, err := template.New(string(name)).Funcs(funcMap).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

// OutputName returns deck file name relative to destination directory. Name
// template may produce subdirectories, every path segment is cleaned. When
// template is empty or fails the slug of the title is used.
func OutputName(nameTemplate string, values Values, kind common.StoreKind) (string, error) {
	var (
		expanded string
		err      error
	)
	if nameTemplate != "" {
		expanded, err = expandTemplate(config.OutputNameTemplateFieldName, nameTemplate, values)
	}

	segments := splitPath(filepath.FromSlash(expanded))
	if len(segments) == 0 {
		name := slug.Make(values.Title)
		if name == "" {
			name = defaultDeckName
		}
		segments = []string{name}
	}
	for i, s := range segments {
		segments[i] = config.CleanFileName(s)
	}
	segments[len(segments)-1] += kind.Ext()
	return filepath.Join(segments...), err
}

func splitPath(path string) []string {
	var segments []string
	for _, s := range strings.Split(path, string(os.PathSeparator)) {
		if s = strings.TrimSpace(s); s != "" && s != "." && s != ".." {
			segments = append(segments, s)
		}
	}
	return segments
}

// OutputPath resolves where generated deck goes. Explicit destination is
// used as is unless it is an existing directory, then generated name is put
// inside. Without destination generated name is put into working directory.
func OutputPath(dst, name string) (string, error) {
	if dst == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("unable to get working directory: %w", err)
		}
		return filepath.Join(wd, name), nil
	}
	dst, err := filepath.Abs(dst)
	if err != nil {
		return "", err
	}
	if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
		return filepath.Join(dst, name), nil
	}
	return dst, nil
}
