package fitter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/width"
)

const (
	maxFontScanDepth = 3
	maxFontFileSize  = 20 << 20
)

// aliases of common CJK family names, keys are folded and lowercased
var familyAliases = map[string]string{
	"宋体":   "simsun",
	"黑体":   "simhei",
	"微软雅黑": "microsoft yahei",
	"楷体":   "kaiti",
	"仿宋":   "fangsong",
	"新宋体":  "nsimsun",
	"等线":   "dengxian",
}

// FontMeasurer measures text with real font metrics. Fonts are loaded from
// the directories given at creation, Go Regular is used for families which
// were not found. Runes missing from the face are estimated.
// Not safe for concurrent use.
type FontMeasurer struct {
	log      *zap.Logger
	fonts    map[string]*opentype.Font
	fallback *opentype.Font
	buf      sfnt.Buffer
}

// NewFontMeasurer scans dirs (recursively, few levels deep) for .ttf, .otf,
// .ttc and .otc files.
func NewFontMeasurer(log *zap.Logger, dirs ...string) (*FontMeasurer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	fallback, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("unable to parse fallback font: %w", err)
	}
	m := &FontMeasurer{
		log:      log.Named("fonts"),
		fonts:    make(map[string]*opentype.Font),
		fallback: fallback,
	}
	for _, dir := range dirs {
		m.scanDir(dir, 0)
	}
	m.log.Debug("Fonts loaded", zap.Int("names", len(m.fonts)), zap.Strings("dirs", dirs))
	return m, nil
}

// SystemFontDirs returns OS specific font directories.
func SystemFontDirs() []string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		dirs := []string{filepath.Join(windir, "Fonts")}
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
		return dirs
	case "darwin":
		dirs := []string{"/System/Library/Fonts", "/Library/Fonts"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
		return dirs
	default:
		dirs := []string{"/usr/share/fonts", "/usr/local/share/fonts"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".local", "share", "fonts"), filepath.Join(home, ".fonts"))
		}
		return dirs
	}
}

// Measure implements Measurer.
func (m *FontMeasurer) Measure(text string, size float64, family string) float64 {
	f, ok := m.lookup(family)
	if !ok {
		f = m.fallback
	}
	ppem := fixed.Int26_6(size * 64)

	var (
		total fixed.Int26_6
		prev  sfnt.GlyphIndex
	)
	for _, r := range text {
		x, err := f.GlyphIndex(&m.buf, r)
		if err != nil || x == 0 {
			total += fixed.Int26_6(estimateAdvance(r) * size * 64)
			prev = 0
			continue
		}
		adv, err := f.GlyphAdvance(&m.buf, x, ppem, font.HintingNone)
		if err != nil {
			total += fixed.Int26_6(estimateAdvance(r) * size * 64)
			prev = 0
			continue
		}
		if prev != 0 {
			// fonts without kern table report an error here
			if k, err := f.Kern(&m.buf, prev, x, ppem, font.HintingNone); err == nil {
				total += k
			}
		}
		total += adv
		prev = x
	}
	return float64(total) / 64
}

// HasFamily reports whether font for the family was loaded.
func (m *FontMeasurer) HasFamily(family string) bool {
	_, ok := m.lookup(family)
	return ok
}

// lookup accepts CSS family lists, first known family wins.
func (m *FontMeasurer) lookup(family string) (*opentype.Font, bool) {
	for name := range strings.SplitSeq(family, ",") {
		key := normalizeFamily(name)
		if f, ok := m.fonts[key]; ok {
			return f, true
		}
		if alias, ok := familyAliases[key]; ok {
			if f, ok := m.fonts[alias]; ok {
				return f, true
			}
		}
	}
	return nil, false
}

func normalizeFamily(name string) string {
	name = strings.Trim(strings.TrimSpace(name), `"'`)
	return strings.ToLower(width.Fold.String(name))
}

func (m *FontMeasurer) scanDir(dir string, depth int) {
	if depth > maxFontScanDepth {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		m.log.Debug("Unable to read font directory", zap.String("dir", dir), zap.Error(err))
		return
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			m.scanDir(path, depth+1)
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".ttf" && ext != ".otf" && ext != ".ttc" && ext != ".otc" {
			continue
		}
		if info, err := entry.Info(); err != nil || info.Size() > maxFontFileSize {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			m.log.Debug("Unable to read font", zap.String("path", path), zap.Error(err))
			continue
		}
		if err := m.load(data, ext == ".ttc" || ext == ".otc"); err != nil {
			m.log.Debug("Unable to parse font", zap.String("path", path), zap.Error(err))
		}
	}
}

func (m *FontMeasurer) load(data []byte, collection bool) error {
	if !collection {
		f, err := opentype.Parse(data)
		if err != nil {
			return err
		}
		m.register(f)
		return nil
	}
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return err
	}
	for i := range coll.NumFonts() {
		f, err := coll.Font(i)
		if err != nil {
			return err
		}
		m.register(f)
	}
	return nil
}

// register makes font available by its family and full names.
func (m *FontMeasurer) register(f *opentype.Font) {
	var buf sfnt.Buffer
	for _, id := range []sfnt.NameID{sfnt.NameIDFamily, sfnt.NameIDFull} {
		name, err := f.Name(&buf, id)
		if err != nil || name == "" {
			continue
		}
		key := normalizeFamily(name)
		if _, ok := m.fonts[key]; !ok {
			m.fonts[key] = f
		}
	}
}
