package imagepool

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	"github.com/maruel/natural"
	"github.com/srwiley/oksvg"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"aippt/archive"
)

const maxImageSize = 64 << 20

var imageExts = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp", ".svg"}

// LoadOptions controls how image references are produced.
type LoadOptions struct {
	// prefix for src of images loaded from directory or archive, relative
	// path of the image is appended
	BaseURL string
	// put image data into src as data URI instead of a reference
	Embed bool
}

// Load builds pool from a directory of images, a zip archive of images or a
// JSON list of {id, src, width, height} objects. Files which are not
// images are skipped.
func Load(src string, opts LoadOptions, log *zap.Logger) (Pool, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("images")

	info, err := os.Stat(src)
	if err != nil {
		return Pool{}, fmt.Errorf("unable to access image pool source: %w", err)
	}

	var items []Item
	switch {
	case info.IsDir():
		items, err = loadDir(src, opts, log)
	case strings.EqualFold(filepath.Ext(src), ".zip"):
		items, err = loadArchive(src, opts, log)
	case strings.EqualFold(filepath.Ext(src), ".json"):
		items, err = loadList(src)
	default:
		return Pool{}, fmt.Errorf("unsupported image pool source %q", src)
	}
	if err != nil {
		return Pool{}, err
	}
	log.Debug("Image pool loaded", zap.String("source", src), zap.Int("images", len(items)))
	return Pool{items: items}, nil
}

func loadList(src string) ([]Item, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("unable to read image list: %w", err)
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unable to decode image list: %w", err)
	}
	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		if it.ID == "" || it.Src == "" {
			return nil, fmt.Errorf("image list entry %d: id and src are required", i)
		}
		if _, ok := seen[it.ID]; ok {
			return nil, fmt.Errorf("image list entry %d: duplicate id %q", i, it.ID)
		}
		seen[it.ID] = struct{}{}
	}
	return items, nil
}

func loadDir(dir string, opts LoadOptions, log *zap.Logger) ([]Item, error) {
	var names []string
	err := filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !archive.Ext(imageExts...)(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to scan image directory: %w", err)
	}
	sort.Sort(natural.StringSlice(names))

	items := make([]Item, 0, len(names))
	for _, name := range names {
		full := filepath.Join(dir, filepath.FromSlash(name))
		if fi, err := os.Stat(full); err != nil || fi.Size() > maxImageSize {
			log.Warn("Skipping image", zap.String("file", full), zap.Error(err))
			continue
		}
		data, err := os.ReadFile(full)
		if err != nil {
			log.Warn("Unable to read image", zap.String("file", full), zap.Error(err))
			continue
		}
		it, err := describe(name, data, opts)
		if err != nil {
			log.Warn("Skipping image", zap.String("file", full), zap.Error(err))
			continue
		}
		if opts.BaseURL == "" && !opts.Embed {
			it.Src = full
		}
		items = append(items, it)
	}
	return items, nil
}

func loadArchive(src string, opts LoadOptions, log *zap.Logger) ([]Item, error) {
	var items []Item
	err := archive.Walk(src, archive.Ext(imageExts...), func(_ string, f *zip.File) error {
		data, err := archive.ReadFile(f, maxImageSize)
		if err != nil {
			log.Warn("Skipping image", zap.String("entry", f.Name), zap.Error(err))
			return nil
		}
		it, err := describe(f.Name, data, opts)
		if err != nil {
			log.Warn("Skipping image", zap.String("entry", f.Name), zap.Error(err))
			return nil
		}
		items = append(items, it)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("unable to read image archive: %w", err)
	}
	return items, nil
}

// describe makes pool item for image data stored under slash separated name.
func describe(name string, data []byte, opts LoadOptions) (Item, error) {
	var (
		w, h float64
		mime string
	)
	if strings.EqualFold(path.Ext(name), ".svg") {
		icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
		if err != nil {
			return Item{}, fmt.Errorf("unable to parse svg: %w", err)
		}
		w, h = icon.ViewBox.W, icon.ViewBox.H
		mime = "image/svg+xml"
	} else {
		if !filetype.IsImage(data) {
			return Item{}, fmt.Errorf("not an image")
		}
		kind, err := filetype.Match(data)
		if err != nil {
			return Item{}, err
		}
		// decoding whole image honors EXIF orientation
		img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
		if err != nil {
			return Item{}, fmt.Errorf("unable to decode image: %w", err)
		}
		w, h = float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
		mime = kind.MIME.Value
	}
	if w <= 0 || h <= 0 {
		return Item{}, fmt.Errorf("image has no size")
	}

	it := Item{ID: name, Width: w, Height: h}
	switch {
	case opts.Embed:
		it.Src = "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
	case opts.BaseURL != "":
		it.Src = strings.TrimSuffix(opts.BaseURL, "/") + "/" + name
	default:
		it.Src = name
	}
	return it, nil
}
