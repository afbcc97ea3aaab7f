// Package fitter sizes replacement text so it fits text boxes of the
// templates and writes it into their rich-text markup.
package fitter

import (
	"math"
	"unicode/utf8"

	"go.uber.org/zap"

	"aippt/css"
)

const (
	DefaultMinSize = 10
	DefaultSize    = 16
	DefaultFamily  = "Microsoft Yahei"

	// sizes above are decreased faster
	coarseStepAbove = 22
)

// Fitter computes font sizes using supplied Measurer.
type Fitter struct {
	log     *zap.Logger
	m       Measurer
	css     *css.Parser
	minSize float64
}

// New creates Fitter. Non positive minSize selects DefaultMinSize.
func New(m Measurer, minSize float64, log *zap.Logger) *Fitter {
	if log == nil {
		log = zap.NewNop()
	}
	if minSize <= 0 {
		minSize = DefaultMinSize
	}
	return &Fitter{
		log:     log.Named("fitter"),
		m:       m,
		css:     css.NewParser(log),
		minSize: minSize,
	}
}

// MinSize returns the smallest size Fitter ever returns for boxes bigger
// than it.
func (f *Fitter) MinSize() float64 {
	return f.minSize
}

// Size returns the largest font size not bigger than size at which text
// takes at most maxLine lines of the given width. Sizes are tried in 2px
// steps above 22px and 1px steps below, when nothing fits the minimal size
// is returned. Sizes already below minimum are returned unchanged.
func (f *Fitter) Size(text string, size float64, family string, width float64, maxLine int) float64 {
	if size < f.minSize {
		return size
	}
	if width <= 0 {
		return f.minSize
	}
	for s := size; s >= f.minSize; {
		lines := math.Ceil(f.m.Measure(text, s, family) / width)
		if lines <= float64(maxLine) {
			return s
		}
		if s > coarseStepAbove {
			s -= 2
		} else {
			s--
		}
	}
	return f.minSize
}

// Request describes a single text replacement.
type Request struct {
	Markup  string  // current rich-text content of the box
	Width   float64 // usable width of the box
	MaxLine int
	Text    string // replacement
	// when not empty it is measured instead of Text, so sibling boxes get
	// the same size
	LongestText string
	// keep two digit numbering ("01") when Text is a single digit
	DigitPadding bool
}

// Result of the fit.
type Result struct {
	Markup string
	Size   float64
}

// Fit sizes and replaces the text. It never fails: markup which could not be
// processed is returned as is with the computed size.
func (f *Fitter) Fit(req Request) Result {
	size, family := f.FontInfo(req.Markup)

	measured := req.Text
	if len(req.LongestText) > 0 {
		measured = req.LongestText
	}
	newSize := f.Size(measured, size, family, req.Width, req.MaxLine)

	markup, err := f.rewrite(req.Markup, req.Text, newSize, req.DigitPadding)
	if err != nil {
		f.log.Warn("Unable to rewrite markup, keeping original", zap.String("markup", req.Markup), zap.Error(err))
		markup = req.Markup
	}

	f.log.Debug("Text fitted",
		zap.String("text", req.Text),
		zap.String("family", family),
		zap.Float64("from", size),
		zap.Float64("to", newSize),
		zap.Float64("width", req.Width),
		zap.Int("lines", req.MaxLine),
	)
	return Result{Markup: markup, Size: newSize}
}

// PadDigits returns replacement for the first text run: single character
// replacing two character placeholder gets leading zero.
func PadDigits(placeholder, text string) string {
	if utf8.RuneCountInString(placeholder) == 2 && utf8.RuneCountInString(text) == 1 {
		return "0" + text
	}
	return text
}
