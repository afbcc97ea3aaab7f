package fitter

import (
	"golang.org/x/text/width"
)

// Measurer returns width in pixels of the text set in a single line with the
// given font size (px) and family.
type Measurer interface {
	Measure(text string, size float64, family string) float64
}

// MeasureFunc adapts plain function to Measurer.
type MeasureFunc func(text string, size float64, family string) float64

func (f MeasureFunc) Measure(text string, size float64, family string) float64 {
	return f(text, size, family)
}

// EstimateMeasurer does not look at fonts at all: East Asian wide runes take
// full em, everything else a bit more than half of it. Results are stable
// across machines.
type EstimateMeasurer struct{}

const (
	wideAdvance   = 1.0
	narrowAdvance = 0.55
	spaceAdvance  = 0.3
)

func (EstimateMeasurer) Measure(text string, size float64, _ string) float64 {
	var em float64
	for _, r := range text {
		em += estimateAdvance(r)
	}
	return em * size
}

// estimateAdvance returns rune advance in ems.
func estimateAdvance(r rune) float64 {
	if isWide(r) {
		return wideAdvance
	}
	if r == ' ' {
		return spaceAdvance
	}
	return narrowAdvance
}

func isWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}
