// Package imagepool keeps images available for filling picture slots during
// a single generation run. Every image is handed out at most once.
package imagepool

import (
	"math/rand/v2"
	"slices"

	"aippt/slides"
)

// Item is a single pool image.
type Item struct {
	ID     string  `json:"id"`
	Src    string  `json:"src"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type orientation int

const (
	square orientation = iota
	landscape
	portrait
)

func classify(w, h float64) orientation {
	switch {
	case w == h:
		return square
	case w > h:
		return landscape
	}
	return portrait
}

// matches reports whether image suits slot orientation. Square images are
// acceptable for portrait slots too.
func (o orientation) matches(it Item) bool {
	switch o {
	case square:
		return it.Width == it.Height
	case landscape:
		return it.Width > it.Height
	}
	return it.Width <= it.Height
}

// Pool is an immutable set of images. Operations return new pools and never
// modify the receiver, so the zero value is an empty pool.
type Pool struct {
	items []Item
}

func New(items []Item) Pool {
	return Pool{items: slices.Clone(items)}
}

func (p Pool) Len() int {
	return len(p.items)
}

func (p Pool) Items() []Item {
	return slices.Clone(p.items)
}

// Allocate picks random image best suiting slot orientation and returns it
// together with the pool without it. When pool is empty ok is false and pool
// is returned unchanged.
func (p Pool) Allocate(slotW, slotH float64, rnd *rand.Rand) (item Item, rest Pool, ok bool) {
	if len(p.items) == 0 {
		return Item{}, p, false
	}

	o := classify(slotW, slotH)
	candidates := make([]int, 0, len(p.items))
	for i, it := range p.items {
		if o.matches(it) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		for i := range p.items {
			candidates = append(candidates, i)
		}
	}

	idx := candidates[rnd.IntN(len(candidates))]
	item = p.items[idx]

	remaining := make([]Item, 0, len(p.items)-1)
	remaining = append(remaining, p.items[:idx]...)
	remaining = append(remaining, p.items[idx+1:]...)
	return item, Pool{items: remaining}, true
}

// Crop computes cover fit of the image into slot: image is scaled to cover
// the slot completely and excess is cut evenly from both sides. Result is the
// visible rectangle in percents of the image.
func Crop(imgW, imgH, slotW, slotH float64) [2][2]float64 {
	full := [2][2]float64{{0, 0}, {100, 100}}
	if imgW <= 0 || imgH <= 0 || slotW <= 0 || slotH <= 0 {
		return full
	}

	if imgW/imgH >= slotW/slotH {
		scale := imgH / slotH
		w := imgW / scale
		diff := (w - slotW) / 2 / w * 100
		return [2][2]float64{{diff, 0}, {100 - diff, 100}}
	}
	scale := imgW / slotW
	h := imgH / scale
	diff := (h - slotH) / 2 / h * 100
	return [2][2]float64{{0, diff}, {100, 100 - diff}}
}

// Fill replaces picture of the image slot with an image from the pool. Slot
// is left untouched when pool is empty. Returned element is always a copy.
func (p Pool) Fill(el *slides.ImageElement, rnd *rand.Rand) (*slides.ImageElement, Pool) {
	out := el.Clone().(*slides.ImageElement)
	item, rest, ok := p.Allocate(el.Width, el.Height, rnd)
	if !ok {
		return out, p
	}

	shape := "rect"
	if el.Clip != nil && el.Clip.Shape != "" {
		shape = el.Clip.Shape
	}
	out.Src = item.Src
	out.Clip = &slides.ImageClip{
		Range: Crop(item.Width, item.Height, el.Width, el.Height),
		Shape: shape,
	}
	return out, rest
}
