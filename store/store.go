// Package store hands generated slides to the deck they belong to.
package store

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"aippt/common"
	"aippt/slides"
)

// Deck is the host presentation receiving generated slides.
type Deck interface {
	Slides(ctx context.Context) ([]*slides.Slide, error)
	// Replace drops everything in the deck and stores slides instead.
	Replace(ctx context.Context, list []*slides.Slide) error
	// Append adds slides after existing ones.
	Append(ctx context.Context, list []*slides.Slide) error
}

// Store is a Deck holding resources.
type Store interface {
	Deck
	io.Closer
}

// Mode tells how generated slides went into the deck.
type Mode int

const (
	ModeAppend Mode = iota
	ModeReplace
)

func (m Mode) String() string {
	if m == ModeReplace {
		return "replace"
	}
	return "append"
}

// Commit stores generated slides. Deck consisting of a single blank slide (a
// freshly created presentation) is replaced, anything else is appended to.
func Commit(ctx context.Context, d Deck, generated []*slides.Slide, log *zap.Logger) (Mode, error) {
	if log == nil {
		log = zap.NewNop()
	}

	current, err := d.Slides(ctx)
	if err != nil {
		return ModeAppend, fmt.Errorf("unable to read deck: %w", err)
	}

	mode := ModeAppend
	if len(current) == 1 && current[0].IsEmpty() {
		mode = ModeReplace
	}

	switch mode {
	case ModeReplace:
		err = d.Replace(ctx, generated)
	default:
		err = d.Append(ctx, generated)
	}
	if err != nil {
		return mode, fmt.Errorf("unable to %s slides: %w", mode, err)
	}
	log.Named("store").Debug("Slides committed", zap.Stringer("mode", mode), zap.Int("before", len(current)), zap.Int("added", len(generated)))
	return mode, nil
}

// Overwrite stores generated slides in place of whatever deck holds. Stores
// replace content atomically, so failure leaves previous deck intact.
func Overwrite(ctx context.Context, d Deck, generated []*slides.Slide, log *zap.Logger) (Mode, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := d.Replace(ctx, generated); err != nil {
		return ModeReplace, fmt.Errorf("unable to replace slides: %w", err)
	}
	log.Named("store").Debug("Slides committed", zap.Stringer("mode", ModeReplace), zap.Int("added", len(generated)))
	return ModeReplace, nil
}

// Open opens deck store of requested kind, creating it when necessary.
func Open(kind common.StoreKind, path string) (Store, error) {
	switch kind {
	case common.StoreKindJson:
		return NewFileDeck(path), nil
	case common.StoreKindSqlite:
		return OpenSQLiteDeck(path)
	default:
		return nil, fmt.Errorf("unsupported store kind %s", kind)
	}
}
