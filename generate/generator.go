// Package generate fills slide templates with outline content producing
// ready to use deck.
package generate

import (
	"fmt"

	"go.uber.org/zap"

	"aippt/common"
	"aippt/fitter"
	"aippt/library"
	"aippt/outline"
	"aippt/slides"
	"aippt/table"
)

// Options describe slide geometry the templates were designed for.
type Options struct {
	SlideWidth  float64
	SlideHeight float64
	// inner padding of text boxes on each side
	BoxPadding float64
}

func DefaultOptions() Options {
	return Options{SlideWidth: 1000, SlideHeight: 562.5, BoxPadding: 10}
}

// Generator assembles slides. It is stateless, run state lives in Context.
type Generator struct {
	log    *zap.Logger
	lib    *library.Library
	fitter *fitter.Fitter
	tables *table.Builder
	opts   Options
}

func New(lib *library.Library, f *fitter.Fitter, tables *table.Builder, opts Options, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	if tables == nil {
		tables = table.NewBuilder(nil, log)
	}
	def := DefaultOptions()
	if opts.SlideWidth <= 0 {
		opts.SlideWidth = def.SlideWidth
	}
	if opts.SlideHeight <= 0 {
		opts.SlideHeight = def.SlideHeight
	}
	if opts.BoxPadding < 0 {
		opts.BoxPadding = def.BoxPadding
	}
	return &Generator{
		log:    log.Named("generate"),
		lib:    lib,
		fitter: f,
		tables: tables,
		opts:   opts,
	}
}

// Generate produces deck for the outline. Oversized slides are paginated
// first. Categories required by the outline are checked before anything is
// assembled, so either the whole deck is produced or nothing.
func (g *Generator) Generate(ctx Context, in []outline.Slide) ([]*slides.Slide, Context, error) {
	expanded := outline.Paginate(in)

	needed := make([]common.SlideType, 0, len(expanded))
	for _, s := range expanded {
		needed = append(needed, s.Type())
	}
	if err := g.lib.Check(needed...); err != nil {
		return nil, ctx, fmt.Errorf("unable to generate deck: %w", err)
	}
	g.log.Debug("Outline paginated", zap.Int("slides", len(in)), zap.Int("expanded", len(expanded)))

	deck := make([]*slides.Slide, 0, len(expanded))
	for i, s := range expanded {
		var (
			out *slides.Slide
			err error
		)
		switch v := s.(type) {
		case *outline.Cover:
			out, ctx, err = g.cover(ctx, v)
		case *outline.Contents:
			out, ctx, err = g.contents(ctx, v)
		case *outline.Transition:
			out, ctx, err = g.transition(ctx, v)
		case *outline.Content:
			out, ctx, err = g.content(ctx, v)
		case *outline.End:
			out, ctx, err = g.end(ctx)
		default:
			err = fmt.Errorf("%T: %w", s, outline.ErrUnknownSlideType)
		}
		if err != nil {
			return nil, ctx, fmt.Errorf("unable to assemble slide %d (%s): %w", i, s.Type(), err)
		}
		g.log.Debug("Slide assembled",
			zap.Int("index", i),
			zap.Stringer("type", s.Type()),
			zap.String("id", out.ID),
			zap.Int("elements", len(out.Elements)),
			zap.Int("pool", ctx.Pool.Len()),
		)
		deck = append(deck, out)
	}
	return deck, ctx, nil
}

// choose selects random template among candidates.
func (g *Generator) choose(ctx Context, candidates []*library.Template) *library.Template {
	t := candidates[ctx.pick(len(candidates))]
	g.log.Debug("Template chosen", zap.String("template", t.Slide.ID), zap.Int("candidates", len(candidates)))
	return t
}

func (g *Generator) random(ctx Context, st common.SlideType) (*library.Template, error) {
	candidates := g.lib.Category(st)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%s: %w", st, library.ErrEmptyCategory)
	}
	return g.choose(ctx, candidates), nil
}

func (g *Generator) selected(ctx Context, st common.SlideType, n int, role slides.SlotRole, figures bool) (*library.Template, error) {
	candidates, err := library.Select(g.lib.Category(st), n, role)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", st, err)
	}
	if figures {
		candidates = library.PreferFigures(candidates)
	}
	return g.choose(ctx, candidates), nil
}

// emit creates output slide from the template keeping its metadata.
func emit(t *library.Template, elements []slides.Element) *slides.Slide {
	return t.Slide.Derive(slides.NewID(), elements)
}
