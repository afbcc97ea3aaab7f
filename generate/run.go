package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"slices"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"aippt/common"
	"aippt/config"
	"aippt/fitter"
	"aippt/imagepool"
	"aippt/library"
	"aippt/outline"
	"aippt/slides"
	"aippt/state"
	"aippt/store"
	"aippt/table"
)

// Inputs are the files generation works from. Images is optional.
type Inputs struct {
	Templates string
	Outline   string
	Images    string
}

// Run is the action of generate command.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	in := Inputs{
		Templates: cmd.String("templates"),
		Outline:   cmd.String("outline"),
		Images:    cmd.String("images"),
	}
	if len(in.Templates) == 0 {
		return errors.New("no template library has been specified")
	}
	if len(in.Outline) == 0 {
		return errors.New("no outline has been specified")
	}

	env.Overwrite = cmd.Bool("overwrite")
	if cmd.IsSet("seed") {
		env.Seed = cmd.Uint64("seed")
	}
	if cmd.IsSet("store") {
		kind, err := common.ParseStoreKind(cmd.String("store"))
		if err != nil {
			log.Warn("Unknown store requested, using configured one", zap.Stringer("store", env.Cfg.Store.Kind), zap.Error(err))
		} else {
			env.Cfg.Store.Kind = kind
		}
	}

	dst := cmd.Args().Get(0)
	if cmd.Args().Len() > 1 {
		log.Warn("Mailformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	log.Info("Processing starting", zap.String("templates", in.Templates), zap.String("outline", in.Outline), zap.String("images", in.Images))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	_, err := Process(ctx, env, in, dst, log)
	return err
}

// Process generates deck from inputs and commits it to the store at dst.
// Returns path of the deck store.
func Process(ctx context.Context, env *state.LocalEnv, in Inputs, dst string, log *zap.Logger) (out string, rerr error) {
	if log == nil {
		log = zap.NewNop()
	}
	cfg := &env.Cfg.Generation
	kind := env.Cfg.Store.Kind

	defer func() {
		// malformed templates may trip something deep inside, report it
		// properly instead of crashing
		if r := recover(); r != nil {
			log.Error("Generation ended with panic", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("generation panic: %v", r)
		}
	}()

	storeInput(env.Rpt, "input/templates", in.Templates, log)
	storeInput(env.Rpt, "input/outline", in.Outline, log)

	lib, err := library.LoadFile(in.Templates, log)
	if err != nil {
		return "", err
	}

	outlineSlides, err := readOutline(in.Outline)
	if err != nil {
		return "", err
	}

	var pool imagepool.Pool
	if len(in.Images) > 0 {
		if pool, err = imagepool.Load(in.Images, imagepool.LoadOptions{BaseURL: cfg.Images.BaseURL, Embed: cfg.Images.Embed}, log); err != nil {
			return "", err
		}
		log.Debug("Image pool loaded", zap.Int("images", pool.Len()))
	}

	gen := New(lib,
		fitter.New(newMeasurer(&cfg.Text, log), cfg.Text.MinFontSize, log),
		table.NewBuilder(nil, log),
		Options{SlideWidth: cfg.Slide.Width, SlideHeight: cfg.Slide.Height, BoxPadding: cfg.Text.BoxPadding},
		log)

	gctx, seed := NewContext(pool, env.GenerationSeed())
	log.Info("Generating deck", zap.Int("outline", len(outlineSlides)), zap.Uint64("seed", seed))

	deck, gctx, err := gen.Generate(gctx, outlineSlides)
	if err != nil {
		return "", err
	}
	log.Debug("Deck generated", zap.Int("slides", len(deck)), zap.Int("images left", gctx.Pool.Len()))
	env.Rpt.StoreData("deck.txt", []byte(slides.Dump(deck)))

	name, err := OutputName(cfg.OutputNameTemplate, NewValues(outlineSlides, len(deck), seed, kind), kind)
	if err != nil {
		log.Warn("Unable to prepare output filename, using default", zap.String("name", name), zap.Error(err))
	}
	if out, err = OutputPath(dst, name); err != nil {
		return "", err
	}
	if err := prepareDestination(out, env.Overwrite, log); err != nil {
		return "", err
	}

	mode, err := commit(ctx, kind, out, deck, env.Overwrite, log)
	if err != nil {
		return "", err
	}
	env.Rpt.Store("result"+kind.Ext(), out)

	log.Info("Deck saved", zap.String("to", out), zap.Stringer("mode", mode), zap.Int("slides", len(deck)))
	return out, nil
}

func commit(ctx context.Context, kind common.StoreKind, path string, deck []*slides.Slide, overwrite bool, log *zap.Logger) (mode store.Mode, err error) {
	st, err := store.Open(kind, path)
	if err != nil {
		return mode, fmt.Errorf("unable to open deck store: %w", err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(st))

	if overwrite {
		return store.Overwrite(ctx, st, deck, log)
	}
	return store.Commit(ctx, st, deck, log)
}

// prepareDestination makes sure deck store could be created. Existing store
// is either overwritten by commit or extended with generated slides.
func prepareDestination(out string, overwrite bool, log *zap.Logger) error {
	if _, err := os.Stat(out); err == nil {
		if overwrite {
			log.Warn("Overwriting existing deck", zap.String("file", out))
		} else {
			log.Info("Destination exists, slides will be added to it", zap.String("file", out))
		}
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return nil
}

func readOutline(path string) ([]outline.Slide, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open outline: %w", err)
	}
	defer f.Close()
	return outline.Decode(f)
}

// newMeasurer prefers real font metrics, when no fonts could be loaded text
// width is estimated.
func newMeasurer(cfg *config.TextConfig, log *zap.Logger) fitter.Measurer {
	dirs := slices.Clone(cfg.FontsDirs)
	if cfg.SystemFonts {
		dirs = append(dirs, fitter.SystemFontDirs()...)
	}
	m, err := fitter.NewFontMeasurer(log, dirs...)
	if err != nil {
		log.Warn("Unable to prepare fonts, text width will be estimated", zap.Error(err))
		return fitter.EstimateMeasurer{}
	}
	return m
}

func storeInput(rpt *config.Report, name, path string, log *zap.Logger) {
	if len(path) == 0 {
		return
	}
	if err := rpt.StoreCopy(name, path); err != nil {
		log.Debug("Unable to store input in the report", zap.String("name", name), zap.Error(err))
	}
}
