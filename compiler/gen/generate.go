package gen

import (
	"context"
	"errors"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/syssam/scriptgen/axis"
)

// Generator writes the launcher script tree described by a Config.
//
// Generation is sequential. For every (language, dialect) pair the output
// directory is cleaned once, then each request of the pair is rendered,
// encoded and written. A failing script is logged and recorded; the
// remaining scripts are still generated.
type Generator struct {
	cfg      *Config
	dialects map[axis.Dialect]Dialect
	metrics  Metrics
}

// Metrics summarizes the last Generate call.
type Metrics struct {
	FilesGenerated int
	TotalBytes     int64
	DirsCleaned    int
	FilesRemoved   int
	Failed         int
}

// NewGenerator creates a generator for cfg. Register dialect
// implementations with WithDialect before calling Generate.
func NewGenerator(cfg *Config) *Generator {
	return &Generator{
		cfg:      cfg,
		dialects: make(map[axis.Dialect]Dialect),
	}
}

// WithDialect registers dialect implementations, replacing any previous
// implementation for the same dialect.
func (g *Generator) WithDialect(ds ...Dialect) *Generator {
	for _, d := range ds {
		g.dialects[d.Name()] = d
	}
	return g
}

// Metrics returns the counters of the last Generate call.
func (g *Generator) Metrics() Metrics {
	return g.metrics
}

// Generate produces every script of the configured axes. The returned error
// joins all per-script and per-directory failures; it is nil only when every
// script was written.
func (g *Generator) Generate(ctx context.Context) error {
	if g.cfg == nil {
		return newConfigError("Config", errors.New("no config set: use NewConfig()"))
	}
	if g.cfg.Target == "" {
		return newConfigError("Target", errors.New("missing target directory in config"))
	}
	log := g.cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	g.metrics = Metrics{}

	var errs []error
	for _, lang := range g.cfg.Axes.Languages {
		for _, d := range g.cfg.Axes.Dialects {
			if ctx.Err() != nil {
				break
			}
			errs = append(errs, g.generatePair(ctx, log, lang, d)...)
		}
	}
	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}

	log.Info("generation finished",
		zap.String("target", g.cfg.Target),
		zap.Int("files", g.metrics.FilesGenerated),
		zap.Int64("bytes", g.metrics.TotalBytes),
		zap.Int("removed", g.metrics.FilesRemoved),
		zap.Int("failed", g.metrics.Failed),
	)
	return errors.Join(errs...)
}

// generatePair cleans the directory of (lang, d) and generates its scripts.
func (g *Generator) generatePair(ctx context.Context, log *zap.Logger, lang axis.Language, d axis.Dialect) []error {
	reqs := Requests(g.cfg.Axes, lang, d)

	name, err := DirName(lang, d)
	if err != nil {
		return g.failAll(log, reqs, err)
	}
	impl, ok := g.dialects[d]
	if !ok {
		return g.failAll(log, reqs, axis.NewUnknownValueError(axis.AxisDialect, string(d)))
	}

	dir := filepath.Join(g.cfg.Target, name)
	removed, err := Clean(dir, d)
	if err != nil {
		log.Error("clean failed", zap.String("dir", dir), zap.Error(err))
		g.metrics.Failed += len(reqs)
		return []error{&GenerationError{Phase: PhaseClean, Path: dir, Err: err}}
	}
	g.metrics.DirsCleaned++
	g.metrics.FilesRemoved += removed
	log.Info("directory cleaned", zap.String("dir", dir), zap.Int("removed", removed))

	var errs []error
	for _, r := range reqs {
		if ctx.Err() != nil {
			break
		}
		if err := g.generate(log, impl, r); err != nil {
			log.Error("script generation failed", zap.Stringer("request", r), zap.Error(err))
			g.metrics.Failed++
			errs = append(errs, err)
		}
	}
	return errs
}

// failAll reports every request of an unusable pair as failed.
func (g *Generator) failAll(log *zap.Logger, reqs []Request, cause error) []error {
	errs := make([]error, 0, len(reqs))
	for _, r := range reqs {
		log.Error("script generation failed", zap.Stringer("request", r), zap.Error(cause))
		errs = append(errs, &GenerationError{Phase: PhaseResolve, Request: r, Err: cause})
	}
	g.metrics.Failed += len(reqs)
	return errs
}

// generate renders and writes a single script.
func (g *Generator) generate(log *zap.Logger, impl Dialect, r Request) error {
	path, err := Path(g.cfg.Target, r)
	if err != nil {
		return &GenerationError{Phase: PhaseResolve, Request: r, Err: err}
	}
	text, err := impl.Render(ResolveConfig(r, impl.Flags()))
	if err != nil {
		return &GenerationError{Phase: PhaseRender, Path: path, Request: r, Err: err}
	}
	data, err := impl.Encode(text)
	if err != nil {
		return &GenerationError{Phase: PhaseEncode, Path: path, Request: r, Err: err}
	}
	if err := writeFile(path, data, impl.FileMode()); err != nil {
		return &GenerationError{Phase: PhaseWrite, Path: path, Request: r, Err: err}
	}
	g.metrics.FilesGenerated++
	g.metrics.TotalBytes += int64(len(data))
	log.Debug("script written", zap.String("path", path), zap.Int("bytes", len(data)))
	return nil
}
