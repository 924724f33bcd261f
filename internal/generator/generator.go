// Package generator drives a generation run: it enumerates tables, builds a
// model per table and writes it through a file store, either as a new file
// or by patching the existing one.
//
// Tables are processed one at a time in catalog order. A failure for one
// table is recorded on its result and the run moves on; only setup failures
// (listing tables, creating the output directory) abort the run.
package generator

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/hlop3z/modelgen/internal/alerr"
	"github.com/hlop3z/modelgen/internal/ast"
	"github.com/hlop3z/modelgen/internal/eloquent"
	"github.com/hlop3z/modelgen/internal/fsstore"
	"github.com/hlop3z/modelgen/internal/introspect"
	"github.com/hlop3z/modelgen/internal/relations"
)

// Defaults follow the Laravel application layout.
const (
	DefaultOutputDir = "app/Models"
	DefaultNamespace = `App\Models`
	DefaultExtension = "php"
)

// Options controls a generation run.
type Options struct {
	Tables        []string // Tables to generate; empty means every model table
	OutputDir     string
	Namespace     string
	Relationships bool // Infer relation methods
	Force         bool // Patch files that already exist
	Extension     string

	// Extras are fixed relations per table, layered over inferred ones.
	Extras map[string][]ast.RelationDef
}

func (o *Options) applyDefaults() {
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if o.Namespace == "" {
		o.Namespace = DefaultNamespace
	}
	if o.Extension == "" {
		o.Extension = DefaultExtension
	}
}

// Generator turns catalog tables into model files.
type Generator struct {
	src        introspect.Introspector
	store      fsstore.FileStore
	opts       Options
	logger   *slog.Logger
	onResult func(TableResult)
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// OnResult registers a callback invoked after each table is processed.
func OnResult(fn func(TableResult)) Option {
	return func(g *Generator) {
		g.onResult = fn
	}
}

// New creates a Generator reading from src and writing to store.
func New(src introspect.Introspector, store fsstore.FileStore, opts Options, options ...Option) *Generator {
	opts.applyDefaults()

	g := &Generator{src: src, store: store, opts: opts}
	for _, opt := range options {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g
}

// newInferencer builds the relation inferencer for one pass. A nil tables
// list makes it read the catalog itself.
func (g *Generator) newInferencer(tables []string) *relations.Inferencer {
	opts := []relations.Option{
		relations.WithExtras(g.opts.Extras),
		relations.WithLogger(g.logger),
	}
	if tables != nil {
		opts = append(opts, relations.WithTables(tables))
	}
	return relations.New(g.src, opts...)
}

// Options returns the effective options, defaults applied.
func (g *Generator) Options() Options {
	return g.opts
}

// Path returns the model file path for a class.
func (g *Generator) Path(className string) string {
	return filepath.Join(g.opts.OutputDir, className+"."+g.opts.Extension)
}

// Run generates or patches one model file per selected table.
func (g *Generator) Run(ctx context.Context) (*Summary, error) {
	if !g.store.Exists(g.opts.OutputDir) {
		if err := g.store.MkdirAll(g.opts.OutputDir); err != nil {
			return nil, alerr.Wrap(alerr.ErrOutputDir, err, "failed to create output directory").
				WithPath(g.opts.OutputDir)
		}
	}

	all, err := g.src.ListTables(ctx)
	if err != nil {
		return nil, alerr.Wrap(alerr.ErrIntrospection, err, "failed to list tables")
	}

	summary := &Summary{}
	tables := all
	if len(g.opts.Tables) > 0 {
		var missing []string
		tables, missing = introspect.Select(all, g.opts.Tables)
		for _, name := range missing {
			g.record(summary, TableResult{
				Table:  name,
				Status: Failed,
				Err:    alerr.NewUnknownTableError(name, all),
			})
		}
	}

	// Pivot detection considers every table, not only the selected ones.
	in := g.newInferencer(all)

	for _, table := range tables {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		g.record(summary, g.processTable(ctx, table, in))
	}
	return summary, nil
}

func (g *Generator) record(s *Summary, r TableResult) {
	s.add(r)

	for _, w := range r.Warnings {
		g.logger.Warn("relationship inference degraded", "table", r.Table, "error", w)
	}
	if r.Err != nil {
		g.logger.Warn("table skipped", "table", r.Table, "error", r.Err)
	}
	if g.onResult != nil {
		g.onResult(r)
	}
}

// processTable is the per-table error boundary.
func (g *Generator) processTable(ctx context.Context, table string, in *relations.Inferencer) TableResult {
	res := TableResult{Table: table}

	m, warnings, err := g.model(ctx, table, in)
	res.Warnings = warnings
	if err != nil {
		res.Status, res.Err = Failed, err
		return res
	}
	res.Class = m.ClassName
	res.Path = g.Path(m.ClassName)

	if !g.store.Exists(res.Path) {
		content, err := eloquent.Render(m)
		if err != nil {
			res.Status, res.Err = Failed, err
			return res
		}
		if err := g.store.WriteFile(res.Path, content); err != nil {
			res.Status, res.Err = Failed, alerr.Wrap(alerr.ErrFileWrite, err, "failed to write model").
				WithTable(table).WithPath(res.Path)
			return res
		}
		res.Status = Generated
		return res
	}

	if !g.opts.Force {
		res.Status = Skipped
		return res
	}

	existing, err := g.store.ReadFile(res.Path)
	if err != nil {
		res.Status, res.Err = Failed, alerr.Wrap(alerr.ErrFileRead, err, "failed to read model").
			WithTable(table).WithPath(res.Path)
		return res
	}

	patched, kind, err := eloquent.Patch(existing, m)
	if err != nil {
		res.Status, res.Err = Failed, err
		return res
	}
	if kind == eloquent.NoChange {
		res.Status = Unchanged
		return res
	}

	if err := g.store.WriteFile(res.Path, patched); err != nil {
		res.Status, res.Err = Failed, alerr.Wrap(alerr.ErrFileWrite, err, "failed to write model").
			WithTable(table).WithPath(res.Path)
		return res
	}
	if kind == eloquent.UpdatedWithRelationships {
		res.Status = Updated
	} else {
		res.Status = Completed
	}
	return res
}
