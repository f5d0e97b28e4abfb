package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"stubdoc/internal/config"
	"stubdoc/internal/docstore"
	"stubdoc/internal/helptext"
	"stubdoc/internal/provider"
	"stubdoc/internal/stubs"
)

// Pipeline runs batch extraction and enhancement over VTK modules with a
// bounded worker pool. One module is one unit of work: it gets its own
// deadline, and its failure never takes the batch down.
type Pipeline struct {
	cfg      *config.Config
	provider provider.Provider
	store    *docstore.Store
	parser   *helptext.Parser
}

// New creates a pipeline. p supplies raw help dumps; pass nil to use the
// default exec provider with the configured help command.
func New(cfg *config.Config, p provider.Provider) *Pipeline {
	if p == nil {
		p = provider.NewExecProvider(cfg.HelpCommand)
	}
	return &Pipeline{
		cfg:      cfg,
		provider: p,
		store:    docstore.NewStore(cfg.Paths.Docs),
		parser:   &helptext.Parser{Cleaner: cfg.HelpCleaner()},
	}
}

// ExtractAll pulls help dumps for every module, structures them, and writes
// the documentation databases.
func (p *Pipeline) ExtractAll(ctx context.Context, modules []string) (*Report, error) {
	report := NewReport()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers())

	for _, module := range modules {
		g.Go(func() error {
			p.runUnit(gctx, report, module, func(uctx context.Context) (UnitResult, error) {
				return p.extractModule(uctx, module)
			})
			return nil
		})
	}

	err := g.Wait()
	report.Finalize()
	return report, err
}

// EnhanceAll merges the documentation databases into the official stubs.
// Modules with the most documented classes go first so the long poles start
// early. With restart false, modules whose output already exists are
// skipped.
func (p *Pipeline) EnhanceAll(ctx context.Context, modules []string, restart bool) (*Report, error) {
	units, err := p.loadUnits(modules)
	if err != nil {
		return nil, err
	}
	sort.Slice(units, func(i, j int) bool { return units[i].classes > units[j].classes })

	report := NewReport()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers())

	for _, unit := range units {
		g.Go(func() error {
			p.runUnit(gctx, report, unit.module, func(uctx context.Context) (UnitResult, error) {
				return p.enhanceModule(uctx, unit, restart)
			})
			return nil
		})
	}

	err = g.Wait()
	report.Finalize()
	return report, err
}

// LoadModule reads one stored module's class docs, for the docs, classify,
// and verify commands.
func (p *Pipeline) LoadModule(moduleName string) (map[string]*helptext.ClassDoc, error) {
	return p.store.Load(moduleName)
}

// StoredModules lists the modules present in the documentation database.
func (p *Pipeline) StoredModules() ([]string, error) {
	return p.store.Modules()
}

func (p *Pipeline) workers() int {
	if p.cfg.Pipeline.Workers > 0 {
		return p.cfg.Pipeline.Workers
	}
	return 1
}

// runUnit wraps one module's work with the per-unit deadline and records
// the outcome.
func (p *Pipeline) runUnit(ctx context.Context, report *Report, module string, work func(context.Context) (UnitResult, error)) {
	uctx, cancel := context.WithTimeout(ctx, p.cfg.UnitTimeout())
	defer cancel()

	started := time.Now()
	res, err := work(uctx)
	res.Module = module
	res.DurationMS = time.Since(started).Milliseconds()

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			res.Status = StatusTimeout
			fmt.Printf("⏱️ %s timed out after %s\n", module, p.cfg.UnitTimeout())
		} else {
			res.Status = StatusFailed
			fmt.Printf("❌ %s failed: %v\n", module, err)
		}
		res.Error = err.Error()
	} else {
		fmt.Printf("✅ %s: %d classes (%s)\n", module, res.Classes, time.Since(started).Round(time.Millisecond))
	}

	report.Add(res)
}

func (p *Pipeline) extractModule(ctx context.Context, module string) (UnitResult, error) {
	dumps, err := p.provider.ModuleHelp(ctx, module)
	if err != nil {
		return UnitResult{}, err
	}

	docs := make(map[string]*helptext.ClassDoc, len(dumps))
	for className, helpText := range dumps {
		doc := p.parser.Parse(helpText, className)
		doc.ModuleName = module
		if !doc.Empty() {
			docs[className] = doc
		}
	}

	if err := p.store.Save(module, docs); err != nil {
		return UnitResult{}, err
	}

	if p.cfg.Paths.SQLite != "" {
		sqlStore, err := docstore.NewSQLiteStore(p.cfg.Paths.SQLite)
		if err != nil {
			return UnitResult{}, err
		}
		defer sqlStore.Close()
		if err := sqlStore.SaveModule(ctx, module, docs); err != nil {
			return UnitResult{}, err
		}
	}

	return UnitResult{Status: StatusEnhanced, Classes: len(docs)}, nil
}

type enhanceUnit struct {
	module  string
	classes int
	docs    map[string]*helptext.ClassDoc
}

// loadUnits reads the doc databases up front so dispatch can order modules
// largest first. Modules without a database still get a unit, so their
// stubs are copied through.
func (p *Pipeline) loadUnits(modules []string) ([]enhanceUnit, error) {
	if len(modules) == 0 {
		stored, err := p.store.Modules()
		if err != nil {
			return nil, err
		}
		modules = stored
	}

	units := make([]enhanceUnit, 0, len(modules))
	for _, module := range modules {
		docs, err := p.store.Load(module)
		if err != nil {
			if os.IsNotExist(err) {
				units = append(units, enhanceUnit{module: module})
				continue
			}
			return nil, err
		}
		units = append(units, enhanceUnit{module: module, classes: len(docs), docs: docs})
	}
	return units, nil
}

func (p *Pipeline) enhanceModule(ctx context.Context, unit enhanceUnit, restart bool) (UnitResult, error) {
	stubPath := filepath.Join(p.cfg.Paths.Stubs, unit.module+".pyi")
	outPath := filepath.Join(p.cfg.Paths.Enhanced, unit.module+".pyi")

	if !restart {
		if _, err := os.Stat(outPath); err == nil {
			return UnitResult{Status: StatusCopied, Classes: unit.classes}, nil
		}
	}

	raw, err := os.ReadFile(stubPath)
	if err != nil {
		return UnitResult{}, fmt.Errorf("failed to read stub: %w", err)
	}

	enhanced, changed := stubs.NewEnhancer(unit.docs).Enhance(ctx, string(raw))
	if err := ctx.Err(); err != nil {
		return UnitResult{}, err
	}

	if err := os.MkdirAll(p.cfg.Paths.Enhanced, 0755); err != nil {
		return UnitResult{}, err
	}
	if err := os.WriteFile(outPath, []byte(enhanced), 0644); err != nil {
		return UnitResult{}, fmt.Errorf("failed to write enhanced stub: %w", err)
	}

	status := StatusCopied
	if changed {
		status = StatusEnhanced
	}
	return UnitResult{Status: status, Classes: unit.classes}, nil
}
