package generator

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Alia5/tokenforge/internal/codegen/artifact"
	"github.com/Alia5/tokenforge/internal/codegen/generator/android"
	"github.com/Alia5/tokenforge/internal/codegen/generator/ios"
	"github.com/Alia5/tokenforge/internal/codegen/generator/web"
	"github.com/Alia5/tokenforge/internal/tokens"
)

// PlatformGenerator renders a token set and writes the artifacts to outputDir.
type PlatformGenerator func(logger *slog.Logger, outputDir string, set *tokens.Set) ([]artifact.Artifact, error)

// PlatformRenderer renders a token set in memory.
type PlatformRenderer func(logger *slog.Logger, set *tokens.Set) ([]artifact.Artifact, error)

type platform struct {
	generate PlatformGenerator
	render   PlatformRenderer
}

var platforms = map[string]platform{
	web.Platform:     {generate: web.Generate, render: web.Render},
	ios.Platform:     {generate: ios.Generate, render: ios.Render},
	android.Platform: {generate: android.Generate, render: android.Render},
}

// Platforms returns the supported platform names, sorted.
func Platforms() []string {
	names := make([]string, 0, len(platforms))
	for k := range platforms {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

type Generator struct {
	sourceDir string
	outputDir string
	logger    *slog.Logger
	jobs      int
}

// Option customizes a Generator.
type Option func(*Generator)

// WithJobs limits how many platforms are generated concurrently. Zero or
// less means no limit.
func WithJobs(n int) Option {
	return func(g *Generator) { g.jobs = n }
}

func New(sourceDir, outputDir string, logger *slog.Logger, opts ...Option) *Generator {
	g := &Generator{
		sourceDir: sourceDir,
		outputDir: outputDir,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// PlatformDir is the output directory of a platform.
func (g *Generator) PlatformDir(name string) string {
	return filepath.Join(g.outputDir, name)
}

// Load reads, validates and merges the token sources.
func (g *Generator) Load() (*tokens.Set, error) {
	g.logger.Info("Reading token sources", "dir", g.sourceDir)
	docs, err := tokens.LoadDir(g.sourceDir)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("Loaded token sources", "documents", len(docs))

	if err := tokens.Validate(docs); err != nil {
		return nil, err
	}
	g.logger.Info("Token sources validated", "documents", len(docs))

	set, err := tokens.Merge(docs)
	if err != nil {
		return nil, err
	}
	g.logger.Info("Merged token set", "categories", strings.Join(set.Names(), ","))
	return set, nil
}

// Build runs the full pipeline for the named platforms (all when none are
// given). Validation failures abort before any generator runs. A failing
// platform does not undo artifacts other platforms already wrote.
func (g *Generator) Build(ctx context.Context, names ...string) (*Report, error) {
	selected, err := resolve(names)
	if err != nil {
		return nil, err
	}

	for _, name := range selected {
		if err := artifact.EnsureDir(g.PlatformDir(name)); err != nil {
			return nil, fmt.Errorf("create %s output directory: %w", name, err)
		}
	}

	set, err := g.Load()
	if err != nil {
		return nil, err
	}

	results, err := g.fanOut(ctx, selected, func(name string) ([]artifact.Artifact, error) {
		g.logger.Info("Generating tokens", "platform", name)
		return platforms[name].generate(g.logger, g.PlatformDir(name), set)
	})
	if err != nil {
		return nil, err
	}

	report := newReport(set, selected)
	for _, arts := range results {
		for _, a := range arts {
			report.add(a, artifact.StatusFresh)
		}
	}
	report.sort()
	g.logger.Info("Token build complete", "platforms", len(selected), "artifacts", len(report.Entries), "output", g.outputDir)
	return report, nil
}

// Check renders the named platforms in memory and compares them with the
// files on disk. It never writes. Out-of-date artifacts yield a *DriftError
// together with the full report.
func (g *Generator) Check(ctx context.Context, names ...string) (*Report, error) {
	selected, err := resolve(names)
	if err != nil {
		return nil, err
	}

	set, err := g.Load()
	if err != nil {
		return nil, err
	}

	results, err := g.fanOut(ctx, selected, func(name string) ([]artifact.Artifact, error) {
		return platforms[name].render(g.logger, set)
	})
	if err != nil {
		return nil, err
	}

	report := newReport(set, selected)
	for _, arts := range results {
		for _, a := range arts {
			status, err := artifact.Compare(g.PlatformDir(a.Platform), a)
			if err != nil {
				return nil, fmt.Errorf("compare %s/%s: %w", a.Platform, a.Path, err)
			}
			report.add(a, status)
		}
	}
	report.sort()

	if drift := report.Drifted(); len(drift) > 0 {
		for _, e := range drift {
			g.logger.Warn("Artifact out of date", "platform", e.Platform, "path", e.Path, "status", e.Status)
		}
		return report, &DriftError{Entries: drift}
	}
	g.logger.Info("Artifacts up to date", "artifacts", len(report.Entries))
	return report, nil
}

// fanOut runs fn for every platform concurrently. Platforms share only the
// read-only token set. The first error cancels platforms not yet started.
func (g *Generator) fanOut(ctx context.Context, names []string, fn func(name string) ([]artifact.Artifact, error)) ([][]artifact.Artifact, error) {
	eg, ctx := errgroup.WithContext(ctx)
	if g.jobs > 0 {
		eg.SetLimit(g.jobs)
	}
	results := make([][]artifact.Artifact, len(names))
	for i, name := range names {
		i, name := i, name
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			arts, err := fn(name)
			if err != nil {
				return fmt.Errorf("generate %s tokens: %w", name, err)
			}
			results[i] = arts
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// resolve expands "all" or an empty selection and rejects unknown names.
func resolve(names []string) ([]string, error) {
	if len(names) == 0 {
		return Platforms(), nil
	}
	seen := map[string]bool{}
	var out []string
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "all" {
			return Platforms(), nil
		}
		if _, ok := platforms[n]; !ok {
			return nil, fmt.Errorf("unsupported platform '%s' (supported: %v)", n, Platforms())
		}
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out, nil
}
