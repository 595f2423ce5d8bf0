package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Alia5/tokenforge/internal/codegen/generator"
)

// Paths holds the source and output locations shared by the pipeline commands.
type Paths struct {
	Source string `help:"Directory containing the token category sources (colors, typography, spacing, breakpoints, shadows)" default:"./tokens" env:"TOKENFORGE_SOURCE" type:"path"`
	Output string `help:"Artifact root; one subdirectory per platform" default:"./dist" env:"TOKENFORGE_OUTPUT" type:"path"`
}

// Targets selects platforms and generation concurrency.
type Targets struct {
	Platform []string `help:"Platforms to generate: web, ios, android or 'all'" default:"all" sep:"," env:"TOKENFORGE_PLATFORM"`
	Jobs     int      `help:"Maximum platforms generated concurrently (0 = no limit)" default:"0" env:"TOKENFORGE_JOBS"`
}

// Build compiles the token sources into artifacts for every selected platform.
type Build struct {
	Paths   `embed:""`
	Targets `embed:""`
}

// Run is called by Kong when the build command is executed.
func (b *Build) Run(logger *slog.Logger) error {
	logger.Info("Starting token build", "source", b.Source, "output", b.Output, "platform", strings.Join(b.Platform, ","))

	gen := generator.New(b.Source, b.Output, logger, generator.WithJobs(b.Jobs))
	report, err := gen.Build(context.Background(), b.Platform...)
	if err != nil {
		return fmt.Errorf("build tokens: %w", err)
	}
	for _, e := range report.Entries {
		logger.Info("Artifact", "platform", e.Platform, "path", e.Path, "bytes", e.Size, "blake2b", e.Digest[:16])
	}
	return nil
}
