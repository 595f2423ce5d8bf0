package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Alia5/tokenforge/internal/codegen/generator"
)

// Check verifies that the artifacts on disk match what build would write.
type Check struct {
	Paths   `embed:""`
	Targets `embed:""`
}

// Run is called by Kong when the check command is executed.
func (c *Check) Run(logger *slog.Logger) error {
	gen := generator.New(c.Source, c.Output, logger, generator.WithJobs(c.Jobs))
	if _, err := gen.Check(context.Background(), c.Platform...); err != nil {
		return fmt.Errorf("check tokens: %w", err)
	}
	return nil
}
