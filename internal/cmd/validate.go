package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Alia5/tokenforge/internal/codegen/generator"
)

// Validate reads and validates the token sources without generating anything.
type Validate struct {
	Source string `help:"Directory containing the token category sources" default:"./tokens" env:"TOKENFORGE_SOURCE" type:"path"`
}

// Run is called by Kong when the validate command is executed.
func (v *Validate) Run(logger *slog.Logger) error {
	set, err := generator.New(v.Source, "", logger).Load()
	if err != nil {
		return fmt.Errorf("validate tokens: %w", err)
	}
	logger.Info("Token sources are valid", "categories", strings.Join(set.Names(), ","), "keys", len(set.Keys()))
	return nil
}
