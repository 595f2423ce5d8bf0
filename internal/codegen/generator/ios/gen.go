package ios

import (
	"log/slog"

	"github.com/Alia5/tokenforge/internal/codegen/artifact"
	"github.com/Alia5/tokenforge/internal/tokens"
)

const (
	Platform = "ios"
	FileName = "DesignTokens.swift"
)

// Generate renders DesignTokens.swift and writes it to outputDir.
func Generate(logger *slog.Logger, outputDir string, set *tokens.Set) ([]artifact.Artifact, error) {
	arts, err := Render(logger, set)
	if err != nil {
		return nil, err
	}
	if err := artifact.EnsureDir(outputDir); err != nil {
		return nil, err
	}
	if err := artifact.Write(logger, outputDir, arts); err != nil {
		return nil, err
	}
	logger.Info("Generated iOS tokens", "dir", outputDir, "files", len(arts))
	return arts, nil
}

// Render produces the Swift source without touching the filesystem.
func Render(logger *slog.Logger, set *tokens.Set) ([]artifact.Artifact, error) {
	src, err := renderSwift(logger, set)
	if err != nil {
		return nil, err
	}
	return []artifact.Artifact{artifact.New(Platform, FileName, src)}, nil
}
