package web

import (
	"log/slog"

	"github.com/Alia5/tokenforge/internal/codegen/artifact"
	"github.com/Alia5/tokenforge/internal/tokens"
)

const Platform = "web"

// Generate renders tokens.css and tokens.js and writes them to outputDir.
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
	logger.Info("Generated web tokens", "dir", outputDir, "files", len(arts))
	return arts, nil
}

// Render produces the web artifacts without touching the filesystem.
func Render(logger *slog.Logger, set *tokens.Set) ([]artifact.Artifact, error) {
	css, err := renderStylesheet(logger, set)
	if err != nil {
		return nil, err
	}
	js, err := renderModule(logger, set)
	if err != nil {
		return nil, err
	}
	return []artifact.Artifact{
		artifact.New(Platform, "tokens.css", css),
		artifact.New(Platform, "tokens.js", js),
	}, nil
}
