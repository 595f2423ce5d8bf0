package android

import (
	"log/slog"

	"github.com/Alia5/tokenforge/internal/codegen/artifact"
	"github.com/Alia5/tokenforge/internal/tokens"
)

const Platform = "android"

// Generate renders the values/ resource files and writes them to outputDir.
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
	logger.Info("Generated Android resources", "dir", outputDir, "files", len(arts))
	return arts, nil
}

// Render produces colors.xml, dimens.xml and type.xml without touching the
// filesystem.
func Render(logger *slog.Logger, set *tokens.Set) ([]artifact.Artifact, error) {
	res := collect(logger, set)

	colors, err := renderColors(res)
	if err != nil {
		return nil, err
	}
	dimens, err := renderDimens(res)
	if err != nil {
		return nil, err
	}
	typ, err := renderType(res)
	if err != nil {
		return nil, err
	}
	return []artifact.Artifact{
		artifact.New(Platform, "values/colors.xml", colors),
		artifact.New(Platform, "values/dimens.xml", dimens),
		artifact.New(Platform, "values/type.xml", typ),
	}, nil
}
