package web

import (
	"fmt"
	"log/slog"
	"text/template"

	"github.com/Alia5/tokenforge/internal/codegen/common"
	"github.com/Alia5/tokenforge/internal/tokens"
)

const moduleTemplate = `{{jsHeader}}
export const tokens = {{.}};

export default tokens;
`

func renderModule(logger *slog.Logger, set *tokens.Set) ([]byte, error) {
	logger.Debug("Generating tokens.js")

	data, err := set.IndentedJSON("", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialize token set: %w", err)
	}
	return common.Render("tokens.js", moduleTemplate, template.FuncMap{
		"jsHeader": func() string { return common.FileHeader("//", "JavaScript") },
	}, string(data))
}
