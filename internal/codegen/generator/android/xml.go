package android

import (
	"strings"
	"text/template"

	"github.com/Alia5/tokenforge/internal/codegen/common"
)

const colorsTemplate = `{{xmlHeader}}<resources>
{{- range .Colors}}
    <color name="{{.Name}}">{{.Value}}</color>
{{- end}}
</resources>
`

const dimensTemplate = `{{xmlHeader}}<resources>
{{- range .Dimens}}
    <dimen name="{{.Name}}">{{.Value}}</dimen>
{{- end}}
{{- range .Floats}}
    <item name="{{.Name}}" format="float" type="dimen">{{.Value}}</item>
{{- end}}
</resources>
`

const typeTemplate = `{{xmlHeader}}<resources>
{{- range .Strings}}
    <string name="{{.Name}}" translatable="false">{{esc .Value}}</string>
{{- end}}
{{- range .Integers}}
    <integer name="{{.Name}}">{{.Value}}</integer>
{{- end}}
{{- range .Styles}}
    <style name="{{.Name}}">
        <item name="android:textSize">{{.TextSize}}</item>
{{- if .Family}}
        <item name="android:fontFamily">{{.Family}}</item>
{{- end}}
    </style>
{{- end}}
</resources>
`

var funcs = template.FuncMap{
	"xmlHeader": common.XMLHeader,
	"esc":       escapeString,
}

var (
	resourceEscaper = strings.NewReplacer(
		`\`, `\\`,
		`'`, `\'`,
		`"`, `\"`,
		"\n", `\n`,
		"\t", `\t`,
	)
	xmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
)

// escapeString applies aapt string escaping, then XML escaping of the
// markup characters. A leading @ or ? would otherwise be read as a reference.
func escapeString(s string) string {
	s = resourceEscaper.Replace(s)
	if strings.HasPrefix(s, "@") || strings.HasPrefix(s, "?") {
		s = `\` + s
	}
	return xmlEscaper.Replace(s)
}

func renderColors(res resources) ([]byte, error) {
	return common.Render("colors.xml", colorsTemplate, funcs, res)
}

func renderDimens(res resources) ([]byte, error) {
	return common.Render("dimens.xml", dimensTemplate, funcs, res)
}

func renderType(res resources) ([]byte, error) {
	return common.Render("type.xml", typeTemplate, funcs, res)
}
