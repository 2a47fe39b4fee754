// Package shell implements the launcher script dialects.
//
// Each dialect renders its embedded template with a gen.ScriptConfig and
// encodes the result the way its native shell expects:
//
//	cmd  Shift_JIS, CRLF line endings, mode 0644
//	sh   UTF-8, LF line endings, mode 0755
//
// Register the dialects with a generator:
//
//	g := gen.NewGenerator(cfg).WithDialect(shell.Dialects()...)
//	err := g.Generate(ctx)
package shell

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/alessio/shellescape"

	"github.com/syssam/scriptgen/compiler/gen"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("shell").
	Funcs(template.FuncMap{"flag": flag, "quote": quote}).
	ParseFS(templateFS, "templates/*.tmpl"))

// Dialects returns every dialect implementation.
func Dialects() []gen.Dialect {
	return []gen.Dialect{Cmd(), Sh()}
}

// templateData is what the dialect templates see.
type templateData struct {
	gen.ScriptConfig
	// Command is the converter the launcher delegates to.
	Command string
}

// renderer executes one named template.
type renderer struct {
	tmpl    string
	command string
}

func (r renderer) render(c gen.ScriptConfig) (string, error) {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, r.tmpl, templateData{ScriptConfig: c, Command: r.command}); err != nil {
		return "", fmt.Errorf("execute template %q: %w", r.tmpl, err)
	}
	return b.String(), nil
}

// flag renders a boolean setting the way the converter scripts read it.
func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// quote returns v as a single POSIX shell word.
func quote(v any) string {
	return shellescape.Quote(fmt.Sprint(v))
}
