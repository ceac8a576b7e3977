package generate

import (
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/hayato-mori/shieldsmith/internal/model"
)

// escapeLiteral escapes a value for inclusion inside a double-quoted
// string literal. Backslash and double quote are the only characters
// that need escaping in both the Solidity and JavaScript string
// grammars; control characters are rejected earlier by input validation.
func escapeLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// funcs is the shared template function map. "esc" is applied to every
// interpolation that lands inside a quoted literal in generated source.
var funcs = template.FuncMap{
	"esc": escapeLiteral,
}

// renderToFile parses tmpl, executes it with data, and writes the result
// to path, creating parent directories as needed.
//
// Templates are package constants, so a parse failure is a programming
// error; it is still returned rather than panicking so the pipeline halts
// cleanly.
func renderToFile(path, name, tmpl string, data any) error {
	t, err := template.New(name).Funcs(funcs).Parse(tmpl)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			"failed to parse "+name+" template", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return model.WrapCLIError(model.ExitEnvironmentError,
			"failed to create directory for "+name, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return model.WrapCLIError(model.ExitEnvironmentError,
			"failed to create "+name, err)
	}

	execErr := t.Execute(f, data)
	closeErr := f.Close()
	if execErr != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			"failed to render "+name, execErr)
	}
	if closeErr != nil {
		return model.WrapCLIError(model.ExitEnvironmentError,
			"failed to write "+name, closeErr)
	}
	return nil
}
