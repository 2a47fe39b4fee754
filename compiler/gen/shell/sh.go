package shell

import (
	"errors"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/syssam/scriptgen/axis"
	"github.com/syssam/scriptgen/compiler/gen"
)

// shDialect writes POSIX shell scripts: UTF-8, LF only, executable.
type shDialect struct {
	renderer
}

// Sh returns the POSIX shell dialect.
func Sh() gen.Dialect {
	return shDialect{renderer{tmpl: "sh.tmpl", command: "convert-files." + axis.Sh.Extension()}}
}

func (shDialect) Name() axis.Dialect { return axis.Sh }

func (shDialect) Flags() gen.Flags {
	return gen.Flags{
		StopBeforeNormalExit:   false,
		StopBeforeAbnormalExit: false,
		ShowProgress:           true,
	}
}

func (d shDialect) Render(c gen.ScriptConfig) (string, error) { return d.render(c) }

// Encode rejects invalid UTF-8 and strips every carriage return.
func (shDialect) Encode(text string) ([]byte, error) {
	if !utf8.ValidString(text) {
		return nil, errors.New("script text is not valid UTF-8")
	}
	return []byte(strings.ReplaceAll(text, "\r", "")), nil
}

func (shDialect) FileMode() fs.FileMode { return 0o755 }
