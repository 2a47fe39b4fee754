package shell

import (
	"fmt"
	"io/fs"
	"strings"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/syssam/scriptgen/axis"
	"github.com/syssam/scriptgen/compiler/gen"
)

// cmdDialect writes Windows batch files in Shift_JIS with CRLF line endings.
type cmdDialect struct {
	renderer
}

// Cmd returns the Windows batch dialect.
func Cmd() gen.Dialect {
	return cmdDialect{renderer{tmpl: "cmd.tmpl", command: "convert-files." + axis.Cmd.Extension()}}
}

func (cmdDialect) Name() axis.Dialect { return axis.Cmd }

// Flags pauses the console before an abnormal exit.
func (cmdDialect) Flags() gen.Flags {
	return gen.Flags{
		StopBeforeNormalExit:   false,
		StopBeforeAbnormalExit: true,
		ShowProgress:           true,
	}
}

func (d cmdDialect) Render(c gen.ScriptConfig) (string, error) { return d.render(c) }

func (cmdDialect) Encode(text string) ([]byte, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\n", "\r\n")
	out, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode Shift_JIS: %w", err)
	}
	return out, nil
}

func (cmdDialect) FileMode() fs.FileMode { return 0o644 }
