package gen

import (
	"io/fs"

	"github.com/syssam/scriptgen/axis"
)

// Dialect renders and encodes launcher scripts for one shell.
//
// The Generator selects the implementation by the request's dialect value.
// Implementations live in the shell package.
type Dialect interface {
	// Name returns the dialect axis value the implementation handles.
	Name() axis.Dialect
	// Flags returns the dialect's fixed control settings.
	Flags() Flags
	// Render returns the script text with "\n" line breaks.
	Render(c ScriptConfig) (string, error)
	// Encode converts rendered text to the bytes written to disk, applying
	// the dialect's character encoding and line-ending convention.
	Encode(text string) ([]byte, error)
	// FileMode returns the permission bits of written scripts.
	FileMode() fs.FileMode
}
