package gen

import (
	"bytes"
	"io/fs"
	"os"

	"github.com/natefinch/atomic"
)

// writeFile replaces path with data, so readers never see a partially
// written script. atomic keeps the mode of a file it replaces and creates new
// files 0600, hence the explicit chmod. A crash between the two leaves a
// temporary file named path plus a numeric suffix; Clean removes those.
func writeFile(path string, data []byte, mode fs.FileMode) error {
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return err
	}
	return os.Chmod(path, mode)
}
