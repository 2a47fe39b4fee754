package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/syssam/scriptgen/axis"
)

// DirName returns the output directory name of a (language, dialect) pair,
// e.g. "ja-win".
func DirName(lang axis.Language, d axis.Dialect) (string, error) {
	platform, err := d.Platform()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s", lang, platform), nil
}

// FileName returns the script file name of r, e.g. "text2png-ie.cmd" or
// "dot2svg.sh".
func FileName(r Request) (string, error) {
	if !r.Dialect.Valid() {
		return "", axis.NewUnknownValueError(axis.AxisDialect, string(r.Dialect))
	}
	name := fmt.Sprintf("%s2%s", r.InputType, r.OutputType)
	if r.HasNotation() {
		name += "-" + string(r.Notation)
	}
	return name + "." + r.Dialect.Extension(), nil
}

// Path returns the destination of r under root. r must validate.
func Path(root string, r Request) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	dir, err := DirName(r.Language, r.Dialect)
	if err != nil {
		return "", err
	}
	name, err := FileName(r)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, dir, name), nil
}

// Clean prepares dir for a fresh run of dialect d. A missing directory is
// created with its parents. Otherwise every non-directory entry directly in
// dir with d's extension is removed, together with the temporary files an
// interrupted writeFile left behind; other files and subdirectories stay.
// It returns the number of files removed.
func Clean(dir string, d axis.Dialect) (int, error) {
	if !d.Valid() {
		return 0, axis.NewUnknownValueError(axis.AxisDialect, string(d))
	}
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return 0, os.MkdirAll(dir, 0o755)
	}
	if err != nil {
		return 0, err
	}
	ext := "." + d.Extension()
	removed := 0
	for _, e := range entries {
		if e.IsDir() || !ownedBy(e.Name(), ext) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// ownedBy reports whether name is a script with extension ext or the
// temporary file of one, which carries a numeric suffix after ext.
func ownedBy(name, ext string) bool {
	if filepath.Ext(name) == ext {
		return true
	}
	trimmed := strings.TrimRight(name, "0123456789")
	return trimmed != name && strings.HasSuffix(trimmed, ext)
}
