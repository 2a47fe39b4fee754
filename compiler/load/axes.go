// Package load reads the axis set a generation run iterates over.
package load

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/syssam/scriptgen/axis"
)

// Axes is the YAML representation of an axis.Set. Omitted keys fall back to
// the full default list for that axis.
type Axes struct {
	Languages   []string `yaml:"languages,omitempty"`
	Dialects    []string `yaml:"dialects,omitempty"`
	InputTypes  []string `yaml:"input_types,omitempty"`
	OutputTypes []string `yaml:"output_types,omitempty"`
	Notations   []string `yaml:"notations,omitempty"`
}

// File reads and parses the axis file at path.
func File(path string) (axis.Set, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return axis.Set{}, fmt.Errorf("load: reading %s: %w", path, err)
	}
	s, err := Parse(buf)
	if err != nil {
		return axis.Set{}, fmt.Errorf("load: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes an axis document. Unknown keys and values are rejected, and
// the resulting set is validated.
func Parse(buf []byte) (axis.Set, error) {
	var a Axes
	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	// An empty document decodes to io.EOF and means "all defaults".
	if err := dec.Decode(&a); err != nil && !errors.Is(err, io.EOF) {
		return axis.Set{}, fmt.Errorf("decoding axes: %w", err)
	}
	return a.Set()
}

// Set converts a into a validated axis.Set.
func (a Axes) Set() (axis.Set, error) {
	def := axis.Default()
	s := axis.Set{}
	var errs []error
	s.Languages = values(a.Languages, def.Languages, axis.ParseLanguage, &errs)
	s.Dialects = values(a.Dialects, def.Dialects, axis.ParseDialect, &errs)
	s.InputTypes = values(a.InputTypes, def.InputTypes, axis.ParseInputType, &errs)
	s.OutputTypes = values(a.OutputTypes, def.OutputTypes, axis.ParseOutputType, &errs)
	s.Notations = values(a.Notations, def.Notations, axis.ParseNotation, &errs)
	if len(errs) > 0 {
		return axis.Set{}, errors.Join(errs...)
	}
	if err := s.Validate(); err != nil {
		return axis.Set{}, err
	}
	return s, nil
}

func values[T any](raw []string, def []T, parse func(string) (T, error), errs *[]error) []T {
	if raw == nil {
		return def
	}
	out := make([]T, 0, len(raw))
	for _, r := range raw {
		v, err := parse(r)
		if err != nil {
			*errs = append(*errs, err)
			continue
		}
		out = append(out, v)
	}
	return out
}
