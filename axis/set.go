package axis

import (
	"errors"
	"fmt"
)

// Set is the collection of axis values a generation run iterates over.
// Order matters: requests are produced in the order values appear.
type Set struct {
	Languages   []Language
	Dialects    []Dialect
	InputTypes  []InputType
	OutputTypes []OutputType
	Notations   []Notation
}

// Default returns the complete closed sets.
func Default() Set {
	return Set{
		Languages:   Languages(),
		Dialects:    Dialects(),
		InputTypes:  InputTypes(),
		OutputTypes: OutputTypes(),
		Notations:   Notations(),
	}
}

// Validate checks that every list is non-empty, holds only known values and
// has no duplicates. All problems are reported together.
func (s Set) Validate() error {
	return errors.Join(
		check(AxisLanguage, s.Languages, Language.Valid),
		check(AxisDialect, s.Dialects, Dialect.Valid),
		check(AxisInputType, s.InputTypes, InputType.Valid),
		check(AxisOutputType, s.OutputTypes, OutputType.Valid),
		check(AxisNotation, s.Notations, Notation.Valid),
	)
}

func check[T ~string](axis string, values []T, valid func(T) bool) error {
	if len(values) == 0 {
		return fmt.Errorf("scriptgen: no %s values", axis)
	}
	var errs []error
	seen := make(map[T]bool, len(values))
	for _, v := range values {
		switch {
		case !valid(v):
			errs = append(errs, NewUnknownValueError(axis, string(v)))
		case seen[v]:
			errs = append(errs, fmt.Errorf("scriptgen: duplicate %s %q", axis, v))
		}
		seen[v] = true
	}
	return errors.Join(errs...)
}
