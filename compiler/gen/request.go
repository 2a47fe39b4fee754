package gen

import (
	"errors"
	"fmt"

	"github.com/syssam/scriptgen/axis"
)

// Request identifies one launcher script to generate.
type Request struct {
	Language   axis.Language
	Dialect    axis.Dialect
	InputType  axis.InputType
	OutputType axis.OutputType
	// Notation is set iff InputType is axis.Text.
	Notation axis.Notation
}

// HasNotation reports whether the request carries a notation.
func (r Request) HasNotation() bool { return r.Notation != "" }

// String returns a compact description used in logs.
func (r Request) String() string {
	s := fmt.Sprintf("%s/%s %s2%s", r.Language, r.Dialect, r.InputType, r.OutputType)
	if r.HasNotation() {
		s += "-" + string(r.Notation)
	}
	return s
}

// Validate checks that every axis value is known, that the conversion is
// one that is generated, and that a notation is present iff the input is
// text.
func (r Request) Validate() error {
	var errs []error
	if !r.Language.Valid() {
		errs = append(errs, axis.NewUnknownValueError(axis.AxisLanguage, string(r.Language)))
	}
	if !r.Dialect.Valid() {
		errs = append(errs, axis.NewUnknownValueError(axis.AxisDialect, string(r.Dialect)))
	}
	if !r.InputType.Valid() {
		errs = append(errs, axis.NewUnknownValueError(axis.AxisInputType, string(r.InputType)))
	}
	if !r.OutputType.Valid() {
		errs = append(errs, axis.NewUnknownValueError(axis.AxisOutputType, string(r.OutputType)))
	}
	if excluded(r.InputType, r.OutputType) {
		errs = append(errs, fmt.Errorf("scriptgen: %s2%s is not generated", r.InputType, r.OutputType))
	}
	switch {
	case r.InputType == axis.Text && !r.HasNotation():
		errs = append(errs, errors.New("scriptgen: text input requires a notation"))
	case r.InputType == axis.Text && !r.Notation.Valid():
		errs = append(errs, axis.NewUnknownValueError(axis.AxisNotation, string(r.Notation)))
	case r.InputType != axis.Text && r.HasNotation():
		errs = append(errs, fmt.Errorf("scriptgen: notation %q given for %s input", r.Notation, r.InputType))
	}
	return errors.Join(errs...)
}

// excluded reports whether the input/output pair is never generated.
// A dot-to-dot conversion is the identity.
func excluded(in axis.InputType, out axis.OutputType) bool {
	return in == axis.DotIn && out == axis.DotOut
}

// Requests returns the requests for one (language, dialect) pair in
// generation order: input types, then output types, then notations.
func Requests(s axis.Set, lang axis.Language, d axis.Dialect) []Request {
	var reqs []Request
	for _, in := range s.InputTypes {
		for _, out := range s.OutputTypes {
			if excluded(in, out) {
				continue
			}
			base := Request{Language: lang, Dialect: d, InputType: in, OutputType: out}
			if in != axis.Text {
				reqs = append(reqs, base)
				continue
			}
			for _, n := range s.Notations {
				r := base
				r.Notation = n
				reqs = append(reqs, r)
			}
		}
	}
	return reqs
}

// Enumerate returns every request of the set, pair by pair.
func Enumerate(s axis.Set) []Request {
	var reqs []Request
	for _, lang := range s.Languages {
		for _, d := range s.Dialects {
			reqs = append(reqs, Requests(s, lang, d)...)
		}
	}
	return reqs
}
