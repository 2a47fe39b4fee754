// Package axis defines the closed sets of values a launcher script is generated for.
//
// Every launcher is identified by five axes: the UI language, the shell dialect,
// the input format, the output format and, for text input, the ER notation.
// The sets are fixed at compile time; parsing a value outside them fails with
// an UnknownValueError.
package axis

// Axis names used in error messages and configuration keys.
const (
	AxisLanguage   = "language"
	AxisDialect    = "dialect"
	AxisInputType  = "input type"
	AxisOutputType = "output type"
	AxisNotation   = "notation"
)

// Language is the UI language a launcher is packaged for.
type Language string

const (
	// Japanese selects the Japanese distribution.
	Japanese Language = "ja"
	// English selects the English distribution.
	English Language = "en"
)

// Languages returns all languages in canonical order.
func Languages() []Language { return []Language{Japanese, English} }

// Valid reports whether l is a known language.
func (l Language) Valid() bool { return l == Japanese || l == English }

// String implements fmt.Stringer.
func (l Language) String() string { return string(l) }

// ParseLanguage returns the Language named s.
func ParseLanguage(s string) (Language, error) {
	if l := Language(s); l.Valid() {
		return l, nil
	}
	return "", NewUnknownValueError(AxisLanguage, s)
}

// Dialect is the shell a launcher is written for.
type Dialect string

const (
	// Cmd is the Windows command interpreter (batch files).
	Cmd Dialect = "cmd"
	// Sh is the POSIX shell.
	Sh Dialect = "sh"
)

// platforms maps a dialect to the tag used in output directory names.
var platforms = map[Dialect]string{
	Cmd: "win",
	Sh:  "unix",
}

// Dialects returns all dialects in canonical order.
func Dialects() []Dialect { return []Dialect{Cmd, Sh} }

// Valid reports whether d is a known dialect.
func (d Dialect) Valid() bool {
	_, ok := platforms[d]
	return ok
}

// String implements fmt.Stringer.
func (d Dialect) String() string { return string(d) }

// Extension returns the script file extension, without the leading dot.
func (d Dialect) Extension() string { return string(d) }

// Platform returns the platform tag of the dialect ("win" or "unix").
func (d Dialect) Platform() (string, error) {
	p, ok := platforms[d]
	if !ok {
		return "", NewUnknownValueError(AxisDialect, string(d))
	}
	return p, nil
}

// ParseDialect returns the Dialect named s.
func ParseDialect(s string) (Dialect, error) {
	if d := Dialect(s); d.Valid() {
		return d, nil
	}
	return "", NewUnknownValueError(AxisDialect, s)
}

// InputType is the format a launcher reads.
type InputType string

const (
	// Text is the plain-text ER definition format.
	Text InputType = "text"
	// DotIn is a Graphviz dot file.
	DotIn InputType = "dot"
)

// InputTypes returns all input types in canonical order.
func InputTypes() []InputType { return []InputType{Text, DotIn} }

// Valid reports whether t is a known input type.
func (t InputType) Valid() bool { return t == Text || t == DotIn }

// String implements fmt.Stringer.
func (t InputType) String() string { return string(t) }

// ParseInputType returns the InputType named s.
func ParseInputType(s string) (InputType, error) {
	if t := InputType(s); t.Valid() {
		return t, nil
	}
	return "", NewUnknownValueError(AxisInputType, s)
}

// OutputType is the format a launcher produces.
type OutputType string

const (
	PNG    OutputType = "png"
	JPG    OutputType = "jpg"
	SVG    OutputType = "svg"
	PDF    OutputType = "pdf"
	DotOut OutputType = "dot"
)

// OutputTypes returns all output types in canonical order.
func OutputTypes() []OutputType { return []OutputType{PNG, JPG, SVG, PDF, DotOut} }

// Valid reports whether t is a known output type.
func (t OutputType) Valid() bool {
	switch t {
	case PNG, JPG, SVG, PDF, DotOut:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (t OutputType) String() string { return string(t) }

// ParseOutputType returns the OutputType named s.
func ParseOutputType(s string) (OutputType, error) {
	if t := OutputType(s); t.Valid() {
		return t, nil
	}
	return "", NewUnknownValueError(AxisOutputType, s)
}

// Notation is the ER diagram notation used when converting text input.
// The zero value means no notation.
type Notation string

const (
	IE       Notation = "ie"
	IEStrict Notation = "ie-strict"
	IDEF1X   Notation = "idef1x"
)

// Notations returns all notations in canonical order.
func Notations() []Notation { return []Notation{IE, IEStrict, IDEF1X} }

// Valid reports whether n is a known notation. The zero value is not valid.
func (n Notation) Valid() bool { return n == IE || n == IEStrict || n == IDEF1X }

// String implements fmt.Stringer.
func (n Notation) String() string { return string(n) }

// ParseNotation returns the Notation named s.
func ParseNotation(s string) (Notation, error) {
	if n := Notation(s); n.Valid() {
		return n, nil
	}
	return "", NewUnknownValueError(AxisNotation, s)
}
