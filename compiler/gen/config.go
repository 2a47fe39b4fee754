package gen

import "github.com/syssam/scriptgen/axis"

const (
	// EntityColor is the entity fill color baked into every script.
	EntityColor = "yellow"
	// UIFont is the font the Japanese Windows text launchers select.
	UIFont = "MS UI Gothic"
)

// Flags are the fixed control settings of a dialect.
type Flags struct {
	StopBeforeNormalExit   bool
	StopBeforeAbnormalExit bool
	ShowProgress           bool
}

// ScriptConfig holds the values written into a script's configuration block.
// Empty Notation or FontName means the assignment is omitted.
type ScriptConfig struct {
	Notation    axis.Notation
	OutType     axis.OutputType
	EntityColor string
	FontName    string
	Flags
}

// ResolveConfig computes the configuration of r with the dialect flags f.
// r is expected to pass Request.Validate.
//
// The font override only applies to Japanese cmd launchers with text input;
// Japanese sh launchers leave the font to the converter's default.
func ResolveConfig(r Request, f Flags) ScriptConfig {
	c := ScriptConfig{
		OutType:     r.OutputType,
		EntityColor: EntityColor,
		Flags:       f,
	}
	if r.HasNotation() {
		c.Notation = r.Notation
		if r.Language == axis.Japanese && r.Dialect == axis.Cmd {
			c.FontName = UIFont
		}
	}
	return c
}
