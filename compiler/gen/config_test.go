package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/scriptgen/axis"
)

func TestResolveConfig(t *testing.T) {
	flags := Flags{StopBeforeAbnormalExit: true, ShowProgress: true}

	t.Run("japanese cmd text gets the UI font", func(t *testing.T) {
		c := ResolveConfig(Request{
			Language:   axis.Japanese,
			Dialect:    axis.Cmd,
			InputType:  axis.Text,
			OutputType: axis.PNG,
			Notation:   axis.IE,
		}, flags)

		assert.Equal(t, ScriptConfig{
			Notation:    axis.IE,
			OutType:     axis.PNG,
			EntityColor: "yellow",
			FontName:    "MS UI Gothic",
			Flags:       flags,
		}, c)
	})

	t.Run("dot input has no notation and no font", func(t *testing.T) {
		c := ResolveConfig(Request{
			Language:   axis.Japanese,
			Dialect:    axis.Cmd,
			InputType:  axis.DotIn,
			OutputType: axis.SVG,
		}, flags)

		assert.Empty(t, c.Notation)
		assert.Empty(t, c.FontName)
		assert.Equal(t, axis.SVG, c.OutType)
	})

	t.Run("flags come from the dialect", func(t *testing.T) {
		f := Flags{StopBeforeNormalExit: true}
		c := ResolveConfig(Request{Language: axis.English, Dialect: axis.Sh, InputType: axis.DotIn, OutputType: axis.PNG}, f)
		assert.Equal(t, f, c.Flags)
	})

	t.Run("font only for ja+cmd+text", func(t *testing.T) {
		for _, r := range Enumerate(axis.Default()) {
			c := ResolveConfig(r, flags)
			want := r.Language == axis.Japanese && r.Dialect == axis.Cmd && r.InputType == axis.Text
			assert.Equal(t, want, c.FontName != "", "%v", r)
			assert.Equal(t, r.Notation, c.Notation, "%v", r)
			assert.Equal(t, EntityColor, c.EntityColor)
		}
	})

	t.Run("japanese sh text has no font", func(t *testing.T) {
		c := ResolveConfig(Request{
			Language:   axis.Japanese,
			Dialect:    axis.Sh,
			InputType:  axis.Text,
			OutputType: axis.JPG,
			Notation:   axis.IDEF1X,
		}, flags)
		assert.Empty(t, c.FontName)
		assert.Equal(t, axis.IDEF1X, c.Notation)
	})
}
