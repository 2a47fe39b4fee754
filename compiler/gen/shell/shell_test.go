package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"

	"github.com/syssam/scriptgen/axis"
	"github.com/syssam/scriptgen/compiler/gen"
)

func golden(t *testing.T, name string) string {
	t.Helper()
	buf, err := os.ReadFile(filepath.Join("testdata", name+".golden"))
	require.NoError(t, err)
	return string(buf)
}

func render(t *testing.T, d gen.Dialect, r gen.Request) string {
	t.Helper()
	text, err := d.Render(gen.ResolveConfig(r, d.Flags()))
	require.NoError(t, err)
	return text
}

func TestRender(t *testing.T) {
	tests := []struct {
		golden  string
		dialect gen.Dialect
		req     gen.Request
	}{
		{
			golden:  "text2png-ie.cmd",
			dialect: Cmd(),
			req:     gen.Request{Language: axis.Japanese, Dialect: axis.Cmd, InputType: axis.Text, OutputType: axis.PNG, Notation: axis.IE},
		},
		{
			golden:  "dot2pdf.cmd",
			dialect: Cmd(),
			req:     gen.Request{Language: axis.Japanese, Dialect: axis.Cmd, InputType: axis.DotIn, OutputType: axis.PDF},
		},
		{
			golden:  "dot2svg.sh",
			dialect: Sh(),
			req:     gen.Request{Language: axis.English, Dialect: axis.Sh, InputType: axis.DotIn, OutputType: axis.SVG},
		},
		{
			golden:  "text2jpg-ie-strict.sh",
			dialect: Sh(),
			req:     gen.Request{Language: axis.Japanese, Dialect: axis.Sh, InputType: axis.Text, OutputType: axis.JPG, Notation: axis.IEStrict},
		},
	}
	for _, tt := range tests {
		t.Run(tt.golden, func(t *testing.T) {
			got := render(t, tt.dialect, tt.req)
			if diff := cmp.Diff(golden(t, tt.golden), got); diff != "" {
				t.Errorf("rendered script mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDialects(t *testing.T) {
	ds := Dialects()
	require.Len(t, ds, 2)
	assert.Equal(t, axis.Cmd, ds[0].Name())
	assert.Equal(t, axis.Sh, ds[1].Name())

	assert.Equal(t, gen.Flags{StopBeforeAbnormalExit: true, ShowProgress: true}, Cmd().Flags())
	assert.Equal(t, gen.Flags{ShowProgress: true}, Sh().Flags())
	assert.Equal(t, os.FileMode(0o644), Cmd().FileMode())
	assert.Equal(t, os.FileMode(0o755), Sh().FileMode())
}

func TestCmdEncode(t *testing.T) {
	t.Run("CRLF and Shift_JIS", func(t *testing.T) {
		text := render(t, Cmd(), gen.Request{Language: axis.Japanese, Dialect: axis.Cmd, InputType: axis.Text, OutputType: axis.SVG, Notation: axis.IDEF1X})
		out, err := Cmd().Encode(text)
		require.NoError(t, err)

		decoded, err := japanese.ShiftJIS.NewDecoder().Bytes(out)
		require.NoError(t, err)
		s := string(decoded)
		assert.Equal(t, strings.Count(s, "\n"), strings.Count(s, "\r\n"))
		assert.True(t, strings.HasSuffix(s, "exit /b %ERRORLEVEL%\r\n"))
		assert.Equal(t, text, strings.ReplaceAll(s, "\r\n", "\n"))
	})

	t.Run("japanese text", func(t *testing.T) {
		out, err := Cmd().Encode("set FONT_NAME=ＭＳ ゴシック\n")
		require.NoError(t, err)
		// Full-width characters are two bytes each in Shift_JIS.
		assert.Equal(t, []byte{0x82, 0x6c, 0x82, 0x72}, out[len("set FONT_NAME="):len("set FONT_NAME=")+4])

		decoded, err := japanese.ShiftJIS.NewDecoder().Bytes(out)
		require.NoError(t, err)
		assert.Equal(t, "set FONT_NAME=ＭＳ ゴシック\r\n", string(decoded))
	})

	t.Run("existing CRLF is not doubled", func(t *testing.T) {
		out, err := Cmd().Encode("a\r\nb\n")
		require.NoError(t, err)
		assert.Equal(t, "a\r\nb\r\n", string(out))
	})

	t.Run("unrepresentable rune", func(t *testing.T) {
		_, err := Cmd().Encode("set FONT_NAME=\U0001F600\n")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Shift_JIS")
	})
}

func TestShEncode(t *testing.T) {
	t.Run("LF only", func(t *testing.T) {
		text := render(t, Sh(), gen.Request{Language: axis.English, Dialect: axis.Sh, InputType: axis.Text, OutputType: axis.PNG, Notation: axis.IE})
		out, err := Sh().Encode(text)
		require.NoError(t, err)
		assert.NotContains(t, string(out), "\r")
		assert.Equal(t, text, string(out))
	})

	t.Run("carriage returns are stripped", func(t *testing.T) {
		out, err := Sh().Encode("a\r\nb\r")
		require.NoError(t, err)
		assert.Equal(t, "a\nb", string(out))
	})

	t.Run("UTF-8 is kept", func(t *testing.T) {
		out, err := Sh().Encode("export FONT_NAME='IPA ゴシック'\n")
		require.NoError(t, err)
		assert.Equal(t, "export FONT_NAME='IPA ゴシック'\n", string(out))
	})

	t.Run("invalid UTF-8", func(t *testing.T) {
		_, err := Sh().Encode("export X=\xff\n")
		require.Error(t, err)
	})
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{axis.IEStrict, "ie-strict"},
		{"yellow", "yellow"},
		{"MS UI Gothic", "'MS UI Gothic'"},
		{"it's", `'it'"'"'s'`},
		{"a;rm -rf /", "'a;rm -rf /'"},
		{"convert-files.sh", "convert-files.sh"},
		{"", "''"},
		{"$HOME", "'$HOME'"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, quote(tt.in), "quote(%q)", tt.in)
	}
}

func TestShFontIsQuoted(t *testing.T) {
	text, err := Sh().Render(gen.ScriptConfig{OutType: axis.PNG, EntityColor: gen.EntityColor, FontName: "MS UI Gothic"})
	require.NoError(t, err)
	assert.Contains(t, text, "export FONT_NAME='MS UI Gothic'\n")
}
