package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(mode Mode) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	return NewRenderer(out, errOut, mode), out, errOut
}

func TestEffectiveModeAutoIsMarkdownWhenNotATTY(t *testing.T) {
	r, _, _ := newTestRenderer(ModeAuto)
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestEffectiveModeExplicit(t *testing.T) {
	for _, mode := range []Mode{ModeText, ModeMarkdown, ModeJSON} {
		r, _, _ := newTestRenderer(mode)
		assert.Equal(t, mode, r.EffectiveMode())
	}
}

func TestUnknownModeFallsBackToAuto(t *testing.T) {
	r, _, _ := newTestRenderer(Mode("bogus"))
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestMarkdownTable(t *testing.T) {
	r, out, _ := newTestRenderer(ModeMarkdown)
	r.Table([]string{"Player", "Round"}, [][]string{
		{"CeeDee Lamb", "1"},
		{"Saquon Barkley", "2"},
	})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "| Player | Round |", lines[0])
	assert.Equal(t, "| --- | --- |", lines[1])
	assert.Contains(t, lines[2], "CeeDee Lamb")
}

func TestTableEmpty(t *testing.T) {
	r, out, _ := newTestRenderer(ModeMarkdown)
	r.Table([]string{"A"}, nil)
	assert.Equal(t, "(0 rows)\n", out.String())
}

func TestTextTableRenders(t *testing.T) {
	r, out, _ := newTestRenderer(ModeText)
	r.Table([]string{"Player"}, [][]string{{"CeeDee Lamb"}})
	assert.Contains(t, out.String(), "CeeDee Lamb")
	assert.Contains(t, out.String(), "PLAYER")
}

func TestJSON(t *testing.T) {
	r, out, _ := newTestRenderer(ModeJSON)
	require.NoError(t, r.JSON(map[string]int{"count": 3}))
	assert.JSONEq(t, `{"count": 3}`, out.String())
}

func TestHeaderMarkdown(t *testing.T) {
	r, out, _ := newTestRenderer(ModeMarkdown)
	r.Header(2, "Standings")
	assert.Equal(t, "## Standings\n", out.String())
}

func TestErrorGoesToErrWriter(t *testing.T) {
	r, out, errOut := newTestRenderer(ModeMarkdown)
	r.Error("boom")
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "boom")
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "# Title", FormatHeader(1, "Title"))
	assert.Equal(t, "# Title", FormatHeader(0, "Title"))
	assert.Equal(t, "Key: value", FormatKeyValue("Key", "value"))

	n := 7
	assert.Equal(t, "7", FormatOptionalInt(&n))
	assert.Equal(t, "-", FormatOptionalInt(nil))

	s := "WR1"
	assert.Equal(t, "WR1", FormatOptionalString(&s))
	assert.Equal(t, "-", FormatOptionalString(nil))

	assert.Equal(t, "yes", FormatBool(true))
	assert.Equal(t, "no", FormatBool(false))
}
