package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_EffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		isTTY bool
		want  Mode
	}{
		{"auto on terminal", ModeAuto, true, ModeText},
		{"auto when piped", ModeAuto, false, ModeMarkdown},
		{"empty defaults to auto", "", false, ModeMarkdown},
		{"explicit text", ModeText, false, ModeText},
		{"explicit markdown", ModeMarkdown, true, ModeMarkdown},
		{"explicit json", ModeJSON, true, ModeJSON},
		{"unknown falls back to auto", Mode("xml"), true, ModeText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRendererWithTTY(new(bytes.Buffer), new(bytes.Buffer), tt.isTTY, tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestNewRenderer_BufferIsNotTTY(t *testing.T) {
	r := NewRenderer(new(bytes.Buffer), new(bytes.Buffer), ModeAuto)
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestRenderer_PlainStylesWithoutTTY(t *testing.T) {
	buf := new(bytes.Buffer)
	r := NewRendererWithTTY(buf, buf, false, ModeText)

	r.Header(1, "Title")
	r.Success("done")
	r.StatusLine("TG03", "failed", "grammar term")
	r.KeyValue("Read", 9)

	out := buf.String()
	assert.NotContains(t, out, "\x1b[", "no ANSI escapes without a terminal")
	assert.Contains(t, out, "Title\n")
	assert.Contains(t, out, IconSuccess+" done")
	assert.Contains(t, out, IconError+" TG03  grammar term")
	assert.Contains(t, out, "Read:      9")
}

func TestRenderer_WarningGoesToErrOut(t *testing.T) {
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	r := NewRendererWithTTY(out, errOut, false, ModeText)

	r.Warning("careful")
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "careful")
}

func TestRenderer_JSON(t *testing.T) {
	buf := new(bytes.Buffer)
	r := NewRendererWithTTY(buf, buf, false, ModeJSON)

	require.NoError(t, r.JSON(map[string]int{"kept": 3}))

	var got map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 3, got["kept"])
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestRenderer_Table(t *testing.T) {
	header := []string{"ID", "Name"}
	rows := [][]string{{"EX01", "exclusion.forced_id"}}

	t.Run("markdown", func(t *testing.T) {
		buf := new(bytes.Buffer)
		NewRendererWithTTY(buf, buf, false, ModeMarkdown).Table(header, rows)
		out := buf.String()
		assert.Contains(t, strings.ToLower(out), "| id | name |")
		assert.Contains(t, out, "| EX01 | exclusion.forced_id |")
	})

	t.Run("text", func(t *testing.T) {
		buf := new(bytes.Buffer)
		NewRendererWithTTY(buf, buf, false, ModeText).Table(header, rows)
		out := buf.String()
		assert.Contains(t, out, "EX01")
		assert.Contains(t, out, "┌")
	})
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "# Title", FormatHeader(1, "Title"))
	assert.Equal(t, "### Deep", FormatHeader(3, "Deep"))
	assert.Equal(t, "# Clamp", FormatHeader(0, "Clamp"))
	assert.Equal(t, "**Kept:** 3", FormatKeyValue("Kept", 3))
}
