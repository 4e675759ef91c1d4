package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/vocabclean/internal/cli/config"
	"github.com/leapstack-labs/vocabclean/internal/cli/output"
	"github.com/leapstack-labs/vocabclean/internal/dataset"
	"github.com/leapstack-labs/vocabclean/internal/testutil"
	"github.com/leapstack-labs/vocabclean/pkg/classify"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestContext returns a command context rendering into a buffer.
func newTestContext(t *testing.T, cfg *config.Config, mode output.Mode) (*CommandContext, *bytes.Buffer) {
	t.Helper()
	buf := new(bytes.Buffer)
	return &CommandContext{
		Cfg:      cfg,
		Logger:   testutil.NewTestLogger(t),
		Renderer: output.NewRendererWithTTY(buf, buf, false, mode),
	}, buf
}

func TestNewCommands(t *testing.T) {
	tests := []struct {
		cmd   *cobra.Command
		use   string
		flags []string
	}{
		{NewFilterCommand(), "filter [input]", []string{"out", "in-place", "no-backup", "show-dropped"}},
		{NewFixPipesCommand(), "fix-pipes [file]", []string{"no-backup"}},
		{NewCheckCommand(), "check <row>", []string{"width"}},
		{NewInitCommand(), "init [directory]", []string{"force"}},
	}

	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short, "Short should not be empty")
			assert.NotEmpty(t, tt.cmd.Example, "Example should not be empty")
			for _, f := range tt.flags {
				assert.NotNil(t, tt.cmd.Flags().Lookup(f), "flag %q should exist", f)
			}
		})
	}
}

func TestRunFilter_JSON(t *testing.T) {
	input := testutil.WriteDataset(t, "all.csv", testutil.SampleDataset...)
	cfg := config.Default()
	cfg.OutputFile = filepath.Join(filepath.Dir(input), "clean.csv")
	cfg.ShowDropped = true

	c, buf := newTestContext(t, cfg, output.ModeJSON)
	require.NoError(t, runFilter(c, input))

	var out FilterOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.NotEmpty(t, out.RunID)
	require.NotNil(t, out.Summary)
	assert.Equal(t, 9, out.Read)
	assert.Equal(t, 6, out.Dropped)
	assert.Equal(t, 3, out.Kept)
	assert.Len(t, out.DroppedRows, 6)
	assert.Equal(t, cfg.OutputFile, out.Output)

	lines := testutil.ReadLines(t, cfg.OutputFile)
	assert.Len(t, lines, 4, "header plus kept rows")
}

func TestRunFilter_Markdown(t *testing.T) {
	input := testutil.WriteDataset(t, "all.csv", testutil.SampleDataset...)
	cfg := config.Default()
	cfg.OutputFile = filepath.Join(filepath.Dir(input), "clean.csv")
	cfg.ShowDropped = true

	c, buf := newTestContext(t, cfg, output.ModeMarkdown)
	require.NoError(t, runFilter(c, input))

	out := buf.String()
	assert.Contains(t, out, "# Filtered "+input)
	assert.Contains(t, out, "**Read:** 9")
	assert.Contains(t, out, "**Dropped:** 6")
	assert.Contains(t, out, "**Kept:** 3")
	assert.Contains(t, out, "## Dropped by rule")
	assert.Contains(t, out, "**EX01** exclusion.forced_id: 1")
	assert.Contains(t, strings.ToLower(out), "| line | rule |")
}

func TestRunFilter_InPlace(t *testing.T) {
	input := testutil.WriteDataset(t, "all.csv", testutil.SampleDataset...)
	cfg := config.Default()
	cfg.InPlace = true

	c, buf := newTestContext(t, cfg, output.ModeJSON)
	require.NoError(t, runFilter(c, input))

	var out FilterOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, input, out.Output)
	assert.Equal(t, input+dataset.BackupSuffix, out.Backup)
	assert.Equal(t, testutil.SampleDataset, testutil.ReadLines(t, out.Backup))
	assert.Len(t, testutil.ReadLines(t, input), 4)
}

func TestRunFilter_Errors(t *testing.T) {
	t.Run("missing input", func(t *testing.T) {
		dir := t.TempDir()
		cfg := config.Default()
		cfg.OutputFile = filepath.Join(dir, "clean.csv")

		c, _ := newTestContext(t, cfg, output.ModeText)
		err := runFilter(c, filepath.Join(dir, "missing.csv"))
		require.ErrorIs(t, err, dataset.ErrInputNotFound)
		assert.Contains(t, err.Error(), "Hint:")
		assert.NoFileExists(t, cfg.OutputFile)
	})

	t.Run("empty input", func(t *testing.T) {
		input := testutil.WriteDataset(t, "empty.csv")
		cfg := config.Default()
		cfg.OutputFile = filepath.Join(filepath.Dir(input), "clean.csv")

		c, _ := newTestContext(t, cfg, output.ModeText)
		err := runFilter(c, input)
		require.ErrorIs(t, err, dataset.ErrEmptyInput)
		assert.NotErrorIs(t, err, dataset.ErrInputNotFound)
		assert.NoFileExists(t, cfg.OutputFile)
	})
}

func TestRunFixPipes(t *testing.T) {
	path := testutil.WriteDataset(t, "all.csv", "ID|英文|日本語訳||", "1|a|b|||", "2|c|d")
	cfg := config.Default()

	c, buf := newTestContext(t, cfg, output.ModeJSON)
	require.NoError(t, runFixPipes(c, path))

	var res dataset.FixResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, 3, res.Lines)
	assert.Equal(t, 2, res.Changed)
	assert.Equal(t, path+dataset.BackupSuffix, res.Backup)
	assert.Equal(t, []string{"ID|英文|日本語訳", "1|a|b", "2|c|d"}, testutil.ReadLines(t, path))
}

func TestRunFixPipes_Missing(t *testing.T) {
	c, _ := newTestContext(t, config.Default(), output.ModeText)
	err := runFixPipes(c, filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, dataset.ErrInputNotFound)
}

func TestRunCheck(t *testing.T) {
	tests := []struct {
		name    string
		row     string
		width   int
		verdict classify.Verdict
		rule    string
	}{
		{"example sentence", "1|She is happy.|彼女は幸せです。", 0, classify.Keep, ""},
		{"grammar term", "5|It expresses ability.|助動詞の用法です。", 0, classify.Drop, "TG03"},
		{"forced id", "148|A complete sentence here.|普通の訳。", 4, classify.Drop, "EX01"},
		{"short row", "1|hello", 0, classify.Keep, ""},
		{"incomplete source", "2|go|～ですか", 0, classify.Drop, "SN01"},
		{"narrow width", "2|go|～ですか", 2, classify.Keep, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, buf := newTestContext(t, config.Default(), output.ModeJSON)
			require.NoError(t, runCheck(c, tt.row, tt.width))

			var out struct {
				Width    int `json:"width"`
				Decision struct {
					Verdict string `json:"verdict"`
					RuleID  string `json:"rule_id"`
				} `json:"decision"`
			}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
			assert.Equal(t, tt.width, out.Width)
			assert.Equal(t, tt.verdict.String(), out.Decision.Verdict)
			assert.Equal(t, tt.rule, out.Decision.RuleID)
		})
	}
}

func TestRunCheck_Text(t *testing.T) {
	c, buf := newTestContext(t, config.Default(), output.ModeText)
	require.NoError(t, runCheck(c, "7|Is it raining?|～ですか", 0))
	assert.Contains(t, buf.String(), "drop")
	assert.Contains(t, buf.String(), "TG02")
}

func TestParseRow(t *testing.T) {
	row, err := parseRow("1|a|b\n")
	require.NoError(t, err)
	assert.Equal(t, classify.Row{"1", "a", "b"}, row)

	_, err = parseRow("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row is empty")
}

func TestWriteDefaultConfig(t *testing.T) {
	dir := t.TempDir()

	path, err := writeDefaultConfig(dir, false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, config.DefaultConfigName), path)

	_, err = writeDefaultConfig(dir, false)
	require.Error(t, err, "existing config requires --force")
	assert.Contains(t, err.Error(), "already exists")

	_, err = writeDefaultConfig(dir, true)
	require.NoError(t, err)

	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	cfg, err := config.LoadConfig(path, nil)
	require.NoError(t, err)
	def := config.Default()
	assert.Equal(t, filepath.Join(dir, config.DefaultInput), cfg.Input)
	assert.Equal(t, def.Backup, cfg.Backup)
	assert.Equal(t, def.OutputFormat, cfg.OutputFormat)
	assert.Equal(t, def.LogLevel, cfg.LogLevel)
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	cmd := NewInitCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{dir})

	require.NoError(t, cmd.Execute())
	assert.FileExists(t, filepath.Join(dir, config.DefaultConfigName))
	assert.Contains(t, buf.String(), "vocabclean initialized!")

	data, err := os.ReadFile(filepath.Join(dir, config.DefaultConfigName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "output_file: vocabulary_data.csv")
}
