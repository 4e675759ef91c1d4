package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCLIDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateCLIDocs(dir))

	for _, name := range []string{"index.md", "filter.md", "fix-pipes.md", "check.md", "rules.md", "init.md"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	data, err := os.ReadFile(filepath.Join(dir, "filter.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "vocabclean filter [input]")
	assert.Contains(t, string(data), "`--show-dropped`")
	assert.Contains(t, string(data), generatedHeader)
	assert.Contains(t, string(data), "`--out` sets `output_file` (`VOCABCLEAN_OUTPUT_FILE`)")

	index, err := os.ReadFile(filepath.Join(dir, "index.md"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "VOCABCLEAN_OUTPUT_FILE")
	assert.Contains(t, string(index), "## Workflow")
	assert.Contains(t, string(index), "[EX01](/rules#EX01)")
	assert.Contains(t, string(index), "no header line")
	assert.NotContains(t, string(index), "/cli/help")
}

func TestGenerateRulesDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateRulesDocs(dir))

	data, err := os.ReadFile(filepath.Join(dir, "rules.md"))
	require.NoError(t, err)
	doc := string(data)
	assert.Contains(t, doc, "### EX01 - exclusion.forced_id {#EX01}")
	assert.Contains(t, doc, "## Target {#target}")
	assert.Contains(t, doc, "`助動詞`")
	assert.Contains(t, doc, "1770")
}

func TestGenerateConfigDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateConfigDocs(dir))

	data, err := os.ReadFile(filepath.Join(dir, "configuration.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "`output_file`")
	assert.Contains(t, string(data), "vocabclean.yaml")
}

func TestCleanExample(t *testing.T) {
	in := "  # Filter\n  vocabclean filter\n\n    nested"
	assert.Equal(t, "# Filter\nvocabclean filter\n\n  nested", cleanExample(in))
}

func TestCleanDescription(t *testing.T) {
	assert.Equal(t, "Strip trailing delimiters", cleanDescription("Strip   trailing\ndelimiters."))
}
