package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/leapstack-labs/vocabclean/pkg/classify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRulesCommand(t *testing.T) {
	cmd := NewRulesCommand()

	assert.Equal(t, "rules [rule-id]", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")

	for _, flag := range []string{"group", "format"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestRulesCommand_ListAll(t *testing.T) {
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "Classification Rules")
	for _, id := range []string{"EX01", "EX02", "KW01", "SN01", "TG01", "TG02", "TG03"} {
		assert.Contains(t, output, id)
	}
}

func TestRulesCommand_ShowSpecificRule(t *testing.T) {
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"TG03"})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "TG03")
	assert.Contains(t, output, "target.grammar_term")
	assert.Contains(t, output, "Target")
}

func TestRulesCommand_NotFound(t *testing.T) {
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"INVALID99"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRulesCommand_JSON(t *testing.T) {
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--format", "json"})

	require.NoError(t, cmd.Execute())

	var result RulesJSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, len(classify.Rules()), result.Count)
	require.Len(t, result.Rules, result.Count)
	for i, rule := range result.Rules {
		assert.Equal(t, i+1, rule.Order, "rules are listed in evaluation order")
	}
	assert.Equal(t, "EX01", result.Rules[0].ID)
}

func TestRulesCommand_Markdown(t *testing.T) {
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--format", "markdown"})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "# Classification Rules")
	assert.Contains(t, output, "| EX01")
}

func TestRulesCommand_FilterByGroup(t *testing.T) {
	cmd := NewRulesCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--group", "target", "--format", "json"})

	require.NoError(t, cmd.Execute())

	var result RulesJSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, 3, result.Count)
	for _, rule := range result.Rules {
		assert.Equal(t, "target", rule.Group)
	}
}

func TestFilterRulesByGroup(t *testing.T) {
	rules := []classify.RuleInfo{
		{ID: "A1", Group: "exclusion"},
		{ID: "B1", Group: "target"},
		{ID: "B2", Group: "target"},
	}

	t.Run("no filter", func(t *testing.T) {
		assert.Equal(t, rules, filterRulesByGroup(rules, ""))
	})

	t.Run("filter by group", func(t *testing.T) {
		got := filterRulesByGroup(rules, "target")
		require.Len(t, got, 2)
		assert.Equal(t, "B1", got[0].ID)
		assert.Equal(t, "B2", got[1].ID)
	})

	t.Run("unknown group", func(t *testing.T) {
		assert.Empty(t, filterRulesByGroup(rules, "nope"))
	})
}

func TestGroupTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"exclusion", "Exclusion"},
		{"target", "Target"},
		{"", ""},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, groupTitle(tc.input))
		})
	}
}
