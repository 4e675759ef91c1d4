// Package main provides tests for the vocabclean CLI.
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/vocabclean/internal/cli"
	"github.com/leapstack-labs/vocabclean/internal/cli/config"
	"github.com/leapstack-labs/vocabclean/internal/testutil"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCommand(t *testing.T) {
	output, err := runCLI(t, "version")
	if err != nil {
		t.Errorf("version command error = %v", err)
	}

	if !strings.Contains(output, "vocabclean") {
		t.Errorf("version output should contain 'vocabclean', got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	output, err := runCLI(t, "--help")
	if err != nil {
		t.Errorf("help command error = %v", err)
	}

	expectedCommands := []string{"filter", "fix-pipes", "check", "rules", "init", "completion"}
	for _, expected := range expectedCommands {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, output)
		}
	}
}

func TestFilterCommand(t *testing.T) {
	input := testutil.WriteDataset(t, "all.csv", testutil.SampleDataset...)
	out := filepath.Join(filepath.Dir(input), "clean.csv")

	output, err := runCLI(t, "filter", input, "--out", out, "--output", "markdown")
	if err != nil {
		t.Fatalf("filter command error = %v", err)
	}

	for _, want := range []string{"**Read:** 9", "**Dropped:** 6", "**Kept:** 3"} {
		if !strings.Contains(output, want) {
			t.Errorf("filter output should contain %q, got: %s", want, output)
		}
	}

	lines := testutil.ReadLines(t, out)
	if len(lines) != 4 {
		t.Errorf("expected header and 3 kept rows, got %d lines: %v", len(lines), lines)
	}
	if lines[0] != testutil.SampleDataset[0] {
		t.Errorf("header should be copied verbatim, got %q", lines[0])
	}
}

func TestFilterCommandJSON(t *testing.T) {
	input := testutil.WriteDataset(t, "all.csv", testutil.SampleDataset...)
	out := filepath.Join(filepath.Dir(input), "clean.csv")

	output, err := runCLI(t, "filter", input, "-O", out, "-o", "json", "--show-dropped")
	if err != nil {
		t.Fatalf("filter command error = %v", err)
	}

	var result struct {
		RunID       string         `json:"run_id"`
		Kept        int            `json:"kept"`
		ByRule      map[string]int `json:"by_rule"`
		DroppedRows []struct {
			RuleID string `json:"rule_id"`
		} `json:"dropped_rows"`
	}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("output should be JSON: %v\n%s", err, output)
	}
	if result.RunID == "" {
		t.Error("run_id should be set")
	}
	if result.Kept != 3 {
		t.Errorf("kept = %d, want 3", result.Kept)
	}
	if len(result.DroppedRows) != 6 {
		t.Errorf("dropped_rows = %d, want 6", len(result.DroppedRows))
	}
	if result.ByRule["TG03"] != 1 {
		t.Errorf("by_rule[TG03] = %d, want 1", result.ByRule["TG03"])
	}
}

func TestFilterCommandInPlaceNoBackup(t *testing.T) {
	input := testutil.WriteDataset(t, "all.csv", testutil.SampleDataset...)

	_, err := runCLI(t, "filter", input, "--in-place", "--no-backup", "-o", "json")
	if err != nil {
		t.Fatalf("filter command error = %v", err)
	}

	if got := len(testutil.ReadLines(t, input)); got != 4 {
		t.Errorf("input should be rewritten with 4 lines, got %d", got)
	}
}

func TestFilterCommandMissingInput(t *testing.T) {
	dir := t.TempDir()

	_, err := runCLI(t, "filter", filepath.Join(dir, "missing.csv"), "--out", filepath.Join(dir, "out.csv"))
	if err == nil {
		t.Fatal("filter should fail for a missing input")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error should report a missing input, got: %v", err)
	}
}

func TestFilterCommandEmptyInput(t *testing.T) {
	input := testutil.WriteDataset(t, "empty.csv")

	_, err := runCLI(t, "filter", input, "--out", filepath.Join(filepath.Dir(input), "out.csv"))
	if err == nil {
		t.Fatal("filter should fail for an empty input")
	}
	if !strings.Contains(err.Error(), "empty") {
		t.Errorf("error should report an empty input, got: %v", err)
	}
}

func TestInputRequired(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "vocabclean.yaml")
	if err := os.WriteFile(cfgPath, []byte("input: \"\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	for _, name := range []string{"filter", "fix-pipes"} {
		t.Run(name, func(t *testing.T) {
			_, err := runCLI(t, name, "--config", cfgPath)
			if err == nil {
				t.Fatalf("%s should fail without an input", name)
			}
			if !strings.Contains(err.Error(), "input is required") {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCheckCommand(t *testing.T) {
	output, err := runCLI(t, "check", "5|It expresses ability.|助動詞の用法です。", "-o", "markdown")
	if err != nil {
		t.Fatalf("check command error = %v", err)
	}
	if !strings.Contains(output, "TG03") {
		t.Errorf("check output should name the rule, got: %s", output)
	}
}

func TestRulesCommand(t *testing.T) {
	output, err := runCLI(t, "rules", "-o", "markdown")
	if err != nil {
		t.Fatalf("rules command error = %v", err)
	}
	if !strings.Contains(output, "EX01") || !strings.Contains(output, "TG03") {
		t.Errorf("rules output should list every rule, got: %s", output)
	}
}

func TestInvalidOutputFormat(t *testing.T) {
	_, err := runCLI(t, "rules", "-o", "xml")
	if err == nil {
		t.Fatal("invalid output format should fail")
	}
	if !strings.Contains(err.Error(), "invalid output format") {
		t.Errorf("unexpected error: %v", err)
	}
}
