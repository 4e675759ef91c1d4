package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/leapstack-labs/vocabclean/pkg/classify"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// groupDescriptions provides human-readable descriptions for rule groups.
var groupDescriptions = map[string]string{
	"exclusion": "Rules decided by the row id alone.",
	"keyword":   "Rules matching grammar vocabulary in either text column.",
	"sentence":  "Rules about the shape of the source text.",
	"target":    "Rules about the shape and content of the translation.",
}

// generateRulesDocs generates the rule reference page.
func generateRulesDocs(outDir string) error {
	log.Printf("Generating rule docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	rules := classify.Rules()
	w := NewMarkdownWriter()

	w.Frontmatter("Classification Rules", "Rules that decide which dataset rows are removed")
	w.GeneratedMarker()

	w.Header(1, "Classification Rules")
	w.Paragraph(fmt.Sprintf("vocabclean judges every row with %d rules, evaluated in order. "+
		"The first rule that matches drops the row. Rows with fewer than %d fields are always kept, "+
		"and rows are padded or truncated to the header width before any rule runs.",
		len(rules), classify.MinFields))

	w.Header(2, "Evaluation Order")
	var rows [][]string
	for _, r := range rules {
		rows = append(rows, []string{
			strconv.Itoa(r.Order),
			fmt.Sprintf("[%s](#%s)", r.ID, r.ID),
			InlineCode(r.Name),
			r.Description,
		})
	}
	w.Table([]string{"#", "ID", "Name", "Description"}, rows)

	title := cases.Title(language.English)
	group := ""
	for _, r := range rules {
		if r.Group != group {
			group = r.Group
			w.Line(fmt.Sprintf("## %s {#%s}", title.String(group), group))
			w.Newline()
			if desc, ok := groupDescriptions[group]; ok {
				w.Paragraph(desc)
			}
		}
		writeRuleDoc(w, r)
	}

	writeLookupTables(w, classify.DefaultConfig())

	log.Printf("  Generated rules.md")
	return os.WriteFile(filepath.Join(outDir, "rules.md"), w.Bytes(), 0600)
}

// writeRuleDoc writes documentation for a single rule.
func writeRuleDoc(w *MarkdownWriter, r classify.RuleInfo) {
	// ### TG03 - target.grammar_term {#TG03}
	w.Line(fmt.Sprintf("### %s - %s {#%s}", r.ID, r.Name, r.ID))
	w.Newline()
	w.Line(fmt.Sprintf("**Order:** %d", r.Order))
	w.Newline()
	w.Paragraph(r.Description + ".")
	w.Line("---")
	w.Newline()
}

// writeLookupTables documents the built-in lookup lists.
func writeLookupTables(w *MarkdownWriter, cfg classify.Config) {
	w.Header(2, "Lookup Lists")

	ids := make([]string, len(cfg.ExcludedIDs))
	for i, id := range cfg.ExcludedIDs {
		ids[i] = strconv.Itoa(id)
	}

	w.Table([]string{"List", "Used by", "Values"}, [][]string{
		{"Excluded ids", "EX01", strings.Join(ids, ", ")},
		{"Keywords", "KW01", quoteAll(cfg.Keywords)},
		{"Sentence terminators", "SN01", quoteAll(cfg.Terminators)},
		{"Grammar terms", "TG03", quoteAll(cfg.GrammarTerms)},
	})

	w.Paragraph(fmt.Sprintf("An unterminated source text is incomplete when it has fewer than %d words.", cfg.MinWords))
}

func quoteAll(vals []string) string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = InlineCode(v)
	}
	return strings.Join(out, ", ")
}
