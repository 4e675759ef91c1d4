package classify

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

const (
	fullWidthOpenParen  = "（"
	fullWidthCloseParen = "）"
	fullWidthPeriod     = "。"
	waveDash            = "～"
)

// ruleSet is evaluated in order; the first rule that fires decides the row.
var ruleSet = []RuleDef{
	{
		ID:          "EX01",
		Name:        "exclusion.forced_id",
		Group:       "exclusion",
		Description: "Row id is on the list of known grammar-explanation rows",
		Check:       checkForcedID,
	},
	{
		ID:          "EX02",
		Name:        "exclusion.empty_id",
		Group:       "exclusion",
		Description: "Row id is blank (delimiter-only line)",
		Check:       checkEmptyID,
	},
	{
		ID:          "KW01",
		Name:        "keyword.substring",
		Group:       "keyword",
		Description: "Source or target text contains a grammar keyword",
		Check:       checkKeyword,
	},
	{
		ID:          "SN01",
		Name:        "sentence.incomplete",
		Group:       "sentence",
		Description: "Source text is short and lacks terminal punctuation",
		Check:       checkIncompleteSentence,
	},
	{
		ID:          "TG01",
		Name:        "target.bracket_gloss",
		Group:       "target",
		Description: "Target text has full-width parentheses but no full-width period",
		Check:       checkBracketGloss,
	},
	{
		ID:          "TG02",
		Name:        "target.leading_tilde",
		Group:       "target",
		Description: "Target text starts with a tilde placeholder and has no full-width period",
		Check:       checkLeadingTilde,
	},
	{
		ID:          "TG03",
		Name:        "target.grammar_term",
		Group:       "target",
		Description: "Target text names a part of speech",
		Check:       checkGrammarTerm,
	},
}

func checkForcedID(row Row, lk *lookup) (bool, string) {
	// Full-width digits count as their ASCII forms.
	id, err := strconv.Atoi(width.Narrow.String(strings.TrimSpace(row.Field(FieldID))))
	if err != nil {
		// Non-numeric ids are not excluded.
		return false, ""
	}
	if _, ok := lk.excluded[id]; ok {
		return true, fmt.Sprintf("id %d is excluded", id)
	}
	return false, ""
}

func checkEmptyID(row Row, _ *lookup) (bool, string) {
	if strings.TrimSpace(row.Field(FieldID)) == "" {
		return true, "id is empty"
	}
	return false, ""
}

func checkKeyword(row Row, lk *lookup) (bool, string) {
	source := row.Field(FieldSource)
	target := row.Field(FieldTarget)
	for _, kw := range lk.keywords {
		if strings.Contains(source, kw) {
			return true, fmt.Sprintf("source contains %q", kw)
		}
		if strings.Contains(target, kw) {
			return true, fmt.Sprintf("target contains %q", kw)
		}
	}
	return false, ""
}

func checkIncompleteSentence(row Row, lk *lookup) (bool, string) {
	source := strings.TrimSpace(row.Field(FieldSource))
	for _, t := range lk.terminators {
		if strings.HasSuffix(source, t) {
			return false, ""
		}
	}
	words := len(strings.Fields(source))
	if words < lk.minWords {
		return true, fmt.Sprintf("unterminated source with %d word(s)", words)
	}
	return false, ""
}

func checkBracketGloss(row Row, _ *lookup) (bool, string) {
	target := row.Field(FieldTarget)
	if strings.Contains(target, fullWidthPeriod) {
		return false, ""
	}
	if strings.Contains(target, fullWidthOpenParen) || strings.Contains(target, fullWidthCloseParen) {
		return true, "parenthetical target without full-width period"
	}
	return false, ""
}

func checkLeadingTilde(row Row, _ *lookup) (bool, string) {
	target := strings.TrimSpace(row.Field(FieldTarget))
	if strings.HasPrefix(target, waveDash) && !strings.Contains(target, fullWidthPeriod) {
		return true, "target starts with a tilde placeholder"
	}
	return false, ""
}

func checkGrammarTerm(row Row, lk *lookup) (bool, string) {
	if lk.terms == nil {
		return false, ""
	}
	m := lk.terms.FindStringSubmatch(row.Field(FieldTarget))
	if m == nil {
		return false, ""
	}
	return true, fmt.Sprintf("target names grammar term %q", m[1])
}
