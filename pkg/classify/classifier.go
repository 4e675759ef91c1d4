package classify

import (
	"regexp"
	"sort"
	"strings"
)

// lookup is the compiled, read-only form of Config.
type lookup struct {
	excluded    map[int]struct{}
	keywords    []string
	terminators []string
	minWords    int
	terms       *regexp.Regexp // nil when no grammar terms are configured
}

// Classifier runs the ordered rule set against rows.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	lk *lookup
}

// New creates a classifier from the given lookup configuration.
// The slices in cfg are copied.
func New(cfg Config) *Classifier {
	lk := &lookup{
		excluded:    make(map[int]struct{}, len(cfg.ExcludedIDs)),
		keywords:    nonEmpty(cfg.Keywords),
		terminators: nonEmpty(cfg.Terminators),
		minWords:    cfg.MinWords,
		terms:       compileTerms(cfg.GrammarTerms),
	}
	for _, id := range cfg.ExcludedIDs {
		lk.excluded[id] = struct{}{}
	}
	return &Classifier{lk: lk}
}

// Classify decides whether row should be kept or dropped.
//
// Rows with fewer than MinFields fields are always kept. Otherwise the row
// is normalized to headerWidth fields (headerWidth <= 0 skips normalization)
// and the rules run in order until one fires.
func (c *Classifier) Classify(row Row, headerWidth int) Decision {
	if len(row) < MinFields {
		return keep()
	}
	if headerWidth > 0 {
		row = NormalizeWidth(row, headerWidth)
		if len(row) < MinFields {
			return keep()
		}
	}

	for _, rule := range ruleSet {
		if fired, reason := rule.Check(row, c.lk); fired {
			return Decision{Verdict: Drop, RuleID: rule.ID, Reason: reason}
		}
	}
	return keep()
}

// NormalizeWidth returns a copy of row with exactly width fields: extra
// fields are truncated and missing fields are padded with "".
func NormalizeWidth(row Row, width int) Row {
	if width < 0 {
		width = 0
	}
	out := make(Row, width)
	copy(out, row)
	return out
}

// compileTerms builds a matcher for terms that are not embedded in a longer
// run of Han ideographs.
func compileTerms(terms []string) *regexp.Regexp {
	terms = nonEmpty(terms)
	if len(terms) == 0 {
		return nil
	}
	// Longest first so 助動詞 wins over 動詞.
	sort.SliceStable(terms, func(i, j int) bool {
		return len(terms[i]) > len(terms[j])
	})
	quoted := make([]string, len(terms))
	for i, t := range terms {
		quoted[i] = regexp.QuoteMeta(t)
	}
	return regexp.MustCompile(`(?:^|[^\p{Han}])(` + strings.Join(quoted, "|") + `)(?:[^\p{Han}]|$)`)
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
