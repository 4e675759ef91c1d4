// Package classify decides whether a row of a paired-language example-sentence
// dataset is a usable example sentence or a grammar-explanation entry that
// should be dropped.
//
// # Rule Order
//
// Rules run in a fixed order and the first rule that fires decides the row:
//
//	EX01 exclusion.forced_id      id is in the exclusion set
//	EX02 exclusion.empty_id       id field is blank
//	KW01 keyword.substring        source or target text contains a keyword
//	SN01 sentence.incomplete      short source text without terminal punctuation
//	TG01 target.bracket_gloss     full-width parentheses without a full-width period
//	TG02 target.leading_tilde     target starts with a tilde placeholder
//	TG03 target.grammar_term      target names a part of speech
//
// A row no rule fires on is kept.
//
// # Using the Classifier
//
//	c := classify.New(classify.DefaultConfig())
//	d := c.Classify(classify.Row{"6", "go", "～ですか"}, 3)
//	if d.Dropped() {
//		fmt.Println(d.RuleID) // SN01
//	}
//
// Lookup data lives in Config and is copied at construction, so a Classifier
// is safe to share and can be built with alternate lists in tests.
package classify
