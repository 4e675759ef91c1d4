package classify

// Config holds the fixed lookup data the rules consult.
type Config struct {
	// ExcludedIDs are row ids known to be grammar explanations.
	ExcludedIDs []int

	// Keywords are substrings that mark a grammar explanation when found
	// in either the source or the target text.
	Keywords []string

	// GrammarTerms are part-of-speech names in the target language.
	GrammarTerms []string

	// Terminators are the suffixes that make source text a complete sentence.
	Terminators []string

	// MinWords is the word count at or above which an unterminated source
	// text is still treated as a sentence.
	MinWords int
}

// DefaultConfig returns the curated lookup lists for the vocabulary dataset.
func DefaultConfig() Config {
	return Config{
		ExcludedIDs: []int{24, 148, 149, 262, 309, 732, 913, 1130, 1439, 1770, 1882},
		Keywords: []string{
			"plus sentence", "plus noun", "one's", "A and B",
			"+", "＋",
			"Subject", "Verb", "Adjective", "Adverb", "Preposition", "Noun",
		},
		GrammarTerms: []string{"名詞", "動詞", "形容詞", "副詞", "助動詞", "前置詞", "接続詞", "不定詞"},
		Terminators:  []string{".", "?", "!", `"`},
		MinWords:     4,
	}
}
