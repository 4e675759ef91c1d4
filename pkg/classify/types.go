package classify

// Row is an ordered sequence of fields: [id, source_text, target_text, ...].
type Row []string

// Field indices used by the rules.
const (
	FieldID     = 0
	FieldSource = 1
	FieldTarget = 2

	// MinFields is the smallest row the content rules can judge.
	MinFields = 3
)

// Field returns the field at i, or "" when the row is too short.
func (r Row) Field(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Verdict is the outcome of classifying a row.
type Verdict int

const (
	// Keep means the row is an example sentence and stays in the dataset.
	Keep Verdict = iota
	// Drop means the row is a grammar explanation.
	Drop
)

// String returns the string representation of the verdict.
func (v Verdict) String() string {
	switch v {
	case Keep:
		return "keep"
	case Drop:
		return "drop"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Decision is the result of Classify.
type Decision struct {
	Verdict Verdict `json:"verdict"`
	RuleID  string  `json:"rule_id,omitempty"` // empty when kept
	Reason  string  `json:"reason,omitempty"`
}

// Dropped reports whether the row should be removed.
func (d Decision) Dropped() bool {
	return d.Verdict == Drop
}

func keep() Decision {
	return Decision{Verdict: Keep}
}
