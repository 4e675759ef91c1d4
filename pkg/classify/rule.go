package classify

// CheckFunc reports whether a rule fires on a width-normalized row.
// The returned string describes the match and becomes Decision.Reason.
type CheckFunc func(row Row, lk *lookup) (bool, string)

// RuleDef is a data-driven rule definition.
// Rules are stateless; all context comes from the row and the lookup tables.
type RuleDef struct {
	ID          string    // Unique identifier, e.g., "KW01"
	Name        string    // Human-readable name, e.g., "keyword.substring"
	Group       string    // Category, e.g., "exclusion", "keyword", "target"
	Description string    // Human-readable description
	Check       CheckFunc // The check function
}

// RuleInfo provides metadata about a rule for documentation/tooling.
type RuleInfo struct {
	Order       int    `json:"order"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Group       string `json:"group"`
	Description string `json:"description"`
}

// Rules returns metadata for the rule set in evaluation order.
func Rules() []RuleInfo {
	infos := make([]RuleInfo, 0, len(ruleSet))
	for i, r := range ruleSet {
		infos = append(infos, RuleInfo{
			Order:       i + 1,
			ID:          r.ID,
			Name:        r.Name,
			Group:       r.Group,
			Description: r.Description,
		})
	}
	return infos
}

// GetRuleByID returns rule metadata by ID.
func GetRuleByID(id string) (RuleInfo, bool) {
	for _, info := range Rules() {
		if info.ID == id {
			return info, true
		}
	}
	return RuleInfo{}, false
}
