package validation

import "regexp"

// Rule describes the checks applied to one form field. Checks run in a fixed
// order (required, min length, max length, numeric bounds, pattern) and the
// first failure is the one reported.
type Rule struct {
	Label     string
	Required  bool
	MinLength int
	MaxLength int
	Numeric   bool
	Min       *float64
	Max       *float64
	Pattern   *regexp.Regexp
	// Message overrides the generated text for pattern failures.
	Message string
}

// FieldRule binds a Rule to a form field name.
type FieldRule struct {
	Field string
	Rule  Rule
}

// RuleSet is the ordered rule table. Order only affects evaluation order,
// never the result.
type RuleSet []FieldRule

// FileRules bounds the uploaded documents of one submission. An empty
// allow-list disables that check.
type FileRules struct {
	MaxSize           int64
	MaxCount          int
	AllowedTypes      []string
	AllowedExtensions []string
}

// Result is the structured outcome of Validate.
type Result struct {
	Valid  bool
	Errors map[string]string
}
