package rewrite

import (
	"bytes"
	"regexp"

	"github.com/walteh/fixrc/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// compiledRule pairs a compiled pattern with its replacement text.
type compiledRule struct {
	re      *regexp.Regexp
	replace string
}

// RuleSet is an ordered list of compiled substitution rules. Rules apply in
// list order: each rule rewrites the output of the previous one, so the set
// behaves as a single composed transformation, not eight independent ones.
type RuleSet struct {
	rules []compiledRule
}

// CompileRules compiles every rule up front so a malformed pattern fails the
// run before any file is read.
func CompileRules(rules []config.Rule) (*RuleSet, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for i, r := range rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, errors.Errorf("compiling rule %d (%q): %w", i, r.Pattern, err)
		}
		compiled = append(compiled, compiledRule{re: re, replace: r.Replace})
	}
	return &RuleSet{rules: compiled}, nil
}

// Len returns the number of rules in the set.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Result holds the outcome of applying a rule set to one file's content.
type Result struct {
	Original         []byte
	Modified         []byte
	WasModified      bool
	ReplacementCount int
}

// Apply runs every rule in order over content. Each rule replaces all
// non-overlapping occurrences of its pattern, scanning left to right.
// WasModified reflects the end-to-end byte comparison, so a set of rules
// that happens to round-trip the content reports no modification.
func (rs *RuleSet) Apply(content []byte) Result {
	result := Result{
		Original: content,
		Modified: content,
	}

	current := content
	for _, rule := range rs.rules {
		matches := rule.re.FindAllIndex(current, -1)
		if len(matches) == 0 {
			continue
		}
		result.ReplacementCount += len(matches)
		current = rule.re.ReplaceAll(current, []byte(rule.replace))
	}

	result.Modified = current
	result.WasModified = !bytes.Equal(current, content)
	return result
}
