package ignore

import (
	"fmt"
	"path"
	"strings"
)

// Rule is one gitignore-style skip pattern.
type Rule struct {
	Raw     string
	Negate  bool
	DirOnly bool

	segments []string // nil when the pattern has no slash
	base     string   // base-name pattern when segments is nil
}

// Matcher evaluates skip rules in order; the last matching rule wins.
type Matcher struct {
	rules []Rule
}

// Compile parses patterns into a matcher. Blank patterns and comment
// lines are dropped.
func Compile(patterns []string) (*Matcher, error) {
	rules := make([]Rule, 0, len(patterns))
	for _, raw := range patterns {
		pattern := strings.TrimSpace(raw)
		if pattern == "" || strings.HasPrefix(pattern, "#") {
			continue
		}
		rule, err := parseRule(pattern)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return &Matcher{rules: rules}, nil
}

// Rules returns the parsed rules in order.
func (m *Matcher) Rules() []Rule {
	return m.rules
}

// Skip reports whether a planned path should be dropped. Paths are
// slash-separated; directories carry a trailing slash.
func (m *Matcher) Skip(p string, isDir bool) bool {
	skip := false
	for _, rule := range m.rules {
		if rule.Match(p, isDir) {
			skip = !rule.Negate
		}
	}
	return skip
}

func parseRule(pattern string) (Rule, error) {
	rule := Rule{Raw: pattern}
	if strings.HasPrefix(pattern, "!") {
		rule.Negate = true
		pattern = pattern[1:]
	}
	if strings.HasSuffix(pattern, "/") {
		rule.DirOnly = true
		pattern = strings.TrimSuffix(pattern, "/")
	}
	anchored := strings.HasPrefix(pattern, "/")
	pattern = strings.TrimPrefix(pattern, "/")
	if pattern == "" {
		return Rule{}, fmt.Errorf("empty pattern %q", rule.Raw)
	}

	if anchored || strings.Contains(pattern, "/") {
		segments := strings.Split(pattern, "/")
		for _, seg := range segments {
			if seg == "**" {
				continue
			}
			if err := validateSegment(rule.Raw, seg); err != nil {
				return Rule{}, err
			}
		}
		rule.segments = segments
		return rule, nil
	}

	if err := validateSegment(rule.Raw, pattern); err != nil {
		return Rule{}, err
	}
	rule.base = pattern
	return rule, nil
}

func validateSegment(raw, segment string) error {
	if _, err := path.Match(segment, "probe"); err != nil {
		return fmt.Errorf("invalid pattern %q: %w", raw, err)
	}
	return nil
}

// Match reports whether the rule matches the given planned path.
func (r Rule) Match(p string, isDir bool) bool {
	if r.DirOnly && !isDir {
		return false
	}
	trimmed := strings.TrimSuffix(p, "/")
	if r.segments == nil {
		ok, _ := path.Match(r.base, path.Base(trimmed))
		return ok
	}
	return matchSegments(r.segments, strings.Split(trimmed, "/"))
}

func matchSegments(pattern, parts []string) bool {
	if len(pattern) == 0 {
		return len(parts) == 0
	}
	if pattern[0] == "**" {
		if len(pattern) == 1 {
			return true
		}
		for i := 0; i <= len(parts); i++ {
			if matchSegments(pattern[1:], parts[i:]) {
				return true
			}
		}
		return false
	}
	if len(parts) == 0 {
		return false
	}
	if ok, _ := path.Match(pattern[0], parts[0]); !ok {
		return false
	}
	return matchSegments(pattern[1:], parts[1:])
}
