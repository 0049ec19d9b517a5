package parser

import (
	"regexp"
	"strings"
)

// Result is the outcome of parsing a tree diagram: every full path in
// line order, root first when present, and a comment map keyed by full
// path. Directory paths carry a trailing slash.
type Result struct {
	Paths    []string
	Comments map[string]string
}

// branchPrefix matches the leading glyph run of a diagram line: any mix
// of whitespace and vertical bars, then at most one branch glyph
// followed by whitespace.
var branchPrefix = regexp.MustCompile(`^[\s│]*(?:[├└]──\s+)?`)

// DecomposeLine splits one diagram line into its bare name and trailing
// comment. The comment is the trimmed text after the first '#'; the
// name is the glyph-stripped, trimmed segment before it. Every string
// decomposes: a line of glyphs and whitespace yields an empty name,
// which callers treat as a non-entry.
func DecomposeLine(line string) (name, comment string) {
	raw := line
	if i := strings.Index(line, "#"); i >= 0 {
		raw = line[:i]
		comment = strings.TrimSpace(line[i+1:])
	}
	raw = branchPrefix.ReplaceAllString(raw, "")
	return strings.TrimSpace(raw), comment
}

// Indentation reports the nesting depth of a line as the number of '│'
// runes it contains. The tally runs over the whole line rather than
// just the leading glyph run, so a stray bar after the branch glyph
// still counts. Callers rely on this exact behavior.
func Indentation(line string) int {
	return strings.Count(line, "│")
}

// Parse walks a whole tree diagram top to bottom and assembles full
// paths against a stack of ancestor directories. It never fails: empty
// input yields an empty result, and a single unstructured line becomes
// a lone root path.
func Parse(text string) Result {
	result := Result{Paths: make([]string, 0), Comments: make(map[string]string)}

	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return result
	}

	rootName, rootComment := DecomposeLine(lines[0])
	if rootName != "" {
		result.Paths = append(result.Paths, rootName)
		if rootComment != "" {
			result.Comments[rootName] = rootComment
		}
	}

	// stack[depth] is the enclosing directory path for lines at that
	// depth; the root occupies depth 0 even when its name is empty.
	stack := []string{rootName}

	for _, line := range lines[1:] {
		name, comment := DecomposeLine(line)
		if name == "" {
			continue
		}

		level := Indentation(line)
		// Discard ancestors deeper than this line. A stack already at or
		// below level+1 is left alone: under-indented lines attach to the
		// nearest enclosing ancestor instead of failing.
		for len(stack) > level+1 {
			stack = stack[:len(stack)-1]
		}

		full := stack[len(stack)-1] + name
		result.Paths = append(result.Paths, full)

		if strings.HasSuffix(name, "/") {
			stack = append(stack, full)
		}
		if comment != "" {
			result.Comments[full] = comment
		}
	}

	return result
}
