package docstring

import (
	"regexp"
	"strings"
)

var (
	googleArg     = regexp.MustCompile(`^(\*{0,2}\w+)\s*(?:\(([^)]+)\))?\s*:\s*(.*)$`)
	googleRaise   = regexp.MustCompile(`^(\w+(?:\.\w+)*)\s*:\s*(.*)$`)
	googleReturns = regexp.MustCompile(`(?s)^(\w+(?:\[.*?\])?)\s*:\s*(.+)$`)
)

func parseGoogle(lines []string) DocModel {
	s := split(lines, googleHeaderAt)

	doc := Empty()
	doc.Summary = optional(s.summary)
	doc.Description = optional(s.description)

	if body, ok := s.body("Examples", "Example"); ok {
		doc.Examples = optional(body)
	}
	if body, ok := s.body("Args", "Arguments"); ok {
		doc.Args = parseGoogleArgs(body)
	}
	if body, ok := s.body("Returns", "Yields"); ok {
		doc.Returns = parseGoogleReturns(body)
	}
	if body, ok := s.body("Raises"); ok {
		doc.Raises = parseGoogleRaises(body)
	}
	return doc
}

// parseGoogleArgs reads "name (type): description" entries. Lines at column
// zero that do not look like an entry are ignored; indented lines continue
// the current entry.
func parseGoogleArgs(body string) []ArgDoc {
	args := []ArgDoc{}
	current := -1
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if indentOf(line) == 0 {
			if m := googleArg.FindStringSubmatch(trimmed); m != nil {
				args = append(args, ArgDoc{Name: m[1], Type: optional(m[2]), Description: m[3]})
				current = len(args) - 1
			}
			continue
		}
		if current >= 0 {
			args[current].Description = joinText(args[current].Description, trimmed)
		}
	}
	return args
}

// parseGoogleReturns splits "Type: description"; without a leading type
// token the whole body is the description.
func parseGoogleReturns(body string) *ReturnsDoc {
	body = strings.TrimSpace(body)
	if m := googleReturns.FindStringSubmatch(body); m != nil {
		return &ReturnsDoc{Type: optional(m[1]), Description: optional(m[2])}
	}
	return &ReturnsDoc{Description: optional(body)}
}

func parseGoogleRaises(body string) []RaisesDoc {
	raises := []RaisesDoc{}
	current := -1
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if indentOf(line) == 0 {
			if m := googleRaise.FindStringSubmatch(trimmed); m != nil {
				raises = append(raises, RaisesDoc{Type: m[1], Description: m[2]})
				current = len(raises) - 1
			}
			continue
		}
		if current >= 0 {
			raises[current].Description = joinText(raises[current].Description, trimmed)
		}
	}
	return raises
}
