package docstring

import "strings"

func parseNumPy(lines []string) DocModel {
	s := split(lines, numpyHeaderAt)

	doc := Empty()
	doc.Summary = optional(s.summary)
	doc.Description = optional(s.description)

	if body, ok := s.body("Examples"); ok {
		doc.Examples = optional(body)
	}
	if body, ok := s.body("Parameters"); ok {
		doc.Args = parseNumPyParams(body)
	}
	if body, ok := s.body("Returns", "Yields"); ok {
		doc.Returns = parseNumPyReturns(body)
	}
	if body, ok := s.body("Raises"); ok {
		doc.Raises = parseNumPyRaises(body)
	}
	return doc
}

// parseNumPyParams reads "name : type" header lines followed by indented
// description lines.
func parseNumPyParams(body string) []ArgDoc {
	args := []ArgDoc{}
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if indentOf(line) == 0 {
			name, typ, _ := strings.Cut(trimmed, ":")
			args = append(args, ArgDoc{Name: strings.TrimSpace(name), Type: optional(typ)})
			continue
		}
		if n := len(args); n > 0 {
			args[n-1].Description = joinText(args[n-1].Description, trimmed)
		}
	}
	return args
}

// parseNumPyReturns takes the first line as the type and joins the rest
// into the description.
func parseNumPyReturns(body string) *ReturnsDoc {
	var nonBlank []string
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) != "" {
			nonBlank = append(nonBlank, line)
		}
	}
	if len(nonBlank) == 0 {
		return nil
	}
	return &ReturnsDoc{
		Type:        optional(nonBlank[0]),
		Description: optional(joinLines(nonBlank[1:])),
	}
}

func parseNumPyRaises(body string) []RaisesDoc {
	raises := []RaisesDoc{}
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if indentOf(line) == 0 {
			raises = append(raises, RaisesDoc{Type: trimmed})
			continue
		}
		if n := len(raises); n > 0 {
			raises[n-1].Description = joinText(raises[n-1].Description, trimmed)
		}
	}
	return raises
}
