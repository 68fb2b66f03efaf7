package docstring

import "strings"

// parseSimple takes the first non-blank line as the summary and joins the
// rest into the description. Annotation tag lines are skipped.
func parseSimple(lines []string) DocModel {
	doc := Empty()

	var rest []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "@") {
			continue
		}
		if doc.Summary == nil {
			doc.Summary = optional(trimmed)
			continue
		}
		rest = append(rest, trimmed)
	}
	doc.Description = optional(joinLines(rest))
	return doc
}
