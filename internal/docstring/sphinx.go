package docstring

import (
	"regexp"
	"strings"
)

var (
	sphinxParam   = regexp.MustCompile(`^:param\s+(?:([^\s:]+)\s+)?(\*{0,2}\w+):\s*(.*)$`)
	sphinxType    = regexp.MustCompile(`^:type\s+(\*{0,2}\w+):\s*(.*)$`)
	sphinxReturns = regexp.MustCompile(`^:returns?:\s*(.*)$`)
	sphinxRType   = regexp.MustCompile(`^:rtype:\s*(.*)$`)
	sphinxRaises  = regexp.MustCompile(`^:raises?\s+([\w.]+):\s*(.*)$`)
)

// parseSphinx reads reST field lists. Fields are order independent: a
// ":type x:" may precede or follow the ":param x:" it describes.
func parseSphinx(lines []string) DocModel {
	doc := Empty()

	var summary, description []string
	inSummary := true
	i := 0
	for ; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" {
			inSummary = false
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			break
		}
		if inSummary {
			summary = append(summary, trimmed)
		} else {
			description = append(description, trimmed)
		}
	}
	doc.Summary = optional(joinLines(summary))
	doc.Description = optional(joinLines(description))

	types := make(map[string]string)
	argIndex := func(name string) int {
		for j := range doc.Args {
			if doc.Args[j].Name == name {
				return j
			}
		}
		return -1
	}
	returns := func() *ReturnsDoc {
		if doc.Returns == nil {
			doc.Returns = &ReturnsDoc{}
		}
		return doc.Returns
	}

	// cont appends a continuation line to the most recent field.
	var cont func(string)

	for _, line := range lines[i:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if m := sphinxParam.FindStringSubmatch(trimmed); m != nil {
			name := m[2]
			j := argIndex(name)
			if j < 0 {
				doc.Args = append(doc.Args, ArgDoc{Name: name})
				j = len(doc.Args) - 1
				if t, ok := types[name]; ok {
					doc.Args[j].Type = optional(t)
				}
			}
			doc.Args[j].Description = m[3]
			if m[1] != "" {
				doc.Args[j].Type = optional(m[1])
			}
			cont = func(s string) { doc.Args[j].Description = joinText(doc.Args[j].Description, s) }
			continue
		}

		if m := sphinxType.FindStringSubmatch(trimmed); m != nil {
			types[m[1]] = m[2]
			if j := argIndex(m[1]); j >= 0 {
				doc.Args[j].Type = optional(m[2])
			}
			cont = nil
			continue
		}

		if m := sphinxReturns.FindStringSubmatch(trimmed); m != nil {
			r := returns()
			r.Description = optional(m[1])
			cont = func(s string) {
				var text string
				if r.Description != nil {
					text = *r.Description
				}
				r.Description = optional(joinText(text, s))
			}
			continue
		}

		if m := sphinxRType.FindStringSubmatch(trimmed); m != nil {
			returns().Type = optional(m[1])
			cont = nil
			continue
		}

		if m := sphinxRaises.FindStringSubmatch(trimmed); m != nil {
			doc.Raises = append(doc.Raises, RaisesDoc{Type: m[1], Description: m[2]})
			j := len(doc.Raises) - 1
			cont = func(s string) { doc.Raises[j].Description = joinText(doc.Raises[j].Description, s) }
			continue
		}

		if strings.HasPrefix(trimmed, ":") {
			cont = nil
			continue
		}
		if cont != nil {
			cont(trimmed)
		}
	}
	return doc
}
