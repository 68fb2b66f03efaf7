// Package docstring parses Python docstrings written in the Google, NumPy
// or Sphinx conventions, falling back to a plain summary/description split.
package docstring

import "strings"

// DocModel is the canonical structured form of one docstring. Absent
// optional values marshal as null; Args and Raises are never nil.
type DocModel struct {
	Summary     *string     `json:"summary"`
	Description *string     `json:"description"`
	Args        []ArgDoc    `json:"args"`
	Returns     *ReturnsDoc `json:"returns"`
	Raises      []RaisesDoc `json:"raises"`
	Examples    *string     `json:"examples"`
}

// ArgDoc documents one parameter.
type ArgDoc struct {
	Name        string  `json:"name"`
	Type        *string `json:"type"`
	Description string  `json:"description"`
}

// ReturnsDoc documents the return value.
type ReturnsDoc struct {
	Type        *string `json:"type"`
	Description *string `json:"description"`
}

// RaisesDoc documents one raised exception.
type RaisesDoc struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Empty returns the model of a missing docstring.
func Empty() DocModel {
	return DocModel{Args: []ArgDoc{}, Raises: []RaisesDoc{}}
}

// optional returns nil for blank text.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// joinText appends more to text with a single separating space.
func joinText(text, more string) string {
	switch {
	case text == "":
		return more
	case more == "":
		return text
	}
	return text + " " + more
}

// joinLines trims every line and joins the non-blank ones with spaces.
func joinLines(lines []string) string {
	var out string
	for _, line := range lines {
		out = joinText(out, strings.TrimSpace(line))
	}
	return out
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}
