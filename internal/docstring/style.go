package docstring

import (
	"regexp"
	"strings"
)

// Style names a docstring convention.
type Style string

const (
	StyleGoogle Style = "google"
	StyleNumPy  Style = "numpy"
	StyleSphinx Style = "sphinx"
	StyleSimple Style = "simple"
)

var (
	googleHeader = regexp.MustCompile(`(?m)^[ \t]*(Args|Arguments|Returns|Yields|Raises|Note|Notes|Example|Examples|Attributes):[ \t]*\n`)
	numpyHeader  = regexp.MustCompile(`(?m)^[ \t]*(Parameters|Returns|Yields|Raises|See Also|Notes|Examples|Attributes)[ \t]*\n[ \t]*-+[ \t]*$`)
	sphinxField  = regexp.MustCompile(`:(param|type|returns?|rtype|raises?)(\s+[^\s:]+)?(\s+\*{0,2}\w+)?:`)
)

// Classify picks the convention used by doc. Real docstrings often match
// more than one pattern, so the checks run in a fixed order and the first
// match wins: Google, NumPy, Sphinx, then Simple.
func Classify(doc string) Style {
	switch {
	case googleHeader.MatchString(doc):
		return StyleGoogle
	case numpyHeader.MatchString(doc):
		return StyleNumPy
	case sphinxField.MatchString(doc):
		return StyleSphinx
	}
	return StyleSimple
}

// Parse classifies doc and extracts its fields with the matching parser.
// A blank docstring yields Empty().
func Parse(doc string) DocModel {
	if strings.TrimSpace(doc) == "" {
		return Empty()
	}
	return ParseAs(Classify(doc), doc)
}

// ParseAs extracts fields from doc using the given convention.
func ParseAs(style Style, doc string) DocModel {
	lines := strings.Split(doc, "\n")
	switch style {
	case StyleGoogle:
		return parseGoogle(lines)
	case StyleNumPy:
		return parseNumPy(lines)
	case StyleSphinx:
		return parseSphinx(lines)
	}
	return parseSimple(lines)
}
