package docstring

import "strings"

var (
	googleSections = map[string]bool{
		"Args": true, "Arguments": true, "Returns": true, "Yields": true, "Raises": true,
		"Note": true, "Notes": true, "Example": true, "Examples": true, "Attributes": true,
	}
	numpySections = map[string]bool{
		"Parameters": true, "Returns": true, "Yields": true, "Raises": true,
		"See Also": true, "Notes": true, "Examples": true, "Attributes": true,
	}
)

// sections is a docstring split into its preamble and named bodies.
type sections struct {
	summary     string
	description string
	bodies      map[string]string
}

func (s sections) body(names ...string) (string, bool) {
	for _, name := range names {
		if b, ok := s.bodies[name]; ok && b != "" {
			return b, true
		}
	}
	return "", false
}

// headerFunc reports whether lines[i] starts a section, returning the
// section name and how many lines the header occupies.
type headerFunc func(lines []string, i int) (string, int)

func googleHeaderAt(lines []string, i int) (string, int) {
	trimmed := strings.TrimSpace(lines[i])
	if !strings.HasSuffix(trimmed, ":") {
		return "", 0
	}
	name := strings.TrimSuffix(trimmed, ":")
	if !googleSections[name] {
		return "", 0
	}
	return name, 1
}

func numpyHeaderAt(lines []string, i int) (string, int) {
	if i+1 >= len(lines) {
		return "", 0
	}
	name := strings.TrimSpace(lines[i])
	if !numpySections[name] || !isDashes(strings.TrimSpace(lines[i+1])) {
		return "", 0
	}
	return name, 2
}

func isDashes(s string) bool {
	return s != "" && strings.Trim(s, "-") == ""
}

// split partitions lines by the headers detected by header. A repeated
// section replaces the earlier body.
func split(lines []string, header headerFunc) sections {
	s := sections{bodies: make(map[string]string)}

	current := ""
	var buf []string
	flush := func() {
		if current == "" {
			s.summary, s.description = preamble(buf)
			return
		}
		s.bodies[current] = sectionBody(buf)
	}

	for i := 0; i < len(lines); {
		if name, n := header(lines, i); n > 0 {
			flush()
			current, buf = name, nil
			i += n
			continue
		}
		buf = append(buf, lines[i])
		i++
	}
	flush()
	return s
}

// preamble splits the text before the first section at its first blank
// line into summary and description.
func preamble(lines []string) (summary, description string) {
	for i, line := range lines {
		if strings.TrimSpace(line) == "" && i > 0 {
			return joinLines(lines[:i]), joinLines(lines[i:])
		}
	}
	return joinLines(lines), ""
}

// sectionBody removes the common indentation of lines and drops leading and
// trailing blank lines, so entries sit at column zero and continuations are
// indented.
func sectionBody(lines []string) string {
	margin := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if n := indentOf(line); margin < 0 || n < margin {
			margin = n
		}
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			out = append(out, "")
			continue
		}
		out = append(out, strings.TrimRight(line[margin:], " \t"))
	}

	for len(out) > 0 && out[0] == "" {
		out = out[1:]
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
