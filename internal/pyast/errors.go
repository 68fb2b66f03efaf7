package pyast

import "fmt"

// SyntaxError reports source that could not be parsed into a tree.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax error at line %d: %s", e.Line, e.Msg)
}
