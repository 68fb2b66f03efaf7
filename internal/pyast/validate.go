package pyast

import (
	"strconv"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

// structuralError finds layouts Python rejects that tree-sitter recovers
// from without an ERROR node. The earliest problem wins.
func structuralError(root *tree_sitter.Node) *SyntaxError {
	var first *SyntaxError
	report := func(err *SyntaxError) {
		if first == nil || err.Line < first.Line {
			first = err
		}
	}

	var walk func(n *tree_sitter.Node)
	walk = func(n *tree_sitter.Node) {
		switch n.Kind() {
		case "print_statement", "exec_statement":
			name := "print"
			if n.Kind() == "exec_statement" {
				name = "exec"
			}
			report(&SyntaxError{
				Line: line(n),
				Msg:  "Missing parentheses in call to '" + name + "'. Did you mean " + name + "(...)?",
			})

		case "block":
			if err := suiteError(n); err != nil {
				report(err)
			}
			fallthrough
		case "module":
			if err := indentError(n); err != nil {
				report(err)
			}
		}

		for i := uint(0); i < n.NamedChildCount(); i++ {
			if child := n.NamedChild(i); child != nil {
				walk(child)
			}
		}
	}
	walk(root)
	return first
}

// suiteError reports a block that is not the body of a compound statement,
// or a body that is empty or not indented past its header.
func suiteError(block *tree_sitter.Node) *SyntaxError {
	parent := block.Parent()
	msg := "expected an indented block"
	if parent != nil {
		switch parent.Kind() {
		case "module", "block":
			return &SyntaxError{Line: line(block), Msg: "unexpected indent"}
		case "function_definition":
			msg += " after function definition on line " + strconv.Itoa(line(parent))
		case "class_definition":
			msg += " after class definition on line " + strconv.Itoa(line(parent))
		}
	}

	stmts := namedChildren(block)
	if len(stmts) == 0 {
		return &SyntaxError{Line: nextStatementLine(block), Msg: msg}
	}

	// A body on its own lines must sit deeper than its header.
	first := stmts[0].StartPosition()
	if parent != nil && first.Row > parent.StartPosition().Row && first.Column <= parent.StartPosition().Column {
		return &SyntaxError{Line: line(stmts[0]), Msg: msg}
	}
	return nil
}

// nextStatementLine is the line of the first statement following the suite
// that block closes. The empty suite itself sits on the header line.
func nextStatementLine(block *tree_sitter.Node) int {
	for n := block.Parent(); n != nil; n = n.Parent() {
		if next := n.NextNamedSibling(); next != nil {
			return line(next)
		}
	}
	return int(block.EndPosition().Row) + 2
}

// indentError reports a statement that starts a new line at a different
// column than the first statement of its module or block.
func indentError(container *tree_sitter.Node) *SyntaxError {
	stmts := namedChildren(container)
	if len(stmts) == 0 {
		return nil
	}

	var column uint
	if container.Kind() == "block" {
		column = stmts[0].StartPosition().Column
	}
	for i, stmt := range stmts {
		start := stmt.StartPosition()
		if i > 0 && stmts[i-1].EndPosition().Row == start.Row {
			continue
		}
		if start.Column != column {
			return &SyntaxError{Line: line(stmt), Msg: "unexpected indent"}
		}
	}
	return nil
}
