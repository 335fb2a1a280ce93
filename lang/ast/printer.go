package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer controls pretty-printing of the AST nodes, used by the
// "parse" and "resolve" introspection subcommands.
type Printer struct {
	// Output is the io.Writer to print to.
	Output io.Writer

	// Lines prints each node's source line number when true.
	Lines bool

	// NodeFmt is the format string to use to print the nodes. The verb must
	// be either `s` or `v`, a width can be set, and the `#` and `-` flags are
	// supported (`-` only when a width is set, to pad with spaces on the right
	// instead of the left). Defaults to `%v`.
	NodeFmt string
}

// Print pretty-prints the AST node n, one line per node, indented by
// nesting depth. Variable, Assign, This and Super nodes whose Depth has
// been set by the resolver are followed by "[depth N]".
func (p *Printer) Print(n Node) error {
	pp := &printer{w: p.Output, lines: p.Lines, nodeFmt: p.NodeFmt}
	if p.NodeFmt == "" {
		pp.nodeFmt = "%v"
	}
	Walk(pp, n)
	return pp.err
}

type printer struct {
	w       io.Writer
	lines   bool
	nodeFmt string
	depth   int
	err     error
}

func (p *printer) Visit(n Node, dir VisitDirection) Visitor {
	if dir == VisitExit || p.err != nil {
		p.depth--
		return nil
	}

	p.depth++
	p.printNode(n, p.depth-1)
	return p
}

func (p *printer) printNode(n Node, indent int) {
	if p.err != nil {
		return
	}

	format := "%s"
	args := []any{strings.Repeat(". ", indent)}
	if p.lines {
		format += "[line %d] "
		args = append(args, n.Line())
	}
	format += p.nodeFmt
	args = append(args, n)
	var depth *int
	switch n := n.(type) {
	case *Variable:
		depth = n.Depth
	case *Assign:
		depth = n.Depth
	case *This:
		depth = n.Depth
	case *Super:
		depth = n.Depth
	}
	if depth != nil {
		format, args = format+" [depth %d]", append(args, *depth)
	}
	format += "\n"

	_, p.err = fmt.Fprintf(p.w, format, args...)
}
