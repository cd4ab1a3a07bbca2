package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/nibble"
)

// ToDot outputs the cause chain of err in Graphviz DOT format. Each error is
// a node, with an edge to its cause. Positioned errors are drawn as boxes
// labeled with their byte offset, errors without position as ellipses.
func ToDot(w io.Writer, input []byte, err *nibble.ParseError) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	frames := Frames(input, err)
	for i, f := range frames {
		ID := i + 1
		label := f.Kind.String()
		if f.HasPosition() {
			label += fmt.Sprintf("\\n@%d", f.Offset)
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(f, i == len(frames)-1))
		if i > 0 {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID-1, ID)
		}
	}
	b.WriteString(nodelist)
	b.WriteString(edgelist)
	b.WriteString("}\n")
	_, e := io.WriteString(w, b.String())
	return e
}

func nodeDotStyles(f Frame, innermost bool) string {
	s := ",style=filled"
	if f.HasPosition() {
		s += ",shape=box"
	} else {
		s += ",shape=ellipse"
	}
	if innermost {
		s += ",fillcolor=\"#FF9944\""
	} else if f.Kind.IsCustom() {
		s += ",fillcolor=\"#a3d7e4\""
	} else {
		s += ",fillcolor=white"
	}
	return s
}
