package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The narop authors

*/

import (
	"fmt"
	"os"
)

// Tree2GraphViz exports the tree under ref to the Graphviz Dot format, given
// a filename. Useful for debugging linearization and folding steps.
func (a *Arena) Tree2GraphViz(ref NodeRef, filename string) {
	f, err := os.Create(filename)
	if err != nil {
		panic(fmt.Sprintf("file open error: %v", err.Error()))
	}
	defer f.Close()
	f.WriteString(`digraph {
graph [splines=true, fontname=Helvetica, fontsize=10];
node [shape=Mrecord, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	a.graphvizNodes(ref, f)
	a.graphvizEdges(ref, f)
	f.WriteString("}\n")
}

func (a *Arena) graphvizNodes(ref NodeRef, f *os.File) {
	if ref == NilRef {
		return
	}
	n := a.Node(ref)
	if n.kind == LeafNode {
		lexeme := "nil"
		if n.opnd != nil {
			lexeme = n.opnd.Lexeme()
		}
		f.WriteString(fmt.Sprintf("n%03d [fillcolor=lightgray label=\"{%03d | %s}\"]\n",
			ref, ref, lexeme))
		return
	}
	f.WriteString(fmt.Sprintf("n%03d [fillcolor=white label=\"{%03d | %s/%d}\"]\n",
		ref, ref, n.sym, len(n.args)))
	for _, arg := range n.args {
		a.graphvizNodes(arg, f)
	}
}

func (a *Arena) graphvizEdges(ref NodeRef, f *os.File) {
	if ref == NilRef {
		return
	}
	n := a.Node(ref)
	for i, arg := range n.args {
		f.WriteString(fmt.Sprintf("n%03d -> n%03d [label=\"%d\"]\n", ref, arg, i))
		a.graphvizEdges(arg, f)
	}
}
