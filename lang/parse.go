package lang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The narop authors

*/

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/narop-lang/narop"
	"github.com/narop-lang/narop/tree"
)

// --- Operator table --------------------------------------------------------

// Operator properties of the expression language. '=' is right-associative
// and therefore stays binary through linearization; every other operator
// forms chains.
//
//    =              prec 1, rtl
//    <  >           prec 2, ltr
//    +  -  ~        prec 3, ltr
//    *  /           prec 4, ltr
//
type opInfo struct {
	prec  int
	assoc narop.Assoc
}

var operatorTable = map[string]opInfo{
	"=": {1, narop.RightToLeft},
	"<": {2, narop.LeftToRight},
	">": {2, narop.LeftToRight},
	"+": {3, narop.LeftToRight},
	"-": {3, narop.LeftToRight},
	"~": {3, narop.LeftToRight},
	"*": {4, narop.LeftToRight},
	"/": {4, narop.LeftToRight},
}

// KnownOperator returns wether the expression language knows an operator
// symbol, together with its associativity.
func KnownOperator(sym string) (narop.Assoc, bool) {
	info, ok := operatorTable[sym]
	return info.assoc, ok
}

// --- Parser ----------------------------------------------------------------

// parser builds plain binary expression trees from infix input — the shape
// an ordinary grammar produces before any chain linearization.
type parser struct {
	scan  *Scanner
	arena *tree.Arena
	tok   Token // lookahead
}

// Parse scans and parses one infix expression. It returns the arena holding
// the binary parse tree, and the tree's root.
func Parse(input string) (*tree.Arena, tree.NodeRef, error) {
	scan, err := NewScanner(input)
	if err != nil {
		return nil, tree.NilRef, errors.Wrap(err, "cannot create scanner")
	}
	p := &parser{scan: scan, arena: tree.NewArena()}
	p.advance()
	root, err := p.expr(0)
	if err != nil {
		return nil, tree.NilRef, err
	}
	if p.tok.Kind != EOFToken {
		return nil, tree.NilRef, fmt.Errorf("unexpected input after expression: %q", p.tok.Lexeme())
	}
	p.arena.SetRoot(root)
	tracer().Debugf("parsed %s", p.arena.ListString(root))
	return p.arena, root, nil
}

func (p *parser) advance() {
	p.tok = p.scan.NextToken()
}

// expr implements precedence climbing over the operator table.
func (p *parser) expr(minPrec int) (tree.NodeRef, error) {
	left, err := p.primary()
	if err != nil {
		return tree.NilRef, err
	}
	for p.tok.Kind == OpToken {
		sym := p.tok.Lexeme()
		info, ok := operatorTable[sym]
		if !ok {
			return tree.NilRef, fmt.Errorf("unknown operator %q", sym)
		}
		if info.prec < minPrec {
			break
		}
		p.advance()
		next := info.prec + 1
		if info.assoc == narop.RightToLeft {
			next = info.prec
		}
		right, err := p.expr(next)
		if err != nil {
			return tree.NilRef, err
		}
		left = p.arena.Call(sym, info.assoc, left, right)
	}
	return left, nil
}

func (p *parser) primary() (tree.NodeRef, error) {
	switch p.tok.Kind {
	case IdentToken, NumberToken, StringToken:
		leaf := p.arena.Leaf(p.tok)
		p.advance()
		return leaf, nil
	case LParenToken:
		p.advance()
		inner, err := p.expr(0)
		if err != nil {
			return tree.NilRef, err
		}
		if p.tok.Kind != RParenToken {
			return tree.NilRef, fmt.Errorf("missing closing parenthesis")
		}
		p.advance()
		return inner, nil
	case EOFToken:
		return tree.NilRef, fmt.Errorf("unexpected end of input")
	}
	return tree.NilRef, fmt.Errorf("unexpected token %q", p.tok.Lexeme())
}
