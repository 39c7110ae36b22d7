package lang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The narop authors

*/

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/narop-lang/narop"
	"github.com/narop-lang/narop/ops"
	"github.com/narop-lang/narop/resolve"
	"github.com/narop-lang/narop/tree"
	"github.com/narop-lang/narop/typing"
)

// Session bundles what one front-end run needs: a scope tree with type and
// variable declarations, an overload registry, and the resolver fed from
// both. A session freezes its registry on the first call to Check;
// overload definitions after that point fail.
type Session struct {
	Scopes   *typing.ScopeTree
	Registry *ops.Registry
}

// NewSession creates a session with an empty global scope and an empty,
// unfrozen registry.
func NewSession() *Session {
	s := &Session{
		Scopes:   &typing.ScopeTree{},
		Registry: ops.NewRegistry(),
	}
	s.Scopes.PushNewScope("globals")
	return s
}

// DeclareClass introduces a user-defined (class- or enum-like) type name.
func (s *Session) DeclareClass(name string) *typing.Decl {
	d, _ := s.Scopes.Current().Define(name)
	return d.WithKind(typing.TypeDecl).WithType(narop.OperandType{
		Name: name,
		Tag:  narop.ClassOrEnum,
	})
}

// DeclareVar introduces a variable of a named type. The variable classifies
// as class/enum iff its type has been declared with DeclareClass.
func (s *Session) DeclareVar(name, typeName string) *typing.Decl {
	d, _ := s.Scopes.Current().Define(name)
	return d.WithKind(typing.VarDecl).WithType(narop.OperandType{
		Name: typeName,
		Tag:  s.TagOf(typeName),
	})
}

// Define registers an operator overload with the session's registry.
func (s *Session) Define(ov *ops.Overload) error {
	return s.Registry.Define(ov)
}

// TagOf classifies a type name against the session's declarations.
func (s *Session) TagOf(name string) narop.TypeTag {
	if d, _ := s.Scopes.Current().Resolve(name); d != nil && d.Kind == typing.TypeDecl {
		return d.Type.Tag
	}
	return narop.Other
}

// typeOf classifies leaf operands: literals are built-in, identifiers
// resolve against the session's declarations.
func (s *Session) typeOf(o narop.Operand) narop.OperandType {
	if t, ok := o.(Token); ok {
		switch t.Kind {
		case NumberToken:
			return narop.OperandType{Name: "number", Tag: narop.Other}
		case StringToken:
			return narop.OperandType{Name: "string", Tag: narop.Other}
		}
	}
	if d, _ := s.Scopes.Current().Resolve(o.Lexeme()); d != nil && d.Kind == typing.VarDecl {
		return d.Type
	}
	tracer().Infof("operand %q is undeclared", o.Lexeme())
	return narop.OperandType{Name: "unknown", Tag: narop.Other}
}

// Check runs one expression through the scan → parse → flatten → resolve
// pipeline. It returns the arena holding the resolved tree and the tree's
// root; on failure the underlying parse or resolution error is wrapped with
// the offending input.
func (s *Session) Check(input string) (*tree.Arena, tree.NodeRef, error) {
	if !s.Registry.Frozen() {
		s.Registry.Freeze()
	}
	ar, root, err := Parse(input)
	if err != nil {
		return nil, tree.NilRef, errors.Wrapf(err, "cannot parse %q", input)
	}
	root = ar.Flatten(root)
	tracer().Infof("linearized: %s", ar.ListString(root))
	r := &resolve.Resolver{Registry: s.Registry, TypeOf: s.typeOf, TagOf: s.TagOf}
	root, err = r.ResolveTree(ar, root)
	if err != nil {
		return nil, tree.NilRef, errors.Wrapf(err, "cannot resolve %q", input)
	}
	tracer().Infof("resolved:   %s", ar.ListString(root))
	return ar, root, nil
}

// CheckAll checks several independent expressions, collecting every failure
// instead of stopping at the first one.
func (s *Session) CheckAll(inputs ...string) error {
	var err error
	for _, input := range inputs {
		if _, _, e := s.Check(input); e != nil {
			err = multierr.Append(err, e)
		}
	}
	return err
}
