package typing

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The narop authors

*/

import (
	"fmt"

	"github.com/narop-lang/narop"
)

// --- Declarations ----------------------------------------------------------

// DeclKind distinguishes what a declaration introduces.
type DeclKind int8

// Pre-defined declaration kinds.
const (
	Undefined DeclKind = iota
	TypeDecl           // introduces a type name (class, enum, built-in)
	VarDecl            // introduces a typed variable
)

// Decl is a single declaration: a named entity together with its operand
// type. For a TypeDecl the operand type describes the type itself; for a
// VarDecl it is the variable's static type.
type Decl struct {
	name  string
	Kind  DeclKind
	Type  narop.OperandType
	UData interface{} // user data
}

// NewDecl creates a new declaration.
func NewDecl(nm string) *Decl {
	return &Decl{name: nm}
}

// WithKind sets the kind of a declaration. Use as
//
//    d := NewDecl("a").WithKind(VarDecl).WithType(t)
//
func (d *Decl) WithKind(k DeclKind) *Decl {
	d.Kind = k
	return d
}

// WithType sets the operand type of a declaration (for chaining).
func (d *Decl) WithType(t narop.OperandType) *Decl {
	d.Type = t
	return d
}

// Name gets the declaration's name.
func (d *Decl) Name() string {
	return d.name
}

// String is a debug Stringer for declarations.
func (d *Decl) String() string {
	return fmt.Sprintf("<decl '%s':%v>", d.name, d.Type)
}

// === Declaration Tables ====================================================

// DeclTable is a table of declarations (map-like semantics).
type DeclTable struct {
	Table      map[string]*Decl
	createDecl func(string) *Decl
}

// NewDeclTable creates an empty declaration table.
func NewDeclTable() *DeclTable {
	return &DeclTable{
		Table:      make(map[string]*Decl),
		createDecl: NewDecl,
	}
}

// Resolve checks for a declaration in the table. Returns a declaration
// or nil.
func (t *DeclTable) Resolve(name string) *Decl {
	return t.Table[name]
}

// ResolveOrDefine finds a declaration in the table, inserting a new one if
// not found. Returns the declaration and a flag, signalling wether the
// declaration has already been present.
func (t *DeclTable) ResolveOrDefine(name string) (*Decl, bool) {
	if len(name) == 0 {
		return nil, false
	}
	found := true
	d := t.Resolve(name)
	if d == nil {
		d, _ = t.Define(name)
		found = false
	}
	return d, found
}

// Define creates a new declaration to store into the table. The name may
// not be empty. Overwrites an existing declaration with this name, if any.
// Returns the new declaration and the previously stored one (or nil).
func (t *DeclTable) Define(name string) (*Decl, *Decl) {
	if len(name) == 0 {
		return nil, nil
	}
	d := t.createDecl(name)
	old := t.Insert(d)
	return d, old
}

// Insert inserts a pre-created declaration.
func (t *DeclTable) Insert(d *Decl) *Decl {
	old := t.Resolve(d.name)
	t.Table[d.name] = d
	return old
}

// Size counts the declarations in a table.
func (t *DeclTable) Size() int {
	return len(t.Table)
}

// Each iterates over each declaration in the table, executing a mapper
// function.
func (t *DeclTable) Each(mapper func(string, *Decl)) {
	for k, v := range t.Table {
		mapper(k, v)
	}
}

// === Scopes ================================================================

// Scope is a named scope, which may contain declarations. Scopes link back
// to a parent scope, forming a tree.
type Scope struct {
	Name   string
	Parent *Scope
	decls  *DeclTable
}

// NewScope creates a new scope.
func NewScope(nm string, parent *Scope) *Scope {
	return &Scope{
		Name:   nm,
		Parent: parent,
		decls:  NewDeclTable(),
	}
}

// Prettyfied Stringer.
func (s *Scope) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Decls returns the declaration table of a scope.
func (s *Scope) Decls() *DeclTable {
	return s.decls
}

// Define defines a declaration in the scope. Returns the new declaration
// and the previously stored one under this name, if any.
func (s *Scope) Define(name string) (*Decl, *Decl) {
	return s.decls.Define(name)
}

// Resolve finds a declaration. Returns the declaration (or nil) and the
// scope (of a scope-tree-path) it was found in.
func (s *Scope) Resolve(name string) (*Decl, *Scope) {
	d := s.decls.Resolve(name)
	if d != nil {
		return d, s
	}
	for s.Parent != nil {
		s = s.Parent
		d, _ = s.Resolve(name)
		if d != nil {
			return d, s
		}
	}
	return d, nil
}

// ---------------------------------------------------------------------------

// ScopeTree can be treated as a stack during static analysis, thus building
// a tree from scopes which are pushed an popped to/from the stack.
type ScopeTree struct {
	ScopeBase *Scope
	ScopeTOS  *Scope
}

// Current gets the current scope of a stack (TOS).
func (scst *ScopeTree) Current() *Scope {
	if scst.ScopeTOS == nil {
		panic("attempt to access scope from empty stack")
	}
	return scst.ScopeTOS
}

// Globals gets the outermost scope, containing global declarations.
func (scst *ScopeTree) Globals() *Scope {
	if scst.ScopeBase == nil {
		panic("attempt to access global scope from empty stack")
	}
	return scst.ScopeBase
}

// PushNewScope pushes a scope onto the stack of scopes. A scope is
// constructed, including a declaration table.
func (scst *ScopeTree) PushNewScope(nm string) *Scope {
	scp := scst.ScopeTOS
	newsc := NewScope(nm, scp)
	if scp == nil { // the new scope is the global scope
		scst.ScopeBase = newsc // make new scope anchor
	}
	scst.ScopeTOS = newsc // new scope now TOS
	tracer().P("scope", newsc.Name).Debugf("pushing new scope")
	return newsc
}

// PopScope pops the top-most (recent) scope.
func (scst *ScopeTree) PopScope() *Scope {
	if scst.ScopeTOS == nil {
		panic("attempt to pop scope from empty stack")
	}
	sc := scst.ScopeTOS
	tracer().Debugf("popping scope [%s]", sc.Name)
	scst.ScopeTOS = scst.ScopeTOS.Parent
	return sc
}
