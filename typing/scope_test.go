package typing

import (
	"testing"

	"github.com/narop-lang/narop"
)

func TestNewDeclTable(t *testing.T) {
	table := NewDeclTable()
	if table == nil {
		t.Error("no declaration table created")
	}
}

func TestNewDecl(t *testing.T) {
	table := NewDeclTable()
	d, _ := table.Define("a")
	if d == nil {
		t.Error("no declaration created for table")
	}
	d.UData = 5
	if d.UData != 5 {
		t.Errorf("UData does not work")
	}
}

func TestDeclWithType(t *testing.T) {
	d := NewDecl("a").WithKind(VarDecl).WithType(narop.OperandType{Name: "Str", Tag: narop.ClassOrEnum})
	if d.Type.Tag != narop.ClassOrEnum {
		t.Errorf("declaration should classify as class, is %v", d.Type.Tag)
	}
}

func TestTwoDeclsDistinct(t *testing.T) {
	table := NewDeclTable()
	d1, _ := table.Define("a")
	d2, _ := table.Define("b")
	if d1 == d2 {
		t.Error("2 declarations with equal identity")
	}
}

func TestResolveDecl(t *testing.T) {
	table := NewDeclTable()
	d, _ := table.Define("a")
	if found := table.Resolve(d.Name()); found == nil {
		t.Error("cannot find stored declaration in table")
	}
}

func TestResolveOrDefine(t *testing.T) {
	table := NewDeclTable()
	d, _ := table.Define("a")
	if _, found := table.ResolveOrDefine(d.Name()); !found {
		t.Error("cannot find stored declaration in table")
	}
}

func TestRedefine(t *testing.T) {
	table := NewDeclTable()
	d, _ := table.Define("a")
	if _, old := table.Define("a"); old != d {
		t.Error("declaration should have been replaced")
	}
}

func TestScopeUpsearch(t *testing.T) {
	scopep := NewScope("parent", nil)
	scope := NewScope("current", scopep)
	scopep.Define("a")
	if d, _ := scope.Resolve("a"); d != nil {
		t.Logf("found declaration '%s' in parent scope, ok\n", d.Name())
	} else {
		t.Fail()
	}
}

func TestScopeTreeStack(t *testing.T) {
	scst := &ScopeTree{}
	scst.PushNewScope("globals")
	scst.PushNewScope("block")
	if scst.Current().Name != "block" {
		t.Errorf("TOS should be block, is %s", scst.Current().Name)
	}
	scst.PopScope()
	if scst.Current() != scst.Globals() {
		t.Errorf("after popping, TOS should be the global scope")
	}
}
