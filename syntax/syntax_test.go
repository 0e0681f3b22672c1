package syntax

import "testing"

// Both declaration forms and literals expose their parameter lists and
// bodies through FunctionLike.
var (
	_ FunctionLike = (*FuncDecl)(nil)
	_ FunctionLike = (*FuncLit)(nil)
)

func TestInspectPreOrder(t *testing.T) {
	param := &Param{Kind: Named, Name: &Ident{Name: "a"}}
	assert := &AssertStmt{Cond: &BinaryExpr{
		X:  &Ident{Name: "a"},
		Op: NotEq,
		Y:  &NullLit{},
	}}
	fn := &FuncDecl{
		Name:   &Ident{Name: "m"},
		Params: []*Param{param},
		Body:   &BlockStmt{List: []Stmt{assert}},
	}
	file := &File{Name: "t.dart", Decls: []Decl{fn}}

	var order []Node
	Inspect(file, func(n Node) bool {
		order = append(order, n)
		return true
	})

	// The function must be visited before its parameters and its body.
	idx := make(map[Node]int)
	for i, n := range order {
		idx[n] = i
	}
	if idx[Node(fn)] > idx[Node(param)] || idx[Node(param)] > idx[Node(assert)] {
		t.Errorf("traversal not pre-order: fn=%d param=%d assert=%d", idx[Node(fn)], idx[Node(param)], idx[Node(assert)])
	}
}

func TestInspectSkipsChildren(t *testing.T) {
	inner := &FuncLit{Params: []*Param{{Kind: Named, Name: &Ident{Name: "b"}}}, Body: &BlockStmt{}}
	outer := &FuncDecl{
		Name: &Ident{Name: "m"},
		Body: &BlockStmt{List: []Stmt{&ExprStmt{X: inner}}},
	}

	sawInner := false
	Inspect(outer, func(n Node) bool {
		if n == Node(inner) {
			sawInner = true
		}
		_, isBlock := n.(*BlockStmt)
		return !isBlock // stop at the body
	})
	if sawInner {
		t.Error("children of a skipped node must not be visited")
	}
}

func TestInspectReachesNestedFunctionLikes(t *testing.T) {
	inner := &FuncLit{Body: &BlockStmt{}}
	outer := &FuncDecl{
		Name: &Ident{Name: "m"},
		Body: &BlockStmt{List: []Stmt{&VarDeclStmt{Name: &Ident{Name: "f"}, Value: inner}}},
	}

	var fns int
	Inspect(outer, func(n Node) bool {
		if _, ok := n.(FunctionLike); ok {
			fns++
		}
		return true
	})
	if fns != 2 {
		t.Errorf("found %d function-like nodes, want 2", fns)
	}
}

func TestPosString(t *testing.T) {
	p := Pos{Filename: "f.dart", Line: 2, Column: 4}
	if got, want := p.String(), "f.dart:2:4"; got != want {
		t.Errorf("Pos.String() = %q, want %q", got, want)
	}
	if got, want := (Pos{}).String(), "-"; got != want {
		t.Errorf("zero Pos.String() = %q, want %q", got, want)
	}
}
