package minidart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintdart/requirednamed/syntax"
)

func parseFile(t *testing.T, src string) *syntax.File {
	t.Helper()
	file, err := Parse("test.dart", []byte(src))
	require.NoError(t, err)
	return file
}

func TestParseImports(t *testing.T) {
	file := parseFile(t, `import 'package:meta/meta.dart';
import 'package:collection/collection.dart' as coll;

m() {}
`)
	require.Len(t, file.Imports, 2)
	assert.Equal(t, "package:meta/meta.dart", file.Imports[0].URI)
	assert.Empty(t, file.Imports[0].Prefix)
	assert.Equal(t, "coll", file.Imports[1].Prefix)
}

func TestParseParamSections(t *testing.T) {
	file := parseFile(t, `m(a, {b, c = 1, @required d, String e}) {}`)
	require.Len(t, file.Decls, 1)
	fn := file.Decls[0].(*syntax.FuncDecl)
	require.Len(t, fn.Params, 5)

	assert.Equal(t, syntax.Positional, fn.Params[0].Kind)

	b := fn.Params[1]
	assert.Equal(t, syntax.Named, b.Kind)
	assert.Nil(t, b.Default)

	c := fn.Params[2]
	assert.Equal(t, "c", c.Name.Name)
	require.NotNil(t, c.Default)

	d := fn.Params[3]
	require.Len(t, d.Annotations, 1)
	name, ok := d.Annotations[0].Name.(*syntax.Ident)
	require.True(t, ok)
	assert.Equal(t, "required", name.Name)

	e := fn.Params[4]
	require.NotNil(t, e.Type)
	assert.Equal(t, "String", e.Type.Name)
	assert.Equal(t, "e", e.Name.Name)
}

func TestParseLegacyColonDefault(t *testing.T) {
	file := parseFile(t, `m({a: 1}) {}`)
	fn := file.Decls[0].(*syntax.FuncDecl)
	require.Len(t, fn.Params, 1)
	assert.NotNil(t, fn.Params[0].Default)
}

func TestParseOptionalPositional(t *testing.T) {
	file := parseFile(t, `m([a = 1, b]) {}`)
	fn := file.Decls[0].(*syntax.FuncDecl)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, syntax.Positional, fn.Params[0].Kind)
	assert.NotNil(t, fn.Params[0].Default)
	assert.Equal(t, syntax.Positional, fn.Params[1].Kind)
	assert.Nil(t, fn.Params[1].Default)
}

func TestParseClassMembers(t *testing.T) {
	file := parseFile(t, `class Account {
  var balance;
  int limit = 0;

  Account({owner}) {
    assert(owner != null);
  }

  Account.guest() {}

  void rename({name}) => name;

  void bodyless({a});
}`)
	require.Len(t, file.Decls, 1)
	class := file.Decls[0].(*syntax.ClassDecl)
	require.Len(t, class.Members, 6)

	ctor := class.Members[2].(*syntax.FuncDecl)
	assert.Equal(t, syntax.Constructor, ctor.Kind)
	assert.Equal(t, "Account", ctor.Name.Name)
	require.IsType(t, &syntax.BlockStmt{}, ctor.Body)

	namedCtor := class.Members[3].(*syntax.FuncDecl)
	assert.Equal(t, syntax.Constructor, namedCtor.Kind)
	assert.Equal(t, "Account.guest", namedCtor.Name.Name)

	method := class.Members[4].(*syntax.FuncDecl)
	assert.Equal(t, syntax.Method, method.Kind)
	require.IsType(t, &syntax.ExprBody{}, method.Body)

	bodyless := class.Members[5].(*syntax.FuncDecl)
	assert.Nil(t, bodyless.Body)
}

func TestParseAssertStatement(t *testing.T) {
	file := parseFile(t, `m({a}) {
  assert(a != null, 'a required');
  assert((a != null));
}`)
	fn := file.Decls[0].(*syntax.FuncDecl)
	block := fn.Body.(*syntax.BlockStmt)
	require.Len(t, block.List, 2)

	first := block.List[0].(*syntax.AssertStmt)
	bin := first.Cond.(*syntax.BinaryExpr)
	assert.Equal(t, syntax.NotEq, bin.Op)
	require.NotNil(t, first.Message)

	second := block.List[1].(*syntax.AssertStmt)
	require.IsType(t, &syntax.ParenExpr{}, second.Cond)
}

func TestParseFunctionLiteral(t *testing.T) {
	file := parseFile(t, `m() {
  var f = ({b}) {
    assert(b != null);
  };
  var g = (x) => x;
  f(b: 1);
}`)
	fn := file.Decls[0].(*syntax.FuncDecl)
	block := fn.Body.(*syntax.BlockStmt)
	require.Len(t, block.List, 3)

	fDecl := block.List[0].(*syntax.VarDeclStmt)
	lit := fDecl.Value.(*syntax.FuncLit)
	require.Len(t, lit.Params, 1)
	assert.Equal(t, syntax.Named, lit.Params[0].Kind)
	require.IsType(t, &syntax.BlockStmt{}, lit.Body)

	gDecl := block.List[1].(*syntax.VarDeclStmt)
	arrow := gDecl.Value.(*syntax.FuncLit)
	require.IsType(t, &syntax.ExprBody{}, arrow.Body)

	call := block.List[2].(*syntax.ExprStmt).X.(*syntax.CallExpr)
	require.Len(t, call.Args, 1)
	require.NotNil(t, call.Args[0].Name)
	assert.Equal(t, "b", call.Args[0].Name.Name)
}

func TestParseInitializingFormal(t *testing.T) {
	file := parseFile(t, `class C {
  C({this.value}) {
    assert(value != null);
  }
}`)
	class := file.Decls[0].(*syntax.ClassDecl)
	ctor := class.Members[0].(*syntax.FuncDecl)
	require.Len(t, ctor.Params, 1)
	assert.Equal(t, "value", ctor.Params[0].Name.Name)
}

func TestParsePositions(t *testing.T) {
	file := parseFile(t, "m({a}) {\n  assert(a != null);\n}\n")
	fn := file.Decls[0].(*syntax.FuncDecl)
	require.Len(t, fn.Params, 1)

	pos := fn.Params[0].Name.Pos()
	assert.Equal(t, "test.dart", pos.Filename)
	assert.Equal(t, 1, pos.Line)
	assert.Equal(t, 4, pos.Column)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "unterminated string", src: `import 'package:meta`},
		{name: "missing paren", src: `m({a} {}`},
		{name: "missing semicolon", src: `m() { assert(true) }`},
		{name: "stray token at top level", src: `42;`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("bad.dart", []byte(tt.src))
			require.Error(t, err)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.True(t, perr.Pos.IsValid(), "parse errors carry positions")
		})
	}
}
