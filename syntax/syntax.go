// Package syntax defines the syntax-tree nodes the requirednamed analyzer
// inspects. Nodes are read-only views over a parsed file: the analyzer never
// constructs or mutates them, and a frontend (such as the minidart package)
// owns the tree for its whole lifetime.
//
// There are three classes of nodes: declarations, statements, and
// expressions. Anything the analyzer does not need to look inside is still
// representable (CallExpr, SelectorExpr, BasicLit, ...) so that frontends can
// produce complete trees; the analyzer treats those shapes as opaque.
package syntax

import "fmt"

// Pos is a source position. Line and Column are 1-based; Offset is a 0-based
// byte offset into the file.
type Pos struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// IsValid reports whether the position has been set.
func (p Pos) IsValid() bool { return p.Line > 0 }

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Node is the interface implemented by all syntax nodes.
type Node interface {
	Pos() Pos // position of the first token belonging to the node
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is the interface for all declaration nodes.
type Decl interface {
	Node
	declNode()
}

// FunctionLike is implemented by every declaration or expression that carries
// a parameter list and an optional body: top-level functions, methods,
// constructors, and function literals. FuncBody returns nil when the
// declaration has no body (an abstract or external signature).
type FunctionLike interface {
	Node
	FuncParams() []*Param
	FuncBody() Stmt
}

// ----------------------------------------------------------------------------
// Files and declarations

// File is the root of a parsed source file.
type File struct {
	Name    string // filename, also recorded in every node position
	Imports []*Import
	Decls   []Decl
}

func (f *File) Pos() Pos {
	if len(f.Imports) > 0 {
		return f.Imports[0].Pos()
	}
	if len(f.Decls) > 0 {
		return f.Decls[0].Pos()
	}
	return Pos{Filename: f.Name, Line: 1, Column: 1}
}

// Import is an import directive. Prefix is the `as` alias, or "" when the
// import is unprefixed.
type Import struct {
	ImportPos Pos
	URI       string
	Prefix    string
}

func (d *Import) Pos() Pos { return d.ImportPos }

// FuncKind discriminates the declaration forms that carry parameter lists.
type FuncKind int

const (
	Function FuncKind = iota
	Method
	Constructor
)

func (k FuncKind) String() string {
	switch k {
	case Method:
		return "method"
	case Constructor:
		return "constructor"
	default:
		return "function"
	}
}

// FuncDecl is a top-level function, a method, or a constructor. Body is nil
// for bodyless signatures. Type is the declared return type, if any.
type FuncDecl struct {
	Kind   FuncKind
	Type   *Ident // optional
	Name   *Ident
	Params []*Param
	Body   Stmt // *BlockStmt, *ExprBody, or nil
}

func (d *FuncDecl) Pos() Pos {
	if d.Type != nil {
		return d.Type.Pos()
	}
	return d.Name.Pos()
}

func (d *FuncDecl) FuncParams() []*Param { return d.Params }
func (d *FuncDecl) FuncBody() Stmt       { return d.Body }

// ClassDecl is a class declaration; Members holds methods, constructors, and
// fields in source order.
type ClassDecl struct {
	ClassPos Pos
	Name     *Ident
	Members  []Decl
}

func (d *ClassDecl) Pos() Pos { return d.ClassPos }

// FieldDecl is a class field or top-level variable declaration.
type FieldDecl struct {
	DeclPos Pos
	Name    *Ident
	Value   Expr // optional initializer
}

func (d *FieldDecl) Pos() Pos { return d.DeclPos }

func (*Import) declNode()    {}
func (*FuncDecl) declNode()  {}
func (*ClassDecl) declNode() {}
func (*FieldDecl) declNode() {}

// ----------------------------------------------------------------------------
// Parameters and annotations

// ParamKind discriminates how a parameter is passed at call sites.
type ParamKind int

const (
	Positional ParamKind = iota
	Named
)

func (k ParamKind) String() string {
	if k == Named {
		return "named"
	}
	return "positional"
}

// Param is a single formal parameter. Default is nil when the parameter has
// no default value. Type is optional.
type Param struct {
	Annotations []*Annotation
	Kind        ParamKind
	Type        *Ident // optional
	Name        *Ident
	Default     Expr // nil when absent
}

func (p *Param) Pos() Pos {
	if len(p.Annotations) > 0 {
		return p.Annotations[0].Pos()
	}
	if p.Type != nil {
		return p.Type.Pos()
	}
	return p.Name.Pos()
}

// Annotation is a metadata annotation attached to a declaration or parameter,
// e.g. `@required` or `@Deprecated('msg')`. The analyzer never interprets the
// annotation itself; it is resolved through the host's symbol resolver.
type Annotation struct {
	AtPos Pos
	Name  Expr // *Ident or *SelectorExpr
	Args  []Arg
}

func (a *Annotation) Pos() Pos { return a.AtPos }

// Arg is a call or annotation argument, optionally named.
type Arg struct {
	Name  *Ident // nil for positional arguments
	Value Expr
}

// ----------------------------------------------------------------------------
// Statements

// AssertStmt is `assert(cond)` or `assert(cond, message)`.
type AssertStmt struct {
	AssertPos Pos
	Cond      Expr
	Message   Expr // optional
}

// ExprStmt is an expression evaluated for its effect.
type ExprStmt struct {
	X Expr
}

// ReturnStmt is `return` or `return expr`.
type ReturnStmt struct {
	ReturnPos Pos
	Result    Expr // optional
}

// VarDeclStmt is a local `var`/`final` declaration.
type VarDeclStmt struct {
	DeclPos Pos
	Name    *Ident
	Value   Expr // optional initializer
}

// BlockStmt is a braced statement list.
type BlockStmt struct {
	LbracePos Pos
	List      []Stmt
}

// ExprBody is a single-expression function body, `=> expr`.
type ExprBody struct {
	ArrowPos Pos
	X        Expr
}

func (s *AssertStmt) Pos() Pos  { return s.AssertPos }
func (s *ExprStmt) Pos() Pos    { return s.X.Pos() }
func (s *ReturnStmt) Pos() Pos  { return s.ReturnPos }
func (s *VarDeclStmt) Pos() Pos { return s.DeclPos }
func (s *BlockStmt) Pos() Pos   { return s.LbracePos }
func (s *ExprBody) Pos() Pos    { return s.ArrowPos }

func (*AssertStmt) stmtNode()  {}
func (*ExprStmt) stmtNode()    {}
func (*ReturnStmt) stmtNode()  {}
func (*VarDeclStmt) stmtNode() {}
func (*BlockStmt) stmtNode()   {}
func (*ExprBody) stmtNode()    {}

// ----------------------------------------------------------------------------
// Expressions

// Ident is a bare identifier reference.
type Ident struct {
	NamePos Pos
	Name    string
}

// NullLit is the `null` literal.
type NullLit struct {
	TokPos Pos
}

// LitKind discriminates basic literal forms.
type LitKind int

const (
	Number LitKind = iota
	String
	Bool
)

// BasicLit is a number, string, or boolean literal.
type BasicLit struct {
	TokPos Pos
	Kind   LitKind
	Value  string
}

// BinaryOp is a binary operator.
type BinaryOp int

const (
	Eq    BinaryOp = iota // ==
	NotEq                 // !=
	And                   // &&
	Or                    // ||
	Lt                    // <
	Gt                    // >
	LtEq                  // <=
	GtEq                  // >=
	Add                   // +
	Sub                   // -
	Mul                   // *
	Div                   // /
)

var binaryOpNames = [...]string{"==", "!=", "&&", "||", "<", ">", "<=", ">=", "+", "-", "*", "/"}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpNames) {
		return binaryOpNames[op]
	}
	return "?"
}

// BinaryExpr is `X op Y`.
type BinaryExpr struct {
	X     Expr
	OpPos Pos
	Op    BinaryOp
	Y     Expr
}

// UnaryExpr is a prefix `!` or `-`.
type UnaryExpr struct {
	OpPos Pos
	Op    string
	X     Expr
}

// ParenExpr is a parenthesized expression.
type ParenExpr struct {
	LparenPos Pos
	X         Expr
}

// CallExpr is `Fun(args...)`, with optionally named arguments.
type CallExpr struct {
	Fun  Expr
	Args []Arg
}

// SelectorExpr is `X.Sel`.
type SelectorExpr struct {
	X   Expr
	Sel *Ident
}

// FuncLit is an inline function expression, `(params) { ... }` or
// `(params) => expr`.
type FuncLit struct {
	LparenPos Pos
	Params    []*Param
	Body      Stmt // *BlockStmt or *ExprBody
}

func (e *FuncLit) FuncParams() []*Param { return e.Params }
func (e *FuncLit) FuncBody() Stmt       { return e.Body }

func (e *Ident) Pos() Pos        { return e.NamePos }
func (e *NullLit) Pos() Pos      { return e.TokPos }
func (e *BasicLit) Pos() Pos     { return e.TokPos }
func (e *BinaryExpr) Pos() Pos   { return e.X.Pos() }
func (e *UnaryExpr) Pos() Pos    { return e.OpPos }
func (e *ParenExpr) Pos() Pos    { return e.LparenPos }
func (e *CallExpr) Pos() Pos     { return e.Fun.Pos() }
func (e *SelectorExpr) Pos() Pos { return e.X.Pos() }
func (e *FuncLit) Pos() Pos      { return e.LparenPos }

func (*Ident) exprNode()        {}
func (*NullLit) exprNode()      {}
func (*BasicLit) exprNode()     {}
func (*BinaryExpr) exprNode()   {}
func (*UnaryExpr) exprNode()    {}
func (*ParenExpr) exprNode()    {}
func (*CallExpr) exprNode()     {}
func (*SelectorExpr) exprNode() {}
func (*FuncLit) exprNode()      {}
