package minidart

import (
	"fmt"

	"github.com/lintdart/requirednamed/syntax"
)

// ParseError is a positioned syntax error.
type ParseError struct {
	Pos     syntax.Pos
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Parse parses src as a single source file. The returned tree is complete
// only when err is nil; parsing stops at the first syntax error.
func Parse(filename string, src []byte) (file *syntax.File, err error) {
	p := &parser{toks: scanAll(filename, src)}
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(*ParseError)
			if !ok {
				panic(r)
			}
			file, err = nil, perr
		}
	}()
	return p.parseFile(filename), nil
}

// parser is a recursive-descent parser over a pre-scanned token slice. The
// slice makes the lookahead for function-literal disambiguation a simple
// index scan. Errors abort the parse by panicking with *ParseError; Parse
// recovers.
type parser struct {
	toks []Token
	pos  int
}

func (p *parser) cur() Token  { return p.toks[p.pos] }
func (p *parser) peek() Token { return p.at(1) }

func (p *parser) at(n int) Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[p.pos+n]
}

func (p *parser) next() Token {
	tok := p.cur()
	if tok.Type == ILLEGAL {
		p.errorf(tok.Pos, "illegal token: %s", tok.Literal)
	}
	if tok.Type != EOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(t TokenType, context string) Token {
	tok := p.cur()
	if tok.Type != t {
		p.errorf(tok.Pos, "unexpected %q in %s", tok.Literal, context)
	}
	return p.next()
}

func (p *parser) accept(t TokenType) bool {
	if p.cur().Type == t {
		p.next()
		return true
	}
	return false
}

func (p *parser) errorf(pos syntax.Pos, format string, args ...any) {
	panic(&ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)})
}

// ----------------------------------------------------------------------------
// Declarations

func (p *parser) parseFile(filename string) *syntax.File {
	file := &syntax.File{Name: filename}

	for p.cur().Type == IMPORT {
		file.Imports = append(file.Imports, p.parseImport())
	}

	for p.cur().Type != EOF {
		file.Decls = append(file.Decls, p.parseTopDecl())
	}
	return file
}

func (p *parser) parseImport() *syntax.Import {
	imp := &syntax.Import{ImportPos: p.expect(IMPORT, "import directive").Pos}
	imp.URI = p.expect(STRING, "import directive").Literal
	if p.accept(AS) {
		imp.Prefix = p.expect(IDENT, "import prefix").Literal
	}
	p.expect(SEMICOLON, "import directive")
	return imp
}

func (p *parser) parseTopDecl() syntax.Decl {
	switch tok := p.cur(); tok.Type {
	case CLASS:
		return p.parseClass()
	case VAR, FINAL:
		return p.parseFieldDecl()
	case IDENT:
		// `type name(` declares a typed function, `name(` an untyped one.
		if p.peek().Type == IDENT && p.at(2).Type == LPAREN {
			return p.parseFuncDecl(syntax.Function)
		}
		if p.peek().Type == LPAREN {
			return p.parseFuncDecl(syntax.Function)
		}
		p.errorf(tok.Pos, "unexpected %q at top level", tok.Literal)
	default:
		p.errorf(tok.Pos, "unexpected %q at top level", tok.Literal)
	}
	return nil
}

func (p *parser) parseClass() *syntax.ClassDecl {
	decl := &syntax.ClassDecl{ClassPos: p.expect(CLASS, "class declaration").Pos}
	decl.Name = p.parseIdent("class name")
	p.expect(LBRACE, "class body")
	for p.cur().Type != RBRACE && p.cur().Type != EOF {
		decl.Members = append(decl.Members, p.parseMember(decl.Name.Name))
	}
	p.expect(RBRACE, "class body")
	return decl
}

func (p *parser) parseMember(className string) syntax.Decl {
	// Member annotations (e.g. @override) are parsed and dropped; the rule
	// only inspects parameter annotations.
	for p.cur().Type == AT {
		p.parseAnnotation()
	}

	switch tok := p.cur(); tok.Type {
	case VAR, FINAL:
		return p.parseFieldDecl()
	case IDENT:
		switch {
		case tok.Literal == className && p.peek().Type == LPAREN:
			return p.parseFuncDecl(syntax.Constructor)
		case tok.Literal == className && p.peek().Type == DOT && p.at(2).Type == IDENT && p.at(3).Type == LPAREN:
			return p.parseFuncDecl(syntax.Constructor)
		case p.peek().Type == IDENT && p.at(2).Type == LPAREN:
			return p.parseFuncDecl(syntax.Method)
		case p.peek().Type == LPAREN:
			return p.parseFuncDecl(syntax.Method)
		case p.peek().Type == IDENT:
			return p.parseTypedField()
		}
		p.errorf(tok.Pos, "unexpected %q in class body", tok.Literal)
	default:
		p.errorf(tok.Pos, "unexpected %q in class body", tok.Literal)
	}
	return nil
}

func (p *parser) parseFieldDecl() *syntax.FieldDecl {
	decl := &syntax.FieldDecl{DeclPos: p.next().Pos} // var | final
	decl.Name = p.parseIdent("variable name")
	if p.accept(ASSIGN) {
		decl.Value = p.parseExpr(precLowest)
	}
	p.expect(SEMICOLON, "variable declaration")
	return decl
}

func (p *parser) parseTypedField() *syntax.FieldDecl {
	typ := p.parseIdent("field type")
	decl := &syntax.FieldDecl{DeclPos: typ.Pos()}
	decl.Name = p.parseIdent("field name")
	if p.accept(ASSIGN) {
		decl.Value = p.parseExpr(precLowest)
	}
	p.expect(SEMICOLON, "field declaration")
	return decl
}

func (p *parser) parseFuncDecl(kind syntax.FuncKind) *syntax.FuncDecl {
	decl := &syntax.FuncDecl{Kind: kind}

	if kind == syntax.Constructor {
		decl.Name = p.parseIdent("constructor name")
		if p.accept(DOT) {
			// Named constructor: report under its qualified name.
			named := p.parseIdent("constructor name")
			decl.Name = &syntax.Ident{NamePos: decl.Name.NamePos, Name: decl.Name.Name + "." + named.Name}
		}
	} else {
		if p.peek().Type == IDENT {
			decl.Type = p.parseIdent("return type")
		}
		decl.Name = p.parseIdent("function name")
	}

	decl.Params = p.parseParamList()
	decl.Body = p.parseFuncBody()
	return decl
}

func (p *parser) parseFuncBody() syntax.Stmt {
	switch tok := p.cur(); tok.Type {
	case LBRACE:
		return p.parseBlock()
	case ARROW:
		body := &syntax.ExprBody{ArrowPos: p.next().Pos}
		body.X = p.parseExpr(precLowest)
		p.expect(SEMICOLON, "expression body")
		return body
	case SEMICOLON:
		p.next()
		return nil // bodyless signature
	default:
		p.errorf(tok.Pos, "unexpected %q in function body", tok.Literal)
		return nil
	}
}

// ----------------------------------------------------------------------------
// Parameters

func (p *parser) parseParamList() []*syntax.Param {
	p.expect(LPAREN, "parameter list")
	var params []*syntax.Param

	for p.cur().Type != RPAREN && p.cur().Type != EOF {
		switch p.cur().Type {
		case LBRACE:
			p.next()
			p.parseParamSection(&params, syntax.Named, RBRACE)
		case LBRACKET:
			p.next()
			p.parseParamSection(&params, syntax.Positional, RBRACKET)
		default:
			params = append(params, p.parseParam(syntax.Positional))
		}
		if !p.accept(COMMA) {
			break
		}
	}

	p.expect(RPAREN, "parameter list")
	return params
}

func (p *parser) parseParamSection(params *[]*syntax.Param, kind syntax.ParamKind, close TokenType) {
	for p.cur().Type != close && p.cur().Type != EOF {
		*params = append(*params, p.parseParam(kind))
		if !p.accept(COMMA) {
			break
		}
	}
	p.expect(close, "parameter list")
}

func (p *parser) parseParam(kind syntax.ParamKind) *syntax.Param {
	param := &syntax.Param{Kind: kind}

	for p.cur().Type == AT {
		param.Annotations = append(param.Annotations, p.parseAnnotation())
	}

	if p.accept(THIS) {
		// Initializing formal `this.name`; the parameter name is the field.
		p.expect(DOT, "initializing formal")
		param.Name = p.parseIdent("parameter name")
	} else {
		if p.cur().Type == IDENT && p.peek().Type == IDENT {
			param.Type = p.parseIdent("parameter type")
		}
		param.Name = p.parseIdent("parameter name")
	}

	// `= expr` and the legacy `: expr` both declare a default value.
	if p.accept(ASSIGN) || p.accept(COLON) {
		param.Default = p.parseExpr(precLowest)
	}
	return param
}

func (p *parser) parseAnnotation() *syntax.Annotation {
	ann := &syntax.Annotation{AtPos: p.expect(AT, "annotation").Pos}

	var name syntax.Expr = p.parseIdent("annotation name")
	for p.accept(DOT) {
		name = &syntax.SelectorExpr{X: name, Sel: p.parseIdent("annotation name")}
	}
	ann.Name = name

	if p.cur().Type == LPAREN {
		ann.Args = p.parseArgs()
	}
	return ann
}

// ----------------------------------------------------------------------------
// Statements

func (p *parser) parseBlock() *syntax.BlockStmt {
	block := &syntax.BlockStmt{LbracePos: p.expect(LBRACE, "block").Pos}
	for p.cur().Type != RBRACE && p.cur().Type != EOF {
		block.List = append(block.List, p.parseStmt())
	}
	p.expect(RBRACE, "block")
	return block
}

func (p *parser) parseStmt() syntax.Stmt {
	switch tok := p.cur(); tok.Type {
	case ASSERT:
		return p.parseAssert()
	case RETURN:
		stmt := &syntax.ReturnStmt{ReturnPos: p.next().Pos}
		if p.cur().Type != SEMICOLON {
			stmt.Result = p.parseExpr(precLowest)
		}
		p.expect(SEMICOLON, "return statement")
		return stmt
	case VAR, FINAL:
		stmt := &syntax.VarDeclStmt{DeclPos: p.next().Pos}
		stmt.Name = p.parseIdent("variable name")
		if p.accept(ASSIGN) {
			stmt.Value = p.parseExpr(precLowest)
		}
		p.expect(SEMICOLON, "variable declaration")
		return stmt
	case LBRACE:
		return p.parseBlock()
	default:
		stmt := &syntax.ExprStmt{X: p.parseExpr(precLowest)}
		p.expect(SEMICOLON, "expression statement")
		return stmt
	}
}

func (p *parser) parseAssert() *syntax.AssertStmt {
	stmt := &syntax.AssertStmt{AssertPos: p.expect(ASSERT, "assert statement").Pos}
	p.expect(LPAREN, "assert statement")
	stmt.Cond = p.parseExpr(precLowest)
	if p.accept(COMMA) {
		stmt.Message = p.parseExpr(precLowest)
	}
	p.expect(RPAREN, "assert statement")
	p.expect(SEMICOLON, "assert statement")
	return stmt
}

// ----------------------------------------------------------------------------
// Expressions

const (
	precLowest = iota
	precOr
	precAnd
	precEquality
	precComparison
	precSum
	precProduct
	precPrefix
	precPostfix
)

var precedences = map[TokenType]int{
	OR:       precOr,
	AND:      precAnd,
	EQ:       precEquality,
	NOT_EQ:   precEquality,
	LT:       precComparison,
	GT:       precComparison,
	LE:       precComparison,
	GE:       precComparison,
	PLUS:     precSum,
	MINUS:    precSum,
	ASTERISK: precProduct,
	SLASH:    precProduct,
	LPAREN:   precPostfix,
	DOT:      precPostfix,
}

var binaryOps = map[TokenType]syntax.BinaryOp{
	EQ:       syntax.Eq,
	NOT_EQ:   syntax.NotEq,
	AND:      syntax.And,
	OR:       syntax.Or,
	LT:       syntax.Lt,
	GT:       syntax.Gt,
	LE:       syntax.LtEq,
	GE:       syntax.GtEq,
	PLUS:     syntax.Add,
	MINUS:    syntax.Sub,
	ASTERISK: syntax.Mul,
	SLASH:    syntax.Div,
}

func (p *parser) parseExpr(prec int) syntax.Expr {
	left := p.parsePrimary()

	for {
		tok := p.cur()
		opPrec, ok := precedences[tok.Type]
		if !ok || opPrec <= prec {
			return left
		}

		switch tok.Type {
		case LPAREN:
			left = &syntax.CallExpr{Fun: left, Args: p.parseArgs()}
		case DOT:
			p.next()
			left = &syntax.SelectorExpr{X: left, Sel: p.parseIdent("selector")}
		default:
			p.next()
			right := p.parseExpr(opPrec)
			left = &syntax.BinaryExpr{X: left, OpPos: tok.Pos, Op: binaryOps[tok.Type], Y: right}
		}
	}
}

func (p *parser) parsePrimary() syntax.Expr {
	switch tok := p.cur(); tok.Type {
	case IDENT:
		return p.parseIdent("expression")
	case THIS:
		p.next()
		return &syntax.Ident{NamePos: tok.Pos, Name: "this"}
	case NULL:
		p.next()
		return &syntax.NullLit{TokPos: tok.Pos}
	case NUMBER:
		p.next()
		return &syntax.BasicLit{TokPos: tok.Pos, Kind: syntax.Number, Value: tok.Literal}
	case STRING:
		p.next()
		return &syntax.BasicLit{TokPos: tok.Pos, Kind: syntax.String, Value: tok.Literal}
	case TRUE, FALSE:
		p.next()
		return &syntax.BasicLit{TokPos: tok.Pos, Kind: syntax.Bool, Value: tok.Literal}
	case BANG, MINUS:
		p.next()
		return &syntax.UnaryExpr{OpPos: tok.Pos, Op: tok.Literal, X: p.parseExpr(precPrefix)}
	case LPAREN:
		if p.funcLitAhead() {
			return p.parseFuncLit()
		}
		p.next()
		expr := &syntax.ParenExpr{LparenPos: tok.Pos, X: p.parseExpr(precLowest)}
		p.expect(RPAREN, "parenthesized expression")
		return expr
	default:
		p.errorf(tok.Pos, "unexpected %q in expression", tok.Literal)
		return nil
	}
}

// funcLitAhead reports whether the current `(` starts a function literal,
// i.e. its matching `)` is followed by `{` or `=>`.
func (p *parser) funcLitAhead() bool {
	depth := 0
	for i := p.pos; i < len(p.toks); i++ {
		switch p.toks[i].Type {
		case LPAREN:
			depth++
		case RPAREN:
			depth--
			if depth == 0 {
				next := EOF
				if i+1 < len(p.toks) {
					next = p.toks[i+1].Type
				}
				return next == LBRACE || next == ARROW
			}
		case EOF:
			return false
		}
	}
	return false
}

func (p *parser) parseFuncLit() *syntax.FuncLit {
	lit := &syntax.FuncLit{LparenPos: p.cur().Pos}
	lit.Params = p.parseParamList()

	// Unlike a declaration's `=> expr;` body, a literal's `=> expr` form has
	// no terminating semicolon of its own.
	if tok := p.cur(); tok.Type == ARROW {
		body := &syntax.ExprBody{ArrowPos: p.next().Pos}
		body.X = p.parseExpr(precLowest)
		lit.Body = body
	} else {
		lit.Body = p.parseBlock()
	}
	return lit
}

func (p *parser) parseArgs() []syntax.Arg {
	p.expect(LPAREN, "argument list")
	var args []syntax.Arg
	for p.cur().Type != RPAREN && p.cur().Type != EOF {
		var arg syntax.Arg
		if p.cur().Type == IDENT && p.peek().Type == COLON {
			arg.Name = p.parseIdent("argument name")
			p.next() // :
		}
		arg.Value = p.parseExpr(precLowest)
		args = append(args, arg)
		if !p.accept(COMMA) {
			break
		}
	}
	p.expect(RPAREN, "argument list")
	return args
}

func (p *parser) parseIdent(context string) *syntax.Ident {
	tok := p.expect(IDENT, context)
	return &syntax.Ident{NamePos: tok.Pos, Name: tok.Literal}
}
