package syntax

// Inspect traverses the tree rooted at n in pre-order (source order),
// calling f for each node. If f returns false, the children of that node are
// skipped. A nil node is a no-op.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}

	switch n := n.(type) {
	case *File:
		for _, d := range n.Imports {
			Inspect(d, f)
		}
		for _, d := range n.Decls {
			Inspect(d, f)
		}

	case *ClassDecl:
		Inspect(n.Name, f)
		for _, m := range n.Members {
			Inspect(m, f)
		}

	case *FuncDecl:
		if n.Type != nil {
			Inspect(n.Type, f)
		}
		Inspect(n.Name, f)
		walkParams(n.Params, f)
		Inspect(n.Body, f)

	case *FieldDecl:
		Inspect(n.Name, f)
		Inspect(n.Value, f)

	case *Annotation:
		Inspect(n.Name, f)
		walkArgs(n.Args, f)

	case *Param:
		for _, a := range n.Annotations {
			Inspect(a, f)
		}
		if n.Type != nil {
			Inspect(n.Type, f)
		}
		Inspect(n.Name, f)
		Inspect(n.Default, f)

	case *AssertStmt:
		Inspect(n.Cond, f)
		Inspect(n.Message, f)

	case *ExprStmt:
		Inspect(n.X, f)

	case *ReturnStmt:
		Inspect(n.Result, f)

	case *VarDeclStmt:
		Inspect(n.Name, f)
		Inspect(n.Value, f)

	case *BlockStmt:
		for _, s := range n.List {
			Inspect(s, f)
		}

	case *ExprBody:
		Inspect(n.X, f)

	case *BinaryExpr:
		Inspect(n.X, f)
		Inspect(n.Y, f)

	case *UnaryExpr:
		Inspect(n.X, f)

	case *ParenExpr:
		Inspect(n.X, f)

	case *CallExpr:
		Inspect(n.Fun, f)
		walkArgs(n.Args, f)

	case *SelectorExpr:
		Inspect(n.X, f)
		Inspect(n.Sel, f)

	case *FuncLit:
		walkParams(n.Params, f)
		Inspect(n.Body, f)
	}
}

func walkParams(params []*Param, f func(Node) bool) {
	for _, p := range params {
		Inspect(p, f)
	}
}

func walkArgs(args []Arg, f func(Node) bool) {
	for _, a := range args {
		if a.Name != nil {
			Inspect(a.Name, f)
		}
		Inspect(a.Value, f)
	}
}
