package strategies

import (
	"go/ast"
	"go/token"
)

// The cloners below deep-copy subtrees with every position cleared.
// Replacement subtrees are spliced into trees parsed from other file sets,
// so a clone must not carry offsets of the file it was captured from.
// Comments are dropped; they are attached to the original file anyway.

func cloneExpr(e ast.Expr) ast.Expr {
	switch e := e.(type) {
	case nil:
		return nil
	case *ast.BadExpr:
		return &ast.BadExpr{}
	case *ast.Ident:
		return ast.NewIdent(e.Name)
	case *ast.Ellipsis:
		return &ast.Ellipsis{Elt: cloneExpr(e.Elt)}
	case *ast.BasicLit:
		return &ast.BasicLit{Kind: e.Kind, Value: e.Value}
	case *ast.FuncLit:
		return &ast.FuncLit{Type: cloneFuncType(e.Type), Body: cloneBlock(e.Body)}
	case *ast.CompositeLit:
		return &ast.CompositeLit{Type: cloneExpr(e.Type), Elts: cloneExprs(e.Elts), Incomplete: e.Incomplete}
	case *ast.ParenExpr:
		return &ast.ParenExpr{X: cloneExpr(e.X)}
	case *ast.SelectorExpr:
		return &ast.SelectorExpr{X: cloneExpr(e.X), Sel: ast.NewIdent(e.Sel.Name)}
	case *ast.IndexExpr:
		return &ast.IndexExpr{X: cloneExpr(e.X), Index: cloneExpr(e.Index)}
	case *ast.IndexListExpr:
		return &ast.IndexListExpr{X: cloneExpr(e.X), Indices: cloneExprs(e.Indices)}
	case *ast.SliceExpr:
		return &ast.SliceExpr{
			X:      cloneExpr(e.X),
			Low:    cloneExpr(e.Low),
			High:   cloneExpr(e.High),
			Max:    cloneExpr(e.Max),
			Slice3: e.Slice3,
		}
	case *ast.TypeAssertExpr:
		return &ast.TypeAssertExpr{X: cloneExpr(e.X), Type: cloneExpr(e.Type)}
	case *ast.CallExpr:
		return &ast.CallExpr{Fun: cloneExpr(e.Fun), Args: cloneExprs(e.Args), Ellipsis: marker(e.Ellipsis)}
	case *ast.StarExpr:
		return &ast.StarExpr{X: cloneExpr(e.X)}
	case *ast.UnaryExpr:
		return &ast.UnaryExpr{Op: e.Op, X: cloneExpr(e.X)}
	case *ast.BinaryExpr:
		return &ast.BinaryExpr{X: cloneExpr(e.X), Op: e.Op, Y: cloneExpr(e.Y)}
	case *ast.KeyValueExpr:
		return &ast.KeyValueExpr{Key: cloneExpr(e.Key), Value: cloneExpr(e.Value)}
	case *ast.ArrayType:
		return &ast.ArrayType{Len: cloneExpr(e.Len), Elt: cloneExpr(e.Elt)}
	case *ast.StructType:
		return &ast.StructType{Fields: cloneFieldList(e.Fields), Incomplete: e.Incomplete}
	case *ast.FuncType:
		return cloneFuncType(e)
	case *ast.InterfaceType:
		return &ast.InterfaceType{Methods: cloneFieldList(e.Methods), Incomplete: e.Incomplete}
	case *ast.MapType:
		return &ast.MapType{Key: cloneExpr(e.Key), Value: cloneExpr(e.Value)}
	case *ast.ChanType:
		return &ast.ChanType{Dir: e.Dir, Value: cloneExpr(e.Value)}
	default:
		return e
	}
}

func cloneStmt(s ast.Stmt) ast.Stmt {
	switch s := s.(type) {
	case nil:
		return nil
	case *ast.BadStmt:
		return &ast.BadStmt{}
	case *ast.DeclStmt:
		return &ast.DeclStmt{Decl: cloneDecl(s.Decl)}
	case *ast.EmptyStmt:
		return &ast.EmptyStmt{Implicit: s.Implicit}
	case *ast.LabeledStmt:
		return &ast.LabeledStmt{Label: ast.NewIdent(s.Label.Name), Stmt: cloneStmt(s.Stmt)}
	case *ast.ExprStmt:
		return &ast.ExprStmt{X: cloneExpr(s.X)}
	case *ast.SendStmt:
		return &ast.SendStmt{Chan: cloneExpr(s.Chan), Value: cloneExpr(s.Value)}
	case *ast.IncDecStmt:
		return &ast.IncDecStmt{X: cloneExpr(s.X), Tok: s.Tok}
	case *ast.AssignStmt:
		return &ast.AssignStmt{Lhs: cloneExprs(s.Lhs), Tok: s.Tok, Rhs: cloneExprs(s.Rhs)}
	case *ast.GoStmt:
		return &ast.GoStmt{Call: cloneCall(s.Call)}
	case *ast.DeferStmt:
		return &ast.DeferStmt{Call: cloneCall(s.Call)}
	case *ast.ReturnStmt:
		return &ast.ReturnStmt{Results: cloneExprs(s.Results)}
	case *ast.BranchStmt:
		return &ast.BranchStmt{Tok: s.Tok, Label: cloneIdent(s.Label)}
	case *ast.BlockStmt:
		return cloneBlock(s)
	case *ast.IfStmt:
		return &ast.IfStmt{
			Init: cloneStmt(s.Init),
			Cond: cloneExpr(s.Cond),
			Body: cloneBlock(s.Body),
			Else: cloneStmt(s.Else),
		}
	case *ast.CaseClause:
		return &ast.CaseClause{List: cloneExprs(s.List), Body: cloneStmts(s.Body)}
	case *ast.SwitchStmt:
		return &ast.SwitchStmt{Init: cloneStmt(s.Init), Tag: cloneExpr(s.Tag), Body: cloneBlock(s.Body)}
	case *ast.TypeSwitchStmt:
		return &ast.TypeSwitchStmt{Init: cloneStmt(s.Init), Assign: cloneStmt(s.Assign), Body: cloneBlock(s.Body)}
	case *ast.SelectStmt:
		return &ast.SelectStmt{Body: cloneBlock(s.Body)}
	case *ast.CommClause:
		return &ast.CommClause{Comm: cloneStmt(s.Comm), Body: cloneStmts(s.Body)}
	case *ast.ForStmt:
		return &ast.ForStmt{
			Init: cloneStmt(s.Init),
			Cond: cloneExpr(s.Cond),
			Post: cloneStmt(s.Post),
			Body: cloneBlock(s.Body),
		}
	case *ast.RangeStmt:
		return &ast.RangeStmt{
			Key:   cloneExpr(s.Key),
			Value: cloneExpr(s.Value),
			Tok:   s.Tok,
			X:     cloneExpr(s.X),
			Body:  cloneBlock(s.Body),
		}
	default:
		return s
	}
}

func cloneDecl(d ast.Decl) ast.Decl {
	switch d := d.(type) {
	case nil:
		return nil
	case *ast.BadDecl:
		return &ast.BadDecl{}
	case *ast.GenDecl:
		return &ast.GenDecl{Tok: d.Tok, Lparen: marker(d.Lparen), Specs: cloneSpecs(d.Specs)}
	case *ast.FuncDecl:
		return &ast.FuncDecl{
			Recv: cloneFieldList(d.Recv),
			Name: ast.NewIdent(d.Name.Name),
			Type: cloneFuncType(d.Type),
			Body: cloneBlock(d.Body),
		}
	default:
		return d
	}
}

func cloneSpec(s ast.Spec) ast.Spec {
	switch s := s.(type) {
	case nil:
		return nil
	case *ast.ImportSpec:
		var path *ast.BasicLit
		if s.Path != nil {
			path = &ast.BasicLit{Kind: s.Path.Kind, Value: s.Path.Value}
		}

		return &ast.ImportSpec{Name: cloneIdent(s.Name), Path: path}
	case *ast.ValueSpec:
		return &ast.ValueSpec{Names: cloneIdents(s.Names), Type: cloneExpr(s.Type), Values: cloneExprs(s.Values)}
	case *ast.TypeSpec:
		return &ast.TypeSpec{
			Name:       ast.NewIdent(s.Name.Name),
			TypeParams: cloneFieldList(s.TypeParams),
			Assign:     marker(s.Assign),
			Type:       cloneExpr(s.Type),
		}
	default:
		return s
	}
}

func cloneFuncType(t *ast.FuncType) *ast.FuncType {
	if t == nil {
		return nil
	}

	return &ast.FuncType{
		TypeParams: cloneFieldList(t.TypeParams),
		Params:     cloneFieldList(t.Params),
		Results:    cloneFieldList(t.Results),
	}
}

func cloneFieldList(fl *ast.FieldList) *ast.FieldList {
	if fl == nil {
		return nil
	}

	fields := make([]*ast.Field, 0, len(fl.List))
	for _, f := range fl.List {
		var tag *ast.BasicLit
		if f.Tag != nil {
			tag = &ast.BasicLit{Kind: f.Tag.Kind, Value: f.Tag.Value}
		}

		fields = append(fields, &ast.Field{Names: cloneIdents(f.Names), Type: cloneExpr(f.Type), Tag: tag})
	}

	return &ast.FieldList{List: fields}
}

func cloneBlock(b *ast.BlockStmt) *ast.BlockStmt {
	if b == nil {
		return nil
	}

	return &ast.BlockStmt{List: cloneStmts(b.List)}
}

func cloneCall(c *ast.CallExpr) *ast.CallExpr {
	if c == nil {
		return nil
	}

	cloned, _ := cloneExpr(c).(*ast.CallExpr)

	return cloned
}

func cloneIdent(id *ast.Ident) *ast.Ident {
	if id == nil {
		return nil
	}

	return ast.NewIdent(id.Name)
}

func cloneIdents(ids []*ast.Ident) []*ast.Ident {
	if ids == nil {
		return nil
	}

	cloned := make([]*ast.Ident, 0, len(ids))
	for _, id := range ids {
		cloned = append(cloned, cloneIdent(id))
	}

	return cloned
}

func cloneExprs(exprs []ast.Expr) []ast.Expr {
	if exprs == nil {
		return nil
	}

	cloned := make([]ast.Expr, 0, len(exprs))
	for _, e := range exprs {
		cloned = append(cloned, cloneExpr(e))
	}

	return cloned
}

func cloneStmts(stmts []ast.Stmt) []ast.Stmt {
	if stmts == nil {
		return nil
	}

	cloned := make([]ast.Stmt, 0, len(stmts))
	for _, s := range stmts {
		cloned = append(cloned, cloneStmt(s))
	}

	return cloned
}

func cloneSpecs(specs []ast.Spec) []ast.Spec {
	if specs == nil {
		return nil
	}

	cloned := make([]ast.Spec, 0, len(specs))
	for _, s := range specs {
		cloned = append(cloned, cloneSpec(s))
	}

	return cloned
}

// marker keeps an optional position flag alive without carrying the real
// offset: the printer only checks validity for markers like a call's
// trailing ellipsis or an alias assign.
func marker(p token.Pos) token.Pos {
	if p.IsValid() {
		return 1
	}

	return token.NoPos
}
