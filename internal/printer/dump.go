package printer

import (
	"fmt"

	"github.com/tangzhangming/azor/internal/lexer"
	"github.com/tangzhangming/azor/internal/parser"
)

// Dump 输出缩进的语法树，每行一个节点并带位置
func Dump(file *parser.File) string {
	p := New()
	p.builder.Reset()
	for _, def := range file.Definitions {
		p.dumpDefinition(def)
	}
	return p.builder.String()
}

func (p *Printer) node(label string, n parser.Node) {
	p.writeLine(fmt.Sprintf("%s @%s", label, n.Pos()))
}

func (p *Printer) dumpDefinition(def *parser.Definition) {
	p.node("Definition "+def.Name.Name, def)
	p.indent++
	if def.Generics != nil {
		p.writeLine("Generics")
		p.indent++
		for _, g := range def.Generics {
			p.node("Identifier "+g.Name, g)
		}
		p.indent--
	}
	if def.DeclaredType != nil {
		p.writeLine("DeclaredType")
		p.indent++
		p.dumpType(def.DeclaredType)
		p.indent--
	}
	if def.Params != nil {
		p.writeLine("Params")
		p.indent++
		for _, param := range def.Params {
			p.node("Param "+param.Name.Name, param)
			p.indent++
			p.dumpGeneralType(param.Type)
			p.indent--
		}
		p.indent--
	}
	p.writeLine("Body")
	p.indent++
	p.dumpExpression(def.Body)
	p.indent--
	p.indent--
}

func (p *Printer) dumpType(t parser.Type) {
	switch t := t.(type) {
	case *parser.BaseType:
		p.node("BaseType "+t.Name, t)
	case *parser.ListType:
		p.node("ListType", t)
		p.indent++
		p.dumpType(t.Elem)
		p.indent--
	case *parser.TupleType:
		p.node("TupleType", t)
		p.indent++
		for _, e := range t.Elems {
			p.dumpGeneralType(e)
		}
		p.indent--
	}
}

func (p *Printer) dumpGeneralType(t *parser.GeneralType) {
	if t.Args == nil {
		p.dumpType(t.Base)
		return
	}
	p.node("GeneralType", t)
	p.indent++
	p.dumpType(t.Base)
	p.dumpType(t.Args)
	p.indent--
}

func (p *Printer) dumpExpression(expr parser.Expression) {
	switch e := expr.(type) {
	case *parser.Identifier:
		p.node("Identifier "+e.Name, e)
	case *parser.NumericLiteral:
		p.node("Numeric "+e.Value, e)
	case *parser.BoolLiteral:
		p.node("Bool "+e.String(), e)
	case *parser.StringLiteral:
		p.node("String "+lexer.Quote(e.Value), e)
	case *parser.EmptyList:
		p.node("EmptyList", e)
		p.indent++
		p.dumpGeneralType(e.ElemType)
		p.indent--
	case *parser.ListLiteral:
		p.node("List", e)
		p.dumpChildren(e.Elems)
	case *parser.TupleLiteral:
		p.node("Tuple", e)
		p.dumpChildren(e.Elems)
	case *parser.IfExpr:
		p.node("If", e)
		p.indent++
		if u := e.Unpack; u != nil {
			p.node("ListUnpack "+u.Head.Name+" ~ "+u.Tail.Name, u)
			p.indent++
			p.dumpExpression(u.Source)
			p.indent--
		} else {
			p.dumpExpression(e.Cond)
		}
		p.dumpExpression(e.Then)
		p.dumpExpression(e.Else)
		p.indent--
	case *parser.LetExpr:
		label := "Let"
		for i, n := range e.Names {
			if i == 0 {
				label += " "
			} else {
				label += ", "
			}
			label += n.Name
		}
		if e.TuplePattern {
			label += " (tuple)"
		}
		p.node(label, e)
		p.dumpChildren([]parser.Expression{e.Value, e.Body})
	case *parser.NotExpr:
		p.node("Not", e)
		p.dumpChildren([]parser.Expression{e.Operand})
	case *parser.CallExpr:
		p.node("Call", e)
		p.dumpChildren(append([]parser.Expression{e.Callee}, e.Args...))
	case *parser.GenericResolution:
		p.node("GenericResolution "+e.Name.Name, e)
		p.indent++
		for _, t := range e.TypeArgs {
			p.dumpGeneralType(t)
		}
		p.indent--
	case *parser.BinaryExpr:
		p.node("Binary "+e.Operator, e)
		p.dumpChildren([]parser.Expression{e.Left, e.Right})
	}
}

func (p *Printer) dumpChildren(exprs []parser.Expression) {
	p.indent++
	for _, e := range exprs {
		p.dumpExpression(e)
	}
	p.indent--
}
