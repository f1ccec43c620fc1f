// Package printer 将语法树输出为规范源码或缩进的树形结构。
//
// 规范输出重新解析后得到结构相同的语法树：括号只在改变结合方式时加入，
// 贪婪的 if/let 出现在运算符操作数位置时总是加括号。
package printer

import (
	"strings"

	"github.com/tangzhangming/azor/internal/lexer"
	"github.com/tangzhangming/azor/internal/parser"
)

// Printer 规范源码生成器
type Printer struct {
	builder      strings.Builder
	indent       int
	finalNewline bool
}

// New 创建一个新的生成器
func New() *Printer {
	return &Printer{finalNewline: true}
}

// SetFinalNewline 设置文件末尾是否输出换行
func (p *Printer) SetFinalNewline(v bool) {
	p.finalNewline = v
}

// Format 使用默认设置输出整个文件
func Format(file *parser.File) string {
	return New().File(file)
}

// File 输出整个文件，每个定义占一行
func (p *Printer) File(file *parser.File) string {
	p.builder.Reset()
	for i, def := range file.Definitions {
		if i > 0 {
			p.write("\n")
		}
		p.write(p.definition(def))
	}
	if p.finalNewline && len(file.Definitions) > 0 {
		p.write("\n")
	}
	return p.builder.String()
}

// Expr 输出单个表达式
func Expr(expr parser.Expression) string {
	return New().expression(expr)
}

// definition 输出 name{T}: Type (a: T) = body
func (p *Printer) definition(def *parser.Definition) string {
	var b strings.Builder
	b.WriteString(def.Name.Name)
	if def.Generics != nil {
		b.WriteString("{")
		for i, g := range def.Generics {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(g.Name)
		}
		b.WriteString("}")
	}
	if def.DeclaredType != nil {
		b.WriteString(": ")
		b.WriteString(def.DeclaredType.String())
		if def.Params != nil {
			b.WriteString(" ")
		}
	}
	if def.Params != nil {
		b.WriteString("(")
		for i, param := range def.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(param.String())
		}
		b.WriteString(")")
	}
	b.WriteString(" = ")
	b.WriteString(p.expression(def.Body))
	return b.String()
}

// expression 输出表达式，子表达式按需加括号
func (p *Printer) expression(expr parser.Expression) string {
	switch e := expr.(type) {
	case *parser.Identifier:
		return e.Name
	case *parser.NumericLiteral:
		return e.Value
	case *parser.BoolLiteral:
		return e.String()
	case *parser.StringLiteral:
		return lexer.Quote(e.Value)
	case *parser.EmptyList:
		return "[] of " + e.ElemType.String()
	case *parser.ListLiteral:
		return "[" + p.expressionList(e.Elems) + "]"
	case *parser.TupleLiteral:
		if len(e.Elems) == 1 {
			return "(" + p.expression(e.Elems[0]) + ",)"
		}
		return "(" + p.expressionList(e.Elems) + ")"
	case *parser.IfExpr:
		return p.ifExpr(e)
	case *parser.LetExpr:
		return p.letExpr(e)
	case *parser.NotExpr:
		return "!" + p.operand(e.Operand, needsParenAsOperand(e.Operand))
	case *parser.CallExpr:
		return p.operand(e.Callee, needsParenAsCallee(e.Callee)) + "(" + p.expressionList(e.Args) + ")"
	case *parser.GenericResolution:
		return e.String()
	case *parser.BinaryExpr:
		return p.binaryExpr(e)
	}
	return ""
}

func (p *Printer) expressionList(exprs []parser.Expression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = p.expression(e)
	}
	return strings.Join(parts, ", ")
}

func (p *Printer) operand(expr parser.Expression, paren bool) string {
	if paren {
		return "(" + p.expression(expr) + ")"
	}
	return p.expression(expr)
}

// binaryExpr 所有二元运算符左结合：左侧低于本级才加括号，右侧不高于本级就加括号
func (p *Printer) binaryExpr(e *parser.BinaryExpr) string {
	prec := parser.Precedence(e.Token.Type)

	leftParen := needsParenAsOperand(e.Left)
	if l, ok := e.Left.(*parser.BinaryExpr); ok {
		leftParen = parser.Precedence(l.Token.Type) < prec
	}
	rightParen := needsParenAsOperand(e.Right)
	if r, ok := e.Right.(*parser.BinaryExpr); ok {
		rightParen = parser.Precedence(r.Token.Type) <= prec
	}
	return p.operand(e.Left, leftParen) + " " + e.Operator + " " + p.operand(e.Right, rightParen)
}

func (p *Printer) ifExpr(e *parser.IfExpr) string {
	var cond string
	if u := e.Unpack; u != nil {
		head := u.Head.Name + " ~ " + u.Tail.Name
		if u.Parenthesized {
			head = "(" + head + ")"
		}
		cond = head + " <- " + p.expression(u.Source)
	} else {
		cond = p.expression(e.Cond)
	}
	return "if " + cond + " then " + p.expression(e.Then) + " else " + p.expression(e.Else)
}

func (p *Printer) letExpr(e *parser.LetExpr) string {
	names := make([]string, len(e.Names))
	for i, n := range e.Names {
		names[i] = n.Name
	}
	pattern := strings.Join(names, ", ")
	if e.TuplePattern {
		pattern = "(" + pattern + ")"
	}
	return "let " + pattern + " <- " + p.expression(e.Value) + " in " + p.expression(e.Body)
}

// needsParenAsOperand if/let 会吞掉后面的运算符，二元表达式需要保持分组
func needsParenAsOperand(expr parser.Expression) bool {
	switch expr.(type) {
	case *parser.IfExpr, *parser.LetExpr, *parser.BinaryExpr:
		return true
	}
	return false
}

// needsParenAsCallee [] of T 后面的 ( 会被当作类型实参
func needsParenAsCallee(expr parser.Expression) bool {
	switch expr.(type) {
	case *parser.EmptyList, *parser.NotExpr:
		return true
	}
	return needsParenAsOperand(expr)
}

// write 写入字符串
func (p *Printer) write(s string) {
	p.builder.WriteString(s)
}

// writeLine 写入一行
func (p *Printer) writeLine(s string) {
	p.writeIndent()
	p.builder.WriteString(s)
	p.builder.WriteString("\n")
}

// writeIndent 写入缩进
func (p *Printer) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.builder.WriteString("  ")
	}
}
