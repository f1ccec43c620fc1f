package parser

import (
	"strings"

	"github.com/tangzhangming/azor/internal/lexer"
	"github.com/tangzhangming/azor/internal/position"
)

// Node AST 节点接口
//
// 节点构造后不再修改；每个子节点只被一个父节点持有。
type Node interface {
	TokenLiteral() string
	Pos() position.Position
	String() string
}

// Expression 表达式接口
type Expression interface {
	Node
	expressionNode()
}

// Type 类型接口：BaseType、ListType 或 TupleType
type Type interface {
	Node
	typeNode()
}

// File 表示一个源文件
type File struct {
	Definitions []*Definition
}

func (f *File) TokenLiteral() string { return "file" }

func (f *File) Pos() position.Position {
	if len(f.Definitions) == 0 {
		return position.Position{Offset: 0, Line: 1, Column: 1}
	}
	return f.Definitions[0].Pos()
}

func (f *File) String() string {
	parts := make([]string, len(f.Definitions))
	for i, d := range f.Definitions {
		parts[i] = d.String()
	}
	return strings.Join(parts, "\n")
}

// Definition 顶层定义；有参数列表时表示函数，否则表示值
type Definition struct {
	Name         *Identifier
	Generics     []*Identifier // nil 表示没有泛型参数
	DeclaredType Type          // 可选
	Params       []*Param      // nil 表示没有参数列表；空切片表示 ()
	Body         Expression
}

func (d *Definition) TokenLiteral() string   { return d.Name.TokenLiteral() }
func (d *Definition) Pos() position.Position { return d.Name.Pos() }

// IsFunction 是否带参数列表
func (d *Definition) IsFunction() bool { return d.Params != nil }

func (d *Definition) String() string {
	var b strings.Builder
	b.WriteString("(def ")
	b.WriteString(d.Name.Name)
	if d.Generics != nil {
		b.WriteString("{")
		b.WriteString(joinIdents(d.Generics))
		b.WriteString("}")
	}
	if d.DeclaredType != nil {
		b.WriteString(": ")
		b.WriteString(d.DeclaredType.String())
	}
	if d.Params != nil {
		parts := make([]string, len(d.Params))
		for i, p := range d.Params {
			parts[i] = p.String()
		}
		b.WriteString(" (")
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(")")
	}
	b.WriteString(" ")
	b.WriteString(d.Body.String())
	b.WriteString(")")
	return b.String()
}

// Param 命名参数 name: type
type Param struct {
	Name *Identifier
	Type *GeneralType
}

func (p *Param) TokenLiteral() string   { return p.Name.TokenLiteral() }
func (p *Param) Pos() position.Position { return p.Name.Pos() }
func (p *Param) String() string         { return p.Name.Name + ": " + p.Type.String() }

// ============ 类型 ============

// BaseType 命名类型
type BaseType struct {
	Token lexer.Token
	Name  string
}

func (t *BaseType) TokenLiteral() string   { return t.Token.Literal }
func (t *BaseType) Pos() position.Position { return t.Token.Pos() }
func (t *BaseType) String() string         { return t.Name }
func (t *BaseType) typeNode()              {}

// ListType 列表类型 [T]
type ListType struct {
	Token lexer.Token // [
	Elem  Type
}

func (t *ListType) TokenLiteral() string   { return t.Token.Literal }
func (t *ListType) Pos() position.Position { return t.Token.Pos() }
func (t *ListType) String() string         { return "[" + t.Elem.String() + "]" }
func (t *ListType) typeNode()              {}

// TupleType 元组类型 (T, U)，可以为空
type TupleType struct {
	Token lexer.Token // (
	Elems []*GeneralType
}

func (t *TupleType) TokenLiteral() string   { return t.Token.Literal }
func (t *TupleType) Pos() position.Position { return t.Token.Pos() }
func (t *TupleType) typeNode()              {}

func (t *TupleType) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// GeneralType 基础类型加可选的类型实参，如 List(Int)
type GeneralType struct {
	Base Type
	Args *TupleType // 可选
}

func (t *GeneralType) TokenLiteral() string   { return t.Base.TokenLiteral() }
func (t *GeneralType) Pos() position.Position { return t.Base.Pos() }

func (t *GeneralType) String() string {
	if t.Args == nil {
		return t.Base.String()
	}
	return t.Base.String() + t.Args.String()
}

// ============ 表达式 ============

// Identifier 标识符
type Identifier struct {
	Token lexer.Token
	Name  string
}

func (i *Identifier) TokenLiteral() string   { return i.Token.Literal }
func (i *Identifier) Pos() position.Position { return i.Token.Pos() }
func (i *Identifier) String() string         { return i.Name }
func (i *Identifier) expressionNode()        {}

// NumericLiteral 整数字面量，Value 保留源码文本（不限位宽）
type NumericLiteral struct {
	Token lexer.Token
	Value string
}

func (n *NumericLiteral) TokenLiteral() string   { return n.Token.Literal }
func (n *NumericLiteral) Pos() position.Position { return n.Token.Pos() }
func (n *NumericLiteral) String() string         { return n.Value }
func (n *NumericLiteral) expressionNode()        {}

// BoolLiteral 布尔字面量
type BoolLiteral struct {
	Token lexer.Token
	Value bool
}

func (b *BoolLiteral) TokenLiteral() string   { return b.Token.Literal }
func (b *BoolLiteral) Pos() position.Position { return b.Token.Pos() }
func (b *BoolLiteral) expressionNode()        {}

func (b *BoolLiteral) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// StringLiteral 字符串字面量，Value 为去掉引号和转义后的内容
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (s *StringLiteral) TokenLiteral() string   { return s.Token.Literal }
func (s *StringLiteral) Pos() position.Position { return s.Token.Pos() }
func (s *StringLiteral) String() string         { return lexer.Quote(s.Value) }
func (s *StringLiteral) expressionNode()        {}

// EmptyList 空列表 [] of T
type EmptyList struct {
	Token    lexer.Token // [
	ElemType *GeneralType
}

func (e *EmptyList) TokenLiteral() string   { return e.Token.Literal }
func (e *EmptyList) Pos() position.Position { return e.Token.Pos() }
func (e *EmptyList) String() string         { return "([] of " + e.ElemType.String() + ")" }
func (e *EmptyList) expressionNode()        {}

// ListLiteral 非空列表 [a, b, ...]
type ListLiteral struct {
	Token lexer.Token // [
	Elems []Expression
}

func (l *ListLiteral) TokenLiteral() string   { return l.Token.Literal }
func (l *ListLiteral) Pos() position.Position { return l.Token.Pos() }
func (l *ListLiteral) String() string         { return "[" + joinExprs(l.Elems, " ") + "]" }
func (l *ListLiteral) expressionNode()        {}

// TupleLiteral 元组 ()、(a,)、(a, b)
type TupleLiteral struct {
	Token lexer.Token // (
	Elems []Expression
}

func (t *TupleLiteral) TokenLiteral() string   { return t.Token.Literal }
func (t *TupleLiteral) Pos() position.Position { return t.Token.Pos() }
func (t *TupleLiteral) expressionNode()        {}

func (t *TupleLiteral) String() string {
	if len(t.Elems) == 0 {
		return "(tuple)"
	}
	return "(tuple " + joinExprs(t.Elems, " ") + ")"
}

// IfExpr 条件表达式；Cond 与 Unpack 恰有一个非空
type IfExpr struct {
	Token  lexer.Token // if
	Cond   Expression
	Unpack *ListUnpack
	Then   Expression
	Else   Expression
}

func (e *IfExpr) TokenLiteral() string   { return e.Token.Literal }
func (e *IfExpr) Pos() position.Position { return e.Token.Pos() }
func (e *IfExpr) expressionNode()        {}

// Condition 返回条件部分的节点
func (e *IfExpr) Condition() Node {
	if e.Unpack != nil {
		return e.Unpack
	}
	return e.Cond
}

func (e *IfExpr) String() string {
	return "(if " + e.Condition().String() + " " + e.Then.String() + " " + e.Else.String() + ")"
}

// ListUnpack 列表解构 head ~ tail <- source，只出现在 if 条件中
type ListUnpack struct {
	Head          *Identifier
	Tail          *Identifier
	Source        Expression
	Parenthesized bool // 源码写作 (head ~ tail) <- source
}

func (u *ListUnpack) TokenLiteral() string   { return u.Head.TokenLiteral() }
func (u *ListUnpack) Pos() position.Position { return u.Head.Pos() }

func (u *ListUnpack) String() string {
	return "(unpack " + u.Head.Name + " " + u.Tail.Name + " " + u.Source.String() + ")"
}

// LetExpr let 绑定；TuplePattern 为真时 Names 来自 (a, b, ...)
type LetExpr struct {
	Token        lexer.Token // let
	Names        []*Identifier
	TuplePattern bool
	Value        Expression
	Body         Expression
}

func (e *LetExpr) TokenLiteral() string   { return e.Token.Literal }
func (e *LetExpr) Pos() position.Position { return e.Token.Pos() }
func (e *LetExpr) expressionNode()        {}

func (e *LetExpr) String() string {
	pattern := joinIdents(e.Names)
	if e.TuplePattern {
		pattern = "(" + strings.ReplaceAll(pattern, ", ", " ") + ")"
	}
	return "(let " + pattern + " " + e.Value.String() + " " + e.Body.String() + ")"
}

// NotExpr 前缀 !
type NotExpr struct {
	Token   lexer.Token // !
	Operand Expression
}

func (e *NotExpr) TokenLiteral() string   { return e.Token.Literal }
func (e *NotExpr) Pos() position.Position { return e.Token.Pos() }
func (e *NotExpr) String() string         { return "(! " + e.Operand.String() + ")" }
func (e *NotExpr) expressionNode()        {}

// CallExpr 函数调用 f(args)
type CallExpr struct {
	Token  lexer.Token // (
	Callee Expression
	Args   []Expression
}

func (e *CallExpr) TokenLiteral() string   { return e.Token.Literal }
func (e *CallExpr) Pos() position.Position { return e.Callee.Pos() }
func (e *CallExpr) expressionNode()        {}

func (e *CallExpr) String() string {
	if len(e.Args) == 0 {
		return "(call " + e.Callee.String() + ")"
	}
	return "(call " + e.Callee.String() + " " + joinExprs(e.Args, " ") + ")"
}

// GenericResolution 泛型实例化 Name{T, ...}
type GenericResolution struct {
	Token    lexer.Token // {
	Name     *Identifier
	TypeArgs []*GeneralType
}

func (g *GenericResolution) TokenLiteral() string   { return g.Token.Literal }
func (g *GenericResolution) Pos() position.Position { return g.Name.Pos() }
func (g *GenericResolution) expressionNode()        {}

func (g *GenericResolution) String() string {
	parts := make([]string, len(g.TypeArgs))
	for i, a := range g.TypeArgs {
		parts[i] = a.String()
	}
	return g.Name.Name + "{" + strings.Join(parts, ", ") + "}"
}

// BinaryExpr 二元表达式
type BinaryExpr struct {
	Token    lexer.Token // 运算符
	Operator string
	Left     Expression
	Right    Expression
}

func (e *BinaryExpr) TokenLiteral() string   { return e.Token.Literal }
func (e *BinaryExpr) Pos() position.Position { return e.Left.Pos() }
func (e *BinaryExpr) expressionNode()        {}

func (e *BinaryExpr) String() string {
	return "(" + e.Operator + " " + e.Left.String() + " " + e.Right.String() + ")"
}

func joinExprs(exprs []Expression, sep string) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, sep)
}

func joinIdents(ids []*Identifier) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.Name
	}
	return strings.Join(parts, ", ")
}
