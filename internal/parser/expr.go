package parser

import (
	"github.com/tangzhangming/azor/internal/i18n"
	"github.com/tangzhangming/azor/internal/lexer"
)

// 优先级，从低到高
const (
	_ int = iota
	LOWEST
	COMPARE // ~ == != > >= < <=
	SUM     // & | ^ !^ + - %
	PRODUCT // * /
	POWER   // **（左结合）
	PREFIX  // !x
	POSTFIX // f(x) f{T}
)

// precedences 二元运算符优先级表
var precedences = map[lexer.TokenType]int{
	lexer.TOKEN_TILDE:     COMPARE,
	lexer.TOKEN_EQ:        COMPARE,
	lexer.TOKEN_NOT_EQ:    COMPARE,
	lexer.TOKEN_GT:        COMPARE,
	lexer.TOKEN_GT_EQ:     COMPARE,
	lexer.TOKEN_LT:        COMPARE,
	lexer.TOKEN_LT_EQ:     COMPARE,
	lexer.TOKEN_AMP:       SUM,
	lexer.TOKEN_PIPE:      SUM,
	lexer.TOKEN_CARET:     SUM,
	lexer.TOKEN_NOT_CARET: SUM,
	lexer.TOKEN_PLUS:      SUM,
	lexer.TOKEN_MINUS:     SUM,
	lexer.TOKEN_PERCENT:   SUM,
	lexer.TOKEN_ASTERISK:  PRODUCT,
	lexer.TOKEN_SLASH:     PRODUCT,
	lexer.TOKEN_POWER:     POWER,
}

// Precedence 返回二元运算符的优先级，非二元运算符返回 0
func Precedence(t lexer.TokenType) int {
	return precedences[t]
}

// parseExpression 优先级爬升；所有二元运算符左结合
func (p *Parser) parseExpression(minPrec int) Expression {
	left := p.parseUnary()
	for {
		tok := p.cur()
		prec, ok := precedences[tok.Type]
		if !ok || prec < minPrec {
			return left
		}
		p.nextToken()
		right := p.parseExpression(prec + 1)
		left = &BinaryExpr{Token: tok, Operator: tok.Literal, Left: left, Right: right}
	}
}

// parseUnary 前缀 ! 绑定比所有二元运算符都紧
func (p *Parser) parseUnary() Expression {
	if p.curTokenIs(lexer.TOKEN_NOT) {
		tok := p.cur()
		p.nextToken()
		return &NotExpr{Token: tok, Operand: p.parseUnary()}
	}
	return p.parsePostfix(p.parsePrimary())
}

// parsePostfix 循环处理调用和泛型实例化
func (p *Parser) parsePostfix(left Expression) Expression {
	for {
		switch p.cur().Type {
		case lexer.TOKEN_LPAREN:
			tok := p.cur()
			p.nextToken()
			args, _ := p.parseExpressionList(lexer.TOKEN_RPAREN)
			left = &CallExpr{Token: tok, Callee: left, Args: args}
		case lexer.TOKEN_LBRACE:
			// 只能紧跟在标识符 token 后，(f){T} 也不行
			ident, ok := left.(*Identifier)
			if !ok || p.tokenAt(p.pos-1).Offset != ident.Token.Offset {
				p.fail("", i18n.T(i18n.ErrGenericTarget))
			}
			tok := p.cur()
			left = &GenericResolution{Token: tok, Name: ident, TypeArgs: p.parseGeneralTypeList()}
		default:
			return left
		}
	}
}

// parsePrimary 解析基本表达式
func (p *Parser) parsePrimary() Expression {
	tok := p.cur()
	switch tok.Type {
	case lexer.TOKEN_IDENT:
		p.nextToken()
		return &Identifier{Token: tok, Name: tok.Literal}
	case lexer.TOKEN_NUMERIC:
		p.nextToken()
		return &NumericLiteral{Token: tok, Value: tok.Literal}
	case lexer.TOKEN_STRING:
		p.nextToken()
		return &StringLiteral{Token: tok, Value: lexer.Unquote(tok.Literal)}
	case lexer.TOKEN_TRUE, lexer.TOKEN_FALSE:
		p.nextToken()
		return &BoolLiteral{Token: tok, Value: tok.Type == lexer.TOKEN_TRUE}
	case lexer.TOKEN_LPAREN:
		return p.parseParenExpr()
	case lexer.TOKEN_LBRACKET:
		return p.parseListExpr()
	case lexer.TOKEN_IF:
		return p.parseIfExpr()
	case lexer.TOKEN_LET:
		return p.parseLetExpr()
	}
	p.fail(i18n.T(i18n.MsgExpression), i18n.T(i18n.ErrExpectedExpression, describe(tok)))
	return nil
}

// parseExpressionList 解析逗号分隔的表达式直到 end，开括号已消费。
// 第二个返回值表示最后一项之后是否有逗号。
func (p *Parser) parseExpressionList(end lexer.TokenType) ([]Expression, bool) {
	var list []Expression
	trailing := false
	for !p.curTokenIs(end) {
		list = append(list, p.parseExpression(LOWEST))
		trailing = false
		if !p.curTokenIs(lexer.TOKEN_COMMA) {
			break
		}
		p.nextToken()
		trailing = true
	}
	p.expect(end)
	return list, trailing
}

// parseParenExpr 解析 ()、(x)、(x,)、(x, y, ...)
// 不带逗号的 (x) 是分组，不产生节点
func (p *Parser) parseParenExpr() Expression {
	tok := p.expect(lexer.TOKEN_LPAREN)
	elems, trailing := p.parseExpressionList(lexer.TOKEN_RPAREN)
	if len(elems) == 1 && !trailing {
		return elems[0]
	}
	return &TupleLiteral{Token: tok, Elems: elems}
}

// parseListExpr 解析 [a, b, ...] 或 [] of T
func (p *Parser) parseListExpr() Expression {
	tok := p.expect(lexer.TOKEN_LBRACKET)
	if p.curTokenIs(lexer.TOKEN_RBRACKET) {
		p.nextToken()
		p.expect(lexer.TOKEN_OF)
		return &EmptyList{Token: tok, ElemType: p.parseGeneralType()}
	}
	elems, _ := p.parseExpressionList(lexer.TOKEN_RBRACKET)
	return &ListLiteral{Token: tok, Elems: elems}
}

// parseIfExpr 解析 if cond then a else b，cond 可以是列表解构
func (p *Parser) parseIfExpr() Expression {
	expr := &IfExpr{Token: p.expect(lexer.TOKEN_IF)}
	if p.atListUnpack() {
		expr.Unpack = p.parseListUnpack()
	} else {
		expr.Cond = p.parseExpression(LOWEST)
	}
	p.expect(lexer.TOKEN_THEN)
	expr.Then = p.parseExpression(LOWEST)
	p.expect(lexer.TOKEN_ELSE)
	expr.Else = p.parseExpression(LOWEST)
	return expr
}

// atListUnpack 向前看判断 h ~ t <- 或 (h ~ t) <-
func (p *Parser) atListUnpack() bool {
	if p.curTokenIs(lexer.TOKEN_IDENT) {
		return p.peekTokenIs(lexer.TOKEN_TILDE) &&
			p.peek(2).Type == lexer.TOKEN_IDENT &&
			p.peek(3).Type == lexer.TOKEN_ARROW
	}
	return p.curTokenIs(lexer.TOKEN_LPAREN) &&
		p.peek(1).Type == lexer.TOKEN_IDENT &&
		p.peek(2).Type == lexer.TOKEN_TILDE &&
		p.peek(3).Type == lexer.TOKEN_IDENT &&
		p.peek(4).Type == lexer.TOKEN_RPAREN &&
		p.peek(5).Type == lexer.TOKEN_ARROW
}

// parseListUnpack 调用前已由 atListUnpack 确认形状
func (p *Parser) parseListUnpack() *ListUnpack {
	unpack := &ListUnpack{}
	if p.curTokenIs(lexer.TOKEN_LPAREN) {
		unpack.Parenthesized = true
		p.nextToken()
	}
	unpack.Head = p.expectIdent()
	p.expect(lexer.TOKEN_TILDE)
	unpack.Tail = p.expectIdent()
	if unpack.Parenthesized {
		p.expect(lexer.TOKEN_RPAREN)
	}
	p.expect(lexer.TOKEN_ARROW)
	unpack.Source = p.parseExpression(LOWEST)
	return unpack
}

// parseLetExpr 解析 let x <- v in body 或 let (a, b) <- v in body
func (p *Parser) parseLetExpr() Expression {
	expr := &LetExpr{Token: p.expect(lexer.TOKEN_LET)}
	switch p.cur().Type {
	case lexer.TOKEN_IDENT:
		expr.Names = []*Identifier{p.expectIdent()}
	case lexer.TOKEN_LPAREN:
		expr.TuplePattern = true
		p.nextToken()
		expr.Names = []*Identifier{p.expectIdent()}
		for p.curTokenIs(lexer.TOKEN_COMMA) {
			p.nextToken()
			if p.curTokenIs(lexer.TOKEN_RPAREN) {
				break
			}
			expr.Names = append(expr.Names, p.expectIdent())
		}
		p.expect(lexer.TOKEN_RPAREN)
	default:
		p.fail(i18n.T(i18n.MsgLetPattern), i18n.T(i18n.ErrExpectedPattern, describe(p.cur())))
	}
	p.expect(lexer.TOKEN_ARROW)
	expr.Value = p.parseExpression(LOWEST)
	p.expect(lexer.TOKEN_IN)
	expr.Body = p.parseExpression(LOWEST)
	return expr
}
