package parser

import (
	"github.com/tangzhangming/azor/internal/i18n"
	"github.com/tangzhangming/azor/internal/lexer"
)

// parseBaseType 解析 IDENT | [base_type] | tuple_type
func (p *Parser) parseBaseType() Type {
	tok := p.cur()
	switch tok.Type {
	case lexer.TOKEN_IDENT:
		p.nextToken()
		return &BaseType{Token: tok, Name: tok.Literal}
	case lexer.TOKEN_LBRACKET:
		p.nextToken()
		elem := p.parseBaseType()
		p.expect(lexer.TOKEN_RBRACKET)
		return &ListType{Token: tok, Elem: elem}
	case lexer.TOKEN_LPAREN:
		return p.parseTupleType()
	}
	p.fail(i18n.T(i18n.MsgType), i18n.T(i18n.ErrExpectedType, describe(tok)))
	return nil
}

// parseTupleType 解析 ( general_type, ... )，允许为空和尾逗号
func (p *Parser) parseTupleType() *TupleType {
	tuple := &TupleType{Token: p.expect(lexer.TOKEN_LPAREN)}
	for !p.curTokenIs(lexer.TOKEN_RPAREN) {
		tuple.Elems = append(tuple.Elems, p.parseGeneralType())
		if !p.curTokenIs(lexer.TOKEN_COMMA) {
			break
		}
		p.nextToken()
	}
	p.expect(lexer.TOKEN_RPAREN)
	return tuple
}

// parseGeneralType 解析 base_type [tuple_type]
func (p *Parser) parseGeneralType() *GeneralType {
	typ := &GeneralType{Base: p.parseBaseType()}
	if p.curTokenIs(lexer.TOKEN_LPAREN) {
		typ.Args = p.parseTupleType()
	}
	return typ
}

// parseGeneralTypeList 解析 { general_type, ... }，至少一项，允许尾逗号
func (p *Parser) parseGeneralTypeList() []*GeneralType {
	p.expect(lexer.TOKEN_LBRACE)
	types := []*GeneralType{p.parseGeneralType()}
	for p.curTokenIs(lexer.TOKEN_COMMA) {
		p.nextToken()
		if p.curTokenIs(lexer.TOKEN_RBRACE) {
			break
		}
		types = append(types, p.parseGeneralType())
	}
	p.expect(lexer.TOKEN_RBRACE)
	return types
}

// parseGenerics 解析定义头部的 { T, U }，至少一项，允许尾逗号
func (p *Parser) parseGenerics() []*Identifier {
	p.expect(lexer.TOKEN_LBRACE)
	names := []*Identifier{p.expectIdent()}
	for p.curTokenIs(lexer.TOKEN_COMMA) {
		p.nextToken()
		if p.curTokenIs(lexer.TOKEN_RBRACE) {
			break
		}
		names = append(names, p.expectIdent())
	}
	p.expect(lexer.TOKEN_RBRACE)
	return names
}
