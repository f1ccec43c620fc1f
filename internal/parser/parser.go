// Package parser 将 Azor 源码解析为语法树。
//
// 顶层是定义序列；表达式使用优先级爬升，调用和泛型实例化作为后缀循环处理。
// 语法错误通过 diag.Reporter 报告，batch 模式下丢弃出错的定义并在下一个
// 定义开头重新同步。
//
// 用法:
//
//	file, diags := parser.Parse(source)
//	if len(diags) > 0 { ... }
package parser

import (
	"context"
	"log/slog"

	"github.com/tangzhangming/azor/internal/diag"
	"github.com/tangzhangming/azor/internal/i18n"
	"github.com/tangzhangming/azor/internal/lexer"
	"github.com/tangzhangming/azor/internal/position"
)

// Option 解析选项
type Option func(*options)

type options struct {
	mode      diag.Mode
	maxErrors int
	filename  string
	logger    *slog.Logger
}

// WithMode 设置错误模式
func WithMode(mode diag.Mode) Option {
	return func(o *options) { o.mode = mode }
}

// WithMaxErrors 设置诊断数量上限，0 表示不限制
func WithMaxErrors(n int) Option {
	return func(o *options) { o.maxErrors = n }
}

// WithFilename 设置诊断位置中的文件名
func WithFilename(name string) Option {
	return func(o *options) { o.filename = name }
}

// WithLogger 设置调试日志，nil 表示不输出
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// bailout 终止当前定义的解析，由 parseDefinitionSafe 恢复
type bailout struct{}

// Parser 语法分析器
type Parser struct {
	l        *lexer.Lexer
	tokens   []lexer.Token // 已读取的 token（不含注释和非法 token）
	pos      int           // 当前 token 下标
	eof      bool
	diags    *diag.Reporter
	filename string
	halted   bool
	logger   *slog.Logger

	lexErrors []int // 非法 token 的起始偏移
}

// New 创建一个新的语法分析器
func New(l *lexer.Lexer, opts ...Option) *Parser {
	o := options{mode: diag.ModeBatch}
	for _, opt := range opts {
		opt(&o)
	}
	return &Parser{
		l:        l,
		diags:    diag.NewReporter(o.mode, o.maxErrors),
		filename: o.filename,
		logger:   o.logger,
	}
}

// Diagnostics 返回解析过程中的诊断，按源码顺序排列
func (p *Parser) Diagnostics() []diag.Diagnostic {
	return p.diags.Diagnostics()
}

// ============ token 游标 ============

// fill 从词法分析器读取下一个有效 token，注释跳过，非法 token 报告后跳过
func (p *Parser) fill() {
	for {
		tok := p.l.NextToken()
		switch tok.Type {
		case lexer.TOKEN_COMMENT:
			continue
		case lexer.TOKEN_ILLEGAL:
			msg := i18n.T(tok.Err)
			if tok.ErrArg != "" {
				msg = i18n.T(tok.Err, tok.ErrArg)
			}
			p.lexErrors = append(p.lexErrors, tok.Offset)
			p.report(diag.Diagnostic{
				Kind:    diag.LexError,
				Pos:     p.posOf(tok),
				End:     p.endOf(tok),
				Found:   tok.Literal,
				Message: msg,
			})
			continue
		}
		p.tokens = append(p.tokens, tok)
		if tok.Type == lexer.TOKEN_EOF {
			p.eof = true
		}
		return
	}
}

// tokenAt 返回下标 i 处的 token，超出输入时返回 EOF
func (p *Parser) tokenAt(i int) lexer.Token {
	for len(p.tokens) <= i && !p.eof {
		p.fill()
	}
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

// cur 当前 token
func (p *Parser) cur() lexer.Token {
	return p.tokenAt(p.pos)
}

// peek 当前 token 之后第 n 个 token
func (p *Parser) peek(n int) lexer.Token {
	return p.tokenAt(p.pos + n)
}

// nextToken 前进到下一个 token
func (p *Parser) nextToken() {
	if p.cur().Type != lexer.TOKEN_EOF {
		p.pos++
	}
}

// curTokenIs 检查当前 token 类型
func (p *Parser) curTokenIs(t lexer.TokenType) bool {
	return p.cur().Type == t
}

// peekTokenIs 检查下一个 token 类型
func (p *Parser) peekTokenIs(t lexer.TokenType) bool {
	return p.peek(1).Type == t
}

// expect 期望当前 token 类型，匹配则消费并返回，否则报告错误并终止当前定义
func (p *Parser) expect(t lexer.TokenType) lexer.Token {
	tok := p.cur()
	if tok.Type != t {
		p.failExpected(tokenDesc(t))
	}
	p.nextToken()
	return tok
}

// expectIdent 期望一个标识符
func (p *Parser) expectIdent() *Identifier {
	tok := p.expect(lexer.TOKEN_IDENT)
	return &Identifier{Token: tok, Name: tok.Literal}
}

// ============ 诊断 ============

// lexErrorIn 偏移区间 [from, to) 内是否有被跳过的非法 token
func (p *Parser) lexErrorIn(from, to int) bool {
	for _, off := range p.lexErrors {
		if off >= from && off < to {
			return true
		}
	}
	return false
}

// consumedEnd 最后一个已消费 token 的结束偏移
func (p *Parser) consumedEnd() int {
	if p.pos == 0 {
		return 0
	}
	return p.tokenAt(p.pos - 1).End
}

func (p *Parser) posOf(tok lexer.Token) position.Position {
	return position.Position{Filename: p.filename, Offset: tok.Offset, Line: tok.Line, Column: tok.Column}
}

// endOf token 不跨行，结束位置按字节长度推算
func (p *Parser) endOf(tok lexer.Token) position.Position {
	pos := p.posOf(tok)
	pos.Column += tok.End - tok.Offset
	pos.Offset = tok.End
	return pos
}

// log 输出调试日志
func (p *Parser) log(level slog.Level, msg string, attrs ...slog.Attr) {
	if p.logger == nil {
		return
	}
	p.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// report 记录诊断；single 模式或达到上限后停止解析
func (p *Parser) report(d diag.Diagnostic) {
	p.diags.Report(d)
	if p.diags.Mode() == diag.ModeSingle || p.diags.Full() {
		p.halted = true
	}
}

// fail 在当前 token 处报告语法错误并终止当前定义
func (p *Parser) fail(expected, message string) {
	tok := p.cur()
	p.report(diag.Diagnostic{
		Kind:     diag.SyntaxError,
		Pos:      p.posOf(tok),
		End:      p.endOf(tok),
		Expected: expected,
		Found:    describe(tok),
		Message:  message,
	})
	panic(bailout{})
}

// failExpected 报告 "expected X, got Y"
func (p *Parser) failExpected(expected string) {
	p.fail(expected, i18n.T(i18n.ErrExpectedToken, expected, describe(p.cur())))
}

// describe 描述实际遇到的 token
func describe(tok lexer.Token) string {
	if tok.Type == lexer.TOKEN_EOF {
		return i18n.T(i18n.MsgEndOfInput)
	}
	return i18n.T(i18n.MsgTokenQuoted, tok.Literal)
}

// tokenDesc 描述期望的 token 类型
func tokenDesc(t lexer.TokenType) string {
	switch t {
	case lexer.TOKEN_IDENT:
		return i18n.T(i18n.MsgIdentifier)
	case lexer.TOKEN_EOF:
		return i18n.T(i18n.MsgEndOfInput)
	}
	return i18n.T(i18n.MsgTokenQuoted, lexer.TokenTypeName(t))
}

// ============ 定义 ============

// ParseFile 解析整个文件
func (p *Parser) ParseFile() *File {
	file := &File{}
	for !p.halted && !p.curTokenIs(lexer.TOKEN_EOF) {
		start := p.pos
		if def := p.parseDefinitionSafe(); def != nil {
			file.Definitions = append(file.Definitions, def)
			continue
		}
		if p.halted {
			break
		}
		p.synchronize(start)
		p.log(slog.LevelDebug, "resynchronized", slog.Int("offset", p.cur().Offset))
	}
	p.log(slog.LevelDebug, "parsing complete",
		slog.String("file", p.filename),
		slog.Int("definitions", len(file.Definitions)),
		slog.Int("diagnostics", p.diags.Len()))
	return file
}

// parseDefinitionSafe 解析一个定义，出错或其中跳过了非法 token 时返回 nil
func (p *Parser) parseDefinitionSafe() (def *Definition) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			def = nil
		}
	}()
	from := p.cur().Offset
	def = p.parseDefinition()
	if p.lexErrorIn(from, p.consumedEnd()) {
		return nil
	}
	return def
}

// parseDefinition 解析 name [generics] [: base_type] [(named_arguments)] = expression
func (p *Parser) parseDefinition() *Definition {
	if !p.curTokenIs(lexer.TOKEN_IDENT) {
		p.fail(i18n.T(i18n.MsgDefinition), i18n.T(i18n.ErrExpectedDefinition, describe(p.cur())))
	}
	def := &Definition{Name: p.expectIdent()}

	if p.curTokenIs(lexer.TOKEN_LBRACE) {
		def.Generics = p.parseGenerics()
	}
	if p.curTokenIs(lexer.TOKEN_COLON) {
		p.nextToken()
		def.DeclaredType = p.parseBaseType()
	}
	if p.curTokenIs(lexer.TOKEN_LPAREN) {
		def.Params = p.parseNamedArguments()
	}

	p.expect(lexer.TOKEN_ASSIGN)
	def.Body = p.parseExpression(LOWEST)
	return def
}

// parseNamedArguments 解析 ( name: general_type, ... )
func (p *Parser) parseNamedArguments() []*Param {
	p.expect(lexer.TOKEN_LPAREN)
	params := []*Param{}
	for !p.curTokenIs(lexer.TOKEN_RPAREN) {
		param := &Param{Name: p.expectIdent()}
		p.expect(lexer.TOKEN_COLON)
		param.Type = p.parseGeneralType()
		params = append(params, param)
		if !p.curTokenIs(lexer.TOKEN_COMMA) {
			break
		}
		p.nextToken()
	}
	p.expect(lexer.TOKEN_RPAREN)
	return params
}

// synchronize 跳到下一个可能开始定义的位置；错误发生在定义开头时至少前进一个 token
func (p *Parser) synchronize(start int) {
	if p.pos == start {
		p.nextToken()
	}
	for !p.halted && !p.curTokenIs(lexer.TOKEN_EOF) && !p.atDefinitionStart() {
		p.nextToken()
	}
}

// atDefinitionStart 当前位置是否像一个定义的开头:
// name =、name :、name {a, b} 后接 : ( =、name () =、name (x : ...
func (p *Parser) atDefinitionStart() bool {
	if !p.curTokenIs(lexer.TOKEN_IDENT) {
		return false
	}
	switch p.peek(1).Type {
	case lexer.TOKEN_ASSIGN, lexer.TOKEN_COLON:
		return true
	case lexer.TOKEN_LPAREN:
		return p.atParamsStart(1)
	case lexer.TOKEN_LBRACE:
		i := 2
		for p.peek(i).Type == lexer.TOKEN_IDENT || p.peek(i).Type == lexer.TOKEN_COMMA {
			i++
		}
		if i == 2 || p.peek(i).Type != lexer.TOKEN_RBRACE {
			return false
		}
		switch p.peek(i + 1).Type {
		case lexer.TOKEN_COLON, lexer.TOKEN_ASSIGN:
			return true
		case lexer.TOKEN_LPAREN:
			return p.atParamsStart(i + 1)
		}
	}
	return false
}

// atParamsStart peek(i) 处的 ( 是否开始参数列表：() = 或 (name :
// 其他形式是调用，如 id{Int}(4)
func (p *Parser) atParamsStart(i int) bool {
	if p.peek(i+1).Type == lexer.TOKEN_RPAREN {
		return p.peek(i+2).Type == lexer.TOKEN_ASSIGN
	}
	return p.peek(i+1).Type == lexer.TOKEN_IDENT && p.peek(i+2).Type == lexer.TOKEN_COLON
}

// ============ 入口 ============

// Parse 解析源代码
func Parse(input string, opts ...Option) (*File, []diag.Diagnostic) {
	p := New(lexer.New(input), opts...)
	file := p.ParseFile()
	return file, p.Diagnostics()
}

// ParseExpr 解析单个表达式，输入必须恰好是一个表达式；失败时返回 nil
func ParseExpr(input string, opts ...Option) (Expression, []diag.Diagnostic) {
	p := New(lexer.New(input), opts...)
	var expr Expression
	p.guard(func() {
		e := p.parseExpression(LOWEST)
		p.expect(lexer.TOKEN_EOF)
		if len(p.lexErrors) == 0 {
			expr = e
		}
	})
	return expr, p.Diagnostics()
}

// ParseType 解析单个 general_type；失败时返回 nil
func ParseType(input string, opts ...Option) (*GeneralType, []diag.Diagnostic) {
	p := New(lexer.New(input), opts...)
	var typ *GeneralType
	p.guard(func() {
		t := p.parseGeneralType()
		p.expect(lexer.TOKEN_EOF)
		if len(p.lexErrors) == 0 {
			typ = t
		}
	})
	return typ, p.Diagnostics()
}

// guard 运行 fn 并吸收 bailout
func (p *Parser) guard(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
		}
	}()
	fn()
}
