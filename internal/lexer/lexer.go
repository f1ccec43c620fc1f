// Package lexer 将 Azor 源码切分为 token 序列。
//
// 词法分析对任意字节输入都不会失败：无法识别的字符和未结束的字符串
// 产生 TOKEN_ILLEGAL，Err 字段记录原因，扫描从下一个字符继续。
package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tangzhangming/azor/internal/i18n"
	"github.com/tangzhangming/azor/internal/position"
)

// Lexer 词法分析器
type Lexer struct {
	input   string
	pos     int  // 当前字符位置
	readPos int  // 下一个读取位置
	ch      byte // 当前字符
	line    int  // 当前行号
	column  int  // 当前列号
	prev    TokenType
}

// New 创建一个新的词法分析器
func New(input string) *Lexer {
	return NewAt(input, 0)
}

// NewAt 从 offset 处开始扫描，行列号按 offset 之前的内容计算
func NewAt(input string, offset int) *Lexer {
	p := position.Locate(input, offset)
	l := &Lexer{
		input:   input,
		readPos: p.Offset,
		line:    p.Line,
		column:  p.Column - 1,
		prev:    TOKEN_ILLEGAL,
	}
	l.readChar()
	return l
}

// readChar 读取下一个字符
func (l *Lexer) readChar() {
	if l.ch == '\n' && !l.atEOF() {
		l.line++
		l.column = 0
	}
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.column++
}

// peekChar 查看下一个字符但不移动位置
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

// NextToken 获取下一个 token，输入结束后始终返回 TOKEN_EOF
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	tok := Token{Offset: l.pos, Line: l.line, Column: l.column}
	if l.atEOF() {
		tok.Type = TOKEN_EOF
		tok.Offset = len(l.input)
		tok.End = len(l.input)
		return tok
	}

	switch ch := l.ch; {
	case ch == '#':
		l.readComment()
		tok.Type = TOKEN_COMMENT
	case isLetter(ch):
		l.readIdentifier()
		tok.Type = LookupIdent(l.input[tok.Offset:l.pos])
	case isDigit(ch), ch == '-' && isDigit(l.peekChar()) && !l.operandEnded():
		l.readNumber()
		tok.Type = TOKEN_NUMERIC
	case ch == '"':
		tok.Type = TOKEN_STRING
		if key, arg := l.readString(); key != "" {
			tok.Type = TOKEN_ILLEGAL
			tok.Err, tok.ErrArg = key, arg
		}
	default:
		tok.Type = l.readOperator()
		if tok.Type == TOKEN_ILLEGAL {
			r, size := utf8.DecodeRuneInString(l.input[l.pos:])
			for i := 0; i < size; i++ {
				l.readChar()
			}
			tok.Err = i18n.ErrUnexpectedChar
			tok.ErrArg = strconv.QuoteRune(r)
		}
	}

	tok.End = l.pos
	tok.Literal = l.input[tok.Offset:tok.End]
	if tok.Type != TOKEN_COMMENT && tok.Type != TOKEN_ILLEGAL {
		l.prev = tok.Type
	}
	return tok
}

// operandEnded 上一个 token 能否结束一个操作数；此时 '-' 是减号而不是负数前缀
func (l *Lexer) operandEnded() bool {
	switch l.prev {
	case TOKEN_IDENT, TOKEN_NUMERIC, TOKEN_STRING, TOKEN_TRUE, TOKEN_FALSE,
		TOKEN_RPAREN, TOKEN_RBRACKET, TOKEN_RBRACE:
		return true
	}
	return false
}

// readOperator 读取运算符或分隔符，不认识的字符返回 TOKEN_ILLEGAL 且不前进
func (l *Lexer) readOperator() TokenType {
	two := func(next byte, long, short TokenType) TokenType {
		if l.peekChar() == next {
			l.readChar()
			l.readChar()
			return long
		}
		l.readChar()
		return short
	}

	switch l.ch {
	case '=':
		return two('=', TOKEN_EQ, TOKEN_ASSIGN)
	case '*':
		return two('*', TOKEN_POWER, TOKEN_ASTERISK)
	case '>':
		return two('=', TOKEN_GT_EQ, TOKEN_GT)
	case '!':
		if l.peekChar() == '^' {
			return two('^', TOKEN_NOT_CARET, TOKEN_NOT)
		}
		return two('=', TOKEN_NOT_EQ, TOKEN_NOT)
	case '<':
		if l.peekChar() == '-' {
			return two('-', TOKEN_ARROW, TOKEN_LT)
		}
		return two('=', TOKEN_LT_EQ, TOKEN_LT)
	}

	single := map[byte]TokenType{
		'~': TOKEN_TILDE,
		'&': TOKEN_AMP,
		'|': TOKEN_PIPE,
		'^': TOKEN_CARET,
		'+': TOKEN_PLUS,
		'-': TOKEN_MINUS,
		'%': TOKEN_PERCENT,
		'/': TOKEN_SLASH,
		',': TOKEN_COMMA,
		':': TOKEN_COLON,
		'(': TOKEN_LPAREN,
		')': TOKEN_RPAREN,
		'[': TOKEN_LBRACKET,
		']': TOKEN_RBRACKET,
		'{': TOKEN_LBRACE,
		'}': TOKEN_RBRACE,
	}
	if t, ok := single[l.ch]; ok {
		l.readChar()
		return t
	}
	return TOKEN_ILLEGAL
}

// skipWhitespace 跳过空白字符
func (l *Lexer) skipWhitespace() {
	for !l.atEOF() && (l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r') {
		l.readChar()
	}
}

// readComment 读取 # 到行尾
func (l *Lexer) readComment() {
	for !l.atEOF() && l.ch != '\n' {
		l.readChar()
	}
}

// readIdentifier 读取标识符
func (l *Lexer) readIdentifier() {
	for !l.atEOF() && (isLetter(l.ch) || isDigit(l.ch)) {
		l.readChar()
	}
}

// readNumber 读取 -?(0|[1-9][0-9]*)
func (l *Lexer) readNumber() {
	if l.ch == '-' {
		l.readChar()
	}
	if l.ch == '0' {
		l.readChar()
		return
	}
	for !l.atEOF() && isDigit(l.ch) {
		l.readChar()
	}
}

// readString 读取双引号字符串，返回第一个错误的消息键和参数
func (l *Lexer) readString() (errKey, errArg string) {
	l.readChar() // 跳过开头的 "
	for {
		if l.atEOF() || l.ch == '\n' {
			return i18n.ErrUnterminatedString, ""
		}
		switch {
		case l.ch == '"':
			l.readChar()
			return errKey, errArg
		case l.ch == '\\':
			next := l.peekChar()
			if isEscape(next) {
				l.readChar()
				l.readChar()
				continue
			}
			if errKey == "" && next != '\n' && l.readPos < len(l.input) {
				errKey, errArg = i18n.ErrInvalidEscape, "'\\"+string(next)+"'"
			}
			l.readChar()
		case isStringChar(l.ch):
			l.readChar()
		default:
			r, size := utf8.DecodeRuneInString(l.input[l.pos:])
			if errKey == "" {
				errKey, errArg = i18n.ErrInvalidStringChar, strconv.QuoteRune(r)
			}
			for i := 0; i < size; i++ {
				l.readChar()
			}
		}
	}
}

// Tokenize 将输入字符串转换为 token 列表（包含注释，以 TOKEN_EOF 结尾）
func Tokenize(input string) []Token {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TOKEN_EOF {
			break
		}
	}
	return tokens
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isEscape(ch byte) bool {
	return ch == '\\' || ch == 't' || ch == 'r' || ch == 'n' || ch == '"'
}

// isStringChar 字符串字面量中允许直接出现的字符
func isStringChar(ch byte) bool {
	return ch == ' ' || ch == '\t' || isLetter(ch) || isDigit(ch) ||
		strings.IndexByte("!#$%&'()*+,-./:;<=>?@[]^`{|}~", ch) >= 0
}

// Unquote 去掉字符串字面量的引号并处理转义
func Unquote(lit string) string {
	if len(lit) >= 2 && lit[0] == '"' && lit[len(lit)-1] == '"' {
		lit = lit[1 : len(lit)-1]
	}
	if strings.IndexByte(lit, '\\') < 0 {
		return lit
	}
	var b strings.Builder
	for i := 0; i < len(lit); i++ {
		if lit[i] != '\\' || i+1 == len(lit) {
			b.WriteByte(lit[i])
			continue
		}
		i++
		switch lit[i] {
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'n':
			b.WriteByte('\n')
		default:
			b.WriteByte(lit[i])
		}
	}
	return b.String()
}

// Quote 生成与 Unquote 对应的字符串字面量
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
