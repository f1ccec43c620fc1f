package lexer

import "github.com/tangzhangming/azor/internal/position"

// TokenType 表示 token 的类型
type TokenType int

const (
	// 特殊 token
	TOKEN_ILLEGAL TokenType = iota
	TOKEN_EOF
	TOKEN_COMMENT

	// 标识符和字面量
	TOKEN_IDENT   // 标识符
	TOKEN_NUMERIC // 整数（可带前导 -）
	TOKEN_STRING  // 字符串

	// 运算符
	TOKEN_TILDE     // ~
	TOKEN_EQ        // ==
	TOKEN_NOT_EQ    // !=
	TOKEN_GT        // >
	TOKEN_GT_EQ     // >=
	TOKEN_LT        // <
	TOKEN_LT_EQ     // <=
	TOKEN_AMP       // &
	TOKEN_PIPE      // |
	TOKEN_CARET     // ^
	TOKEN_NOT_CARET // !^
	TOKEN_PLUS      // +
	TOKEN_MINUS     // -
	TOKEN_PERCENT   // %
	TOKEN_ASTERISK  // *
	TOKEN_SLASH     // /
	TOKEN_POWER     // **
	TOKEN_NOT       // !
	TOKEN_ARROW     // <-
	TOKEN_ASSIGN    // =

	// 分隔符
	TOKEN_COMMA    // ,
	TOKEN_COLON    // :
	TOKEN_LPAREN   // (
	TOKEN_RPAREN   // )
	TOKEN_LBRACKET // [
	TOKEN_RBRACKET // ]
	TOKEN_LBRACE   // {
	TOKEN_RBRACE   // }

	// 关键字
	TOKEN_TRUE  // true
	TOKEN_FALSE // false
	TOKEN_IF    // if
	TOKEN_THEN  // then
	TOKEN_ELSE  // else
	TOKEN_LET   // let
	TOKEN_IN    // in
	TOKEN_OF    // of
)

// Token 表示一个词法单元
type Token struct {
	Type    TokenType
	Literal string // 源码中的原文
	Offset  int    // 起始字节偏移
	End     int    // 结束字节偏移（不含）
	Line    int
	Column  int
	Err     string // 仅 TOKEN_ILLEGAL 使用：i18n 消息键
	ErrArg  string // 消息参数
}

// Pos 返回 token 的起始位置
func (t Token) Pos() position.Position {
	return position.Position{Offset: t.Offset, Line: t.Line, Column: t.Column}
}

var keywords = map[string]TokenType{
	"true":  TOKEN_TRUE,
	"false": TOKEN_FALSE,
	"if":    TOKEN_IF,
	"then":  TOKEN_THEN,
	"else":  TOKEN_ELSE,
	"let":   TOKEN_LET,
	"in":    TOKEN_IN,
	"of":    TOKEN_OF,
}

// LookupIdent 查找标识符是否为关键字
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TOKEN_IDENT
}

var tokenNames = map[TokenType]string{
	TOKEN_ILLEGAL:   "ILLEGAL",
	TOKEN_EOF:       "EOF",
	TOKEN_COMMENT:   "COMMENT",
	TOKEN_IDENT:     "IDENT",
	TOKEN_NUMERIC:   "NUMERIC",
	TOKEN_STRING:    "STRING",
	TOKEN_TILDE:     "~",
	TOKEN_EQ:        "==",
	TOKEN_NOT_EQ:    "!=",
	TOKEN_GT:        ">",
	TOKEN_GT_EQ:     ">=",
	TOKEN_LT:        "<",
	TOKEN_LT_EQ:     "<=",
	TOKEN_AMP:       "&",
	TOKEN_PIPE:      "|",
	TOKEN_CARET:     "^",
	TOKEN_NOT_CARET: "!^",
	TOKEN_PLUS:      "+",
	TOKEN_MINUS:     "-",
	TOKEN_PERCENT:   "%",
	TOKEN_ASTERISK:  "*",
	TOKEN_SLASH:     "/",
	TOKEN_POWER:     "**",
	TOKEN_NOT:       "!",
	TOKEN_ARROW:     "<-",
	TOKEN_ASSIGN:    "=",
	TOKEN_COMMA:     ",",
	TOKEN_COLON:     ":",
	TOKEN_LPAREN:    "(",
	TOKEN_RPAREN:    ")",
	TOKEN_LBRACKET:  "[",
	TOKEN_RBRACKET:  "]",
	TOKEN_LBRACE:    "{",
	TOKEN_RBRACE:    "}",
	TOKEN_TRUE:      "true",
	TOKEN_FALSE:     "false",
	TOKEN_IF:        "if",
	TOKEN_THEN:      "then",
	TOKEN_ELSE:      "else",
	TOKEN_LET:       "let",
	TOKEN_IN:        "in",
	TOKEN_OF:        "of",
}

// TokenTypeName 返回 token 类型的名称
func TokenTypeName(t TokenType) string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// String 实现 fmt.Stringer
func (t TokenType) String() string {
	return TokenTypeName(t)
}
