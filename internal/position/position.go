// Package position 提供源码位置与区间，供词法分析、语法分析和诊断共用。
package position

import (
	"fmt"
	"path/filepath"
)

// Position 源码中的一个点
type Position struct {
	Filename string // 文件名（可为空）
	Offset   int    // 字节偏移，从 0 开始
	Line     int    // 行号，从 1 开始
	Column   int    // 列号，从 1 开始
}

// IsValid 位置是否有效
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0 && p.Offset >= 0
}

// String 返回 "file:line:col" 或 "line:col"
func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", filepath.Base(p.Filename), p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span 源码区间，End 不包含在内
type Span struct {
	Start Position
	End   Position
}

// IsValid 区间是否有效
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() &&
		s.Start.Filename == s.End.Filename &&
		s.Start.Offset <= s.End.Offset
}

// Len 区间的字节长度
func (s Span) Len() int {
	if !s.IsValid() {
		return 0
	}
	return s.End.Offset - s.Start.Offset
}

// String 返回区间的文本表示
func (s Span) String() string {
	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%s-%d", s.Start, s.End.Column)
	}
	return fmt.Sprintf("%s-%d:%d", s.Start, s.End.Line, s.End.Column)
}

// Locate 计算 input 中 offset 处的行列号
func Locate(input string, offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(input) {
		offset = len(input)
	}
	line, col := 1, 1
	for i := 0; i < offset; i++ {
		if input[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Position{Offset: offset, Line: line, Column: col}
}
