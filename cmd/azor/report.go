package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tangzhangming/azor/internal/diag"
)

// Colors
var (
	colorError   = lipgloss.Color("#EF4444")
	colorSuccess = lipgloss.Color("#10B981")
	colorMuted   = lipgloss.Color("#6B7280")
	colorAccent  = lipgloss.Color("#F59E0B")
)

// Styles
var (
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	sourceStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	caretStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)
)

// renderer 终端输出；color 为 false 时输出纯文本
type renderer struct {
	color bool
}

func newRenderer(color bool) *renderer {
	return &renderer{color: color}
}

func (r *renderer) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

func (r *renderer) ok(msg string) string {
	return r.style(successStyle, msg)
}

func (r *renderer) summary(msg string, failed bool) string {
	if failed {
		return r.style(errorStyle, msg)
	}
	return r.style(successStyle, msg)
}

// diagnostic 渲染一条诊断：标题、源码行和下划线
func (r *renderer) diagnostic(d diag.Diagnostic, source string) string {
	var sb strings.Builder
	sb.WriteString(r.style(errorStyle, d.Error()))

	line, ok := sourceLine(source, d.Pos.Line)
	if !ok {
		return sb.String()
	}
	sb.WriteString("\n  ")
	sb.WriteString(r.style(sourceStyle, line))
	sb.WriteString("\n  ")
	sb.WriteString(caretPad(line, d.Pos.Column))
	sb.WriteString(r.style(caretStyle, strings.Repeat("^", caretWidth(d, line))))
	return sb.String()
}

// sourceLine 返回第 n 行（从 1 开始），不含换行
func sourceLine(source string, n int) (string, bool) {
	if n < 1 {
		return "", false
	}
	lines := strings.Split(source, "\n")
	if n > len(lines) {
		return "", false
	}
	return strings.TrimRight(lines[n-1], "\r"), true
}

// caretPad 生成列前的缩进，保留制表符以便对齐
func caretPad(line string, column int) string {
	var sb strings.Builder
	for i := 0; i < column-1 && i < len(line); i++ {
		if line[i] == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// caretWidth 下划线宽度，跨行时延伸到行尾，至少为 1
func caretWidth(d diag.Diagnostic, line string) int {
	width := 1
	if d.End.Line == d.Pos.Line && d.End.Column > d.Pos.Column {
		width = d.End.Column - d.Pos.Column
	} else if d.End.Line > d.Pos.Line && len(line) >= d.Pos.Column {
		width = len(line) - d.Pos.Column + 1
	}
	return width
}
