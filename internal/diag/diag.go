// Package diag 收集词法和语法诊断。
//
// Reporter 与控制流解耦：解析器只负责报告，是否继续由 Reporter 的模式决定。
package diag

import (
	"sort"

	"github.com/tangzhangming/azor/internal/i18n"
	"github.com/tangzhangming/azor/internal/position"
)

// Kind 诊断类别
type Kind int

const (
	LexError Kind = iota
	SyntaxError
)

// String 返回本地化的类别名
func (k Kind) String() string {
	if k == LexError {
		return i18n.T(i18n.MsgLexError)
	}
	return i18n.T(i18n.MsgSyntaxError)
}

// Severity 严重程度，目前只有 error
type Severity int

const (
	SeverityError Severity = iota
)

// String 返回本地化的严重程度
func (s Severity) String() string {
	return i18n.T(i18n.MsgSeverityErr)
}

// Mode 错误处理模式
type Mode int

const (
	// ModeBatch 出错后在下一个定义处重新同步，收集全部诊断
	ModeBatch Mode = iota
	// ModeSingle 只报告第一个诊断
	ModeSingle
)

// ParseMode 解析配置中的模式名，未知名称返回 false
func ParseMode(name string) (Mode, bool) {
	switch name {
	case "", "batch":
		return ModeBatch, true
	case "single":
		return ModeSingle, true
	}
	return ModeBatch, false
}

// String 返回模式名
func (m Mode) String() string {
	if m == ModeSingle {
		return "single"
	}
	return "batch"
}

// Diagnostic 一条诊断
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Pos      position.Position
	End      position.Position
	Expected string // 期望的结构（可为空）
	Found    string // 实际遇到的内容（可为空）
	Message  string // 已本地化的消息
}

// Error 实现 error 接口
func (d Diagnostic) Error() string {
	return i18n.T(i18n.MsgDiagnostic, d.Pos, d.Kind, d.Message)
}

// Span 诊断覆盖的源码区间
func (d Diagnostic) Span() position.Span {
	return position.Span{Start: d.Pos, End: d.End}
}

// Reporter 诊断收集器，单次解析独占使用
type Reporter struct {
	mode      Mode
	maxErrors int
	diags     []Diagnostic
}

// NewReporter 创建收集器，maxErrors 为 0 表示不限制
func NewReporter(mode Mode, maxErrors int) *Reporter {
	return &Reporter{mode: mode, maxErrors: maxErrors}
}

// Mode 返回当前模式
func (r *Reporter) Mode() Mode {
	return r.mode
}

// Report 记录一条诊断，已达到上限时丢弃
func (r *Reporter) Report(d Diagnostic) {
	if r.maxErrors > 0 && len(r.diags) >= r.maxErrors {
		return
	}
	r.diags = append(r.diags, d)
}

// Full 是否已达到上限，达到后解析器应停止
func (r *Reporter) Full() bool {
	return r.maxErrors > 0 && len(r.diags) >= r.maxErrors
}

// HasErrors 是否有诊断
func (r *Reporter) HasErrors() bool {
	return len(r.diags) > 0
}

// Len 诊断数量
func (r *Reporter) Len() int {
	return len(r.diags)
}

// Diagnostics 按源码顺序返回诊断；single 模式只保留第一条
func (r *Reporter) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(r.diags))
	copy(out, r.diags)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Pos.Offset < out[j].Pos.Offset
	})
	if r.mode == ModeSingle && len(out) > 1 {
		out = out[:1]
	}
	return out
}
