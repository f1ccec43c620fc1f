// Package symbol 建立顶层定义的索引，用于 outline 等列表输出。
// 它只记录语法信息，不做类型检查。
package symbol

import (
	"sort"
	"strings"

	"github.com/tangzhangming/azor/internal/parser"
	"github.com/tangzhangming/azor/internal/position"
)

// SymbolKind 符号类型
type SymbolKind int

const (
	SymbolValue SymbolKind = iota
	SymbolFunc
)

// String 返回类型名
func (k SymbolKind) String() string {
	if k == SymbolFunc {
		return "func"
	}
	return "value"
}

// Param 参数名和类型的源码形式
type Param struct {
	Name string
	Type string
}

// Symbol 表示一个顶层定义
type Symbol struct {
	Name         string
	Kind         SymbolKind
	File         string   // 所属文件
	Generics     []string // 泛型参数
	DeclaredType string   // 声明类型，未声明时为空
	Params       []Param  // 仅函数
	Pos          position.Position
}

// Signature 返回定义头部，如 map{A, B}: [B] (f: (A), xs: [A])
func (s *Symbol) Signature() string {
	sig := s.Name
	if len(s.Generics) > 0 {
		sig += "{" + strings.Join(s.Generics, ", ") + "}"
	}
	if s.DeclaredType != "" {
		sig += ": " + s.DeclaredType
	}
	if s.Kind == SymbolFunc {
		parts := make([]string, len(s.Params))
		for i, p := range s.Params {
			parts[i] = p.Name + ": " + p.Type
		}
		if s.DeclaredType != "" {
			sig += " "
		}
		sig += "(" + strings.Join(parts, ", ") + ")"
	}
	return sig
}

// Table 符号表
type Table struct {
	symbols map[string][]*Symbol // key: file.name，同名定义按出现顺序保存
	files   map[string][]*Symbol // 每个文件的定义，按源码顺序
}

// New 创建一个新的符号表
func New() *Table {
	return &Table{
		symbols: make(map[string][]*Symbol),
		files:   make(map[string][]*Symbol),
	}
}

// key 生成符号的键
func key(file, name string) string {
	return file + "." + name
}

// Add 添加一个符号
func (t *Table) Add(sym *Symbol) {
	k := key(sym.File, sym.Name)
	t.symbols[k] = append(t.symbols[k], sym)
	t.files[sym.File] = append(t.files[sym.File], sym)
}

// Get 获取文件中的定义，同名时返回第一个
func (t *Table) Get(file, name string) *Symbol {
	if syms := t.symbols[key(file, name)]; len(syms) > 0 {
		return syms[0]
	}
	return nil
}

// Lookup 在所有文件中按名称查找
func (t *Table) Lookup(name string) []*Symbol {
	var out []*Symbol
	for _, file := range t.Files() {
		out = append(out, t.symbols[key(file, name)]...)
	}
	return out
}

// Duplicates 返回文件中重复定义的名称，按首次出现的顺序
func (t *Table) Duplicates(file string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, sym := range t.files[file] {
		if seen[sym.Name] {
			continue
		}
		seen[sym.Name] = true
		if len(t.symbols[key(file, sym.Name)]) > 1 {
			out = append(out, sym.Name)
		}
	}
	return out
}

// Symbols 返回文件中的全部定义，按源码顺序
func (t *Table) Symbols(file string) []*Symbol {
	return t.files[file]
}

// Files 返回已登记的文件，按名称排序
func (t *Table) Files() []string {
	files := make([]string, 0, len(t.files))
	for f := range t.files {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// CollectFile 登记一个文件的全部定义
func (t *Table) CollectFile(file string, ast *parser.File) {
	for _, def := range ast.Definitions {
		t.Add(FromDefinition(file, def))
	}
}

// FromDefinition 由定义节点生成符号
func FromDefinition(file string, def *parser.Definition) *Symbol {
	sym := &Symbol{
		Name: def.Name.Name,
		Kind: SymbolValue,
		File: file,
		Pos:  def.Pos(),
	}
	sym.Pos.Filename = file
	for _, g := range def.Generics {
		sym.Generics = append(sym.Generics, g.Name)
	}
	if def.DeclaredType != nil {
		sym.DeclaredType = def.DeclaredType.String()
	}
	if def.IsFunction() {
		sym.Kind = SymbolFunc
		sym.Params = make([]Param, len(def.Params))
		for i, p := range def.Params {
			sym.Params[i] = Param{Name: p.Name.Name, Type: p.Type.String()}
		}
	}
	return sym
}
