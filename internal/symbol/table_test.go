package symbol

import (
	"testing"

	"github.com/tangzhangming/azor/internal/parser"
)

func collect(t *testing.T, table *Table, file, src string) {
	t.Helper()
	ast, diags := parser.Parse(src)
	if len(diags) > 0 {
		t.Fatalf("Parse(%q): %v", src, diags)
	}
	table.CollectFile(file, ast)
}

func TestCollectFile(t *testing.T) {
	table := New()
	collect(t, table, "main.azor", `
answer: Int = 42
id{T}(x: T) = x
map{A, B}: [B] (f: (A), xs: [A]) = xs
unit() = ()
`)
	syms := table.Symbols("main.azor")
	if len(syms) != 4 {
		t.Fatalf("got %d symbols, want 4", len(syms))
	}

	tests := []struct {
		name string
		kind SymbolKind
		sig  string
		line int
	}{
		{"answer", SymbolValue, "answer: Int", 2},
		{"id", SymbolFunc, "id{T}(x: T)", 3},
		{"map", SymbolFunc, "map{A, B}: [B] (f: (A), xs: [A])", 4},
		{"unit", SymbolFunc, "unit()", 5},
	}
	for i, tt := range tests {
		sym := syms[i]
		if sym.Name != tt.name || sym.Kind != tt.kind {
			t.Errorf("symbol %d = %s %v, want %s %v", i, sym.Name, sym.Kind, tt.name, tt.kind)
		}
		if got := sym.Signature(); got != tt.sig {
			t.Errorf("%s signature = %q, want %q", tt.name, got, tt.sig)
		}
		if sym.Pos.Line != tt.line || sym.Pos.Filename != "main.azor" {
			t.Errorf("%s position = %s", tt.name, sym.Pos)
		}
	}
}

func TestLookupAcrossFiles(t *testing.T) {
	table := New()
	collect(t, table, "b.azor", "x = 1\ny = 2")
	collect(t, table, "a.azor", "x = 3")

	if got := table.Files(); len(got) != 2 || got[0] != "a.azor" || got[1] != "b.azor" {
		t.Errorf("Files() = %v", got)
	}
	xs := table.Lookup("x")
	if len(xs) != 2 || xs[0].File != "a.azor" || xs[1].File != "b.azor" {
		t.Errorf("Lookup(x) = %v", xs)
	}
	if table.Get("b.azor", "y") == nil || table.Get("a.azor", "y") != nil {
		t.Error("Get is not scoped to the file")
	}
}

func TestDuplicates(t *testing.T) {
	table := New()
	collect(t, table, "m.azor", "a = 1\nb = 2\na = 3\nb() = 4\nc = 5")
	dups := table.Duplicates("m.azor")
	if len(dups) != 2 || dups[0] != "a" || dups[1] != "b" {
		t.Errorf("Duplicates = %v", dups)
	}
	if got := table.Get("m.azor", "a"); got.Pos.Line != 1 {
		t.Errorf("Get returned the later definition at %s", got.Pos)
	}
	if SymbolFunc.String() != "func" || SymbolValue.String() != "value" {
		t.Error("SymbolKind.String mismatch")
	}
}
