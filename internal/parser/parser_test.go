package parser_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/tangzhangming/azor/internal/diag"
	"github.com/tangzhangming/azor/internal/i18n"
	"github.com/tangzhangming/azor/internal/parser"
)

func init() {
	i18n.SetLanguage(i18n.LangEnglish)
}

func mustParseExpr(t *testing.T, input string) parser.Expression {
	t.Helper()
	expr, diags := parser.ParseExpr(input)
	if len(diags) > 0 {
		t.Fatalf("ParseExpr(%q) diagnostics: %v", input, diags)
	}
	if expr == nil {
		t.Fatalf("ParseExpr(%q) returned nil", input)
	}
	return expr
}

func mustParse(t *testing.T, input string) *parser.File {
	t.Helper()
	file, diags := parser.Parse(input)
	if len(diags) > 0 {
		t.Fatalf("Parse(%q) diagnostics: %v", input, diags)
	}
	return file
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"1 * 2 + 3", "(+ (* 1 2) 3)"},
		{"2 ** 3 ** 2", "(** (** 2 3) 2)"},
		{"2 * 3 ** 2", "(* 2 (** 3 2))"},
		{"a & b + c", "(+ (& a b) c)"},
		{"a + b | c - d", "(- (| (+ a b) c) d)"},
		{"a !^ b ^ c", "(^ (!^ a b) c)"},
		{"a % b / c", "(% a (/ b c))"},
		{"!x == y", "(== (! x) y)"},
		{"!!x", "(! (! x))"},
		{"!f(x)", "(! (call f x))"},
		{"a == b ~ c", "(~ (== a b) c)"},
		{"h ~ t < xs", "(< (~ h t) xs)"},
		{"a < b + c", "(< a (+ b c))"},
		{"x - 1", "(- x 1)"},
		{"x -1", "(- x 1)"},
		{"f(-1)", "(call f -1)"},
		{"-1 + -2", "(+ -1 -2)"},
		{"(1 + 2) * 3", "(* (+ 1 2) 3)"},
		{"1 - (2 - 3)", "(- 1 (- 2 3))"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := mustParseExpr(t, tt.input).String(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPostfix(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"f()", "(call f)"},
		{"f(x)(y)", "(call (call f x) y)"},
		{"f(x, y,)", "(call f x y)"},
		{"id{Int}(1)", "(call id{Int} 1)"},
		{"map{Int, List(T),}", "map{Int, List(T)}"},
		{"pair{[Int], (Int, Bool)}", "pair{[Int], (Int, Bool)}"},
		{"(f)(x)", "(call f x)"},
		{"[f, g](x)", "(call [f g] x)"},
		{"f(x) + g(y) * 2", "(+ (call f x) (* (call g y) 2))"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := mustParseExpr(t, tt.input).String(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestLiterals(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"42", "42"},
		{"true", "true"},
		{"false", "false"},
		{`"a\"b"`, `"a\"b"`},
		{"[1, 2, 3]", "[1 2 3]"},
		{"[1,2,]", "[1 2]"},
		{"[] of Int", "([] of Int)"},
		{"[] of List(Int)", "([] of List(Int))"},
		{"[[] of Int]", "[([] of Int)]"},
		{"()", "(tuple)"},
		{"(x)", "x"},
		{"(x,)", "(tuple x)"},
		{"(1, true, \"s\")", `(tuple 1 true "s")`},
		{"((1, 2), 3)", "(tuple (tuple 1 2) 3)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := mustParseExpr(t, tt.input).String(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEmptyListNode(t *testing.T) {
	expr := mustParseExpr(t, "[] of Int")
	list, ok := expr.(*parser.EmptyList)
	if !ok {
		t.Fatalf("got %T, want *parser.EmptyList", expr)
	}
	base, ok := list.ElemType.Base.(*parser.BaseType)
	if !ok || base.Name != "Int" || list.ElemType.Args != nil {
		t.Errorf("element type = %s", list.ElemType)
	}

	a := mustParseExpr(t, "[1,2,]")
	b := mustParseExpr(t, "[1,2]")
	if a.String() != b.String() {
		t.Errorf("trailing comma changed the tree: %s vs %s", a, b)
	}
}

func TestIfExpr(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"if a then b else c", "(if a b c)"},
		{"if a then b else c + 1", "(if a b (+ c 1))"},
		{"1 + if a then b else c", "(+ 1 (if a b c))"},
		{"if a then if b then c else d else e", "(if a (if b c d) e)"},
		{"if h ~ t <- xs then h else 0", "(if (unpack h t xs) h 0)"},
		{"if (h~t) <- [1,2,3] then h else 0", "(if (unpack h t [1 2 3]) h 0)"},
		{"if (h ~ t) then 1 else 0", "(if (~ h t) 1 0)"},
		{"if h ~ t then 1 else 0", "(if (~ h t) 1 0)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := mustParseExpr(t, tt.input).String(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestListUnpackNode(t *testing.T) {
	expr := mustParseExpr(t, "if (h~t) <- [1,2,3] then h else 0")
	ifExpr, ok := expr.(*parser.IfExpr)
	if !ok {
		t.Fatalf("got %T, want *parser.IfExpr", expr)
	}
	if ifExpr.Cond != nil || ifExpr.Unpack == nil {
		t.Fatalf("condition is not a list unpack: %s", ifExpr.Condition())
	}
	u := ifExpr.Unpack
	if u.Head.Name != "h" || u.Tail.Name != "t" || !u.Parenthesized {
		t.Errorf("unpack = %s (parenthesized %v)", u, u.Parenthesized)
	}
	list, ok := u.Source.(*parser.ListLiteral)
	if !ok || len(list.Elems) != 3 {
		t.Errorf("source = %s", u.Source)
	}
	if ifExpr.Then.String() != "h" || ifExpr.Else.String() != "0" {
		t.Errorf("branches = %s / %s", ifExpr.Then, ifExpr.Else)
	}
}

func TestLetExpr(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"let x <- 1 in x + 1", "(let x 1 (+ x 1))"},
		{"let (a, b) <- pair in a * b", "(let (a b) pair (* a b))"},
		{"let (a,) <- t in a", "(let (a) t a)"},
		{"let x <- let y <- 1 in y in x", "(let x (let y 1 y) x)"},
		{"2 * let x <- 1 in x", "(* 2 (let x 1 x))"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := mustParseExpr(t, tt.input).String(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}

	expr := mustParseExpr(t, "let (a, b) <- p in a")
	let := expr.(*parser.LetExpr)
	if !let.TuplePattern || len(let.Names) != 2 {
		t.Errorf("tuple pattern not recorded: %+v", let)
	}
}

func TestDefinitions(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"x = 1", "(def x 1)"},
		{"x: Int = 1", "(def x: Int 1)"},
		{"f(a: Int, b: Int) = a + b", "(def f (a: Int, b: Int) (+ a b))"},
		{"f() = 1", "(def f () 1)"},
		{"id{T}(x: T) = x", "(def id{T} (x: T) x)"},
		{"map{A, B,}: [B] (f: (A) , xs: List(A)) = xs", "(def map{A, B}: [B] (f: (A), xs: List(A)) xs)"},
		{"p: (Int, [Bool]) = (1, [true])", "(def p: (Int, [Bool]) (tuple 1 [true]))"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			file := mustParse(t, tt.input)
			if len(file.Definitions) != 1 {
				t.Fatalf("got %d definitions, want 1", len(file.Definitions))
			}
			if got := file.Definitions[0].String(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFunctionVersusValue(t *testing.T) {
	file := mustParse(t, "v = 1\nf() = 1\ng(x: Int) = x")
	want := []bool{false, true, true}
	for i, def := range file.Definitions {
		if def.IsFunction() != want[i] {
			t.Errorf("%s: IsFunction = %v, want %v", def.Name.Name, def.IsFunction(), want[i])
		}
	}
}

func TestMultipleDefinitions(t *testing.T) {
	src := `# numbers
one = 1
two = one + 1 # inline

len{T}(xs: List(T)) =
  if h ~ t <- xs then 1 + len{T}(t) else 0
`
	file := mustParse(t, src)
	var names []string
	for _, d := range file.Definitions {
		names = append(names, d.Name.Name)
	}
	if got := strings.Join(names, ","); got != "one,two,len" {
		t.Errorf("definitions = %s", got)
	}
	if got := file.Definitions[2].Body.String(); got != "(if (unpack h t xs) (+ 1 (call len{T} t)) 0)" {
		t.Errorf("len body = %s", got)
	}
}

func TestEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   \n\t", "# only a comment\n"} {
		file, diags := parser.Parse(input)
		if len(file.Definitions) != 0 || len(diags) != 0 {
			t.Errorf("Parse(%q) = %d defs, %d diags", input, len(file.Definitions), len(diags))
		}
	}
}

func TestPositions(t *testing.T) {
	file := mustParse(t, "a = 1\n  b = x + y")
	b := file.Definitions[1]
	if pos := b.Pos(); pos.Line != 2 || pos.Column != 3 {
		t.Errorf("b at %s, want 2:3", pos)
	}
	if pos := b.Body.Pos(); pos.Line != 2 || pos.Column != 7 {
		t.Errorf("body at %s, want 2:7", pos)
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Int", "Int"},
		{"[Int]", "[Int]"},
		{"[[Int]]", "[[Int]]"},
		{"()", "()"},
		{"(Int, Bool,)", "(Int, Bool)"},
		{"List(Int)", "List(Int)"},
		{"Map(String, [Int])", "Map(String, [Int])"},
		{"(List(T), Int)", "(List(T), Int)"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			typ, diags := parser.ParseType(tt.input)
			if len(diags) > 0 || typ == nil {
				t.Fatalf("ParseType diagnostics: %v", diags)
			}
			if got := typ.String(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}

	if typ, diags := parser.ParseType("[List(Int)]"); typ != nil || len(diags) != 1 {
		t.Errorf("list element must be a base type, got %v %v", typ, diags)
	}
}

func TestMissingElse(t *testing.T) {
	file, diags := parser.Parse("x = if 1 then 2")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(diags), diags)
	}
	d := diags[0]
	if d.Kind != diag.SyntaxError {
		t.Errorf("kind = %v", d.Kind)
	}
	if d.Expected != "'else'" || d.Found != "end of input" {
		t.Errorf("expected/found = %q/%q", d.Expected, d.Found)
	}
	if d.Message != "expected 'else', got end of input" {
		t.Errorf("message = %q", d.Message)
	}
	if d.Pos.Line != 1 || d.Pos.Column != 16 {
		t.Errorf("position = %s, want 1:16", d.Pos)
	}
	if len(file.Definitions) != 0 {
		t.Errorf("partial definition kept: %s", file)
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		found    string
	}{
		{"x = ", "expression", "end of input"},
		{"x = )", "expression", "')'"},
		{"x 1", "'='", "'1'"},
		{"= 1", "definition", "'='"},
		{"x = if a b else c", "'then'", "'b'"},
		{"x = let 1 <- 2 in 3", "let pattern", "'1'"},
		{"x = let y = 2 in 3", "'<-'", "'='"},
		{"x = let y <- 2 3", "'in'", "'3'"},
		{"x = [1, 2", "']'", "end of input"},
		{"x = []", "'of'", "end of input"},
		{"x = f(1", "')'", "end of input"},
		{"x: = 1", "type", "'='"},
		{"f(a Int) = 1", "':'", "'Int'"},
		{"f{} = 1", "identifier", "'}'"},
		{"x = g{}", "type", "'}'"},
		{"x = (,)", "expression", "','"},
		{"x = 1 )", "definition", "')'"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, diags := parser.Parse(tt.input)
			if len(diags) == 0 {
				t.Fatal("no diagnostics")
			}
			d := diags[0]
			if d.Kind != diag.SyntaxError || d.Expected != tt.expected || d.Found != tt.found {
				t.Errorf("got %v expected=%q found=%q", d.Kind, d.Expected, d.Found)
			}
		})
	}
}

func TestGenericTargetMustBeIdentifier(t *testing.T) {
	for _, src := range []string{"x = f(1){Int}", "x = (f){Int}", "x = f{Int}{Bool}"} {
		_, diags := parser.Parse(src)
		if len(diags) != 1 {
			t.Fatalf("%q: got %v", src, diags)
		}
		if !strings.Contains(diags[0].Message, "plain identifier") {
			t.Errorf("%q: message = %q", src, diags[0].Message)
		}
	}

	expr := mustParseExpr(t, "f{Int}(1)")
	if got := expr.String(); got != "(call f{Int} 1)" {
		t.Errorf("f{Int}(1) = %s", got)
	}
}

func TestLexErrorsAreReported(t *testing.T) {
	file, diags := parser.Parse("x = 1 $ + 2\nz = 3 w = 4\ny = \"abc")
	if len(diags) != 3 {
		t.Fatalf("got %d diagnostics: %v", len(diags), diags)
	}
	if diags[0].Kind != diag.LexError || diags[0].Pos.Column != 7 {
		t.Errorf("first = %+v", diags[0])
	}
	if diags[1].Kind != diag.LexError || diags[1].Pos.Line != 3 {
		t.Errorf("second = %+v", diags[1])
	}
	// 字符串被跳过后 y = 缺少表达式
	if diags[2].Kind != diag.SyntaxError {
		t.Errorf("third = %+v", diags[2])
	}
	// 含非法 token 的定义不返回，其余定义不受影响
	if got := file.String(); got != "(def z 3)\n(def w 4)" {
		t.Errorf("definitions = %s", got)
	}

	// 非法 token 在定义之间时前后的定义都保留
	file, diags = parser.Parse("a = 1 $\nb = 2")
	if len(diags) != 1 || len(file.Definitions) != 2 {
		t.Errorf("got %d definitions, diagnostics %v", len(file.Definitions), diags)
	}

	if expr, diags := parser.ParseExpr("1 + $ 2"); expr != nil || len(diags) != 1 {
		t.Errorf("ParseExpr = %v, %v", expr, diags)
	}
	if typ, diags := parser.ParseType("List($Int)"); typ != nil || len(diags) != 1 {
		t.Errorf("ParseType = %v, %v", typ, diags)
	}
}

func TestBatchRecovery(t *testing.T) {
	src := `a = if 1 then 2
b = 3
c = [1, 2
d{T}: T (x: T) = x
e = ]
f() = 1
`
	file, diags := parser.Parse(src)
	var names []string
	for _, d := range file.Definitions {
		names = append(names, d.Name.Name)
	}
	if got := strings.Join(names, ","); got != "b,d,f" {
		t.Errorf("recovered definitions = %s", got)
	}
	if len(diags) != 3 {
		t.Fatalf("got %d diagnostics: %v", len(diags), diags)
	}
	lines := []int{2, 4, 5}
	for i, d := range diags {
		if d.Pos.Line != lines[i] {
			t.Errorf("diagnostic %d at line %d, want %d: %s", i, d.Pos.Line, lines[i], d.Message)
		}
	}

	// 调用泛型实例 id{Int}(4) 不是定义开头
	file, diags = parser.Parse("x = (1 + ) * id{Int}(4)\ny = 5\nid{T}(a: T) = a\nk{T}() = 1")
	if len(diags) != 1 || diags[0].Pos.Column != 10 {
		t.Errorf("got diagnostics %v", diags)
	}
	names = names[:0]
	for _, d := range file.Definitions {
		names = append(names, d.Name.Name)
	}
	if got := strings.Join(names, ","); got != "y,id,k" {
		t.Errorf("recovered definitions = %s", got)
	}
}

func TestRecoveryAtDefinitionStart(t *testing.T) {
	file, diags := parser.Parse(") ] x = 1")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics: %v", len(diags), diags)
	}
	if len(file.Definitions) != 1 || file.Definitions[0].Name.Name != "x" {
		t.Errorf("definitions = %s", file)
	}
}

func TestSingleMode(t *testing.T) {
	src := "a = if 1 then 2\nb = 3\nc = ]"
	file, diags := parser.Parse(src, parser.WithMode(diag.ModeSingle))
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	if len(file.Definitions) != 0 {
		t.Errorf("parsing continued after the first error: %s", file)
	}

	// 表达式中间的非法 token 同样终止，不返回残缺的定义
	file, diags = parser.Parse("w = 0\nx = 1 + $ 2\ny = 3", parser.WithMode(diag.ModeSingle))
	if len(diags) != 1 || diags[0].Kind != diag.LexError {
		t.Fatalf("got diagnostics %v", diags)
	}
	if got := file.String(); got != "(def w 0)" {
		t.Errorf("definitions = %s", got)
	}
}

func TestMaxErrors(t *testing.T) {
	src := "a = ]\nb = ]\nc = ]\nd = ]"
	_, diags := parser.Parse(src, parser.WithMaxErrors(2))
	if len(diags) != 2 {
		t.Errorf("got %d diagnostics, want 2", len(diags))
	}
}

func TestFilenameInDiagnostics(t *testing.T) {
	_, diags := parser.Parse("x =", parser.WithFilename("main.az"))
	if len(diags) != 1 {
		t.Fatalf("got %v", diags)
	}
	if got := diags[0].Error(); !strings.HasPrefix(got, "main.az:1:4: syntax error:") {
		t.Errorf("Error() = %q", got)
	}
}

func TestParseExprRejectsTrailingInput(t *testing.T) {
	expr, diags := parser.ParseExpr("1 2")
	if expr != nil || len(diags) != 1 {
		t.Errorf("got %v, %v", expr, diags)
	}
}

func TestGarbageTerminates(t *testing.T) {
	inputs := []string{
		"((((((",
		"]]]]",
		"x = {{{{",
		"if if if",
		"a{b,c,d,e",
		"let let let",
		"\x00\xff\xfe",
		"x = \"unterminated\ny = 2",
		strings.Repeat("f(", 200),
	}
	for _, input := range inputs {
		file, _ := parser.Parse(input)
		if file == nil {
			t.Errorf("Parse(%q) returned nil file", input)
		}
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, diags := parser.Parse("a = +\nb = 2\n", parser.WithLogger(logger), parser.WithFilename("log.azor"))
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	out := buf.String()
	for _, want := range []string{"msg=resynchronized", `msg="parsing complete"`, "file=log.azor", "definitions=1", "diagnostics=1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}

	// 未设置 logger 时不输出
	buf.Reset()
	parser.Parse("x = 1")
	if buf.Len() != 0 {
		t.Errorf("unexpected output: %s", buf.String())
	}
}
