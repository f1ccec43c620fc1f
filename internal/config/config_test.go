package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tangzhangming/azor/internal/diag"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.ParseMode() != diag.ModeBatch || !c.ColorEnabled() || !c.FinalNewline() {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "azor.toml")
	writeFile(t, path, `
[parser]
mode = "single"
max_errors = 5

[output]
color = false
lang = "zh"

[format]
final_newline = false
`)
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.ParseMode() != diag.ModeSingle || c.Parser.MaxErrors != 5 {
		t.Errorf("parser = %+v", c.Parser)
	}
	if c.ColorEnabled() || c.Output.Lang != "zh" || c.FinalNewline() {
		t.Errorf("output/format = %+v %+v", c.Output, c.Format)
	}
}

func TestLoadYAML(t *testing.T) {
	for _, name := range []string{"azor.yaml", "azor.yml"} {
		path := filepath.Join(t.TempDir(), name)
		writeFile(t, path, "parser:\n  max_errors: 3\noutput:\n  color: true\n")
		c, err := Load(path)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if c.ParseMode() != diag.ModeBatch || c.Parser.MaxErrors != 3 || !c.ColorEnabled() {
			t.Errorf("%s: %+v", name, c)
		}
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"bad-mode.toml": "[parser]\nmode = \"first\"\n",
		"bad-lang.yaml": "output:\n  lang: fr\n",
		"broken.toml":   "[parser\n",
		"broken.yaml":   "parser: [\n",
	}
	for name, content := range tests {
		path := filepath.Join(dir, name)
		writeFile(t, path, content)
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("missing file: expected an error")
	}
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "azor.yaml"), "parser:\n  mode: single\n")
	writeFile(t, filepath.Join(root, "azor.toml"), "[parser]\nmax_errors = 7\n")
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	c, path, err := FindAndLoad(nested)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "azor.toml" {
		t.Errorf("found %s, want azor.toml to take precedence", path)
	}
	if c.Parser.MaxErrors != 7 || c.ParseMode() != diag.ModeBatch {
		t.Errorf("config = %+v", c.Parser)
	}
	if GetProjectRoot(path) != root {
		t.Errorf("project root = %s, want %s", GetProjectRoot(path), root)
	}
}

func TestFindAndLoadDefault(t *testing.T) {
	c, path, err := FindAndLoad(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	// 临时目录的上级也可能有配置文件，只在没找到时检查默认值
	if path == "" && c.ParseMode() != diag.ModeBatch {
		t.Errorf("default config = %+v", c)
	}
	if GetProjectRoot("") != "" {
		t.Error("GetProjectRoot of empty path")
	}
}
