package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/tangzhangming/azor/internal/diag"
	"github.com/tangzhangming/azor/internal/i18n"
)

// FileNames 按优先级查找的配置文件名
var FileNames = []string{"azor.toml", "azor.yaml", "azor.yml"}

// Config azor 项目配置
type Config struct {
	Parser ParserConfig `toml:"parser" yaml:"parser"`
	Output OutputConfig `toml:"output" yaml:"output"`
	Format FormatConfig `toml:"format" yaml:"format"`
}

// ParserConfig 解析配置
type ParserConfig struct {
	Mode      string `toml:"mode" yaml:"mode"`             // "batch" 或 "single"
	MaxErrors int    `toml:"max_errors" yaml:"max_errors"` // 0 表示不限制
}

// OutputConfig 输出配置
type OutputConfig struct {
	Color *bool  `toml:"color" yaml:"color"` // 未设置时默认开启
	Lang  string `toml:"lang" yaml:"lang"`   // "en" 或 "zh"，为空时自动检测
}

// FormatConfig fmt 命令配置
type FormatConfig struct {
	FinalNewline *bool `toml:"final_newline" yaml:"final_newline"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Parser: ParserConfig{Mode: diag.ModeBatch.String()},
	}
}

// ParseMode 返回解析模式
func (c *Config) ParseMode() diag.Mode {
	mode, _ := diag.ParseMode(c.Parser.Mode)
	return mode
}

// ColorEnabled 是否输出颜色
func (c *Config) ColorEnabled() bool {
	return c.Output.Color == nil || *c.Output.Color
}

// FinalNewline fmt 输出末尾是否带换行
func (c *Config) FinalNewline() bool {
	return c.Format.FinalNewline == nil || *c.Format.FinalNewline
}

// Validate 检查取值
func (c *Config) Validate() error {
	if _, ok := diag.ParseMode(c.Parser.Mode); !ok {
		return errors.New(i18n.T(i18n.ErrInvalidMode, c.Parser.Mode))
	}
	if c.Parser.MaxErrors < 0 {
		c.Parser.MaxErrors = 0
	}
	if c.Output.Lang != "" {
		if _, ok := i18n.ParseLanguage(c.Output.Lang); !ok {
			return errors.New(i18n.T(i18n.ErrInvalidLang, c.Output.Lang))
		}
	}
	return nil
}

// FindAndLoad 从指定目录向上查找配置文件并加载
func FindAndLoad(startDir string) (*Config, string, error) {
	configPath := FindConfigFile(startDir)
	if configPath == "" {
		// 没找到配置文件，返回默认配置
		return DefaultConfig(), "", nil
	}

	config, err := Load(configPath)
	if err != nil {
		return nil, "", err
	}

	return config, configPath, nil
}

// FindConfigFile 从指定目录向上查找配置文件，同一目录中 toml 优先
func FindConfigFile(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		dir = startDir
	}

	for {
		for _, name := range FileNames {
			configPath := filepath.Join(dir, name)
			if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
				return configPath
			}
		}

		// 获取父目录
		parent := filepath.Dir(dir)
		if parent == dir {
			// 已到根目录
			return ""
		}
		dir = parent
	}
}

// Load 加载配置文件，按扩展名选择格式
func Load(path string) (*Config, error) {
	config := DefaultConfig()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	default:
		if _, err := toml.DecodeFile(path, config); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	// 如果没有设置模式，使用默认值
	if config.Parser.Mode == "" {
		config.Parser.Mode = diag.ModeBatch.String()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return config, nil
}

// GetProjectRoot 获取项目根目录（配置文件所在目录）
func GetProjectRoot(configPath string) string {
	if configPath == "" {
		return ""
	}
	return filepath.Dir(configPath)
}
