package i18n

// zhMessages contains Chinese translations
var zhMessages = map[string]string{
	// Lexer errors
	ErrUnexpectedChar:     "意外的字符 %s",
	ErrUnterminatedString: "字符串字面量未结束",
	ErrInvalidStringChar:  "字符串字面量中有非法字符 %s",
	ErrInvalidEscape:      "字符串字面量中有非法转义 %s",

	// Parser errors
	ErrExpectedToken:      "期望 %s, 实际是 %s",
	ErrExpectedExpression: "期望表达式, 实际是 %s",
	ErrExpectedType:       "期望类型, 实际是 %s",
	ErrExpectedDefinition: "期望定义, 实际是 %s",
	ErrExpectedPattern:    "'let' 之后期望标识符或 (标识符, ...), 实际是 %s",
	ErrGenericTarget:      "泛型实例化只能用于单个标识符",

	MsgEndOfInput:  "输入结束",
	MsgExpression:  "表达式",
	MsgType:        "类型",
	MsgDefinition:  "定义",
	MsgIdentifier:  "标识符",
	MsgLetPattern:  "let 模式",
	MsgTokenQuoted: "'%s'",

	// Diagnostics
	MsgLexError:    "词法错误",
	MsgSyntaxError: "语法错误",
	MsgSeverityErr: "错误",
	MsgDiagnostic:  "%s: %s: %s",

	// CLI - Commands
	MsgRootShort:    "Azor 语言前端",
	MsgRootLong:     "azor 解析 Azor 源文件并报告语法诊断。",
	MsgCheckShort:   "解析文件或目录并报告诊断",
	MsgFmtShort:     "以规范格式输出文件",
	MsgAstShort:     "输出文件的语法树",
	MsgTokensShort:  "输出文件的 token 序列",
	MsgOutlineShort: "列出文件中的定义",
	MsgVersionShort: "显示版本信息",
	MsgVersion:      "azor 版本 %s",

	// CLI - Flags
	MsgFlagConfig:  "配置文件 (默认向上查找 azor.toml 或 azor.yaml)",
	MsgFlagLang:    "消息语言 (en, zh)",
	MsgFlagVerbose: "详细输出",
	MsgFlagWrite:   "将结果写回源文件而不是标准输出",
	MsgFlagWatch:   "文件变化时重新检查",
	MsgFlagNoColor: "禁用彩色输出",
	MsgFlagMode:    "错误模式: single 或 batch",
	MsgFlagMaxErrs: "每个文件最多报告的诊断数 (0 表示不限制)",

	// CLI - Results
	MsgCheckOK:      "%s: 通过 (%d 个定义)",
	MsgCheckSummary: "检查了 %d 个文件, %d 个错误",
	MsgWatching:     "正在监视 %d 个路径, 按 Ctrl+C 停止",
	MsgRechecking:   "已修改: %s",
	MsgFunction:     "函数",
	MsgValue:        "值",
	MsgDuplicate:    "%s 被重复定义",
	MsgNoComments:   "%s: 格式化输出不保留注释",

	// CLI - Errors
	ErrCannotAccessInput: "无法访问 %s",
	ErrCannotLoadConfig:  "无法加载配置",
	ErrCannotReadFile:    "无法读取文件 %s",
	ErrCannotWriteFile:   "无法写入文件 %s",
	ErrParseError:        "%s: %d 个错误",
	ErrNoAzorFiles:       "%s 中没有找到 .azor 文件",
	ErrInvalidMode:       "无效的解析模式 %q (应为 \"single\" 或 \"batch\")",
	ErrInvalidLang:       "不支持的语言 %q",
	ErrWatch:             "监视出错",
	ErrFmtComments:       "%s 包含注释, fmt 会丢弃它们; 未写入",
}
