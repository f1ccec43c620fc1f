package i18n

// enMessages contains English translations
var enMessages = map[string]string{
	// Lexer errors
	ErrUnexpectedChar:     "unexpected character %s",
	ErrUnterminatedString: "unterminated string literal",
	ErrInvalidStringChar:  "invalid character %s in string literal",
	ErrInvalidEscape:      "invalid escape sequence %s in string literal",

	// Parser errors
	ErrExpectedToken:      "expected %s, got %s",
	ErrExpectedExpression: "expected expression, got %s",
	ErrExpectedType:       "expected type, got %s",
	ErrExpectedDefinition: "expected definition, got %s",
	ErrExpectedPattern:    "expected identifier or (identifier, ...) after 'let', got %s",
	ErrGenericTarget:      "generic resolution is only allowed on a plain identifier",

	MsgEndOfInput:  "end of input",
	MsgExpression:  "expression",
	MsgType:        "type",
	MsgDefinition:  "definition",
	MsgIdentifier:  "identifier",
	MsgLetPattern:  "let pattern",
	MsgTokenQuoted: "'%s'",

	// Diagnostics
	MsgLexError:    "lex error",
	MsgSyntaxError: "syntax error",
	MsgSeverityErr: "error",
	MsgDiagnostic:  "%s: %s: %s",

	// CLI - Commands
	MsgRootShort:    "Azor language front end",
	MsgRootLong:     "azor parses Azor source files and reports syntax diagnostics.",
	MsgCheckShort:   "Parse files or directories and report diagnostics",
	MsgFmtShort:     "Print a file in canonical form",
	MsgAstShort:     "Print the syntax tree of a file",
	MsgTokensShort:  "Print the token stream of a file",
	MsgOutlineShort: "List the definitions of a file",
	MsgVersionShort: "Print version information",
	MsgVersion:      "azor version %s",

	// CLI - Flags
	MsgFlagConfig:  "config file (default: azor.toml or azor.yaml found upward)",
	MsgFlagLang:    "message language (en, zh)",
	MsgFlagVerbose: "verbose output",
	MsgFlagWrite:   "write result to the source file instead of stdout",
	MsgFlagWatch:   "re-check when files change",
	MsgFlagNoColor: "disable colored output",
	MsgFlagMode:    "error mode: single or batch",
	MsgFlagMaxErrs: "stop after this many diagnostics per file (0 = no limit)",

	// CLI - Results
	MsgCheckOK:      "%s: ok (%d definitions)",
	MsgCheckSummary: "%d file(s) checked, %d error(s)",
	MsgWatching:     "watching %d path(s), press Ctrl+C to stop",
	MsgRechecking:   "changed: %s",
	MsgFunction:     "function",
	MsgValue:        "value",
	MsgDuplicate:    "%s is defined more than once",
	MsgNoComments:   "%s: comments are not kept in the formatted output",

	// CLI - Errors
	ErrCannotAccessInput: "cannot access %s",
	ErrCannotLoadConfig:  "cannot load config",
	ErrCannotReadFile:    "cannot read file %s",
	ErrCannotWriteFile:   "cannot write file %s",
	ErrParseError:        "%s: %d error(s)",
	ErrNoAzorFiles:       "no .azor files found in %s",
	ErrInvalidMode:       "invalid parser mode %q (want \"single\" or \"batch\")",
	ErrInvalidLang:       "unsupported language %q",
	ErrWatch:             "watch error",
	ErrFmtComments:       "%s contains comments that fmt would drop; not writing",
}
