package i18n

// Message keys for lexer errors
const (
	ErrUnexpectedChar     = "lexer.unexpected_char"     // args: char
	ErrUnterminatedString = "lexer.unterminated_string" // no args
	ErrInvalidStringChar  = "lexer.invalid_string_char" // args: char
	ErrInvalidEscape      = "lexer.invalid_escape"      // args: escape sequence
)

// Message keys for parser errors
const (
	ErrExpectedToken      = "parser.expected_token"      // args: expected, got
	ErrExpectedExpression = "parser.expected_expression" // args: got
	ErrExpectedType       = "parser.expected_type"       // args: got
	ErrExpectedDefinition = "parser.expected_definition" // args: got
	ErrExpectedPattern    = "parser.expected_pattern"    // args: got
	ErrGenericTarget      = "parser.generic_target"      // no args

	// Descriptions used inside other messages
	MsgEndOfInput  = "parser.end_of_input"
	MsgExpression  = "parser.expression"
	MsgType        = "parser.type"
	MsgDefinition  = "parser.definition"
	MsgIdentifier  = "parser.identifier"
	MsgLetPattern  = "parser.let_pattern"
	MsgTokenQuoted = "parser.token_quoted" // args: literal
)

// Message keys for diagnostics rendering
const (
	MsgLexError    = "diag.lex_error"
	MsgSyntaxError = "diag.syntax_error"
	MsgSeverityErr = "diag.severity_error"
	MsgDiagnostic  = "diag.format" // args: position, kind, message
)

// Message keys for CLI
const (
	// Commands
	MsgRootShort    = "cli.root_short"
	MsgRootLong     = "cli.root_long"
	MsgCheckShort   = "cli.check_short"
	MsgFmtShort     = "cli.fmt_short"
	MsgAstShort     = "cli.ast_short"
	MsgTokensShort  = "cli.tokens_short"
	MsgOutlineShort = "cli.outline_short"
	MsgVersionShort = "cli.version_short"
	MsgVersion      = "cli.version" // args: version

	// Flags
	MsgFlagConfig  = "cli.flag_config"
	MsgFlagLang    = "cli.flag_lang"
	MsgFlagVerbose = "cli.flag_verbose"
	MsgFlagWrite   = "cli.flag_write"
	MsgFlagWatch   = "cli.flag_watch"
	MsgFlagNoColor = "cli.flag_no_color"
	MsgFlagMode    = "cli.flag_mode"
	MsgFlagMaxErrs = "cli.flag_max_errors"

	// Results
	MsgCheckOK      = "cli.check_ok"      // args: path, definitions
	MsgCheckSummary = "cli.check_summary" // args: files, errors
	MsgWatching     = "cli.watching"      // args: count
	MsgRechecking   = "cli.rechecking"    // args: path
	MsgFunction     = "cli.function"
	MsgValue        = "cli.value"
	MsgDuplicate    = "cli.duplicate"     // args: name
	MsgNoComments   = "cli.comments_lost" // args: path

	// Errors
	ErrCannotAccessInput = "cli.cannot_access_input" // args: path
	ErrCannotLoadConfig  = "cli.cannot_load_config"
	ErrCannotReadFile    = "cli.cannot_read_file"  // args: path
	ErrCannotWriteFile   = "cli.cannot_write_file" // args: path
	ErrParseError        = "cli.parse_error"       // args: path, count
	ErrNoAzorFiles       = "cli.no_azor_files"     // args: dir
	ErrInvalidMode       = "cli.invalid_mode"      // args: mode
	ErrInvalidLang       = "cli.invalid_lang"      // args: lang
	ErrWatch             = "cli.watch_error"
	ErrFmtComments       = "cli.fmt_comments" // args: path
)
