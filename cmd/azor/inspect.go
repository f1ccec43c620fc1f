package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tangzhangming/azor/internal/i18n"
	"github.com/tangzhangming/azor/internal/lexer"
	"github.com/tangzhangming/azor/internal/printer"
	"github.com/tangzhangming/azor/internal/symbol"
)

func newAstCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ast <file>",
		Short: i18n.T(i18n.MsgAstShort),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.parseClean(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(a.stdout, printer.Dump(res.file))
			return nil
		},
	}
}

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: i18n.T(i18n.MsgTokensShort),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return &readFileError{path: args[0], err: err}
			}
			for _, tok := range lexer.Tokenize(string(content)) {
				fmt.Fprintln(a.stdout, formatToken(tok))
			}
			return nil
		},
	}
}

func newOutlineCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "outline <file>...",
		Short: i18n.T(i18n.MsgOutlineShort),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := collectFiles(args)
			if err != nil {
				return err
			}

			table := symbol.New()
			for _, path := range files {
				res, err := a.parseClean(path)
				if err != nil {
					return err
				}
				table.CollectFile(path, res.file)
			}

			for _, file := range table.Files() {
				fmt.Fprintln(a.stdout, file)
				for _, sym := range table.Symbols(file) {
					kind := i18n.T(i18n.MsgValue)
					if sym.Kind == symbol.SymbolFunc {
						kind = i18n.T(i18n.MsgFunction)
					}
					fmt.Fprintf(a.stdout, "  %d:%d\t%s\t%s\n", sym.Pos.Line, sym.Pos.Column, kind, sym.Signature())
				}
				for _, name := range table.Duplicates(file) {
					a.logger.Warn(i18n.T(i18n.MsgDuplicate, name))
				}
			}
			return nil
		},
	}
}

// parseClean 解析文件，有诊断时打印并返回 parseError
func (a *app) parseClean(path string) (checkResult, error) {
	res := a.parsePath(path)
	if res.err != nil {
		return res, res.err
	}
	if len(res.diags) > 0 {
		r := newRenderer(a.cfg.ColorEnabled())
		for _, d := range res.diags {
			printInfo(a.stderr, r.diagnostic(d, res.source))
		}
		return res, &parseError{path: path, count: len(res.diags)}
	}
	return res, nil
}

// formatToken 如 `1:5 IDENT "x"`；非法 token 附带原因
func formatToken(tok lexer.Token) string {
	s := fmt.Sprintf("%d:%d %s %q", tok.Line, tok.Column, tok.Type, tok.Literal)
	if tok.Type != lexer.TOKEN_ILLEGAL || tok.Err == "" {
		return s
	}
	if tok.ErrArg == "" {
		return s + " (" + i18n.T(tok.Err) + ")"
	}
	return s + " (" + i18n.T(tok.Err, tok.ErrArg) + ")"
}
