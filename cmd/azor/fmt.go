package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/tangzhangming/azor/internal/i18n"
	"github.com/tangzhangming/azor/internal/lexer"
	"github.com/tangzhangming/azor/internal/printer"
)

func newFmtCmd(a *app) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt <file>...",
		Short: i18n.T(i18n.MsgFmtShort),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if err := a.format(path, write); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, i18n.T(i18n.MsgFlagWrite))
	return cmd
}

// format 规范化一个文件；有诊断时不输出
func (a *app) format(path string, write bool) error {
	res, err := a.parseClean(path)
	if err != nil {
		return err
	}

	// 打印器不保留注释，写回会丢失它们
	if hasComments(res.source) {
		if write {
			return &commentsError{path: path}
		}
		a.logger.Warn(i18n.T(i18n.MsgNoComments, path))
	}

	p := printer.New()
	p.SetFinalNewline(a.cfg.FinalNewline())
	out := p.File(res.file)

	if !write {
		fmt.Fprint(a.stdout, out)
		return nil
	}
	if out == res.source {
		a.logger.Debug("already formatted", slog.String("file", path))
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return &writeFileError{path: path, err: err}
	}
	if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
		return &writeFileError{path: path, err: err}
	}
	a.logger.Debug("formatted", slog.String("file", path))
	return nil
}

func hasComments(source string) bool {
	for _, tok := range lexer.Tokenize(source) {
		if tok.Type == lexer.TOKEN_COMMENT {
			return true
		}
	}
	return false
}
