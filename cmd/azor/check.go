package main

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/tangzhangming/azor/internal/diag"
	"github.com/tangzhangming/azor/internal/i18n"
	"github.com/tangzhangming/azor/internal/parser"
)

const sourceExt = ".azor"

// checkResult 单个文件的检查结果
type checkResult struct {
	path   string
	source string
	file   *parser.File
	diags  []diag.Diagnostic
	err    error
}

func newCheckCmd(a *app) *cobra.Command {
	var (
		watch     bool
		noColor   bool
		mode      string
		maxErrors int
	)

	cmd := &cobra.Command{
		Use:   "check <file|dir>...",
		Short: i18n.T(i18n.MsgCheckShort),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.applyModeFlags(cmd, mode, maxErrors); err != nil {
				return err
			}
			color := a.cfg.ColorEnabled() && !noColor

			if watch {
				return a.watch(cmd.Context(), args, color)
			}
			return a.check(args, color)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, i18n.T(i18n.MsgFlagWatch))
	cmd.Flags().BoolVar(&noColor, "no-color", false, i18n.T(i18n.MsgFlagNoColor))
	cmd.Flags().StringVar(&mode, "mode", "batch", i18n.T(i18n.MsgFlagMode))
	cmd.Flags().IntVar(&maxErrors, "max-errors", 0, i18n.T(i18n.MsgFlagMaxErrs))
	return cmd
}

// check 检查全部输入并打印诊断，有错误时返回 parseError
func (a *app) check(args []string, color bool) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	results := a.parseFiles(files)
	r := newRenderer(color)

	total := 0
	for _, res := range results {
		if res.err != nil {
			return res.err
		}
		if len(res.diags) == 0 {
			printInfo(a.stdout, r.ok(i18n.T(i18n.MsgCheckOK, res.path, len(res.file.Definitions))))
			continue
		}
		total += len(res.diags)
		for _, d := range res.diags {
			printInfo(a.stderr, r.diagnostic(d, res.source))
		}
	}
	printInfo(a.stdout, r.summary(i18n.T(i18n.MsgCheckSummary, len(results), total), total > 0))

	if total > 0 {
		return &parseError{path: strings.Join(args, " "), count: total}
	}
	return nil
}

// parseFiles 并发解析，结果按输入顺序返回
func (a *app) parseFiles(paths []string) []checkResult {
	results := make([]checkResult, len(paths))

	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			results[i] = a.parsePath(path)
		}(i, path)
	}
	wg.Wait()

	return results
}

// parsePath 读取并解析单个文件
func (a *app) parsePath(path string) checkResult {
	content, err := os.ReadFile(path)
	if err != nil {
		return checkResult{path: path, err: &readFileError{path: path, err: err}}
	}

	source := string(content)
	file, diags := parser.Parse(source, a.parseOptions(path)...)
	a.logger.Debug("parsed", slog.String("file", path), slog.Int("definitions", len(file.Definitions)), slog.Int("diagnostics", len(diags)))
	return checkResult{path: path, source: source, file: file, diags: diags}
}

// collectFiles 展开参数：文件原样保留，目录递归查找 .azor 文件
func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, &accessError{path: arg, err: err}
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		var found []string
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if strings.HasSuffix(path, sourceExt) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, &accessError{path: arg, err: err}
		}
		if len(found) == 0 {
			return nil, &noFilesError{dir: arg}
		}
		files = append(files, found...)
	}
	return files, nil
}
