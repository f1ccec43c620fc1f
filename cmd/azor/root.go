package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tangzhangming/azor/internal/config"
	"github.com/tangzhangming/azor/internal/diag"
	"github.com/tangzhangming/azor/internal/i18n"
	"github.com/tangzhangming/azor/internal/parser"
)

// app 命令之间共享的状态
type app struct {
	cfgFile string
	lang    string
	verbose bool

	cfg    *config.Config
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func newApp() *app {
	return &app{
		cfg:    config.DefaultConfig(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// newRootCmd 构建命令树
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "azor",
		Short:         i18n.T(i18n.MsgRootShort),
		Long:          i18n.T(i18n.MsgRootLong),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.stdout = cmd.OutOrStdout()
			a.stderr = cmd.ErrOrStderr()
			return a.setup(args)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", i18n.T(i18n.MsgFlagConfig))
	root.PersistentFlags().StringVar(&a.lang, "lang", "", i18n.T(i18n.MsgFlagLang))
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, i18n.T(i18n.MsgFlagVerbose))

	root.AddCommand(
		newCheckCmd(a),
		newFmtCmd(a),
		newAstCmd(a),
		newTokensCmd(a),
		newOutlineCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup 设置语言、日志并加载配置；--lang 优先于配置文件
func (a *app) setup(args []string) error {
	if a.lang != "" {
		lang, ok := i18n.ParseLanguage(a.lang)
		if !ok {
			return &configError{err: &langError{code: a.lang}}
		}
		i18n.SetLanguage(lang)
	}

	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	cfg, path, err := a.loadConfig(args)
	if err != nil {
		return &configError{err: err}
	}
	a.cfg = cfg
	if path != "" {
		a.logger.Debug("using config", slog.String("path", path), slog.String("mode", cfg.Parser.Mode))
	} else {
		a.logger.Debug("no config file found, using defaults")
	}

	if a.lang == "" && cfg.Output.Lang != "" {
		lang, _ := i18n.ParseLanguage(cfg.Output.Lang)
		i18n.SetLanguage(lang)
	}
	return nil
}

// loadConfig 优先使用 --config，否则从第一个参数所在目录向上查找
func (a *app) loadConfig(args []string) (*config.Config, string, error) {
	if a.cfgFile != "" {
		cfg, err := config.Load(a.cfgFile)
		return cfg, a.cfgFile, err
	}

	startDir := "."
	if len(args) > 0 {
		startDir = args[0]
		if info, err := os.Stat(startDir); err == nil && !info.IsDir() {
			startDir = filepath.Dir(startDir)
		}
	}
	return config.FindAndLoad(startDir)
}

// parseOptions 由配置生成解析选项
func (a *app) parseOptions(path string) []parser.Option {
	return []parser.Option{
		parser.WithMode(a.cfg.ParseMode()),
		parser.WithMaxErrors(a.cfg.Parser.MaxErrors),
		parser.WithFilename(path),
		parser.WithLogger(a.logger),
	}
}

// applyModeFlags 命令行上的 --mode / --max-errors 覆盖配置
func (a *app) applyModeFlags(cmd *cobra.Command, mode string, maxErrors int) error {
	if cmd.Flags().Changed("mode") {
		if _, ok := diag.ParseMode(mode); !ok {
			return &modeError{mode: mode}
		}
		a.cfg.Parser.Mode = mode
	}
	if cmd.Flags().Changed("max-errors") && maxErrors >= 0 {
		a.cfg.Parser.MaxErrors = maxErrors
	}
	return nil
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T(i18n.MsgVersionShort),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printInfo(a.stdout, i18n.T(i18n.MsgVersion, version))
		},
	}
}
