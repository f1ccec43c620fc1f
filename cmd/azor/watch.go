package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tangzhangming/azor/internal/i18n"
)

// debounce 编辑器保存时常常连续触发多个事件
const debounce = 150 * time.Millisecond

// watch 先检查一次，之后在 .azor 文件变化时重新检查，直到收到中断信号
func (a *app) watch(ctx context.Context, args []string, color bool) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return &watchError{err: err}
	}
	defer w.Close()

	dirs, err := watchDirs(args)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			return &watchError{err: err}
		}
		a.logger.Debug("watching", slog.String("dir", dir))
	}

	a.recheck(args, color)
	printInfo(a.stdout, i18n.T(i18n.MsgWatching, len(dirs)))

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		changed string
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(ev.Name, sourceExt) {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			changed = ev.Name
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			printInfo(a.stdout, i18n.T(i18n.MsgRechecking, changed))
			a.recheck(args, color)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn("watch error", slog.Any("err", err))
		}
	}
}

// recheck 运行一次检查；诊断已经输出，其他错误写入 stderr
func (a *app) recheck(args []string, color bool) {
	err := a.check(args, color)
	var pe *parseError
	if err != nil && !errors.As(err, &pe) {
		printInfo(a.stderr, err.Error())
	}
}

// watchDirs 返回需要监听的目录：目录参数及其子目录，文件参数所在的目录
func watchDirs(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var dirs []string
	add := func(dir string) {
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, &accessError{path: arg, err: err}
		}
		if !info.IsDir() {
			add(filepath.Dir(arg))
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, &accessError{path: arg, err: err}
		}
	}
	return dirs, nil
}
