package main

import (
	"fmt"
	"io"

	"github.com/tangzhangming/azor/internal/i18n"
)

type accessError struct {
	path string
	err  error
}

func (e *accessError) Error() string {
	return fmt.Sprintf("%s: %v", i18n.T(i18n.ErrCannotAccessInput, e.path), e.err)
}

func (e *accessError) Unwrap() error { return e.err }

type configError struct {
	err error
}

func (e *configError) Error() string {
	return fmt.Sprintf("%s: %v", i18n.T(i18n.ErrCannotLoadConfig), e.err)
}

func (e *configError) Unwrap() error { return e.err }

type langError struct {
	code string
}

func (e *langError) Error() string {
	return i18n.T(i18n.ErrInvalidLang, e.code)
}

type modeError struct {
	mode string
}

func (e *modeError) Error() string {
	return i18n.T(i18n.ErrInvalidMode, e.mode)
}

type readFileError struct {
	path string
	err  error
}

func (e *readFileError) Error() string {
	return fmt.Sprintf("%s: %v", i18n.T(i18n.ErrCannotReadFile, e.path), e.err)
}

func (e *readFileError) Unwrap() error { return e.err }

type writeFileError struct {
	path string
	err  error
}

func (e *writeFileError) Error() string {
	return fmt.Sprintf("%s: %v", i18n.T(i18n.ErrCannotWriteFile, e.path), e.err)
}

func (e *writeFileError) Unwrap() error { return e.err }

// parseError 诊断已经输出，main 只需要设置退出码
type parseError struct {
	path  string
	count int
}

func (e *parseError) Error() string {
	return i18n.T(i18n.ErrParseError, e.path, e.count)
}

type noFilesError struct {
	dir string
}

func (e *noFilesError) Error() string {
	return i18n.T(i18n.ErrNoAzorFiles, e.dir)
}

type commentsError struct {
	path string
}

func (e *commentsError) Error() string {
	return i18n.T(i18n.ErrFmtComments, e.path)
}

type watchError struct {
	err error
}

func (e *watchError) Error() string {
	return fmt.Sprintf("%s: %v", i18n.T(i18n.ErrWatch), e.err)
}

func (e *watchError) Unwrap() error { return e.err }

func printInfo(w io.Writer, msg string) {
	fmt.Fprintln(w, msg)
}
