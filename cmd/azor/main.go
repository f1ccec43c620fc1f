package main

import (
	"fmt"
	"os"

	"github.com/tangzhangming/azor/internal/i18n"
)

const version = "0.1.0"

func main() {
	// 初始化国际化
	i18n.Init()

	if err := newRootCmd(newApp()).Execute(); err != nil {
		if _, ok := err.(*parseError); !ok {
			printError(err.Error())
		}
		os.Exit(1)
	}
}

// 辅助打印函数
func printError(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}
