package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	reportColor  = color.New(color.FgGreen, color.Bold)
	noMatchColor = color.New(color.FgYellow)
)

type logger bool

func (l logger) Logf(format string, a ...interface{}) {
	if !l {
		return
	}
	fmt.Fprintf(os.Stderr, format, a...)
	fmt.Fprintln(os.Stderr, "")
}
