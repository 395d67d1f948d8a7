package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// crashScreen is finalised before the stack is printed so the shell is usable afterwards
var crashScreen tcell.Screen

// handleCrash restores the terminal and prints the panic with its stack trace
func handleCrash(r any) {
	if r == nil {
		return
	}
	if crashScreen != nil {
		crashScreen.Fini()
	}
	os.Stdout.Sync()

	// \r\n in case the terminal is still in raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mGOOSE CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()
	os.Exit(1)
}

// goSafe runs fn on a new goroutine with terminal-restoring panic recovery
func goSafe(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				handleCrash(r)
			}
		}()
		fn()
	}()
}
