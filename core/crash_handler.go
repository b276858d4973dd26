package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// crashHook restores the terminal before the crash report is printed
// Injected by main so core stays independent of the screen implementation
var crashHook atomic.Pointer[func()]

// SetCrashHook installs the cleanup run by HandleCrash before printing
func SetCrashHook(fn func()) {
	if fn == nil {
		crashHook.Store(nil)
		return
	}
	crashHook.Store(&fn)
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if hook := crashHook.Load(); hook != nil {
		(*hook)()
	}

	os.Stdout.Sync()

	// Use \r\n for raw mode compatibility
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mHARVEST CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Recover is deferred at the top of main and of every goroutine the binary
// starts, so a panic anywhere restores the terminal first
func Recover() {
	if r := recover(); r != nil {
		HandleCrash(r)
	}
}
