//go:build windows

// Package console provides Windows console detection and a Ctrl+C
// handler that stays reliable while SDL holds the main thread with
// runtime.LockOSThread.
package console

import (
	"log"
	"sync/atomic"
	"syscall"
)

var (
	kernel32                  = syscall.NewLazyDLL("kernel32.dll")
	procGetConsoleWindow      = kernel32.NewProc("GetConsoleWindow")
	procFreeConsole           = kernel32.NewProc("FreeConsole")
	procSetConsoleCtrlHandler = kernel32.NewProc("SetConsoleCtrlHandler")
)

const (
	ctrlCEvent     = 0
	ctrlBreakEvent = 1
)

// IsRunningFromConsole reports whether the process has a console window
// attached. When launched by double-click the auto-created console is
// freed so no empty window lingers.
func IsRunningFromConsole() bool {
	hwnd, _, _ := procGetConsoleWindow.Call()
	if hwnd == 0 {
		return false
	}
	return true
}

// HideConsole detaches the process from its console window.
func HideConsole() {
	procFreeConsole.Call()
}

type handlerState struct {
	closed       int32
	shutdownChan chan struct{}
	callbackFn   uintptr
}

// Callback state must outlive the handler registration.
var globalHandlerState *handlerState

// SetupConsoleHandler installs a console control handler that closes
// shutdownChan on Ctrl+C or Ctrl+Break. The returned function
// re-registers the handler; call it after SDL init, which replaces
// console handlers of its own.
func SetupConsoleHandler(shutdownChan chan struct{}) func() {
	globalHandlerState = &handlerState{
		shutdownChan: shutdownChan,
	}

	globalHandlerState.callbackFn = syscall.NewCallback(func(ctrlType uint32) uintptr {
		if ctrlType == ctrlCEvent || ctrlType == ctrlBreakEvent {
			if atomic.CompareAndSwapInt32(&globalHandlerState.closed, 0, 1) {
				close(globalHandlerState.shutdownChan)
			}
			return 1
		}
		return 0
	})

	registerHandler := func() {
		if globalHandlerState == nil {
			return
		}
		ret, _, _ := procSetConsoleCtrlHandler.Call(globalHandlerState.callbackFn, 1)
		if ret == 0 {
			log.Printf("Warning: Failed to set Windows console control handler")
		}
	}

	registerHandler()
	return registerHandler
}
