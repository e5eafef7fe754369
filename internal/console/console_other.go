//go:build !windows

// Package console provides Windows console detection and signal
// handling. On other platforms these are no-ops: a console is always
// present and os.Interrupt handling works.
package console

// IsRunningFromConsole always reports true on non-Windows platforms.
func IsRunningFromConsole() bool {
	return true
}

// HideConsole is a no-op on non-Windows platforms.
func HideConsole() {}

// SetupConsoleHandler returns a no-op re-register function.
func SetupConsoleHandler(shutdownChan chan struct{}) func() {
	return func() {}
}
