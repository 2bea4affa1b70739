//go:build !linux

package system

// EnterGraphicsConsole is a no-op outside Linux virtual terminals.
func EnterGraphicsConsole(l logger) (restore func()) {
	return func() {}
}
