//go:build !linux

package system

import "context"

// WatchKeys needs evdev; elsewhere it only logs.
func WatchKeys(ctx context.Context, l logger, handlers map[Key]func()) {
	if l != nil && len(handlers) > 0 {
		l.Infof("input", "key bindings need Linux evdev; disabled")
	}
}
