//go:build linux

package system

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

var vtPaths = []string{"/dev/tty", "/dev/tty0"}

func setKDMode(mode int) error {
	var lastErr error
	for _, p := range vtPaths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("KDSETMODE %d on %s: %w", mode, p, err)
			continue
		}
		return nil
	}
	return lastErr
}

func writeVT(s string) error {
	var lastErr error
	for _, p := range vtPaths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("write VT failed: %w", lastErr)
}

// EnterGraphicsConsole switches the active VT to graphics mode and hides the
// text cursor so framebuffer output is not overdrawn. The returned function
// restores text mode. Failures are logged, not returned: a framebuffer on a
// console that refuses KD_GRAPHICS still works.
func EnterGraphicsConsole(l logger) (restore func()) {
	if err := setKDMode(kdGraphics); err != nil {
		logErr(l, "KD_GRAPHICS failed: %v", err)
	} else {
		logInfo(l, "KD_GRAPHICS set")
	}
	if err := writeVT("\x1b[?25l"); err != nil {
		logErr(l, "hide cursor failed: %v", err)
	}
	return func() {
		if err := writeVT("\x1b[?25h"); err != nil {
			logErr(l, "show cursor failed: %v", err)
		}
		if err := setKDMode(kdText); err != nil {
			logErr(l, "KD_TEXT failed: %v", err)
		} else {
			logInfo(l, "KD_TEXT set")
		}
	}
}

func logErr(l logger, format string, args ...interface{}) {
	if l != nil {
		l.Errorf("tty", format, args...)
	}
}

func logInfo(l logger, format string, args ...interface{}) {
	if l != nil {
		l.Infof("tty", format, args...)
	}
}
