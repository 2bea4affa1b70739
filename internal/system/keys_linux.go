//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

const evKey = 0x01

// inputEventSize is timeval + u16 type + u16 code + s32 value.
func inputEventSize() (tvSize, eventSize int) {
	tvSize = binary.Size(unix.Timeval{})
	eventSize = tvSize + 2 + 2 + 4
	if tvSize <= 0 {
		return 16, 24
	}
	return tvSize, eventSize
}

// parseKeyPresses returns the codes of key-down events in buf.
func parseKeyPresses(buf []byte, tvSize, eventSize int) []Key {
	var keys []Key
	for off := 0; off+eventSize <= len(buf); off += eventSize {
		rec := buf[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		if typ == evKey && value == 1 {
			keys = append(keys, Key(code))
		}
	}
	return keys
}

// WatchKeys watches Linux evdev devices under /dev/input/event* and calls
// the handler registered for each pressed key until ctx is done. Handlers
// are serialized.
//
// It is best-effort: if no input devices are available, it logs and returns.
func WatchKeys(ctx context.Context, l logger, handlers map[Key]func()) {
	if len(handlers) == 0 {
		return
	}
	tvSize, eventSize := inputEventSize()

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		if l != nil {
			l.Infof("input", "no evdev devices found; key bindings disabled")
		}
		return
	}

	var mu sync.Mutex
	dispatch := func(k Key) {
		fn, ok := handlers[k]
		if !ok {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if l != nil {
			l.Infof("input", "key %d pressed", k)
		}
		fn()
	}

	for _, path := range paths {
		p := path
		go func() {
			fd, err := unix.Open(p, unix.O_RDONLY|unix.O_NONBLOCK, 0)
			if err != nil {
				return
			}
			f := os.NewFile(uintptr(fd), p)
			defer func() {
				_ = f.Close()
			}()

			buf := make([]byte, 4096)
			for {
				select {
				case <-ctx.Done():
					return
				default:
				}

				pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
				if _, err := unix.Poll(pollFds, 250); err != nil {
					if err == unix.EINTR {
						continue
					}
					// Device might have gone away.
					return
				}
				if pollFds[0].Revents&unix.POLLIN == 0 {
					continue
				}

				n, err := unix.Read(fd, buf)
				if err != nil {
					if err == unix.EAGAIN || err == unix.EINTR {
						continue
					}
					return
				}
				for _, k := range parseKeyPresses(buf[:n], tvSize, eventSize) {
					dispatch(k)
				}
			}
		}()
	}
}
