//go:build !unix

package main

import (
	"os"
	"runtime/debug"
)

// redirectStdIO replaces os.Stdout and os.Stderr with path. Fatal runtime
// errors are routed there with SetCrashOutput since the process descriptors
// cannot be swapped.
func redirectStdIO(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return debug.SetCrashOutput(f, debug.CrashOptions{})
}
