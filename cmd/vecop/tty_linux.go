//go:build linux

package main

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// writerIsTTY reports whether w is a file attached to a terminal.
func writerIsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	_, err := unix.IoctlGetTermios(int(f.Fd()), unix.TCGETS)
	return err == nil
}
