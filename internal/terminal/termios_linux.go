//go:build linux

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios = unix.TCGETS
	// TCSETSF drains output and discards pending input, same as TCSAFLUSH.
	ioctlWriteTermios = unix.TCSETSF
)
