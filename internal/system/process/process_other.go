// Released under an MIT license. See LICENSE.

//go:build !aix && !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !solaris
// +build !aix,!darwin,!dragonfly,!freebsd,!linux,!netbsd,!openbsd,!solaris

// Package process puts the interpreter in control of its terminal before
// the REPL prompts for input. There are no process groups on this platform.
package process

import "os"

// BecomeForegroundGroup does nothing.
func BecomeForegroundGroup(t int) error {
	return nil
}

// ForegroundGroup returns the current process ID.
func ForegroundGroup(t int) int {
	return os.Getpid()
}

// Group returns the current process ID.
func Group() int {
	return os.Getpid()
}

// ID returns the current process ID.
func ID() int {
	return os.Getpid()
}

// RestoreForegroundGroup does nothing.
func RestoreForegroundGroup(t int) error {
	return nil
}
