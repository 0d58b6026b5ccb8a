// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris
// +build aix darwin dragonfly freebsd linux netbsd openbsd solaris

// Package process puts the interpreter in control of its terminal before
// the REPL prompts for input.
package process

import (
	"golang.org/x/sys/unix"
)

//nolint:gochecknoglobals
var (
	id       = unix.Getpid()
	group, _ = unix.Getpgid(id)
)

// BecomeForegroundGroup performs the Unix incantations necessary to put
// the current process in the foreground of the terminal t.
func BecomeForegroundGroup(t int) (err error) {
	for group != ForegroundGroup(t) {
		err = unix.Kill(-group, unix.SIGTTIN)
		if err != nil {
			return
		}

		group, err = unix.Getpgid(id)
		if err != nil {
			return
		}
	}

	if id != group {
		err = unix.Setpgid(id, id)
		if err != nil {
			return
		}

		group = id
	}

	return SetForegroundGroup(t, group)
}

// ForegroundGroup returns the foreground group ID for the terminal t.
func ForegroundGroup(t int) int {
	g, err := unix.IoctlGetInt(t, unix.TIOCGPGRP)
	if err != nil {
		return 0
	}

	return g
}

// Group returns the group ID for the current process.
func Group() int {
	return group
}

// ID returns the process ID for the current process.
func ID() int {
	return id
}

// RestoreForegroundGroup places the group for this process back in the
// foreground of the terminal t.
func RestoreForegroundGroup(t int) error {
	if group == ForegroundGroup(t) {
		return nil
	}

	return SetForegroundGroup(t, group)
}

// SetForegroundGroup sets the foreground group of the terminal t to g.
func SetForegroundGroup(t, g int) error {
	return unix.IoctlSetPointerInt(t, unix.TIOCSPGRP, g)
}
