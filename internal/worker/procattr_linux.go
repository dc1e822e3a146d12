//go:build linux

package worker

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// sysProcAttr makes the kernel kill the worker if the parent dies first.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Pdeathsig: unix.SIGKILL}
}
