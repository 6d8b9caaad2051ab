//go:build windows

package process

import "syscall"

// https://docs.microsoft.com/en-us/windows/win32/procthread/process-creation-flags
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP,
	}
}
