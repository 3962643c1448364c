//go:build windows

package fsops

import (
	"os"
	"syscall"
	"time"
)

// Windows records a true creation time.
func creationTime(info os.FileInfo) time.Time {
	d, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return info.ModTime()
	}
	return time.Unix(0, d.CreationTime.Nanoseconds())
}
