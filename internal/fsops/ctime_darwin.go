//go:build darwin

package fsops

import (
	"os"
	"syscall"
	"time"
)

func creationTime(info os.FileInfo) time.Time {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime()
	}
	ctime := time.Unix(int64(st.Ctimespec.Sec), int64(st.Ctimespec.Nsec))
	if mtime := info.ModTime(); mtime.Before(ctime) {
		return mtime
	}
	return ctime
}
