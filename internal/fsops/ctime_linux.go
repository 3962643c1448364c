//go:build linux

package fsops

import (
	"os"
	"syscall"
	"time"
)

// Linux has no birth time in os.FileInfo; ctime changes on metadata writes,
// so the earlier of ctime and mtime is the closest stable stand-in.
func creationTime(info os.FileInfo) time.Time {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime()
	}
	ctime := time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
	if mtime := info.ModTime(); mtime.Before(ctime) {
		return mtime
	}
	return ctime
}
