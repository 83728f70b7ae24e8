//go:build linux

package warp

import (
	"os"
	"runtime"

	"golang.org/x/sys/unix"
)

// systemMemory returns the total and available physical memory in bytes, or
// -1 for values that cannot be determined.
func systemMemory() (total, available int64) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return -1, -1
	}
	unit := int64(info.Unit)
	if unit == 0 {
		unit = 1
	}
	return int64(info.Totalram) * unit, (int64(info.Freeram) + int64(info.Bufferram)) * unit
}

func machineName() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		name, _ := os.Hostname()
		return name
	}
	return unix.ByteSliceToString(uts.Nodename[:])
}

func processorType() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return runtime.GOARCH
	}
	return unix.ByteSliceToString(uts.Machine[:])
}
