//go:build !linux

package warp

import (
	"os"
	"runtime"
)

func systemMemory() (total, available int64) {
	return -1, -1
}

func machineName() string {
	name, _ := os.Hostname()
	return name
}

func processorType() string {
	return runtime.GOARCH
}
