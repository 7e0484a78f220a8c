//go:build !windows

package runlog

import (
	"fmt"
	"runtime"
)

// OSVersion identifies the host platform for the log header.
func OSVersion() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}
