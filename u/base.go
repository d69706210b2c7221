package u

import (
	"runtime"
	"strings"
)

func IsWindows() bool {
	return strings.Contains(runtime.GOOS, "windows")
}

// Newline returns the line terminator native to the platform
func Newline() string {
	if IsWindows() {
		return "\r\n"
	}
	return "\n"
}
