//go:build linux

package report

import (
	"runtime"

	"golang.org/x/sys/unix"
)

func currentEnvironment() Environment {
	env := Environment{Platform: runtime.GOOS, Architecture: runtime.GOARCH}
	var uts unix.Utsname
	if err := unix.Uname(&uts); err == nil {
		env.Kernel = unix.ByteSliceToString(uts.Sysname[:]) + " " +
			unix.ByteSliceToString(uts.Release[:])
	}
	return env
}
