//go:build !linux

package report

import "runtime"

func currentEnvironment() Environment {
	return Environment{Platform: runtime.GOOS, Architecture: runtime.GOARCH}
}
