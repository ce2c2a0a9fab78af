//go:build linux

package debugger

import (
	"bufio"
	"os"
	"strconv"
	"strings"
)

// tracerAttached inspects /proc/self/status for a nonzero TracerPid entry,
// which the kernel sets while a ptrace-based debugger is attached.
func tracerAttached() bool {
	f, err := os.Open("/proc/self/status")
	if err != nil {
		return false
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(strings.ToLower(line), "tracerpid") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return false
		}
		pid, err := strconv.Atoi(fields[1])
		return err == nil && pid > 0
	}
	return false
}
