//go:build !windows

package system

import (
	"fmt"
	"os"
)

// CheckPrivilege reports whether the process can modify the hosts file. The
// CLI calls this before any hosts-mutating command; the manager itself
// assumes it has already been verified.
func (o *OS) CheckPrivilege() error {
	if os.Geteuid() != 0 {
		return fmt.Errorf("modifying %s requires root privileges (use sudo)", o.HostsPath)
	}
	return nil
}
