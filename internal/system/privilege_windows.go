//go:build windows

package system

import (
	"fmt"
	"os"
)

// CheckPrivilege reports whether the process can modify the hosts file.
// Windows has no effective UID, so probing the file for write access is the
// reliable signal.
func (o *OS) CheckPrivilege() error {
	f, err := os.OpenFile(o.HostsPath, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("modifying %s requires an elevated prompt: %v", o.HostsPath, err)
	}
	f.Close()
	return nil
}
