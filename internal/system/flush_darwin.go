//go:build darwin

package system

import (
	"fmt"
	"os/exec"
	"strings"
)

// flushDNSCache drops the macOS resolver cache. Both the directory service
// cache and mDNSResponder hold entries that would keep serving stale results
// after a hosts change.
func flushDNSCache() error {
	cmd := exec.Command("dscacheutil", "-flushcache")
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("dscacheutil -flushcache: %v: %s", err, strings.TrimSpace(string(output)))
	}

	cmd = exec.Command("killall", "-HUP", "mDNSResponder")
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("killall -HUP mDNSResponder: %v: %s", err, strings.TrimSpace(string(output)))
	}

	return nil
}
