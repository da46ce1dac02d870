//go:build windows

package system

import (
	"fmt"
	"os/exec"
	"strings"
)

func flushDNSCache() error {
	cmd := exec.Command("ipconfig", "/flushdns")
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ipconfig /flushdns: %v: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}
