//go:build linux

package system

import (
	"fmt"
	"os/exec"
	"strings"
)

// flushDNSCache drops the systemd-resolved cache when that resolver is
// present. Plain nss-files setups read /etc/hosts directly on every lookup,
// so having no caching resolver to flush is not an error.
func flushDNSCache() error {
	for _, argv := range [][]string{
		{"resolvectl", "flush-caches"},
		{"systemd-resolve", "--flush-caches"},
	} {
		path, err := exec.LookPath(argv[0])
		if err != nil {
			continue
		}
		cmd := exec.Command(path, argv[1:]...)
		if output, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("%s: %v: %s", strings.Join(argv, " "), err, strings.TrimSpace(string(output)))
		}
		return nil
	}

	return nil
}
