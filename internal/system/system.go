// Package system provides the real platform implementation behind the hosts
// manager: whole-file hosts I/O, the privilege predicate and the
// platform-specific DNS cache flush.
package system

import (
	"fmt"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"

	"focushield/internal/utils"
)

// OS implements hosts.System against the real operating system. The hosts
// file is mutated via a read-modify-write cycle without locking; one
// interactive invocation at a time is the expected usage.
type OS struct {
	// HostsPath is the hosts file to manage.
	HostsPath string

	// FlushEnabled gates the resolver cache flush shell-out.
	FlushEnabled bool
}

// New creates the platform implementation. An empty hostsPath selects the
// platform default.
func New(hostsPath string, flushEnabled bool) *OS {
	if hostsPath == "" {
		hostsPath = DefaultHostsPath()
	}
	return &OS{HostsPath: hostsPath, FlushEnabled: flushEnabled}
}

// DefaultHostsPath returns the hosts file location for the current platform.
func DefaultHostsPath() string {
	if runtime.GOOS == "windows" {
		return `C:\Windows\System32\drivers\etc\hosts`
	}
	return "/etc/hosts"
}

// ReadHosts returns the full content of the hosts file.
func (o *OS) ReadHosts() (string, error) {
	info, err := os.Stat(o.HostsPath)
	if err != nil {
		return "", err
	}
	if info.Size() > utils.MaxHostsFileSize {
		return "", fmt.Errorf("hosts file exceeds maximum size of %d bytes", utils.MaxHostsFileSize)
	}

	data, err := os.ReadFile(o.HostsPath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteHosts replaces the hosts file content in a single write, keeping the
// conventional world-readable permissions for a fresh file.
func (o *OS) WriteHosts(content string) error {
	return os.WriteFile(o.HostsPath, []byte(content), 0644)
}

// FlushDNSCache drops the OS resolver cache after a hosts change.
func (o *OS) FlushDNSCache() error {
	if !o.FlushEnabled {
		logrus.Debug("DNS cache flush disabled by configuration")
		return nil
	}
	return flushDNSCache()
}
