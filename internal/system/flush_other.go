//go:build !darwin && !linux && !windows

package system

// flushDNSCache has no known resolver cache to flush on this platform.
func flushDNSCache() error {
	return nil
}
