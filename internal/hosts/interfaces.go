package hosts

// System abstracts the platform operations the manager depends on, so the
// core logic is testable without touching the real hosts file or OS
// privilege mechanisms.
type System interface {
	// ReadHosts returns the full content of the hosts file.
	ReadHosts() (string, error)

	// WriteHosts replaces the full content of the hosts file in one step.
	WriteHosts(content string) error

	// FlushDNSCache drops the OS resolver cache so hosts changes take
	// effect immediately.
	FlushDNSCache() error
}
