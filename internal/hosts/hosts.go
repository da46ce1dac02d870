// Package hosts manages the FocusShield section of the system hosts file.
// The hosts file itself is the source of truth for whether focus mode is
// active: state is recomputed by parsing the file on every query, never
// cached, so manual edits by another process are observed correctly.
package hosts

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	// StartMarker and EndMarker delimit the managed block. They must stay
	// byte-identical across releases so newer builds can locate blocks
	// written by older ones.
	StartMarker = "# >>> focushield block start >>>"
	EndMarker   = "# <<< focushield block end <<<"

	// LoopbackV4 and LoopbackV6 are the sinkhole targets for blocked
	// domains.
	LoopbackV4 = "127.0.0.1"
	LoopbackV6 = "::1"
)

// blockPattern matches a managed block from a start marker through the
// nearest end marker, including the trailing newline when present.
// Non-greedy, so duplicate blocks left behind by an earlier crash are each
// matched and removed separately.
var blockPattern = regexp.MustCompile(
	regexp.QuoteMeta(StartMarker) + `(?s:.*?)` + regexp.QuoteMeta(EndMarker) + `\n?`)

// ReadError indicates the hosts file could not be read.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read hosts file: %v", e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError indicates the hosts file could not be written, including
// privilege failures surfaced by the underlying write.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write hosts file: %v", e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Manager reads and rewrites the managed block inside the hosts file. All
// content outside the block passes through untouched, aside from
// trailing-newline normalization at the block boundary.
type Manager struct {
	sys System
}

// NewManager creates a manager on top of the given platform capability.
func NewManager(sys System) *Manager {
	return &Manager{sys: sys}
}

// BlockedDomains returns the bare domains currently present in the managed
// block, sorted. An absent or empty block yields an empty result.
func (m *Manager) BlockedDomains() ([]string, error) {
	content, err := m.sys.ReadHosts()
	if err != nil {
		return nil, &ReadError{Err: err}
	}
	return parseBlockedDomains(content), nil
}

// FocusModeOn reports whether the managed block currently holds at least one
// domain. There is no stored flag; the answer always comes from the file.
func (m *Manager) FocusModeOn() (bool, error) {
	domains, err := m.BlockedDomains()
	if err != nil {
		return false, err
	}
	return len(domains) > 0, nil
}

// Apply rewrites the managed block to cover exactly the given domains, in
// order. Every existing block is stripped first, so duplicates left by a
// prior crash heal on the next apply. An empty domain list clears the block.
// The resolver cache flush afterwards is best effort and never fails the
// operation.
func (m *Manager) Apply(domains []string) error {
	content, err := m.sys.ReadHosts()
	if err != nil {
		return &ReadError{Err: err}
	}

	out := strings.TrimRight(blockPattern.ReplaceAllString(content, ""), "\n")
	if len(domains) > 0 {
		if out != "" {
			out += "\n"
		}
		out += renderBlock(domains)
	} else if out != "" {
		out += "\n"
	}

	if err := m.sys.WriteHosts(out); err != nil {
		return &WriteError{Err: err}
	}

	if err := m.sys.FlushDNSCache(); err != nil {
		logrus.WithError(err).Warn("Failed to flush DNS cache")
	}

	logrus.WithField("domains", len(domains)).Debug("Rewrote hosts block")
	return nil
}

// Clear removes the managed block entirely, leaving the rest of the hosts
// file as it was.
func (m *Manager) Clear() error {
	return m.Apply(nil)
}

// renderBlock produces the managed block text: four resolution lines per
// domain (v4/v6, bare and www. form) between the two marker lines.
func renderBlock(domains []string) string {
	var b strings.Builder
	b.WriteString(StartMarker)
	b.WriteByte('\n')
	for _, domain := range domains {
		fmt.Fprintf(&b, "%s %s\n", LoopbackV4, domain)
		fmt.Fprintf(&b, "%s www.%s\n", LoopbackV4, domain)
		fmt.Fprintf(&b, "%s %s\n", LoopbackV6, domain)
		fmt.Fprintf(&b, "%s www.%s\n", LoopbackV6, domain)
	}
	b.WriteString(EndMarker)
	b.WriteByte('\n')
	return b.String()
}

// parseBlockedDomains extracts the bare domains from the first managed block
// in the given hosts content. Only IPv4 loopback lines count, and www.
// entries are skipped so the companion line does not double-count a domain.
func parseBlockedDomains(content string) []string {
	block := blockPattern.FindString(content)
	if block == "" {
		return nil
	}

	seen := make(map[string]bool)
	var domains []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == StartMarker || line == EndMarker {
			continue
		}
		if !strings.Contains(line, LoopbackV4) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		domain := fields[1]
		if strings.HasPrefix(domain, "www.") {
			continue
		}
		if !seen[domain] {
			seen[domain] = true
			domains = append(domains, domain)
		}
	}

	sort.Strings(domains)
	return domains
}
