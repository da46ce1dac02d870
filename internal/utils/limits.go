package utils

import (
	"fmt"
	"io"
	"strings"
)

const (
	// MaxConfigFileSize is the maximum size for configuration files (1MB)
	MaxConfigFileSize = 1 * 1024 * 1024

	// MaxHostsFileSize is the largest hosts file the tool will rewrite (10MB)
	MaxHostsFileSize = 10 * 1024 * 1024

	// MaxBlocklistSize is the maximum size for imported blocklists (50MB)
	MaxBlocklistSize = 50 * 1024 * 1024

	// MaxDomainLength is the maximum length for a domain name
	MaxDomainLength = 253
)

// LimitedReader returns a reader that limits the amount of data read
func LimitedReader(r io.Reader, limit int64) io.Reader {
	return &io.LimitedReader{R: r, N: limit}
}

// ReadAllLimited reads all data from r up to limit bytes
func ReadAllLimited(r io.Reader, limit int64) ([]byte, error) {
	limited := LimitedReader(r, limit+1) // +1 to detect if limit exceeded
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, err
	}

	if int64(len(data)) > limit {
		return nil, fmt.Errorf("data exceeds maximum size of %d bytes", limit)
	}

	return data, nil
}

// ValidateDomainLength checks if a domain name is within acceptable length
func ValidateDomainLength(domain string) error {
	if len(domain) > MaxDomainLength {
		return fmt.Errorf("domain name exceeds maximum length of %d characters", MaxDomainLength)
	}

	// Check individual label lengths (max 63 characters)
	labels := strings.Split(domain, ".")
	for _, label := range labels {
		if len(label) > 63 {
			return fmt.Errorf("domain label exceeds maximum length of 63 characters")
		}
	}

	return nil
}
