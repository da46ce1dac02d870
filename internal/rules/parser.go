// Package rules parses third-party blocklists for the import command. Both
// hosts-file format lists ("0.0.0.0 example.com") and plain domain-per-line
// lists are accepted.
package rules

import (
	"bufio"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"focushield/internal/utils"
)

// Parser parses blocklist files
type Parser struct {
	httpClient *http.Client
}

// NewParser creates a new blocklist parser
func NewParser() *Parser {
	return &Parser{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Parse extracts domains from blocklist content. Comments, empty lines,
// localhost entries and over-long names are skipped.
func (p *Parser) Parse(content string) []string {
	var domains []string
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var domain string
		if strings.ContainsAny(line, " \t") {
			// Hosts file format (e.g., "0.0.0.0 example.com")
			parts := strings.Fields(line)
			if len(parts) < 2 {
				continue
			}
			domain = parts[1]
		} else {
			// Plain domain format
			domain = line
		}

		if domain == "localhost" || domain == "localhost.localdomain" {
			continue
		}
		if err := utils.ValidateDomainLength(domain); err != nil {
			logrus.WithField("domain", domain).Debug("Skipping invalid domain")
			continue
		}
		domains = append(domains, domain)
	}

	return domains
}

// FetchURL downloads and parses a blocklist from a http(s) URL.
func (p *Parser) FetchURL(urlStr string) ([]string, error) {
	if err := validateBlocklistURL(urlStr); err != nil {
		return nil, err
	}

	logrus.WithField("url", urlStr).Debug("Fetching blocklist")

	resp, err := p.httpClient.Get(urlStr)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := utils.ReadAllLimited(resp.Body, utils.MaxBlocklistSize)
	if err != nil {
		return nil, fmt.Errorf("error reading blocklist: %v", err)
	}

	domains := p.Parse(string(data))

	logrus.WithFields(logrus.Fields{
		"url":     urlStr,
		"domains": len(domains),
	}).Info("Parsed blocklist")

	return domains, nil
}

// validateBlocklistURL rejects anything that is not a plain http(s) URL
func validateBlocklistURL(urlStr string) error {
	u, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("invalid URL: %v", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("only http and https URLs are allowed")
	}
	if u.Hostname() == "" {
		return fmt.Errorf("URL must have a hostname")
	}

	return nil
}
