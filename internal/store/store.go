// Package store persists the block list: the ordered set of domains the user
// wants blocked whenever focus mode is next enabled. The list is independent
// of whether blocking is currently active.
package store

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// document is the on-disk shape of the block list.
type document struct {
	Websites []string `yaml:"websites"`
}

// ReadError indicates the persisted block list could not be read or parsed.
// A missing file is not a ReadError; it reads as an empty list.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read block list %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError indicates the persisted block list could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write block list %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// AddResult reports the outcome of an Add call.
type AddResult struct {
	// Added holds the genuinely new domains, in input order.
	Added []string
	// AlreadyPresent is true when every input was already on the list and
	// nothing was persisted.
	AlreadyPresent bool
}

// RemoveResult reports the outcome of a Remove call.
type RemoveResult struct {
	// Removed holds the domains that were actually dropped.
	Removed []string
	// Matched is false when no input matched and nothing was persisted.
	Matched bool
}

// Store persists the block list as a YAML document at a fixed path.
type Store struct {
	path string
}

// New creates a store bound to the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Normalize canonicalizes a raw domain argument. Surrounding whitespace and
// a leading "www." are dropped; the hosts manager expands the www. variant
// itself when rendering.
func Normalize(raw string) string {
	return strings.TrimPrefix(strings.TrimSpace(raw), "www.")
}

// Load returns the persisted domains in insertion order. A missing file
// reads as an empty list, not an error.
func (s *Store) Load() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, &ReadError{Path: s.path, Err: err}
	}

	// Strict decoding: anything other than the recognized document shape
	// is a hard read error rather than a silently empty list.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, &ReadError{Path: s.path, Err: err}
	}
	return doc.Websites, nil
}

// Save replaces the persisted list wholesale.
func (s *Store) Save(domains []string) error {
	data, err := yaml.Marshal(&document{Websites: domains})
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	return nil
}

// Add appends the genuinely new domains, preserving input order and deduping
// both against the current list and within the batch. When nothing new
// remains, the store is left untouched and AlreadyPresent is set.
func (s *Store) Add(domains []string) (*AddResult, error) {
	current, err := s.Load()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(current))
	for _, d := range current {
		seen[d] = true
	}

	result := &AddResult{}
	list := current
	for _, raw := range domains {
		domain := Normalize(raw)
		if domain == "" || seen[domain] {
			continue
		}
		seen[domain] = true
		list = append(list, domain)
		result.Added = append(result.Added, domain)
	}

	if len(result.Added) == 0 {
		result.AlreadyPresent = true
		return result, nil
	}
	if err := s.Save(list); err != nil {
		return nil, err
	}
	return result, nil
}

// Remove drops any current entries exactly matching the input set. When no
// input matches, the store is left untouched and Matched stays false.
func (s *Store) Remove(domains []string) (*RemoveResult, error) {
	current, err := s.Load()
	if err != nil {
		return nil, err
	}

	drop := make(map[string]bool, len(domains))
	for _, raw := range domains {
		if domain := Normalize(raw); domain != "" {
			drop[domain] = true
		}
	}

	result := &RemoveResult{}
	var kept []string
	for _, d := range current {
		if drop[d] {
			result.Removed = append(result.Removed, d)
			continue
		}
		kept = append(kept, d)
	}

	if len(result.Removed) == 0 {
		return result, nil
	}
	result.Matched = true
	if err := s.Save(kept); err != nil {
		return nil, err
	}
	return result, nil
}

// Clear replaces the persisted list with an empty one.
func (s *Store) Clear() error {
	return s.Save(nil)
}
