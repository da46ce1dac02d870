package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), ".focushield", "blocklist.yaml"))
}

func TestLoad(t *testing.T) {
	t.Run("MissingFileIsEmptyList", func(t *testing.T) {
		s := newTestStore(t)

		domains, err := s.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(domains) != 0 {
			t.Errorf("expected empty list, got %v", domains)
		}
	})

	t.Run("MalformedContent", func(t *testing.T) {
		s := newTestStore(t)
		mustWrite(t, s.Path(), "websites: [unclosed\n")

		_, err := s.Load()
		var readErr *ReadError
		if !errors.As(err, &readErr) {
			t.Errorf("expected *ReadError, got %v", err)
		}
	})

	t.Run("UnrecognizedShape", func(t *testing.T) {
		s := newTestStore(t)
		mustWrite(t, s.Path(), "domains:\n  - a.com\n")

		_, err := s.Load()
		var readErr *ReadError
		if !errors.As(err, &readErr) {
			t.Errorf("expected *ReadError, got %v", err)
		}
	})

	t.Run("EmptyFileIsEmptyList", func(t *testing.T) {
		s := newTestStore(t)
		mustWrite(t, s.Path(), "")

		domains, err := s.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(domains) != 0 {
			t.Errorf("expected empty list, got %v", domains)
		}
	})
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cases := map[string][]string{
		"Empty":    nil,
		"Single":   {"example.com"},
		"Multiple": {"news.ycombinator.com", "reddit.com", "x.com"},
	}

	for name, list := range cases {
		t.Run(name, func(t *testing.T) {
			s := newTestStore(t)

			if err := s.Save(list); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			got, err := s.Load()
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if len(got) != len(list) {
				t.Fatalf("round trip length: got %v, want %v", got, list)
			}
			for i := range list {
				if got[i] != list[i] {
					t.Errorf("round trip order: got %v, want %v", got, list)
					break
				}
			}
		})
	}
}

func TestAdd(t *testing.T) {
	t.Run("AppendsInInputOrder", func(t *testing.T) {
		s := newTestStore(t)

		result, err := s.Add([]string{"b.com", "a.com"})
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if !reflect.DeepEqual(result.Added, []string{"b.com", "a.com"}) {
			t.Errorf("added: got %v", result.Added)
		}

		domains, err := s.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if !reflect.DeepEqual(domains, []string{"b.com", "a.com"}) {
			t.Errorf("persisted order: got %v", domains)
		}
	})

	t.Run("NormalizesInput", func(t *testing.T) {
		s := newTestStore(t)

		result, err := s.Add([]string{"  www.example.com ", "example.com", "  "})
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if !reflect.DeepEqual(result.Added, []string{"example.com"}) {
			t.Errorf("added: got %v, want [example.com]", result.Added)
		}
	})

	t.Run("AllPresentIsNoOp", func(t *testing.T) {
		s := newTestStore(t)
		if _, err := s.Add([]string{"a.com", "b.com"}); err != nil {
			t.Fatalf("seed Add failed: %v", err)
		}
		before := mustRead(t, s.Path())

		result, err := s.Add([]string{"a.com", "www.b.com"})
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if !result.AlreadyPresent {
			t.Error("expected AlreadyPresent")
		}
		if len(result.Added) != 0 {
			t.Errorf("added: got %v, want none", result.Added)
		}
		if after := mustRead(t, s.Path()); after != before {
			t.Error("no-op add rewrote the store file")
		}
	})

	t.Run("PartialOverlap", func(t *testing.T) {
		s := newTestStore(t)
		if _, err := s.Add([]string{"a.com"}); err != nil {
			t.Fatalf("seed Add failed: %v", err)
		}

		result, err := s.Add([]string{"a.com", "c.com"})
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if result.AlreadyPresent {
			t.Error("AlreadyPresent should be false when something was added")
		}
		if !reflect.DeepEqual(result.Added, []string{"c.com"}) {
			t.Errorf("added: got %v, want [c.com]", result.Added)
		}
	})
}

func TestRemove(t *testing.T) {
	t.Run("RemovesMatchesKeepsOrder", func(t *testing.T) {
		s := newTestStore(t)
		if _, err := s.Add([]string{"a.com", "b.com", "c.com"}); err != nil {
			t.Fatalf("seed Add failed: %v", err)
		}

		result, err := s.Remove([]string{"b.com"})
		if err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		if !result.Matched {
			t.Error("expected a match")
		}
		if !reflect.DeepEqual(result.Removed, []string{"b.com"}) {
			t.Errorf("removed: got %v", result.Removed)
		}

		domains, err := s.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if !reflect.DeepEqual(domains, []string{"a.com", "c.com"}) {
			t.Errorf("remaining: got %v, want [a.com c.com]", domains)
		}
	})

	t.Run("NoMatchIsNoOp", func(t *testing.T) {
		s := newTestStore(t)
		if _, err := s.Add([]string{"a.com"}); err != nil {
			t.Fatalf("seed Add failed: %v", err)
		}
		before := mustRead(t, s.Path())

		result, err := s.Remove([]string{"missing.com"})
		if err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		if result.Matched {
			t.Error("expected no match")
		}
		if after := mustRead(t, s.Path()); after != before {
			t.Error("no-match remove rewrote the store file")
		}
	})
}

func TestClear(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Add([]string{"a.com", "b.com"}); err != nil {
		t.Fatalf("seed Add failed: %v", err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	domains, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(domains) != 0 {
		t.Errorf("expected empty list after clear, got %v", domains)
	}
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"example.com":      "example.com",
		"www.example.com":  "example.com",
		" \texample.com\n": "example.com",
		"www.":             "",
		"   ":              "",
	}
	for input, want := range cases {
		if got := Normalize(input); got != want {
			t.Errorf("Normalize(%q): got %q, want %q", input, got, want)
		}
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

func mustRead(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	return string(data)
}
