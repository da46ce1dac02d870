package rules

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	parser := NewParser()

	t.Run("HostsFormat", func(t *testing.T) {
		content := `# StevenBlack style list
127.0.0.1 localhost
0.0.0.0 ads.example.com
0.0.0.0 tracker.example.net
`
		domains := parser.Parse(content)
		want := []string{"ads.example.com", "tracker.example.net"}
		if !reflect.DeepEqual(domains, want) {
			t.Errorf("domains: got %v, want %v", domains, want)
		}
	})

	t.Run("PlainFormat", func(t *testing.T) {
		content := "example.com\n# comment\n\nexample.net\n"
		domains := parser.Parse(content)
		want := []string{"example.com", "example.net"}
		if !reflect.DeepEqual(domains, want) {
			t.Errorf("domains: got %v, want %v", domains, want)
		}
	})

	t.Run("SkipsLocalhostAndOverlong", func(t *testing.T) {
		content := "localhost\nlocalhost.localdomain\n" +
			strings.Repeat("a", 300) + ".com\nok.com\n"
		domains := parser.Parse(content)
		if !reflect.DeepEqual(domains, []string{"ok.com"}) {
			t.Errorf("domains: got %v, want [ok.com]", domains)
		}
	})
}

func TestFetchURL(t *testing.T) {
	parser := NewParser()

	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("0.0.0.0 blocked.example.com\n"))
		}))
		defer srv.Close()

		domains, err := parser.FetchURL(srv.URL)
		if err != nil {
			t.Fatalf("FetchURL failed: %v", err)
		}
		if !reflect.DeepEqual(domains, []string{"blocked.example.com"}) {
			t.Errorf("domains: got %v", domains)
		}
	})

	t.Run("BadStatus", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer srv.Close()

		if _, err := parser.FetchURL(srv.URL); err == nil {
			t.Error("expected error for 404 response")
		}
	})

	t.Run("RejectsNonHTTPScheme", func(t *testing.T) {
		if _, err := parser.FetchURL("file:///etc/passwd"); err == nil {
			t.Error("expected error for file:// URL")
		}
	})
}
