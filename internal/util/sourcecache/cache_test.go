package sourcecache

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

const source = "_viridis_data = [[0.267004, 0.004874, 0.329415]]\n"

func newServer(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(source))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestGetCachesCompressed(t *testing.T) {
	srv, hits := newServer(t)
	dir := t.TempDir()
	url := srv.URL + "/lib/matplotlib/_cm_listed.py"

	first, err := Get(context.Background(), url, Options{Dir: dir})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if first.Hit {
		t.Error("first Get() reported a cache hit")
	}
	if string(first.Data) != source {
		t.Errorf("Data = %q, want %q", first.Data, source)
	}

	raw, err := os.ReadFile(first.Path)
	if err != nil {
		t.Fatalf("cached file not written: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}) {
		t.Error("cached file is not xz-compressed")
	}

	second, err := Get(context.Background(), url, Options{Dir: dir})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !second.Hit {
		t.Error("second Get() should be a cache hit")
	}
	if string(second.Data) != source {
		t.Errorf("cached Data = %q, want %q", second.Data, source)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("server hits = %d, want 1", got)
	}
}

func TestGetAllowOverwrite(t *testing.T) {
	srv, hits := newServer(t)
	dir := t.TempDir()

	for range 2 {
		res, err := Get(context.Background(), srv.URL+"/src.py", Options{Dir: dir, AllowOverwrite: true})
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if res.Hit {
			t.Error("Get() with AllowOverwrite reported a cache hit")
		}
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("server hits = %d, want 2", got)
	}
}

func TestGetCorruptEntryRefetched(t *testing.T) {
	srv, hits := newServer(t)
	dir := t.TempDir()
	url := srv.URL + "/src.py"

	if err := os.WriteFile(filepath.Join(dir, Filename(url)), []byte("not xz"), 0o600); err != nil {
		t.Fatal(err)
	}

	res, err := Get(context.Background(), url, Options{Dir: dir})
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if res.Hit || string(res.Data) != source {
		t.Errorf("Get() = %+v, want fresh download", res)
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("server hits = %d, want 1", got)
	}
}

func TestGetInvalidURL(t *testing.T) {
	if _, err := Get(context.Background(), "ftp://example.com/file", Options{Dir: t.TempDir()}); err == nil {
		t.Error("Get() expected error for non-HTTP URL")
	}
}

func TestGetRejectsTraversalFilename(t *testing.T) {
	srv, hits := newServer(t)

	_, err := Get(context.Background(), srv.URL+"/x.py", Options{Dir: t.TempDir(), Filename: "../escape.xz"})
	if err == nil {
		t.Fatal("Get() expected error for a file name outside the cache directory")
	}
	if got := hits.Load(); got != 0 {
		t.Errorf("server hits = %d, want 0", got)
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantBase string
	}{
		{"python source", "https://example.com/lib/_cm_listed.py", "-_cm_listed.py.xz"},
		{"query string", "https://example.com/LICENSE?raw=1", "-LICENSE.xz"},
		{"no base name", "https://example.com/", "-source.xz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filename(tt.url)
			if !strings.HasSuffix(got, tt.wantBase) {
				t.Errorf("Filename(%q) = %q, want suffix %q", tt.url, got, tt.wantBase)
			}
			if got != Filename(tt.url) {
				t.Error("Filename() is not deterministic")
			}
		})
	}

	if Filename("https://a.example/x.py") == Filename("https://b.example/x.py") {
		t.Error("Filename() collides for different URLs")
	}
}
