package license

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const licenseText = "License agreement for matplotlib versions 1.3.0 and later\n"

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(licenseText))
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "LICENSE")
	res, err := Fetch(context.Background(), Options{URL: srv.URL + "/LICENSE/LICENSE", Dir: dir})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if res.LicensePath != filepath.Join(dir, FileName) {
		t.Errorf("LicensePath = %q", res.LicensePath)
	}
	if res.Bytes != len(licenseText) {
		t.Errorf("Bytes = %d, want %d", res.Bytes, len(licenseText))
	}

	got, err := os.ReadFile(res.LicensePath)
	if err != nil {
		t.Fatalf("license not written: %v", err)
	}
	if string(got) != licenseText {
		t.Errorf("license = %q, want %q", got, licenseText)
	}

	readme, err := os.ReadFile(res.ReadmePath)
	if err != nil {
		t.Fatalf("README not written: %v", err)
	}
	for _, want := range []string{"# Licenses", "## matplotlib.txt", "Source: https://github.com/matplotlib/matplotlib", "License URL: " + srv.URL} {
		if !strings.Contains(string(readme), want) {
			t.Errorf("README missing %q", want)
		}
	}
}

func TestFetchFailureWritesNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	dir := t.TempDir()
	if _, err := Fetch(context.Background(), Options{URL: srv.URL, Dir: dir}); err == nil {
		t.Fatal("Fetch() expected error")
	}

	for _, name := range []string{FileName, ReadmeName} {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Errorf("%s should not exist after a failed download", name)
		}
	}
}

func TestManualInstructions(t *testing.T) {
	if got := ManualInstructions(""); !strings.Contains(got, DefaultURL) {
		t.Errorf("ManualInstructions() = %q, want default URL", got)
	}
	if got := ManualInstructions("https://example.com/L"); !strings.Contains(got, "https://example.com/L") {
		t.Errorf("ManualInstructions() = %q, want custom URL", got)
	}
}
