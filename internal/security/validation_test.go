package security

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestValidateHTTPURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"github raw", "https://raw.githubusercontent.com/matplotlib/matplotlib/main/LICENSE/LICENSE", false},
		{"empty", "", true},
		{"plain http", "http://example.com/file", true},
		{"ftp", "ftp://example.com/file", true},
		{"no host", "https:///path", true},
		{"localhost", "https://localhost/file", true},
		{"loopback", "https://127.0.0.1/file", true},
		{"private", "https://192.168.1.10/file", true},
		{"private 172", "https://172.20.0.1/file", true},
		{"ipv6 loopback", "https://[::1]/file", true},
		{"link local", "https://169.254.169.254/latest", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateHTTPURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHTTPURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePageURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"dev server", "http://localhost:5173", false},
		{"https", "https://example.com/viscm-web/", false},
		{"empty", "", true},
		{"file scheme", "file:///tmp/index.html", true},
		{"missing host", "http://", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePageURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePageURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

func TestValidateIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"lowercase", "viridis", false},
		{"mixed case", "YlOrRd", false},
		{"underscore", "twilight_shifted", false},
		{"digits", "tab20b", false},
		{"reversed suffix", "viridis_r", false},
		{"empty", "", true},
		{"traversal", "../etc/passwd", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"leading dot", ".hidden", true},
		{"space", "my map", true},
		{"too long", strings.Repeat("a", maxIdentifierLength+1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentifier(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateIdentifier(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFilePath(t *testing.T) {
	base := "/srv/public/colormaps"

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple", "viridis.json", false},
		{"nested", "sub/viridis.json", false},
		{"empty", "", true},
		{"traversal", "../index.json", true},
		{"absolute", "/etc/passwd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilePath(tt.path, base)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFilePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestLimitedReader(t *testing.T) {
	r := NewLimitedReader(bytes.NewReader(make([]byte, 100)), 10)

	data, err := io.ReadAll(r)
	if err == nil {
		t.Fatal("expected size limit error")
	}
	if len(data) != 10 {
		t.Errorf("read %d bytes, want 10", len(data))
	}
}
