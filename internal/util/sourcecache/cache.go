// Package sourcecache downloads upstream source files once and keeps them in a
// local xz-compressed cache.
package sourcecache

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/viscm-web/cmapgen/internal/security"
	httputil "github.com/viscm-web/cmapgen/internal/util/http"
)

// maxDecompressedSize bounds what is read back from a cached entry.
const maxDecompressedSize = 64 * 1024 * 1024

// Options configures caching behaviour.
type Options struct {
	// Dir is the directory where sources are cached.
	// If empty, defaults to <user cache dir>/cmapgen/sources.
	Dir string

	// Filename is the file name of the cached entry.
	// If empty, uses a hash of the URL.
	Filename string

	// AllowOverwrite forces a fresh download even when a cached copy exists.
	AllowOverwrite bool

	// Fetch configures the download.
	Fetch httputil.FetchOptions
}

// Result describes a cache lookup.
type Result struct {
	// Data is the decompressed source.
	Data []byte

	// Path is the cached file location.
	Path string

	// Hit reports whether Data came from the cache rather than the network.
	Hit bool
}

// DefaultDir returns the default cache directory path.
func DefaultDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		// Fallback to home directory if cache dir not available.
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
		return filepath.Join(home, ".cache", "cmapgen", "sources"), nil
	}
	return filepath.Join(cacheDir, "cmapgen", "sources"), nil
}

// Filename returns the deterministic cache file name for a URL: the first 16
// bytes of its SHA-256 in hex, the original base name and an .xz suffix.
func Filename(rawURL string) string {
	hash := sha256.Sum256([]byte(rawURL))
	base := "source"
	if u, err := url.Parse(rawURL); err == nil {
		if b := path.Base(u.Path); security.ValidateIdentifier(b) == nil {
			base = b
		}
	}
	return fmt.Sprintf("%x-%s.xz", hash[:16], base)
}

// Get returns the contents of url, from the cache when present.
func Get(ctx context.Context, rawURL string, opts Options) (*Result, error) {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return nil, fmt.Errorf("invalid URL: must start with http:// or https://")
	}

	dir := opts.Dir
	if dir == "" {
		defaultDir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = defaultDir
	}

	filename := opts.Filename
	if filename == "" {
		filename = Filename(rawURL)
	} else if err := security.ValidateFilePath(filename, dir); err != nil {
		return nil, fmt.Errorf("invalid cache file name: %w", err)
	}
	cachedPath := filepath.Join(dir, filename)

	if !opts.AllowOverwrite {
		data, err := readCompressed(cachedPath)
		if err == nil {
			return &Result{Data: data, Path: cachedPath, Hit: true}, nil
		}
		// A missing or corrupt entry is refetched.
	}

	data, err := httputil.Fetch(ctx, rawURL, opts.Fetch)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", rawURL, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil { // #nosec G301 - Cache directory needs standard permissions
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := writeCompressed(cachedPath, data); err != nil {
		return nil, err
	}

	return &Result{Data: data, Path: cachedPath, Hit: false}, nil
}

// readCompressed reads and decompresses a cached entry.
func readCompressed(path string) ([]byte, error) {
	f, err := os.Open(path) // #nosec G304 - Cache path built from the cache directory and a hashed name
	if err != nil {
		return nil, err
	}
	defer f.Close()

	xzr, err := xz.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to create xz reader: %w", err)
	}

	data, err := io.ReadAll(security.NewLimitedReader(xzr, maxDecompressedSize))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress cached source: %w", err)
	}
	return data, nil
}

// writeCompressed stores data xz-compressed at path, replacing any previous
// entry atomically.
func writeCompressed(path string, data []byte) error {
	var buf bytes.Buffer
	xzw, err := xz.NewWriter(&buf)
	if err != nil {
		return fmt.Errorf("failed to create xz writer: %w", err)
	}
	if _, err := xzw.Write(data); err != nil {
		return fmt.Errorf("failed to compress source: %w", err)
	}
	if err := xzw.Close(); err != nil {
		return fmt.Errorf("failed to compress source: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}
	tmpName := tmp.Name()

	_, writeErr := tmp.Write(buf.Bytes())
	closeErr := tmp.Close()
	if writeErr != nil || closeErr != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write cache file: %w", firstErr(writeErr, closeErr))
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
