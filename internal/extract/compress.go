package extract

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// writeCompressed writes gzip and zstd siblings of path for static servers
// that serve precompressed assets.
func writeCompressed(path string, data []byte) ([]string, error) {
	gz, err := gzipBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to gzip %s: %w", path, err)
	}
	zst, err := zstdBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to zstd %s: %w", path, err)
	}

	gzPath, zstPath := path+".gz", path+".zst"
	if err := writeFile(gzPath, gz); err != nil {
		return nil, err
	}
	if err := writeFile(zstPath, zst); err != nil {
		return nil, err
	}
	return []string{gzPath, zstPath}, nil
}

func gzipBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func zstdBytes(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}
