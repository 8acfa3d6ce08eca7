package file

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// readArtifact reads the whole file, undoing a trailing .zst or .gz layer.
// It returns the content and the extension of the inner format.
func readArtifact(ctx context.Context, path string) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", fmt.Errorf("context error: %w", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}

	name := strings.ToLower(filepath.Base(path))
	switch filepath.Ext(name) {
	case ".zst":
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, "", fmt.Errorf("create zstd decoder: %w", err)
		}
		defer dec.Close()

		data, err := dec.DecodeAll(raw, nil)
		if err != nil {
			return nil, "", fmt.Errorf("decompress %s: %w", path, err)
		}
		return data, filepath.Ext(strings.TrimSuffix(name, ".zst")), nil

	case ".gz":
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, "", fmt.Errorf("decompress %s: %w", path, err)
		}
		defer zr.Close()

		data, err := io.ReadAll(zr)
		if err != nil {
			return nil, "", fmt.Errorf("decompress %s: %w", path, err)
		}
		return data, filepath.Ext(strings.TrimSuffix(name, ".gz")), nil
	}

	return raw, filepath.Ext(name), nil
}
