package filters

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
)

// FlateEncode compresses data with zlib (the FlateDecode filter) at the
// given compression level. Levels outside 0..9 are clamped rather than
// rejected, so slightly out-of-range values from user configuration still
// produce output. Output is deterministic for a fixed input and level.
func FlateEncode(data []byte, level int) ([]byte, error) {
	level = ClampLevel(level)

	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, fmt.Errorf("failed to create zlib writer: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, fmt.Errorf("zlib compression failed: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zlib compression finish failed: %w", err)
	}

	return buf.Bytes(), nil
}

// FlateDecode decompresses zlib-compressed data.
func FlateDecode(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zlib reader: %w", err)
	}
	defer r.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}

	return buf.Bytes(), nil
}

// ClampLevel clamps a compression level to the valid zlib range 0..9.
func ClampLevel(level int) int {
	if level < zlib.NoCompression {
		return zlib.NoCompression
	}
	if level > zlib.BestCompression {
		return zlib.BestCompression
	}
	return level
}
