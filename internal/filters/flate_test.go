package filters

import (
	"bytes"
	"testing"
)

// TestFlateRoundTrip tests that encoded data decodes back to the input
func TestFlateRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		level int
	}{
		{"empty", []byte{}, 6},
		{"short text", []byte("hello world"), 6},
		{"repetitive", bytes.Repeat([]byte("1 0 2 5 "), 200), 6},
		{"binary", []byte{0x00, 0xff, 0x80, 0x7f, 0x01}, 9},
		{"store level", []byte("uncompressed"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := FlateEncode(tt.data, tt.level)
			if err != nil {
				t.Fatalf("FlateEncode() error = %v", err)
			}

			decoded, err := FlateDecode(encoded)
			if err != nil {
				t.Fatalf("FlateDecode() error = %v", err)
			}
			if !bytes.Equal(decoded, tt.data) {
				t.Errorf("round trip changed data: got %q, want %q", decoded, tt.data)
			}
		})
	}
}

// TestFlateEncodeDeterministic tests byte-identical output across runs
func TestFlateEncodeDeterministic(t *testing.T) {
	data := bytes.Repeat([]byte("deterministic payload "), 50)

	first, err := FlateEncode(data, 6)
	if err != nil {
		t.Fatalf("FlateEncode() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := FlateEncode(data, 6)
		if err != nil {
			t.Fatalf("FlateEncode() error = %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("run %d produced different bytes", i)
		}
	}
}

// TestClampLevel tests silent clamping of out-of-range levels
func TestClampLevel(t *testing.T) {
	tests := []struct {
		name  string
		level int
		want  int
	}{
		{"below range", -3, 0},
		{"at minimum", 0, 0},
		{"in range", 6, 6},
		{"at maximum", 9, 9},
		{"above range", 15, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampLevel(tt.level); got != tt.want {
				t.Errorf("ClampLevel(%d) = %d, want %d", tt.level, got, tt.want)
			}
		})
	}
}

// TestFlateEncodeOutOfRangeLevel tests that clamped levels still encode
func TestFlateEncodeOutOfRangeLevel(t *testing.T) {
	data := []byte("clamped but valid")

	for _, level := range []int{-5, 12} {
		encoded, err := FlateEncode(data, level)
		if err != nil {
			t.Fatalf("FlateEncode(level=%d) error = %v", level, err)
		}
		decoded, err := FlateDecode(encoded)
		if err != nil {
			t.Fatalf("FlateDecode() error = %v", err)
		}
		if !bytes.Equal(decoded, data) {
			t.Errorf("round trip at level %d changed data", level)
		}
	}
}

// TestFlateDecodeInvalid tests that garbage input fails
func TestFlateDecodeInvalid(t *testing.T) {
	if _, err := FlateDecode([]byte("not zlib data")); err == nil {
		t.Error("FlateDecode(garbage) should fail")
	}
}
