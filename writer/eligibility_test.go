package writer

import (
	"testing"

	"github.com/tsawler/quill/core"
)

// TestCanCompress tests the eligibility rule over every object kind
func TestCanCompress(t *testing.T) {
	tests := []struct {
		name string
		obj  core.Object
		want bool
	}{
		{"null", core.Null{}, false},
		{"stream", &core.Stream{Dict: core.Dict{}, Data: []byte("x")}, false},
		{"bool", core.Bool(true), true},
		{"int", core.Int(42), true},
		{"real", core.Real(3.14), true},
		{"string", core.String("text"), true},
		{"name", core.Name("Test"), true},
		{"array", core.Array{core.Int(1)}, true},
		{"dict", core.Dict{"Type": core.Name("Page")}, true},
		{"indirect ref", core.IndirectRef{Number: 5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanCompress(tt.obj); got != tt.want {
				t.Errorf("CanCompress(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

// TestCanCompressNil tests that a nil object is not eligible
func TestCanCompressNil(t *testing.T) {
	if CanCompress(nil) {
		t.Error("CanCompress(nil) = true, want false")
	}
}
