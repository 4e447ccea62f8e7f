package quill

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/quill/core"
	"github.com/tsawler/quill/internal/filters"
	"github.com/tsawler/quill/writer"
)

func testObjects() []core.IndirectObject {
	return []core.IndirectObject{
		{Ref: core.IndirectRef{Number: 1}, Object: core.Dict{"Type": core.Name("Catalog")}},
		{Ref: core.IndirectRef{Number: 2}, Object: core.Int(42)},
		{Ref: core.IndirectRef{Number: 3}, Object: core.Null{}},
		{Ref: core.IndirectRef{Number: 4}, Object: &core.Stream{Dict: core.Dict{}, Data: []byte("raw")}},
		{Ref: core.IndirectRef{Number: 5}, Object: core.Array{core.Int(1), core.Int(2)}},
	}
}

// TestPackObjects tests splitting input into packed and direct objects
func TestPackObjects(t *testing.T) {
	streams, direct, err := PackObjects(testObjects())
	if err != nil {
		t.Fatalf("PackObjects() error = %v", err)
	}

	if len(streams) != 1 {
		t.Fatalf("got %d streams, want 1", len(streams))
	}
	if len(streams[0].Objects) != 3 {
		t.Errorf("stream holds %d objects, want 3", len(streams[0].Objects))
	}

	// The null and the stream fall back to direct writing, input order kept.
	var directNums []int
	for _, obj := range direct {
		directNums = append(directNums, obj.Ref.Number)
	}
	if diff := cmp.Diff([]int{3, 4}, directNums); diff != "" {
		t.Errorf("direct objects mismatch (-want +got):\n%s", diff)
	}

	// Packed data is the deterministic serialized form.
	if got := string(streams[0].Objects[0].Data); got != "<</Type /Catalog>>" {
		t.Errorf("first packed object = %q", got)
	}

	// The container inflates back to index + data.
	compressed, err := streams[0].GenerateStreamData(6)
	if err != nil {
		t.Fatalf("GenerateStreamData() error = %v", err)
	}
	if _, err := filters.FlateDecode(compressed); err != nil {
		t.Errorf("container payload does not inflate: %v", err)
	}
}

// TestPackObjectsDisabled tests that a disabled packer routes everything
// to the direct path
func TestPackObjectsDisabled(t *testing.T) {
	streams, direct, err := PackObjects(testObjects(), Disabled())
	if err != nil {
		t.Fatalf("PackObjects() error = %v", err)
	}
	if len(streams) != 0 {
		t.Errorf("got %d streams, want 0", len(streams))
	}
	if len(direct) != len(testObjects()) {
		t.Errorf("got %d direct objects, want %d", len(direct), len(testObjects()))
	}
}

// TestPackObjectsBatching tests the max-objects option through the facade
func TestPackObjectsBatching(t *testing.T) {
	objects := []core.IndirectObject{
		{Ref: core.IndirectRef{Number: 1}, Object: core.Int(1)},
		{Ref: core.IndirectRef{Number: 2}, Object: core.Int(2)},
		{Ref: core.IndirectRef{Number: 3}, Object: core.Int(3)},
	}

	streams, _, err := PackObjects(objects, WithMaxObjectsPerStream(2))
	if err != nil {
		t.Fatalf("PackObjects() error = %v", err)
	}

	var counts []int
	for _, s := range streams {
		counts = append(counts, len(s.Objects))
	}
	if diff := cmp.Diff([]int{2, 1}, counts); diff != "" {
		t.Errorf("batching mismatch (-want +got):\n%s", diff)
	}
}

// TestNewPacker tests facade construction options
func TestNewPacker(t *testing.T) {
	p := NewPacker(WithMaxObjectsPerStream(0), WithCompressionLevel(9))
	config := p.Config()

	if config.MaxObjectsPerStream != 1 {
		t.Errorf("MaxObjectsPerStream = %d, want 1 (floored)", config.MaxObjectsPerStream)
	}
	if config.CompressionLevel != 9 {
		t.Errorf("CompressionLevel = %d, want 9", config.CompressionLevel)
	}
	if !p.IsEnabled() {
		t.Error("packer should be enabled by default")
	}

	if NewPacker(Disabled()).IsEnabled() {
		t.Error("Disabled() packer reports enabled")
	}
}

// TestMust tests the panic helper
func TestMust(t *testing.T) {
	if got := Must(7, nil); got != 7 {
		t.Errorf("Must() = %d, want 7", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Must() with an error should panic")
		}
	}()
	Must(0, writer.ErrStreamsDisabled)
}
