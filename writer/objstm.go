package writer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tsawler/quill/core"
	"github.com/tsawler/quill/internal/filters"
)

// PackedObject pairs an object's reference with its serialized bare value,
// the bytes that would appear between the obj and endobj keywords.
type PackedObject struct {
	Ref  core.IndirectRef
	Data []byte
}

// ObjectStream accumulates objects destined for a single /ObjStm container
// (PDF 1.5+, ISO 32000-1 section 7.5.7). Object streams store multiple
// non-stream objects in one compressed stream, providing better compression
// than storing objects individually.
//
// The container itself has no capacity limit; batching policy belongs to
// the ObjectStreamWriter, which asks IsFull with its own threshold.
type ObjectStream struct {
	// StreamID identifies the container object itself.
	StreamID core.IndirectRef

	// Objects holds the packed objects in insertion order. Order is
	// significant: it determines each object's byte offset within the
	// decompressed payload.
	Objects []PackedObject

	// First is the byte offset where object data begins in the
	// decompressed payload, i.e. the length of the index section. It is
	// set by GenerateStreamData and backs the /First dictionary entry.
	First int
}

// NewObjectStream creates an empty object stream with the given container ID.
func NewObjectStream(streamID core.IndirectRef) *ObjectStream {
	return &ObjectStream{StreamID: streamID}
}

// AddObject appends an object to the stream. No capacity check is
// performed here; callers enforce their own batching policy.
func (s *ObjectStream) AddObject(ref core.IndirectRef, data []byte) {
	s.Objects = append(s.Objects, PackedObject{Ref: ref, Data: data})
}

// IsFull reports whether the stream holds at least maxObjects objects.
func (s *ObjectStream) IsFull(maxObjects int) bool {
	return len(s.Objects) >= maxObjects
}

// IsEmpty reports whether the stream holds no objects.
func (s *ObjectStream) IsEmpty() bool {
	return len(s.Objects) == 0
}

// GenerateStreamData builds and compresses the stream payload.
//
// The decompressed payload has two sections. The index section holds one
// "objNum offset " pair per object, where offset is the object's byte
// position within the object-data section. The object-data section holds
// each object's serialized bytes followed by a single space separator, in
// insertion order. The whole payload is compressed with Flate at the given
// level (clamped to 0..9).
//
// As a side effect First is set to the index section's length. The method
// is deterministic: the same objects and level always produce identical
// bytes. It is intended to be called once per stream; calling it again
// recomputes the same result.
//
// Generating data for an empty stream fails with ErrEmptyObjectStream.
func (s *ObjectStream) GenerateStreamData(compressionLevel int) ([]byte, error) {
	if len(s.Objects) == 0 {
		return nil, ErrEmptyObjectStream
	}

	var index, body bytes.Buffer

	offset := 0
	for _, obj := range s.Objects {
		fmt.Fprintf(&index, "%d %d ", obj.Ref.Number, offset)

		body.Write(obj.Data)
		// Trailing space keeps adjacent tokens from concatenating;
		// objects in the payload are located purely by offset.
		body.WriteByte(' ')

		offset = body.Len()
	}

	s.First = index.Len()

	index.Write(body.Bytes())

	compressed, err := filters.FlateEncode(index.Bytes(), compressionLevel)
	if err != nil {
		return nil, fmt.Errorf("compress object stream %d: %w", s.StreamID.Number, err)
	}
	return compressed, nil
}

// GenerateDictionary builds the container's stream dictionary for the
// compressed payload returned by GenerateStreamData:
//
//	/Type /ObjStm  /N <count>  /First <offset>  /Length <len>  /Filter /FlateDecode
//
// No optional entries are emitted; in particular /Extends (chained object
// streams) is not supported.
func (s *ObjectStream) GenerateDictionary(compressed []byte) core.Dict {
	return core.Dict{
		"Type":   core.Name("ObjStm"),
		"N":      core.Int(len(s.Objects)),
		"First":  core.Int(s.First),
		"Length": core.Int(len(compressed)),
		"Filter": core.Name("FlateDecode"),
	}
}

// WriteIndirect generates the stream data and dictionary and writes the
// complete indirect object to w:
//
//	N 0 obj
//	<< /Type /ObjStm ... >>
//	stream
//	...compressed payload...
//	endstream
//	endobj
//
// It returns the number of bytes written so the caller can record the
// container's position in the cross-reference table.
func (s *ObjectStream) WriteIndirect(w io.Writer, compressionLevel int) (int64, error) {
	compressed, err := s.GenerateStreamData(compressionLevel)
	if err != nil {
		return 0, err
	}
	dict := s.GenerateDictionary(compressed)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d %d obj\n", s.StreamID.Number, s.StreamID.Generation)
	if err := core.Serialize(dict, &buf); err != nil {
		return 0, err
	}
	buf.WriteString("\nstream\n")
	buf.Write(compressed)
	buf.WriteString("\nendstream\nendobj\n")

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}
