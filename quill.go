// Package quill provides writer-side PDF primitives: an object model with
// deterministic serialization, and object stream compression per
// ISO 32000-1 section 7.5.7.
//
// Basic usage:
//
//	streams, direct, err := quill.PackObjects(objects)
//	if err != nil {
//	    // handle error
//	}
//	for _, s := range streams {
//	    // embed each container in the file body, e.g. s.WriteIndirect(w, 6)
//	}
//	for _, obj := range direct {
//	    // write ineligible objects as conventional indirect objects
//	}
//
// With options:
//
//	streams, direct, err := quill.PackObjects(objects,
//	    quill.WithMaxObjectsPerStream(50),
//	    quill.WithCompressionLevel(9),
//	)
//
// For finer control, the lower-level core and writer packages are also
// available.
package quill

import (
	"github.com/tsawler/quill/core"
	"github.com/tsawler/quill/writer"
)

// NewPacker creates an ObjectStreamWriter configured by the given options.
func NewPacker(opts ...Option) *writer.ObjectStreamWriter {
	return writer.NewObjectStreamWriter(buildConfig(opts))
}

// PackObjects serializes every eligible object and batches the results
// into object stream containers. Ineligible objects (streams and nulls)
// are returned in the second slice, untouched and in input order, for the
// caller to write as conventional top-level indirect objects.
//
// With the Disabled option every object is returned in the second slice
// and no containers are produced; this mirrors the fallback path a file
// writer takes when object streams are turned off.
func PackObjects(objects []core.IndirectObject, opts ...Option) ([]*writer.ObjectStream, []core.IndirectObject, error) {
	config := buildConfig(opts)

	var direct []core.IndirectObject
	if !config.Enabled {
		direct = append(direct, objects...)
		return nil, direct, nil
	}

	w := writer.NewObjectStreamWriter(config)
	for _, obj := range objects {
		if !writer.CanCompress(obj.Object) {
			direct = append(direct, obj)
			continue
		}

		data, err := core.EncodeObject(obj.Object)
		if err != nil {
			return nil, nil, err
		}
		if err := w.AddObject(obj.Ref, data); err != nil {
			return nil, nil, err
		}
	}

	streams, err := w.Finalize()
	if err != nil {
		return nil, nil, err
	}
	return streams, direct, nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
