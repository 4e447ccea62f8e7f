package writer

import "errors"

var (
	// ErrStreamsDisabled is returned by AddObject when object streams are
	// turned off in the configuration. The caller should fall back to
	// writing the object as a conventional top-level indirect object.
	ErrStreamsDisabled = errors.New("object streams are disabled")

	// ErrEmptyObjectStream is returned when stream data is requested for
	// a container holding no objects. An empty /ObjStm is not a valid PDF
	// construct.
	ErrEmptyObjectStream = errors.New("object stream contains no objects")

	// ErrWriterFinalized is returned when an ObjectStreamWriter is used
	// after Finalize has consumed it.
	ErrWriterFinalized = errors.New("object stream writer already finalized")
)
