package writer

import (
	"github.com/tsawler/quill/core"
)

// Config controls object stream generation.
type Config struct {
	// MaxObjectsPerStream is the batching threshold; a new container is
	// opened once the current one reaches this count. Default: 100.
	MaxObjectsPerStream int

	// CompressionLevel is the Flate level (0-9) used when containers are
	// turned into bytes. Out-of-range values are clamped. Default: 6.
	CompressionLevel int

	// Enabled turns the subsystem on. When false, AddObject fails with
	// ErrStreamsDisabled and the caller should write objects directly.
	Enabled bool
}

// DefaultConfig returns the default object stream configuration.
func DefaultConfig() Config {
	return Config{
		MaxObjectsPerStream: 100,
		CompressionLevel:    6,
		Enabled:             true,
	}
}

// Container IDs are issued from a private high-numbered range so they can
// never collide with document-assigned object numbers.
const firstContainerID = 1000000

// ObjectStreamWriter groups serialized objects into bounded ObjectStream
// containers.
//
// Objects are routed into the current container in call order; when the
// container reaches Config.MaxObjectsPerStream a new one is opened. The
// writer is single-use: Finalize drains the current container and consumes
// the writer, after which any further call fails with ErrWriterFinalized.
//
// The writer has no internal synchronization. AddObject calls must be
// sequential; object offsets depend on strict insertion order.
type ObjectStreamWriter struct {
	config    Config
	current   *ObjectStream
	completed []*ObjectStream
	nextID    int
	finalized bool
}

// NewObjectStreamWriter creates a writer with the given configuration.
func NewObjectStreamWriter(config Config) *ObjectStreamWriter {
	return &ObjectStreamWriter{
		config: config,
		nextID: firstContainerID,
	}
}

// Config returns the writer's configuration.
func (w *ObjectStreamWriter) Config() Config {
	return w.config
}

// IsEnabled reports whether object streams are enabled.
func (w *ObjectStreamWriter) IsEnabled() bool {
	return w.config.Enabled
}

// AddObject routes a serialized object into the current container, opening
// a new one if there is no current container or the current one is full.
//
// When the writer is disabled the object is not buffered and
// ErrStreamsDisabled is returned, so the caller can write it as a
// conventional top-level indirect object instead.
func (w *ObjectStreamWriter) AddObject(ref core.IndirectRef, data []byte) error {
	if !w.config.Enabled {
		return ErrStreamsDisabled
	}
	if w.finalized {
		return ErrWriterFinalized
	}

	if w.current == nil || w.current.IsFull(w.config.MaxObjectsPerStream) {
		w.flushCurrent()
		w.current = NewObjectStream(core.IndirectRef{Number: w.nextID})
		w.nextID++
	}

	w.current.AddObject(ref, data)
	return nil
}

// flushCurrent moves a non-empty current container to the completed list.
func (w *ObjectStreamWriter) flushCurrent() {
	if w.current != nil && !w.current.IsEmpty() {
		w.completed = append(w.completed, w.current)
	}
	w.current = nil
}

// Finalize drains the current container and returns all completed
// containers in creation order. The order is stable: it becomes the order
// in which the containers are placed in the file body, which reproducible
// output depends on.
//
// Finalize consumes the writer; a writer that never received objects
// yields an empty list, not an error.
func (w *ObjectStreamWriter) Finalize() ([]*ObjectStream, error) {
	if w.finalized {
		return nil, ErrWriterFinalized
	}
	w.finalized = true

	w.flushCurrent()
	streams := w.completed
	w.completed = nil
	return streams, nil
}

// Stats is a read-only snapshot of the writer's progress.
type Stats struct {
	TotalStreams            int
	TotalObjects            int
	AverageObjectsPerStream float64
}

// Stats reports the writer's current state. Objects in the still-open
// container count toward TotalObjects, so mid-session queries reflect the
// true in-flight count, not just committed containers.
func (w *ObjectStreamWriter) Stats() Stats {
	total := 0
	for _, s := range w.completed {
		total += len(s.Objects)
	}

	stats := Stats{
		TotalStreams: len(w.completed),
		TotalObjects: total,
	}
	if w.current != nil {
		stats.TotalObjects += len(w.current.Objects)
	}
	if len(w.completed) > 0 {
		stats.AverageObjectsPerStream = float64(total) / float64(len(w.completed))
	}
	return stats
}
