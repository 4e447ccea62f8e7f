// Package writer implements object stream compression for PDF output
// (ISO 32000-1 section 7.5.7).
//
// Object streams (/ObjStm, PDF 1.5+) pack multiple non-stream objects into
// a single Flate-compressed stream, typically reducing file size
// substantially compared to storing each object individually.
//
// # Usage
//
// The [ObjectStreamWriter] receives serialized objects and batches them
// into [ObjectStream] containers:
//
//	w := writer.NewObjectStreamWriter(writer.DefaultConfig())
//	for _, obj := range objects {
//	    if !writer.CanCompress(obj.Object) {
//	        // write obj as a top-level indirect object instead
//	        continue
//	    }
//	    data, err := core.EncodeObject(obj.Object)
//	    if err != nil {
//	        return err
//	    }
//	    if err := w.AddObject(obj.Ref, data); err != nil {
//	        return err
//	    }
//	}
//	streams, err := w.Finalize()
//
// Each finalized container turns itself into bytes with
// [ObjectStream.GenerateStreamData] and [ObjectStream.GenerateDictionary],
// or emits a complete indirect object with [ObjectStream.WriteIndirect].
//
// # Eligibility
//
// Not every object may live inside an object stream. [CanCompress]
// implements the rule: stream objects and the null object are excluded,
// everything else qualifies. The caller decides eligibility before calling
// AddObject; the writer itself accepts whatever bytes it is handed.
//
// # Determinism
//
// Offsets depend on insertion order, and containers are returned in
// creation order, so a fixed sequence of AddObject calls at a fixed
// compression level produces byte-identical output across runs.
//
// Decoding object streams back into objects is a separate, reader-side
// concern and is not part of this package. /Extends chaining and
// encryption are likewise not handled here; an encrypting file writer
// must encrypt the finished container as a whole.
package writer
