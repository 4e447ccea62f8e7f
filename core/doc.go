// Package core provides the PDF object model and its byte-level serialization.
//
// This package implements the fundamental building blocks for producing PDF
// files, including all eight PDF object types (null, boolean, integer, real,
// string, name, array, and dictionary), as well as streams and indirect
// references.
//
// # Object Types
//
// PDF defines eight basic object types, all implemented as types satisfying
// the Object interface:
//
//   - [Null] - represents the PDF null object
//   - [Bool] - represents PDF boolean values (true/false)
//   - [Int] - represents PDF integers
//   - [Real] - represents PDF real numbers (floating point)
//   - [String] - represents PDF string objects (literal or hexadecimal)
//   - [Name] - represents PDF name objects (e.g., /Type, /Font)
//   - [Array] - represents PDF arrays
//   - [Dict] - represents PDF dictionaries
//
// Additionally, [Stream] represents a PDF stream (dictionary + binary data),
// and [IndirectRef] represents a reference to an indirect object.
//
// # Serialization
//
// [Serialize] writes any object to an io.Writer in PDF syntax.
// [EncodeObject] renders an object's bare value as a byte slice, the form
// consumed by object-stream packing, and [SerializeIndirect] wraps a value
// in a complete "N G obj ... endobj" definition. Output is deterministic:
// dictionary keys are sorted, so identical objects always serialize to
// identical bytes.
//
// [TextString] builds strings following the text-string convention,
// choosing between PDFDocEncoding-compatible bytes and UTF-16BE with a
// byte order mark.
package core
