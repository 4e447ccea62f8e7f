package writer

import (
	"github.com/tsawler/quill/core"
)

// CanCompress reports whether obj may be stored inside an object stream.
//
// Stream objects are never eligible: a stream carries its own /Length and
// raw payload and cannot be nested inside another stream's compressed body.
// The null object is never eligible either: object number 0 is reserved as
// the head of the cross-reference free list. Every other object kind
// (booleans, numbers, strings, names, arrays, dictionaries, and indirect
// references) is eligible.
//
// The predicate is total over ObjectType; an unrecognized type is treated
// as not compressible.
func CanCompress(obj core.Object) bool {
	if obj == nil {
		return false
	}

	switch obj.Type() {
	case core.ObjStream:
		return false
	case core.ObjNull:
		return false
	case core.ObjBool, core.ObjInt, core.ObjReal, core.ObjString,
		core.ObjName, core.ObjArray, core.ObjDict, core.ObjIndirect:
		return true
	default:
		return false
	}
}
