package core

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// Serialize writes obj to w using PDF syntax, exactly as the object would
// appear inside a PDF file body. Output is deterministic: dictionary keys
// are written in sorted order, so serializing the same object twice
// produces identical bytes.
func Serialize(obj Object, w io.Writer) error {
	if obj == nil {
		return writeString(w, "null")
	}

	switch o := obj.(type) {
	case Null:
		return writeString(w, "null")

	case Bool:
		if o {
			return writeString(w, "true")
		}
		return writeString(w, "false")

	case Int:
		return writeString(w, strconv.FormatInt(int64(o), 10))

	case Real:
		return writeString(w, formatReal(float64(o)))

	case String:
		return serializeString(o, w)

	case Name:
		return serializeName(o, w)

	case Array:
		return serializeArray(o, w)

	case Dict:
		return serializeDict(o, w)

	case *Stream:
		return serializeStream(o, w)

	case IndirectRef:
		_, err := fmt.Fprintf(w, "%d %d R", o.Number, o.Generation)
		return err

	default:
		return fmt.Errorf("cannot serialize object of type %T", obj)
	}
}

// EncodeObject renders obj as the bytes that appear between the obj and
// endobj keywords of an indirect object. This is the form object-stream
// packing consumes. Stream objects are rejected: a stream carries its own
// Length and raw payload and has no bare-value form, which is also why it
// can never live inside an object stream.
func EncodeObject(obj Object) ([]byte, error) {
	if obj != nil && obj.Type() == ObjStream {
		return nil, fmt.Errorf("cannot encode a stream object as a bare value")
	}

	var buf bytes.Buffer
	if err := Serialize(obj, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SerializeIndirect writes a complete indirect object definition:
// "N G obj" header, the object value, and the endobj trailer.
func SerializeIndirect(obj IndirectObject, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d %d obj\n", obj.Ref.Number, obj.Ref.Generation); err != nil {
		return err
	}
	if err := Serialize(obj.Object, w); err != nil {
		return err
	}
	return writeString(w, "\nendobj\n")
}

// formatReal renders a real number with a decimal point even for whole
// values, so a Real never serializes to the same bytes as an Int and a
// reader never turns it back into an Integer.
func formatReal(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += "."
	}
	return s
}

func serializeArray(a Array, w io.Writer) error {
	if err := writeString(w, "["); err != nil {
		return err
	}
	for i, elem := range a {
		if i > 0 {
			if err := writeString(w, " "); err != nil {
				return err
			}
		}
		if err := Serialize(elem, w); err != nil {
			return err
		}
	}
	return writeString(w, "]")
}

func serializeDict(d Dict, w io.Writer) error {
	keys := maps.Keys(d)
	sort.Strings(keys)

	if err := writeString(w, "<<"); err != nil {
		return err
	}
	for _, key := range keys {
		if err := serializeName(Name(key), w); err != nil {
			return err
		}
		if err := writeString(w, " "); err != nil {
			return err
		}
		if err := Serialize(d[key], w); err != nil {
			return err
		}
	}
	return writeString(w, ">>")
}

func serializeStream(s *Stream, w io.Writer) error {
	if err := serializeDict(s.Dict, w); err != nil {
		return err
	}
	if err := writeString(w, "\nstream\n"); err != nil {
		return err
	}
	if _, err := w.Write(s.Data); err != nil {
		return err
	}
	return writeString(w, "\nendstream")
}

// serializeString writes a PDF string, choosing the literal ( ) form
// unless escaping would dominate the output, in which case the
// hexadecimal < > form is shorter and used instead.
func serializeString(s String, w io.Writer) error {
	b := []byte(s)

	binary := 0
	for _, c := range b {
		if isBinaryByte(c) {
			binary++
		}
	}

	var buf bytes.Buffer
	if 3*binary > len(b) {
		fmt.Fprintf(&buf, "<%x>", b)
	} else {
		buf.WriteByte('(')
		for _, c := range b {
			switch c {
			case '(':
				buf.WriteString(`\(`)
			case ')':
				buf.WriteString(`\)`)
			case '\\':
				buf.WriteString(`\\`)
			default:
				if c == '\n' || c == '\r' || c == '\t' || (c >= 0x20 && c < 0x7f) {
					buf.WriteByte(c)
				} else {
					fmt.Fprintf(&buf, `\%03o`, c)
				}
			}
		}
		buf.WriteByte(')')
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// isBinaryByte reports whether a byte needs a three-digit octal escape in
// a literal string. Parens and backslashes escape cheaply and are not
// counted; only octal escapes make the hexadecimal form worthwhile.
func isBinaryByte(c byte) bool {
	if c == '\n' || c == '\r' || c == '\t' {
		return false
	}
	return c < 0x20 || c >= 0x7f
}

// serializeName writes a name with #xx escapes for delimiters, whitespace,
// and bytes outside the printable ASCII range.
func serializeName(n Name, w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteByte('/')
	for _, c := range []byte(n) {
		if c < 0x21 || c > 0x7e || c == '#' || isDelimiter(c) {
			fmt.Fprintf(&buf, "#%02x", c)
		} else {
			buf.WriteByte(c)
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
