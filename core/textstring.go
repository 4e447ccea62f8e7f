package core

import (
	"golang.org/x/text/encoding/unicode"
)

var utf16be = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)

// TextString builds a String following the PDF text-string convention:
// strings PDFDocEncoding can hold are stored as single-byte PDFDocEncoding,
// everything else is encoded as UTF-16BE with a leading byte order mark.
func TextString(s string) String {
	if buf, ok := pdfDocEncode(s); ok {
		return String(buf)
	}

	out, err := utf16be.NewEncoder().Bytes([]byte(s))
	if err != nil {
		// Only reachable for invalid UTF-8 input; keep the raw bytes
		// rather than dropping information.
		return String(s)
	}
	return String(out)
}

// pdfDocEncode attempts to encode s in PDFDocEncoding. It covers the
// ranges where PDFDocEncoding agrees with Unicode: ASCII printables, the
// common whitespace controls, and the Latin-1 block 0xA1-0xFF (minus the
// soft hyphen, which PDFDocEncoding leaves undefined), plus the Euro sign
// at 0xA0. The accents and punctuation PDFDocEncoding places at 0x18-0x1F
// and 0x80-0x9F are rare enough that those strings take the UTF-16 path,
// which is lossless.
func pdfDocEncode(s string) ([]byte, bool) {
	buf := make([]byte, 0, len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			buf = append(buf, byte(r))
		case r >= 0x20 && r <= 0x7e:
			buf = append(buf, byte(r))
		case r >= 0xa1 && r <= 0xff && r != 0xad:
			buf = append(buf, byte(r))
		case r == '€': // Euro
			buf = append(buf, 0xa0)
		default:
			return nil, false
		}
	}
	return buf, true
}
