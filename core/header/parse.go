package header

import (
	"bytes"
	"unsafe"

	"golang.org/x/net/http/httpguts"
)

// unsafeString converts byte slice to string without allocation
// WARNING: The returned string shares memory with the byte slice
func unsafeString(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}

// Parse populates h with zero-copy views into buf, one field per line.
// Lines are split on '\n' with an optional trailing '\r'; the name is
// everything before the first ':' and must satisfy the field-name token
// grammar, the value is the remainder with surrounding OWS trimmed and must
// contain only valid field octets. A blank line ends the section and is not
// consumed as a field; reading past it is the message assembler's job.
//
// Returns the number of fields added and whether the block was well-formed.
// Parsing stops at the first malformed line or on capacity exhaustion, in
// both cases reporting false with the fields added so far kept.
func (h *Header) Parse(buf []byte) (int, bool) {
	added := 0

	for len(buf) > 0 {
		var line []byte
		if i := bytes.IndexByte(buf, '\n'); i >= 0 {
			line = buf[:i]
			buf = buf[i+1:]
		} else {
			line = buf
			buf = nil
		}
		if len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}

		// Blank line terminates the header section
		if len(line) == 0 {
			break
		}

		colon := bytes.IndexByte(line, ':')
		if colon <= 0 {
			return added, false
		}

		name := line[:colon]
		value := trimOWS(line[colon+1:])

		if !httpguts.ValidHeaderFieldName(unsafeString(name)) {
			return added, false
		}
		if !httpguts.ValidHeaderFieldValue(unsafeString(value)) {
			return added, false
		}

		if !h.Add(name, value) {
			return added, false
		}
		added++
	}

	return added, true
}

// trimOWS strips optional whitespace (SP / HTAB) from both ends.
func trimOWS(b []byte) []byte {
	for len(b) > 0 && (b[0] == ' ' || b[0] == '\t') {
		b = b[1:]
	}
	for len(b) > 0 && (b[len(b)-1] == ' ' || b[len(b)-1] == '\t') {
		b = b[:len(b)-1]
	}
	return b
}
