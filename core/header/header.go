// Package header implements a bounded, insertion-ordered store of HTTP
// header fields backed by zero-copy views into a caller-owned buffer.
//
// Lifetime contract: a Header never owns bytes. Every Field aliases the
// buffer passed to Parse, Add or Set; if that buffer is freed, recycled or
// mutated, every view derived from it is invalid. Reset or drop the Header
// before touching the buffer.
package header

import (
	"io"
	"sync"

	"github.com/searchktools/fast-header/core/optimize"
	"github.com/searchktools/fast-header/core/pools"
)

// DefaultLimit is the field capacity used by New and Acquire.
const DefaultLimit = 100

// Field is one name/value pair. Both slices are non-owning views.
type Field struct {
	Name  []byte
	Value []byte
}

// Header is an insertion-ordered set of fields with a fixed capacity.
// Serialization order is insertion order; duplicate names are kept.
// Not safe for unsynchronized concurrent mutation.
type Header struct {
	fields []Field
	limit  int
}

// New creates an empty store limited to DefaultLimit fields.
func New() *Header {
	return NewWithLimit(DefaultLimit)
}

// NewWithLimit creates an empty store with the given field capacity.
// The capacity is fixed for the store's lifetime.
func NewWithLimit(limit int) *Header {
	if limit < 0 {
		limit = 0
	}
	return &Header{limit: limit}
}

// Add appends a field at the end of the sequence. Duplicate names are
// allowed. Returns false and leaves the store unchanged when the store
// already holds Limit() fields.
func (h *Header) Add(name, value []byte) bool {
	if len(h.fields) >= h.limit {
		return false
	}
	h.fields = append(h.fields, Field{Name: name, Value: value})
	return true
}

// Set replaces the value of the first field matching name (ASCII
// case-insensitive), keeping its position. If no field matches, Set behaves
// exactly like Add, including the capacity check.
func (h *Header) Set(name, value []byte) bool {
	if i := h.find(name); i >= 0 {
		h.fields[i].Value = value
		return true
	}
	return h.Add(name, value)
}

// Has reports whether a field with the given name is present.
func (h *Header) Has(name []byte) bool {
	return h.find(name) >= 0
}

// Get returns the value of the first field matching name. The second result
// reports presence; a false means no field matched, never an aliased
// placeholder.
func (h *Header) Get(name []byte) ([]byte, bool) {
	if i := h.find(name); i >= 0 {
		return h.fields[i].Value, true
	}
	return nil, false
}

// Len returns the current field count.
func (h *Header) Len() int {
	return len(h.fields)
}

// IsEmpty reports whether the store holds no fields.
func (h *Header) IsEmpty() bool {
	return len(h.fields) == 0
}

// Limit returns the fixed field capacity.
func (h *Header) Limit() int {
	return h.limit
}

// Del removes every field matching name (ASCII case-insensitive),
// preserving the relative order of the remaining fields.
func (h *Header) Del(name []byte) {
	kept := h.fields[:0]
	for _, f := range h.fields {
		if !optimize.EqualFoldASCII(f.Name, name) {
			kept = append(kept, f)
		}
	}
	// Drop trailing views so recycled buffers are not pinned
	for i := len(kept); i < len(h.fields); i++ {
		h.fields[i] = Field{}
	}
	h.fields = kept
}

// Reset removes every field. The capacity is unchanged and the backing
// slice is kept for reuse (memory not freed, just reset).
func (h *Header) Reset() {
	for i := range h.fields {
		h.fields[i] = Field{}
	}
	h.fields = h.fields[:0]
}

// Clone copies the view pairs into a new store with the same limit. The
// clone shares the viewed bytes; it does not extend the buffer's lifetime.
func (h *Header) Clone() *Header {
	c := &Header{
		fields: make([]Field, len(h.fields)),
		limit:  h.limit,
	}
	copy(c.fields, h.fields)
	return c
}

// VisitAll calls fn for every field in insertion order.
func (h *Header) VisitAll(fn func(name, value []byte)) {
	for i := range h.fields {
		fn(h.fields[i].Name, h.fields[i].Value)
	}
}

// find returns the index of the first field whose name fold-matches, or -1.
// Linear scan: the capacity bound keeps this cheap and allocation-free.
func (h *Header) find(name []byte) int {
	for i := range h.fields {
		if optimize.EqualFoldASCII(h.fields[i].Name, name) {
			return i
		}
	}
	return -1
}

// AppendBytes appends the serialized header section to dst and returns the
// extended slice. Each field renders as "name: value\r\n" in insertion
// order; the blank line terminating an HTTP header section is the message
// assembler's job, not this store's.
func (h *Header) AppendBytes(dst []byte) []byte {
	for i := range h.fields {
		dst = append(dst, h.fields[i].Name...)
		dst = append(dst, ':', ' ')
		dst = append(dst, h.fields[i].Value...)
		dst = append(dst, '\r', '\n')
	}
	return dst
}

// WriteTo serializes the header section to w in a single write, using a
// pooled scratch buffer.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	buf := pools.GetBytes(h.sectionLen())
	buf = h.AppendBytes(buf[:0])
	n, err := w.Write(buf)
	pools.PutBytes(buf)
	return int64(n), err
}

// String returns the serialized header section.
func (h *Header) String() string {
	return string(h.AppendBytes(nil))
}

// sectionLen is the exact serialized size: name + ": " + value + "\r\n".
func (h *Header) sectionLen() int {
	n := 0
	for i := range h.fields {
		n += len(h.fields[i].Name) + len(h.fields[i].Value) + 4
	}
	return n
}

var headerPool = sync.Pool{
	New: func() any {
		return New()
	},
}

// Acquire returns a pooled empty Header with the default limit.
func Acquire() *Header {
	return headerPool.Get().(*Header)
}

// Release resets h and returns it to the pool. The caller must not use h
// afterwards. Pooled stores always come back with DefaultLimit.
func Release(h *Header) {
	h.Reset()
	h.limit = DefaultLimit
	headerPool.Put(h)
}
