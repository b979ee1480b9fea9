// Package fast-header provides a bounded, zero-copy HTTP header store and an
// HTTP-date codec for Go.
//
// Fast-Header is built for hot HTTP paths and memory-constrained targets: the
// header store holds byte-slice views into a caller-owned message buffer (no
// copies, no per-field allocation) behind a fixed capacity, and the date codec
// converts between Unix-second instants and the three RFC 7231 HTTP-date
// grammars.
//
// Features
//
//   - Zero-copy design: fields are views into the caller's buffer
//   - Bounded capacity: fixed field limit (default 100), no growth surprises
//   - Insertion-ordered: serialization order is insertion order, duplicates kept
//   - Wire fidelity: exact "name: value\r\n" lines, no trailing blank line
//   - HTTP-date codec: produces RFC 1123 GMT, accepts RFC 1123/RFC 850/asctime
//   - Smart pooling: header stores and scratch buffers are recycled
//   - SIMD-minded matching: CPU-feature-gated case-insensitive name comparison
//
// Quick Start
//
// Basic usage example:
//
// package main
//
// import (
//     "log"
//
//     "github.com/searchktools/fast-header/core/header"
//     "github.com/searchktools/fast-header/core/httpdate"
// )
//
// func main() {
//     raw := []byte("Host: example.com\r\nAccept: */*\r\n\r\n")
//
//     h := header.Acquire()
//     defer header.Release(h)
//
//     if _, ok := h.Parse(raw); !ok {
//         log.Fatal("malformed header block")
//     }
//
//     h.Set(header.HeaderDate, []byte(httpdate.Now()))
//     log.Printf("%s", h.String())
// }
//
// Modules
//
// The library is organized into several modules:
//
//   - core/header: bounded zero-copy header field store, parsing, serialization
//   - core/httpdate: HTTP-date formatting and parsing (RFC 7231 grammars)
//   - core/optimize: case-insensitive ASCII comparison with CPU dispatch
//   - core/pools: tiered byte pools for serialization scratch buffers
//
// Lifetime contract
//
// The header store never owns bytes. Every field is a view into the buffer the
// caller supplied to Parse, Add or Set; the store must be Reset or dropped
// before that buffer is freed, reused or mutated. See core/header for details.
//
// For more information, see https://github.com/searchktools/fast-header
package fastheader
