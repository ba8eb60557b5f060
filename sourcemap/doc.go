// Package sourcemap implements the position-mapping artifact that srcbundle
// emits: the standard JSON schema (file, sources, sourcesContent, names,
// mappings) with base64 VLQ delta-encoded mapping segments.
//
// The package provides the codec itself plus the two pieces of shared
// state the encoding depends on:
//
//   - Offsets: the running delta-encoding state threaded through one merge.
//     It tracks the generated column on the current output line, the last
//     emitted source index, and, per source index, the last emitted
//     original (line, column), so fragments that revisit a source file
//     non-contiguously stay delta-correct relative to that source's own
//     previous position.
//   - Locator: resolves a byte offset to (line, column) over a fixed text.
//
// All line and column values are zero-based. Columns are measured in
// bytes of the UTF-8 text.
package sourcemap
