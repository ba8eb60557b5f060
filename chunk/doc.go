// Package chunk implements the fragment editor used by srcbundle bundles.
//
// An Editor owns one fragment's immutable original text and its current,
// possibly edited, text. Internally the original is partitioned into a
// doubly-linked list of chunks that split on demand; each chunk carries
// optional inserted text on either side and an optional content
// replacement. Because every chunk remembers its original byte span, the
// editor can always produce mapping segments tracing the current text back
// to original positions, no matter how it has been rewritten.
//
// Editors are registered with a bundle.Bundle, which drives indentation,
// trimming, and mapping-segment encoding through the same surface exposed
// here. All offsets are byte offsets into the original text.
package chunk
