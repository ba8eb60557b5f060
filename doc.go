// Package srcbundle provides tools for composing many independently edited
// text fragments into a single output string while merging each fragment's
// position-mapping data into one coherent source map.
//
// srcbundle is aimed at source-transformation tools that build an output
// file out of many input files (for example, concatenating modules) and
// still need to resolve any position in the output back to the exact
// original file, line, and column.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - bundle: register fragments, compose output text, and merge mappings
//   - chunk: the per-fragment editor that owns a fragment's text and
//     produces its encoded mapping segments
//   - sourcemap: the mapping artifact, VLQ codec, and offset-tracking state
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/srcbundle
//
// # Quick Start
//
// Compose two files and generate a merged source map:
//
//	import (
//		"github.com/erraggy/srcbundle/bundle"
//		"github.com/erraggy/srcbundle/chunk"
//	)
//
//	b := bundle.New(bundle.WithSeparator("\n"))
//	err := b.AddSource(bundle.Source{
//		Content: chunk.NewEditor("function a(){}", chunk.WithFilename("a.js")),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = b.AddSource(bundle.Source{
//		Content: chunk.NewEditor("function b(){}", chunk.WithFilename("b.js")),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	out := b.String()
//	sm := b.GenerateMap(bundle.WithFile("dist/out.js"), bundle.WithIncludeContent())
//	data, err := sm.ToJSON()
//
// # Bundle Package
//
// The bundle package is the aggregate root. Fragments are registered with
// AddSource (or the Append convenience), deduplicated by originating
// filename, composed with String, indented with Indent, trimmed with the
// Trim family, and merged into one mapping stream with GenerateMap.
// Registering the same filename twice with different original content
// fails with sberrors.ConflictingSourceError; the first registration wins
// the stable source index.
//
// # Chunk Package
//
// The chunk package implements the fragment editor: an immutable original
// text plus a chunked overlay of edits. It supports targeted edits
// (Overwrite, Remove, AppendLeft, PrependRight), indentation rewrites,
// trimming, cloning, and most importantly EncodeMappingSegments, which
// contributes this fragment's delta-encoded mapping segments to a merged
// stream while consuming the shared sourcemap.Offsets state.
//
// # Sourcemap Package
//
// The sourcemap package defines the serializable artifact (version, file,
// sources, sourcesContent, names, mappings) along with the base64 VLQ
// codec, a decoder, a byte-offset locator, and the Offsets state that
// keeps delta encoding correct across fragments, including when several
// non-adjacent fragments reference the same original file.
//
// # Error Handling
//
// Structured errors live in the sberrors package and support errors.Is
// and errors.As:
//
//	err := b.AddSource(bundle.Source{Content: ed})
//	if errors.Is(err, sberrors.ErrConflictingSource) {
//		// same filename registered twice with different original content
//	}
//
// # Command-Line Interface
//
// In addition to the library packages, srcbundle provides a CLI:
//
//	# Concatenate files and emit a source map
//	srcbundle concat -o dist/out.js -map dist/out.js.map src/a.js src/b.js
//
//	# Build from a YAML manifest
//	srcbundle concat -manifest bundle.yaml
//
//	# Summarize an existing map
//	srcbundle inspect dist/out.js.map
//
// Install the CLI:
//
//	go install github.com/erraggy/srcbundle/cmd/srcbundle@latest
//
// # Concurrency
//
// A Bundle and its editors assume exclusive single-writer access. Create
// separate instances for concurrent use; no operation blocks or performs
// I/O.
package srcbundle
