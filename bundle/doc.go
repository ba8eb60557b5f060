// Package bundle composes many independently edited text fragments into
// one output string and merges their position mappings into one coherent
// source map.
//
// A Bundle owns an ordered list of fragments, each wrapping a
// chunk.Editor, plus intro and outro text and a default join separator.
// Fragments registered with a filename are deduplicated into a table of
// unique sources with stable indices; registering the same filename twice
// with different original content fails with
// sberrors.ConflictingSourceError. Fragments without a filename are
// synthetic: they contribute output text but their positions resolve to
// nothing in the merged map.
//
// The text composer (String) and the mapping merge engine (GenerateMap)
// consume the same ordered fragment list with identical line and column
// accounting, so composed text and composed mappings never drift apart:
// the merged stream carries exactly one generated-line marker per newline
// of the composed output.
//
// Bundles assume exclusive single-writer access; share nothing between
// goroutines without external synchronization.
package bundle
