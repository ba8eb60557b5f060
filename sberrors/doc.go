// Package sberrors provides structured error types for srcbundle.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - InvalidSourceError: fragment registration given a malformed or
//     missing content descriptor
//   - ConflictingSourceError: the same filename registered twice with
//     differing original content
//   - ConfigError: invalid configuration or caller-supplied input options
//
// # Usage with errors.Is
//
//	err := b.AddSource(bundle.Source{Content: ed, Filename: "a.js"})
//	if errors.Is(err, sberrors.ErrConflictingSource) {
//	    var conflict *sberrors.ConflictingSourceError
//	    if errors.As(err, &conflict) {
//	        log.Printf("conflicting registration for %s", conflict.Filename)
//	    }
//	}
package sberrors
