// Package contact implements the contact directory's submission pipeline.
//
// A submission passes through independent field validators, then a
// case-insensitive duplicate check against the current store snapshot. The
// outcome is returned as a Result value: either the ordered list of every
// violation, or a Contact ready for insertion. Nothing in the pipeline itself
// writes to the store; Service serializes the read-then-append sequence.
//
// The package depends on the Repository interface defined in repository.go.
// It never imports net/http.
package contact
