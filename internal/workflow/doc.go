// Package workflow executes subweave batch operations.
//
// The Runner loads input tracks, calls the grouping merger, the word
// aligner, or the json3 converter, and writes exactly one artifact per
// operation. Each run carries a UUID run ID in its context so every log line
// of a batch can be correlated. A failed read or parse aborts the operation
// before anything is written; a multi-step run stops at the first failure.
package workflow
