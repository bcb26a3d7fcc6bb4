// Package suppress decides which token ranges of a syntax tree must keep
// their authored line layout, be collapsed to one line, or be left verbatim
// when already multi-line. It emits ordered suppression records for the
// line-break solver; it never edits text, computes indentation, or resolves
// overlaps between records from different policies.
//
// The package is purely functional over the immutable tree: one invocation
// appends to one accumulator and shares nothing, so it may run concurrently
// across subtrees.
package suppress
