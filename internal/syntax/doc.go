// Package syntax models parsed source as an arena-allocated, immutable tree.
// Invariants:
//   - Token and node IDs are 1-based; 0 is the "no value" sentinel.
//   - Tokens sit in the arena in source order, so neighbor queries are
//     index arithmetic.
//   - Parent links are non-owning back-references; every node has at most
//     one parent and the tree outlives any formatting pass over it.
//   - Trees in error-recovery state keep a regular shape: required tokens
//     absent from the source appear as missing (zero-width) placeholders
//     rather than holes.
package syntax
