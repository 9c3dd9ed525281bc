// Package ssdeep implements context-triggered piecewise hashing (CTPH), the
// algorithm behind ssdeep fuzzy hashes. A fuzzy hash is a compact textual
// signature of a byte stream; two signatures can be compared to produce a
// similarity score in [0, 100] that approximates how much structural content
// two inputs share, even when the inputs differ by insertions, deletions, or
// localized edits that would defeat a cryptographic digest.
//
// The hashing side drives up to 31 parallel block-hash contexts over a
// single pass of the input and picks the one whose digest is closest to the
// target length. The comparison side parses two signatures, checks their
// block sizes are compatible, and scores them with a length-normalized edit
// distance. Both halves are wire-compatible with the reference ssdeep C
// implementation: given the same bytes, this package produces the same
// signature string, byte for byte.
package ssdeep
