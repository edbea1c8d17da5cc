// Package render pretty-prints alignment matrices and recovered
// alignments for terminal output.
//
// The core packages expose plain read-only data; render is the only place
// any formatting happens. MatrixString draws the full score table with
// '-'-prefixed sequence labels on both axes, ResultString lists each
// recovered alignment with a BLAST-style midline ('|' match, '.'
// mismatch, space against a gap).
//
// Output is deterministic: alignments are listed in row-major order of
// their start cells.
package render
