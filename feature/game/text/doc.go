// Package text decodes the game's line tables.
//
// A line table is a little endian file:
//
//	u16 line count | count x {u32 offset, u16 length in UTF-16 code units} | UTF-16LE text
//
// Offsets are absolute. Decode returns the lines in file order; a table with
// zero lines decodes to an empty, non-nil slice.
package text
