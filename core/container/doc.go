// Package container provides the in-memory handles over game files that the
// resolver hands out.
//
// Three variants exist:
//
//   - Single: one file, exposed as a single member.
//   - Pack: one archive file holding many members (2-byte identifier, count, offset table).
//   - Folder: a directory whose members are selected once by a Filter.
//
// Containers keep their member bytes in memory after the first load and only
// write back to the backing storage.Store on Save, and only when modified.
// A Folder is unusable until Initialize has run exactly once.
//
// Containers are not safe for concurrent use.
package container
