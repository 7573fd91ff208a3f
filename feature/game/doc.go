// Package game manages the data files of one installed game.
//
// The Manager is the entry point. It owns a Resolver, which maps logical file
// identifiers (FileID) and a language index to containers for the installed
// Version, and a Data aggregate of lazily materialized structured data.
//
// # Resolution
//
// Each Version has a file map from FileID to a path under the RomFS or ExeFS
// root. Localized files carry a language folder in their path. Resolving the
// same identifier and language twice returns the same container, so edits are
// shared by every caller. Identifiers without a mapping for the version fail
// with ErrUnsupportedFileKind.
//
// # Data
//
// Initialize builds a fresh Data aggregate from the layout registered for the
// version. Versions without a layout get an empty aggregate. Nothing is parsed
// until a cache's Get is called.
//
// # Saving
//
// SaveAll serializes every materialized cache into its container, persists
// every modified container and, unless closing, runs Initialize again. Edits
// that were not saved before Initialize are discarded. Failures do not stop the
// save: every cache and container is attempted and the errors are combined.
//
// A Manager is single-owner and not safe for concurrent use.
package game
