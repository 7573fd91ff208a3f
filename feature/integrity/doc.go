// Package integrity provides health checks for a configured game install.
//
// # Checks Provided
//
//   - Layout: Verifies that every file mapped for the install's version exists in the store.
//   - Bucket: Checks that the storage bucket exists and lists its install roots (object backend only).
//   - Journal: Validates that the save journal table matches the journal model (columns, types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/layout : Runs the layout check (supports ?language=N).
//   - GET /integrity/bucket : Runs the bucket check.
//   - GET /integrity/journal : Runs the journal schema check.
package integrity
