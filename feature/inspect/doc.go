// Package inspect exposes a game session over HTTP.
//
// The session Manager has a single owner, so every handler runs under one
// mutex held by the Service.
//
// # HTTP Endpoints
//
//   - GET /game : Version, info, language and state of the session.
//   - GET /game/files : File map of the version in the active language.
//   - GET /game/resolved : Containers resolved so far.
//   - GET /game/files/:file : Member names of a container.
//   - GET /game/strings/:name : Lines of a text table (supports ?language=N).
//   - GET /game/data : Registered data kinds and whether they are loaded.
//   - GET /game/data/:kind : Materialized structures of a kind.
//   - POST /game/save : Persist the session (disabled in read-only mode).
package inspect
