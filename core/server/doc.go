// Package server holds the HTTP server configuration.
//
// The serve command builds the Fiber application itself; this package only
// defines the listen port, the API key guarding every route and the read-only
// switch that hides the save endpoint.
package server
