// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber app from it: listen port, optional API
// key, upload body limit and the idle lifetime of sessions (which carry the
// user's IFC mapping).
package server
