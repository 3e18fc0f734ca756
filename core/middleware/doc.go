// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key). An empty configured key leaves the
//     API open, which suits a workstation install.
//   - rayid: a request id for every incoming request, stored in the context and
//     echoed in the X-Ray-ID response header for tracing.
package middleware
