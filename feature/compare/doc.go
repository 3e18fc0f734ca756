// Package compare reconciles two bar schedules and serves the result.
//
// Files are dispatched on their extension to the CSV, XML or IFC parser, the
// resulting tables are joined on mark by core/reconcile and the report carries
// the joined rows, a summary and per-file diagnostics (IFC vendor, skipped
// elements, resolved conflicts).
//
// Schedules come from an upload or from the storage bucket. Parsed stored
// schedules are cached by object ETag and parser options.
//
// # HTTP Endpoints
//
//   - POST /compare : multipart upload with fields left and right (either optional).
//   - POST /compare/objects : {"left": key, "right": key} from the storage bucket.
//   - GET /schedules : stored schedules with a supported extension.
//
// Both compare endpoints return CSV instead of JSON with ?format=csv.
package compare
