// Package settings keeps per-session configuration: the five property paths
// used to read IFC files.
//
// The mapping lives in the Fiber session, so it survives page reloads but not
// the session's expiry. A session that never saved a mapping, or reset it, uses
// the server default (the Tekla preset unless configured otherwise).
//
// # HTTP Endpoints
//
//   - GET /settings/ifc : current mapping and the vendor presets.
//   - PUT /settings/ifc : save a mapping.
//   - DELETE /settings/ifc : restore the default.
package settings
