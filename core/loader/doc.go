// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which registers its routes on
// the shared Fiber router.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps the registry of features: Register adds one, LoadAll loads
// the enabled ones in registration order. The comparison and settings modules
// are loaded this way by the start command.
package loader
