package ifc

// Config holds the server-wide resolver defaults. Sessions start from
// Mapping and may override it.
type Config struct {
	// Mapping is the default property mapping.
	Mapping Mapping `mapstructure:"mapping"`
	// ConflictPolicy is warn, overwrite or fail.
	ConflictPolicy string `mapstructure:"conflict_policy" default:"warn"`
}

// Options returns resolver options for the configured defaults.
func (c Config) Options() (Options, error) {
	policy, err := ParseConflictPolicy(c.ConflictPolicy)
	if err != nil {
		return Options{}, err
	}
	if err := c.Mapping.Validate(); err != nil && !c.Mapping.IsZero() {
		return Options{}, err
	}
	return Options{Mapping: c.Mapping, Policy: policy}, nil
}
