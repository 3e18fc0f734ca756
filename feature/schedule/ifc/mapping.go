package ifc

import (
	"fmt"
	"strings"
)

// pathSeparator separates the property set from the property in a mapping path.
const pathSeparator = "/"

// PropertyPath addresses one property of one property set.
type PropertyPath struct {
	PropertySet string
	Property    string
}

// ParsePath parses "pset / property". Whitespace around both parts is ignored.
func ParsePath(s string) (PropertyPath, error) {
	pset, prop, ok := strings.Cut(s, pathSeparator)
	pset, prop = strings.TrimSpace(pset), strings.TrimSpace(prop)
	if !ok || pset == "" || prop == "" {
		return PropertyPath{}, fmt.Errorf("invalid property path %q: want \"pset / property\"", s)
	}
	return PropertyPath{PropertySet: pset, Property: prop}, nil
}

func (p PropertyPath) String() string {
	return p.PropertySet + " " + pathSeparator + " " + p.Property
}

// Mapping names the property path of each extracted attribute.
// It is the user-editable configuration of the resolver.
type Mapping struct {
	// Quantity is the number of bars in the group.
	Quantity string `json:"quantity" yaml:"quantity" mapstructure:"quantity" default:"Tekla Reinforcement - Bending List / Number of bars in group"`
	// Diameter is the bar size.
	Diameter string `json:"diameter" yaml:"diameter" mapstructure:"diameter" default:"Tekla Reinforcement - Bending List / Size"`
	// Shape is the bending shape code.
	Shape string `json:"shape" yaml:"shape" mapstructure:"shape" default:"Tekla Reinforcement - Bending List / Shape"`
	// Mark is the bar mark.
	Mark string `json:"mark" yaml:"mark" mapstructure:"mark" default:"Tekla Reinforcement - Bending List / Group position number"`
	// Material is the steel grade.
	Material string `json:"material" yaml:"material" mapstructure:"material" default:"Tekla Reinforcement - Bending List / Grade"`
}

// DefaultMapping returns the Tekla preset, which is the default configuration.
func DefaultMapping() Mapping {
	return VendorTekla.Preset()
}

// IsZero reports whether no path is set.
func (m Mapping) IsZero() bool {
	return m == Mapping{}
}

// IsDefault reports whether m is unset or equal to the default preset.
func (m Mapping) IsDefault() bool {
	return m.IsZero() || m == DefaultMapping()
}

// Validate checks that every path is well formed.
func (m Mapping) Validate() error {
	_, err := m.resolve()
	return err
}

// paths is a Mapping with parsed property paths.
type paths struct {
	quantity PropertyPath
	diameter PropertyPath
	shape    PropertyPath
	mark     PropertyPath
	material PropertyPath
}

func (m Mapping) resolve() (paths, error) {
	var (
		p   paths
		err error
	)
	fields := []struct {
		name   string
		value  string
		target *PropertyPath
	}{
		{"quantity", m.Quantity, &p.quantity},
		{"diameter", m.Diameter, &p.diameter},
		{"shape", m.Shape, &p.shape},
		{"mark", m.Mark, &p.mark},
		{"material", m.Material, &p.material},
	}
	for _, f := range fields {
		if *f.target, err = ParsePath(f.value); err != nil {
			return paths{}, fmt.Errorf("%s: %w", f.name, err)
		}
	}
	return p, nil
}

// SelectMapping returns the mapping to use for a model from vendor.
// A mapping the user changed is always honoured; the default preset is replaced by
// the detected vendor's preset.
func SelectMapping(vendor Vendor, user Mapping) Mapping {
	if user.IsDefault() {
		return vendor.Preset()
	}
	return user
}
