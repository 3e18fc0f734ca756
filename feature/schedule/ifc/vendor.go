package ifc

import (
	"fmt"
	"strings"
)

// Vendor is the authoring application family of a model. The set is closed:
// each vendor owns one naming convention for reinforcement properties.
type Vendor int

const (
	// VendorTekla is Tekla Structures. It is the fallback for unknown applications.
	VendorTekla Vendor = iota
	// VendorRevit is Autodesk Revit.
	VendorRevit
)

// revitMarker identifies Revit in IfcApplication and the FILE_NAME header.
const revitMarker = "Revit"

func (v Vendor) String() string {
	switch v {
	case VendorTekla:
		return "tekla"
	case VendorRevit:
		return "revit"
	default:
		return fmt.Sprintf("vendor(%d)", int(v))
	}
}

// ParseVendor parses a vendor name (case-insensitive).
func ParseVendor(s string) (Vendor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tekla":
		return VendorTekla, nil
	case "revit":
		return VendorRevit, nil
	default:
		return 0, fmt.Errorf("unknown vendor %q (want tekla or revit)", s)
	}
}

// Preset returns the property paths the vendor's IFC export uses.
func (v Vendor) Preset() Mapping {
	switch v {
	case VendorRevit:
		return Mapping{
			Quantity: "Construction / Quantity",
			Diameter: "Dimensions / Bar Diameter",
			Shape:    "Construction / Shape",
			Mark:     "Identity Data / Rebar Number",
			Material: "Materials and Finishes / Structural Material",
		}
	default:
		return Mapping{
			Quantity: "Tekla Reinforcement - Bending List / Number of bars in group",
			Diameter: "Tekla Reinforcement - Bending List / Size",
			Shape:    "Tekla Reinforcement - Bending List / Shape",
			Mark:     "Tekla Reinforcement - Bending List / Group position number",
			Material: "Tekla Reinforcement - Bending List / Grade",
		}
	}
}

// DetectVendor inspects the declared authoring application of the model.
// IfcApplication is consulted first, then the header's originating system.
func DetectVendor(m *Model) Vendor {
	// IfcApplication(ApplicationDeveloper, Version, ApplicationFullName, ApplicationIdentifier)
	if apps := m.ByType(TypeApplication); len(apps) > 0 {
		app := apps[0]
		if strings.Contains(app.Text(2), revitMarker) || strings.Contains(app.Text(3), revitMarker) {
			return VendorRevit
		}
		return VendorTekla
	}
	if strings.Contains(m.OriginatingSystem, revitMarker) {
		return VendorRevit
	}
	return VendorTekla
}
