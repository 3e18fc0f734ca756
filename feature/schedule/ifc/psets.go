package ifc

import "strings"

// PropertySets maps a property set name to its properties by name.
// Values are unwrapped Go values (see Value.Native).
type PropertySets map[string]map[string]any

// Get returns the value of pset/property.
func (ps PropertySets) Get(path PropertyPath) (any, bool) {
	props, ok := ps[path.PropertySet]
	if !ok {
		return nil, false
	}
	v, ok := props[path.Property]
	return v, ok
}

// quantityTypes maps IfcPhysicalSimpleQuantity subtypes to the index of their value.
var quantityTypes = map[string]int{
	"IFCQUANTITYCOUNT":  3,
	"IFCQUANTITYLENGTH": 3,
	"IFCQUANTITYAREA":   3,
	"IFCQUANTITYVOLUME": 3,
	"IFCQUANTITYWEIGHT": 3,
	"IFCQUANTITYTIME":   3,
}

// psetIndex resolves the property sets attached to element occurrences.
type psetIndex struct {
	model *Model
	// byObject holds the property definitions attached directly to an object.
	byObject map[int][]int
	// typeOf holds the type object of an occurrence.
	typeOf map[int]int
}

func newPsetIndex(m *Model) *psetIndex {
	idx := &psetIndex{
		model:    m,
		byObject: make(map[int][]int),
		typeOf:   make(map[int]int),
	}

	// IfcRelDefinesByProperties(GlobalId, OwnerHistory, Name, Description, RelatedObjects, RelatingPropertyDefinition)
	for _, rel := range m.ByType(TypeRelDefinesByProperties) {
		defs := rel.Arg(5).Refs()
		for _, obj := range rel.Arg(4).Refs() {
			idx.byObject[obj] = append(idx.byObject[obj], defs...)
		}
	}

	// IfcRelDefinesByType(GlobalId, OwnerHistory, Name, Description, RelatedObjects, RelatingType)
	for _, rel := range m.ByType(TypeRelDefinesByType) {
		typ := rel.Arg(5)
		if typ.Kind != KindRef {
			continue
		}
		for _, obj := range rel.Arg(4).Refs() {
			idx.typeOf[obj] = typ.Ref
		}
	}

	return idx
}

// For returns the property sets of an occurrence. Sets inherited from the
// element type come first and occurrence values override them.
func (idx *psetIndex) For(id int) PropertySets {
	psets := PropertySets{}

	if typeID, ok := idx.typeOf[id]; ok {
		if typ, ok := idx.model.Entity(typeID); ok {
			// IfcTypeObject(GlobalId, OwnerHistory, Name, Description, ApplicableOccurrence, HasPropertySets, ...)
			for _, def := range typ.Arg(5).Refs() {
				idx.collect(psets, def)
			}
		}
	}

	for _, def := range idx.byObject[id] {
		idx.collect(psets, def)
	}

	return psets
}

func (idx *psetIndex) collect(psets PropertySets, defID int) {
	def, ok := idx.model.Entity(defID)
	if !ok {
		return
	}

	name := def.Text(2)
	if name == "" {
		return
	}

	var members []int
	switch def.Type {
	case TypePropertySet:
		// IfcPropertySet(GlobalId, OwnerHistory, Name, Description, HasProperties)
		members = def.Arg(4).Refs()
	case TypeElementQuantity:
		// IfcElementQuantity(GlobalId, OwnerHistory, Name, Description, MethodOfMeasurement, Quantities)
		members = def.Arg(5).Refs()
	default:
		return
	}

	props, ok := psets[name]
	if !ok {
		props = make(map[string]any)
		psets[name] = props
	}

	for _, id := range members {
		prop, ok := idx.model.Entity(id)
		if !ok {
			continue
		}
		propName := strings.TrimSpace(prop.Text(0))
		if propName == "" {
			continue
		}

		if prop.Type == TypePropertySingleValue {
			// IfcPropertySingleValue(Name, Description, NominalValue, Unit)
			props[propName] = prop.Arg(2).Native()
			continue
		}
		if i, ok := quantityTypes[prop.Type]; ok {
			props[propName] = prop.Arg(i).Native()
		}
	}
}
