package aas

// SubmodelElement is a single named nameplate property.
type SubmodelElement struct {
	// IDShort is the property identifier used as the lookup key.
	// Identifiers are compared byte-for-byte; duplicates are permitted
	// and lookup returns the first match in stored order.
	IDShort string `json:"id_short" yaml:"id_short"`

	// Value is the property value, carried opaquely as text.
	Value string `json:"value" yaml:"value"`

	// Unit is the unit of measure. A nil Unit means no unit was supplied
	// and the field is omitted on encode; an explicit empty string is
	// preserved and re-emitted.
	Unit *string `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// UnitString returns the unit, or the empty string when no unit was supplied.
func (e SubmodelElement) UnitString() string {
	if e.Unit == nil {
		return ""
	}
	return *e.Unit
}

// Shell is a minimal Asset Administration Shell record: the asset's
// identity plus its ordered nameplate properties. A Shell owns its
// nameplate elements by value.
type Shell struct {
	// ID is the asset identifier. Any text is accepted, including empty;
	// no format validation is applied.
	ID string `json:"id" yaml:"id"`

	// AssetType is a free-text asset type (typically manufacturer + model).
	AssetType string `json:"asset_type" yaml:"asset_type"`

	// Nameplate is the ordered sequence of properties. May be empty.
	Nameplate []SubmodelElement `json:"nameplate" yaml:"nameplate"`
}

// Element returns the first nameplate property whose id_short equals name.
// The match is exact and case-sensitive.
func (s *Shell) Element(name string) (SubmodelElement, bool) {
	for _, e := range s.Nameplate {
		if e.IDShort == name {
			return e, true
		}
	}
	return SubmodelElement{}, false
}

// PropertyNames returns all id_short values in stored order.
func (s *Shell) PropertyNames() []string {
	names := make([]string, 0, len(s.Nameplate))
	for _, e := range s.Nameplate {
		names = append(names, e.IDShort)
	}
	return names
}
