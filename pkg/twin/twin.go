package twin

import (
	"fmt"
	"strings"

	"github.com/aas-twin/twin-go/pkg/aas"
)

// Twin is the in-memory digital twin: one exclusively-owned shell record
// plus the simulation counters. The counters are runtime state only and
// are never part of the exported JSON document.
type Twin struct {
	shell *aas.Shell

	// Simulation state.
	rpmSim    float64
	tickCount uint32
}

// New constructs a Twin from an AAS JSON document.
// On decode failure no Twin is produced; the returned error wraps the
// underlying *aas.DecodeError.
func New(jsonText string) (*Twin, error) {
	shell, err := aas.DecodeString(jsonText)
	if err != nil {
		return nil, fmt.Errorf("Invalid AAS JSON: %w", err)
	}

	return &Twin{shell: shell}, nil
}

// Shell returns the twin's shell record.
func (t *Twin) Shell() *aas.Shell {
	return t.shell
}

// ID returns the asset identifier verbatim.
func (t *Twin) ID() string {
	return t.shell.ID
}

// AssetType returns the asset type verbatim.
func (t *Twin) AssetType() string {
	return t.shell.AssetType
}

// Property returns the first nameplate property matching name, formatted
// as "<value> <unit>". The separating space is emitted even when no unit
// is present, leaving a trailing space; callers depend on this exact
// formatting. A missing property is reported as an ordinary string,
// "Property '<name>' not found", never as an error.
func (t *Twin) Property(name string) string {
	if e, ok := t.shell.Element(name); ok {
		return fmt.Sprintf("%s %s", e.Value, e.UnitString())
	}
	return fmt.Sprintf("Property '%s' not found", name)
}

// ListProperties returns all property identifiers in stored order,
// joined with ", ". An empty nameplate yields an empty string.
func (t *Twin) ListProperties() string {
	return strings.Join(t.shell.PropertyNames(), ", ")
}

// Summary returns a three-line human-readable description of the twin.
func (t *Twin) Summary() string {
	return fmt.Sprintf("Asset: %s\nType: %s\nProperties: %s",
		t.shell.ID, t.shell.AssetType, t.ListProperties())
}

// ExportJSON renders the current shell record as canonical AAS JSON.
// The export is a pure function of the shell; simulation counters never
// appear in the document.
func (t *Twin) ExportJSON() string {
	return aas.EncodeString(t.shell)
}
