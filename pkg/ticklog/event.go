package ticklog

import "time"

// Event represents one simulation trace record.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event was recorded (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// AssetID identifies the twin that produced the event.
	AssetID string `cbor:"2,keyasint"`

	// Kind classifies the event.
	Kind Kind `cbor:"3,keyasint"`

	// Tick is the tick counter after the operation.
	Tick uint32 `cbor:"4,keyasint"`

	// RPM is the simulated RPM accumulator after the operation.
	RPM float64 `cbor:"5,keyasint"`
}

// Kind classifies the simulation operation that produced an event.
type Kind uint8

const (
	// KindTick indicates an advance step.
	KindTick Kind = 0
	// KindReset indicates a reset to the initial state.
	KindReset Kind = 1
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindTick:
		return "TICK"
	case KindReset:
		return "RESET"
	default:
		return "UNKNOWN"
	}
}

// NewTickEvent builds an advance event for the given twin state.
func NewTickEvent(assetID string, tick uint32, rpm float64) Event {
	return Event{
		Timestamp: time.Now(),
		AssetID:   assetID,
		Kind:      KindTick,
		Tick:      tick,
		RPM:       rpm,
	}
}

// NewResetEvent builds a reset event.
func NewResetEvent(assetID string) Event {
	return Event{
		Timestamp: time.Now(),
		AssetID:   assetID,
		Kind:      KindReset,
	}
}
