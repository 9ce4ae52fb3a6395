package twingo_test

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aas-twin/twin-go/pkg/aas"
	"github.com/aas-twin/twin-go/pkg/ticklog"
	"github.com/aas-twin/twin-go/pkg/twin"
)

const motorJSON = `{
  "id": "MOTOR-12345",
  "asset_type": "Siemens 1LE1",
  "nameplate": [
    {"id_short": "Voltage", "value": "400", "unit": "V"},
    {"id_short": "Power", "value": "7.5", "unit": "kW"}
  ]
}`

// TestMotorLifecycle walks a twin through the full workflow: construct
// from JSON, query the nameplate, run the simulation with tracing, reset
// and export.
func TestMotorLifecycle(t *testing.T) {
	tw, err := twin.New(motorJSON)
	require.NoError(t, err)

	// Identity and nameplate queries.
	assert.Equal(t, "MOTOR-12345", tw.ID())
	assert.Equal(t, "Siemens 1LE1", tw.AssetType())
	assert.Equal(t, "400 V", tw.Property("Voltage"))
	assert.Equal(t, "7.5 kW", tw.Property("Power"))
	assert.Equal(t, "Property 'Speed' not found", tw.Property("Speed"))
	assert.Equal(t, "Voltage, Power", tw.ListProperties())
	assert.Equal(t, "Asset: MOTOR-12345\nType: Siemens 1LE1\nProperties: Voltage, Power", tw.Summary())

	// Simulation with a trace file attached.
	tracePath := filepath.Join(t.TempDir(), "motor.tlog")
	trace, err := ticklog.NewFileLogger(tracePath)
	require.NoError(t, err)

	assert.Equal(t, "Live RPM: 11.98 (tick: 1)", tw.Advance())
	trace.Log(ticklog.NewTickEvent(tw.ID(), tw.TickCount(), tw.RPM()))

	for i := 0; i < 4; i++ {
		tw.Advance()
		trace.Log(ticklog.NewTickEvent(tw.ID(), tw.TickCount(), tw.RPM()))
	}
	assert.Equal(t, uint32(5), tw.TickCount())

	tw.Reset()
	trace.Log(ticklog.NewResetEvent(tw.ID()))
	require.NoError(t, trace.Close())

	assert.Equal(t, 0.0, tw.RPM())
	assert.Equal(t, uint32(0), tw.TickCount())

	// The trace contains every recorded step in order.
	reader, err := ticklog.NewReader(tracePath)
	require.NoError(t, err)
	defer reader.Close()

	var events []ticklog.Event
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		events = append(events, event)
	}
	require.Len(t, events, 6)
	assert.Equal(t, ticklog.KindTick, events[0].Kind)
	assert.Equal(t, uint32(1), events[0].Tick)
	assert.InDelta(t, 11.98, events[0].RPM, 0.005)
	assert.Equal(t, ticklog.KindReset, events[5].Kind)

	// Export survives a round trip and the simulation left no mark on it.
	exported := tw.ExportJSON()
	shell, err := aas.DecodeString(exported)
	require.NoError(t, err)
	assert.Equal(t, "MOTOR-12345", shell.ID)
	require.Len(t, shell.Nameplate, 2)
	assert.Equal(t, "Voltage", shell.Nameplate[0].IDShort)
}

// TestConstructionFailure verifies that a bad document produces no twin
// and a descriptive error.
func TestConstructionFailure(t *testing.T) {
	tw, err := twin.New(`{"id": "X"}`)
	require.Error(t, err)
	assert.Nil(t, tw)
	assert.Contains(t, err.Error(), "Invalid AAS JSON: ")
	assert.Contains(t, err.Error(), "missing required field")
}

// TestYAMLToTwin converts a YAML document to canonical JSON and feeds it
// to a twin, mirroring what the twin-sim CLI does for .yaml files.
func TestYAMLToTwin(t *testing.T) {
	const motorYAML = `id: MOTOR-12345
asset_type: Siemens 1LE1
nameplate:
  - id_short: Voltage
    value: "400"
    unit: V
`
	shell, err := aas.DecodeYAML([]byte(motorYAML))
	require.NoError(t, err)

	tw, err := twin.New(aas.EncodeString(shell))
	require.NoError(t, err)
	assert.Equal(t, "400 V", tw.Property("Voltage"))
}
