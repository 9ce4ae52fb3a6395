package commands

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aas-twin/twin-go/pkg/ticklog"
)

// writeTrace builds a small trace file with events from two assets.
func writeTrace(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "trace.tlog")
	logger, err := ticklog.NewFileLogger(path)
	require.NoError(t, err)

	logger.Log(ticklog.NewTickEvent("MOTOR-1", 1, 11.98))
	logger.Log(ticklog.NewTickEvent("MOTOR-1", 2, 25.30))
	logger.Log(ticklog.NewResetEvent("MOTOR-1"))
	logger.Log(ticklog.NewTickEvent("MOTOR-2", 1, 11.98))
	require.NoError(t, logger.Close())

	return path
}

func TestBuildFilter(t *testing.T) {
	filter, err := BuildFilter("MOTOR-1", "reset")
	require.NoError(t, err)
	assert.Equal(t, "MOTOR-1", filter.AssetID)
	require.NotNil(t, filter.Kind)
	assert.Equal(t, ticklog.KindReset, *filter.Kind)

	filter, err = BuildFilter("", "")
	require.NoError(t, err)
	assert.Empty(t, filter.AssetID)
	assert.Nil(t, filter.Kind)

	_, err = BuildFilter("", "bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")
}

func TestRunView(t *testing.T) {
	path := writeTrace(t)

	var buf bytes.Buffer
	require.NoError(t, RunView(path, ticklog.Filter{}, &buf))

	out := buf.String()
	assert.Contains(t, out, "[MOTOR-1] TICK  tick=1 rpm=11.98")
	assert.Contains(t, out, "[MOTOR-1] TICK  tick=2 rpm=25.30")
	assert.Contains(t, out, "[MOTOR-1] RESET")
	assert.Contains(t, out, "[MOTOR-2] TICK  tick=1 rpm=11.98")
	assert.Contains(t, out, "Total: 4 events")
}

func TestRunViewFiltered(t *testing.T) {
	path := writeTrace(t)

	var buf bytes.Buffer
	require.NoError(t, RunView(path, ticklog.Filter{AssetID: "MOTOR-2"}, &buf))

	out := buf.String()
	assert.NotContains(t, out, "MOTOR-1")
	assert.Contains(t, out, "Total: 1 events")
}

func TestRunViewMissingFile(t *testing.T) {
	var buf bytes.Buffer
	err := RunView(filepath.Join(t.TempDir(), "nope.tlog"), ticklog.Filter{}, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open trace file")
}

func TestRunExportJSONL(t *testing.T) {
	path := writeTrace(t)
	output := filepath.Join(t.TempDir(), "trace.jsonl")

	require.NoError(t, RunExport(path, "jsonl", output))

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 4)

	var first exportEvent
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "MOTOR-1", first.AssetID)
	assert.Equal(t, "TICK", first.Kind)
	assert.Equal(t, uint32(1), first.Tick)
	assert.Equal(t, 11.98, first.RPM)

	var third exportEvent
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &third))
	assert.Equal(t, "RESET", third.Kind)
}

func TestRunExportCSV(t *testing.T) {
	path := writeTrace(t)
	output := filepath.Join(t.TempDir(), "trace.csv")

	require.NoError(t, RunExport(path, "csv", output))

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 5)

	assert.Equal(t, []string{"timestamp", "asset_id", "kind", "tick", "rpm"}, rows[0])
	assert.Equal(t, "MOTOR-1", rows[1][1])
	assert.Equal(t, "TICK", rows[1][2])
	assert.Equal(t, "1", rows[1][3])
	assert.Equal(t, "11.98", rows[1][4])
	assert.Equal(t, "RESET", rows[3][2])
}

func TestRunExportUnknownFormat(t *testing.T) {
	path := writeTrace(t)

	err := RunExport(path, "xml", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestRunStats(t *testing.T) {
	path := writeTrace(t)

	var buf bytes.Buffer
	require.NoError(t, RunStats(path, &buf))

	out := buf.String()
	assert.Contains(t, out, "Total events: 4")
	assert.Contains(t, out, "TICK   3")
	assert.Contains(t, out, "RESET  1")
	assert.Contains(t, out, "MOTOR-1: 3 events, 1 resets, max tick 2, last rpm 25.30")
	assert.Contains(t, out, "MOTOR-2: 1 events, 0 resets, max tick 1, last rpm 11.98")
}

func TestRunStatsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.tlog")
	logger, err := ticklog.NewFileLogger(path)
	require.NoError(t, err)
	require.NoError(t, logger.Close())

	var buf bytes.Buffer
	require.NoError(t, RunStats(path, &buf))
	assert.Equal(t, "Total events: 0\n", buf.String())
}
