package cli

import (
	"bytes"
	"testing"

	"campus-navigator/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--config=" + t.TempDir()}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestFormatTravelTime(t *testing.T) {
	tests := []struct {
		minutes  float64
		expected string
	}{
		{minutes: 0, expected: "0 min"},
		{minutes: 2.19, expected: "2 min"},
		{minutes: 2.5, expected: "3 min"},
		{minutes: 59.4, expected: "59 min"},
		{minutes: 59.6, expected: "1 hr 0 min"},
		{minutes: 135, expected: "2 hr 15 min"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTravelTime(tt.minutes))
		})
	}
}

func TestLocationsCommand(t *testing.T) {
	out, err := run(t, "locations")
	require.NoError(t, err)

	assert.Contains(t, out, "Available locations on campus:")
	assert.Contains(t, out, "- Main Gate (Gate) at coordinates (0.00, 0.00)")
	assert.Contains(t, out, "- Volta Hall (Residence) at coordinates (120.00, 120.00)")
}

func TestRouteCommand(t *testing.T) {
	out, err := run(t, "route", "Main Gate", "Great Hall")
	require.NoError(t, err)

	assert.Equal(t, "Route from Main Gate to Great Hall:\n"+
		"  1. Main Gate\n"+
		"  2. Balme Library\n"+
		"  3. Great Hall\n"+
		"Distance: 182.51 m\n"+
		"Estimated time: 2 min\n", out)
}

func TestRouteCommand_SameLocation(t *testing.T) {
	out, err := run(t, "route", "Great Hall", "Great Hall")
	require.NoError(t, err)
	assert.Equal(t, "You are already at Great Hall.\n", out)
}

func TestRouteCommand_Errors(t *testing.T) {
	_, err := run(t, "route", "Main Gate", "Unknown Place")
	assert.ErrorIs(t, err, service.ErrLocationNotFound)

	_, err = run(t, "route", "Main Gate", "Great Hall", "--speed=-2")
	assert.ErrorIs(t, err, service.ErrInvalidSpeed)

	_, err = run(t, "route", "Main Gate")
	assert.Error(t, err)
}

func TestOptionsCommand(t *testing.T) {
	out, err := run(t, "options", "Main Gate", "Great Hall", "--speed", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "Option 1: Shortest Distance Route\n  Main Gate -> Balme Library -> Great Hall\n")
	assert.Contains(t, out, "Option 2: Alternative Route via Administration Block\n")
	assert.Contains(t, out, "Option 3: Alternative Route via Engineering Building\n")
	assert.NotContains(t, out, "Option 4")
}
