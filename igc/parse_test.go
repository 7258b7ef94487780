package igc

// go test -v github.com/skypies/xcscore/igc

import(
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skypies/xcscore"
)

func TestParseFile(t *testing.T) {
	f,err := ParseFile(filepath.Join("testdata", "midnight.igc"), nil)
	require.NoError(t, err)

	h := f.Header
	assert.Equal(t, "FLA", h.Manufacturer)
	assert.Equal(t, "6NG", h.UniqueID)
	assert.Equal(t, " FLARM-2.0", h.AdditionalData)
	assert.Equal(t, time.Date(2016, time.December, 31, 0, 0, 0, 0, time.UTC), h.Date)
	assert.Equal(t, 50, h.FixAccuracy)
	assert.Equal(t, "Night Owl", h.Pilot)
	assert.Equal(t, "Discus 2b", h.GliderType)
	assert.Equal(t, "D-KNOW", h.GliderID)
	assert.Equal(t, "6.42", h.FirmwareVersion)
	assert.Equal(t, "FLARM,NANO", h.FlightRecorder)

	task := f.Task
	assert.Equal(t, 1, task.Number)
	assert.Equal(t, "New year out and return", task.Description)
	assert.Equal(t, time.Date(2016, time.December, 31, 22, 45, 0, 0, time.UTC), task.DeclarationDate)
	require.Equal(t, 1, len(task.Turnpoints))
	assert.Equal(t, "Bottom", task.Turnpoints[0].Name)
	assert.InDelta(t, -47.0, task.Turnpoints[0].Lat, 1e-9)
	assert.InDelta(t, -9.0, task.Turnpoints[0].Long, 1e-9)
	assert.Equal(t, "Start", task.Start.Name)
	assert.Equal(t, "Finish", task.Finish.Name)
	assert.Equal(t, 5, len(task.Points()))
	assert.False(t, task.IsEmpty())

	require.Equal(t, 3, f.NumFixes())
	first := f.Fixes[0]
	assert.Equal(t, 23*3600 + 58*60 + 30, first.Time)
	assert.InDelta(t, 47.20575, first.Lat, 1e-9)
	assert.InDelta(t, 8.20575, first.Long, 1e-9)
	assert.Equal(t, 500, first.PressureAlt)
	assert.Equal(t, 550, first.GNSSAlt)
	assert.Equal(t, byte('A'), first.Validity)

	// Past midnight the clock keeps counting
	last := f.Fixes[2]
	assert.Equal(t, 86400 + 30, last.Time)
	assert.Equal(t, "00:00:30", last.TimeOfDay())
	assert.Equal(t, time.Date(2017, time.January, 1, 0, 0, 30, 0, time.UTC), f.TimestampUTC(last))
	assert.Equal(t, -10, last.PressureAlt)
	assert.Equal(t, -5, last.GNSSAlt)
	assert.Equal(t, byte('V'), last.Validity)
	assert.True(t, f.Fixes.IsSorted())

	assert.Equal(t, "skipped header XYZ\nline 10: skipped I record\nline 20: skipped L record\n" +
		"line 21: skipped E record\nline 22: skipped G record\n", f.DebugLog)
}

func TestParseMinimal(t *testing.T) {
	// No header, no task; unknown records are skipped
	log := "XJUNK\nB0900004500000N00500000EA0100001050\n\nB0910004600000S00600000WA0110001150\n"
	f,err := Parse(strings.NewReader(log), nil)
	require.NoError(t, err)
	require.Equal(t, 2, f.NumFixes())
	assert.True(t, f.Task.IsEmpty())
	assert.Equal(t, -46.0, f.Fixes[1].Lat)
	assert.Equal(t, -6.0, f.Fixes[1].Long)
}

func TestParseOutOfOrder(t *testing.T) {
	log := "B0910004600000N00600000EA0110001150\nB0900004500000N00500000EA0100001050\n"
	f,err := Parse(strings.NewReader(log), nil)
	require.NoError(t, err)
	require.Equal(t, 2, f.NumFixes())
	assert.True(t, f.Fixes.IsSorted())
	assert.Equal(t, 9*3600, f.Fixes[0].Time)
	assert.Equal(t, 45.0, f.Fixes[0].Lat)
	assert.Contains(t, f.DebugLog, "out of time order")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		log      string
		expected error
	}{
		{"short A", "AXC", xcscore.ErrParse},
		{"short B", "B0900004500000N00500000EA01000", xcscore.ErrParse},
		{"bad time", "B0961004500000N00500000EA0100001050", xcscore.ErrParse},
		{"bad validity", "B0900004500000N00500000EX0100001050", xcscore.ErrParse},
		{"bad altitude", "B0900004500000N00500000EA01X0001050", xcscore.ErrParse},
		{"lat cardinal", "B0900004500000E00500000EA0100001050", xcscore.ErrInvalidInput},
		{"lon cardinal", "B0900004500000N00500000NA0100001050", xcscore.ErrInvalidInput},
		{"bad date", "HFDTE311399", xcscore.ErrParse},
		{"short date", "HFDTE3112", xcscore.ErrParse},
		{"short H", "HFDT", xcscore.ErrParse},
		{"truncated task", "C311216224500311216000102Task\nC0000000N00000000E\nC0000000N00000000E", xcscore.ErrParse},
		{"bad turnpoint count", "C3112162245003112160001XXTask", xcscore.ErrParse},
		{"bad task point", "C311216224500311216000100Task\nC0000000N00000000E\nC4500000X00500000EStart\n" +
			"C0000000N00000000E\nC0000000N00000000E", xcscore.ErrInvalidInput},
	}

	for _,test := range tests {
		_,err := Parse(strings.NewReader(test.log), nil)
		if !errors.Is(err, test.expected) {
			t.Errorf("%s: expected %v, got %v", test.name, test.expected, err)
		}
	}
}

func TestParseErrorLine(t *testing.T) {
	_,err := Parse(strings.NewReader("AXCS001\nB0900004500000N00500000EA0100001050\nB09"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestParseFileMissing(t *testing.T) {
	_,err := ParseFile(filepath.Join("testdata", "no-such-flight.igc"), nil)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
