package main

import(
	"bytes"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testdata = "../../optimizer/testdata/"

func testConfig(t *testing.T, args ...string) (Config, *flag.FlagSet, error) {
	t.Helper()
	fs := flag.NewFlagSet("xcscore", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	defineFlags(fs)
	cfg,err := loadConfig(fs, args)
	return cfg, fs, err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestConfigDefaults(t *testing.T) {
	cfg,fs,err := testConfig(t, "a.igc", "b.igc")
	require.NoError(t, err)
	assert.Equal(t, "3", cfg.Waypoints)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 0, cfg.MaxFixes)
	assert.Equal(t, "brokenline", cfg.Optimizer)
	_,_,ok,err := cfg.TimeRange()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"a.igc", "b.igc"}, fs.Args())
}

func TestConfigLayers(t *testing.T) {
	file := filepath.Join(t.TempDir(), "xcscore.yaml")
	require.NoError(t, os.WriteFile(file, []byte("waypoints: \"2,4\"\nmax_fixes: 100\nformat: kml\n"), 0644))

	t.Setenv("XCSCORE_MAX_FIXES", "80")
	t.Setenv("XCSCORE_OPTIMIZER", "bruteforce")

	cfg,_,err := testConfig(t, "-config", file, "-format", "geojson")
	require.NoError(t, err)
	assert.Equal(t, "2,4", cfg.Waypoints)  // file
	assert.Equal(t, 80, cfg.MaxFixes)      // env beats file
	assert.Equal(t, "bruteforce", cfg.Optimizer) // env
	assert.Equal(t, "geojson", cfg.Format) // flag beats file

	assert.Equal(t, []int{2,4}, cfg.ReportOptions().Waypoints)
}

func TestConfigErrors(t *testing.T) {
	tests := [][]string{
		{"-format", "pdf"},
		{"-waypoints", "1"},
		{"-max_fixes", "lots"},
		{"-config", "/no/such/file.yaml"},
		{"-optimizer", "montecarlo"},
		{"-from", "9am"},
		{"-to", "25:00:00"},
	}
	for _,args := range tests {
		if _,_,err := testConfig(t, args...); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestConfigTimeRange(t *testing.T) {
	tests := []struct {
		from, to string
		s, e     int
	}{
		{"09:10:00", "09:30:00", 33000, 34200},
		{"", "09:30:00", 0, 34200},
		{"09:10:00", "", 33000, 2*86400},
		{"23:30:00", "00:30:00", 84600, 86400+1800},
	}
	for _,test := range tests {
		s,e,ok,err := Config{From:test.from, To:test.to}.TimeRange()
		require.NoError(t, err)
		assert.True(t, ok)
		if s != test.s || e != test.e {
			t.Errorf("%q-%q: expected [%d,%d], got [%d,%d]", test.from, test.to, test.s, test.e, s, e)
		}
	}
}

func TestNewLogger(t *testing.T) {
	_,_,err := newLogger("chatty", "")
	assert.Error(t, err)

	dir := t.TempDir()
	logger,closeLog,err := newLogger("debug", dir)
	require.NoError(t, err)
	logger.Debug("hello", "waypoints", 3)
	require.NoError(t, closeLog())

	b,err := os.ReadFile(filepath.Join(dir, "xcscore.slog"))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"hello"`)
	assert.Contains(t, string(b), `"waypoints":3`)
}

func TestRun(t *testing.T) {
	tests := []struct {
		args     []string
		contains []string
	}{
		{[]string{"-waypoints=3,5"}, []string{"3-point: 855.378KM", "5-point: 855.439KM"}},
		{[]string{"-optimizer=bruteforce", "-waypoints=4"}, []string{"4-point: 855.424KM (distance score 855.424)"}},
		{[]string{"-from=09:10:00", "-to=09:30:00"}, []string{"3-point: 269.179KM"}},
		{[]string{"-from=09:10:00"}, []string{"3-point: 719.638KM"}},
		{[]string{"-format=kml"}, []string{"<LineString><coordinates>5,45,1000 8,48,1300 9,52,1400 </coordinates></LineString>"}},
		{[]string{"-format=geojson"}, []string{`"FeatureCollection"`, `"distance_km"`}},
		{[]string{"-format=csv", "-waypoints=3"}, []string{"DISTANCE(KM)", ",3,855.378,"}},
		{[]string{"-report=.list"}, []string{"FIXES", "# [A] PreProcessed"}},
		{[]string{"-report=help"}, []string{".crosscheck", ".distance", ".list"}},
	}

	for _,test := range tests {
		cfg,fs,err := testConfig(t, append(test.args, testdata+"optimize-with-5-points.igc")...)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, run(cfg, fs.Args(), &buf, quietLogger()), test.args)
		for _,str := range test.contains {
			assert.Contains(t, buf.String(), str, test.args)
		}
	}
}

func TestRunErrors(t *testing.T) {
	cfg,_,err := testConfig(t)
	require.NoError(t, err)
	assert.Error(t, run(cfg, nil, io.Discard, quietLogger()))
	assert.Error(t, run(cfg, []string{testdata+"missing.igc"}, io.Discard, quietLogger()))

	// Reports skip what they can't parse
	cfg.Report = ".distance"
	var buf bytes.Buffer
	require.NoError(t, run(cfg, []string{testdata+"missing.igc"}, &buf, quietLogger()))
	assert.True(t, strings.Contains(buf.String(), "[A] Unparseable"))

	cfg.Report = ".nosuchreport"
	assert.Error(t, run(cfg, []string{testdata+"optimize-with-5-points.igc"}, io.Discard, quietLogger()))
}
