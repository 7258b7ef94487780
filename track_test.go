package xcscore

import(
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// A short synthetic flight, one fix every ten minutes from 09:00.
func testTrack() Track {
	return Track{
		NewFix(32400, 45.0, 5.0, 1000, 1000, 'A'),
		NewFix(33000, 46.0, 6.0, 1100, 1100, 'A'),
		NewFix(33600, 47.0, 7.0, 1200, 1200, 'A'),
		NewFix(34200, 48.0, 8.0, 1300, 1300, 'A'),
		NewFix(34800, 52.0, 9.0, 1400, 1400, 'A'),
	}
}

func TestTrackBasics(t *testing.T) {
	tr := testTrack()
	s,e := tr.Times()
	assert.Equal(t, 32400, s)
	assert.Equal(t, 34800, e)
	assert.Equal(t, 2400, tr.Duration())
	assert.True(t, tr.IsSorted())

	box := tr.BoundingBox(1, 4)
	assert.Equal(t, 46.0, box.SW.Lat)
	assert.Equal(t, 6.0, box.SW.Long)
	assert.Equal(t, 48.0, box.NE.Lat)
	assert.Equal(t, 8.0, box.NE.Long)

	assert.Greater(t, tr.PathKM(), DistKM(tr[0], tr[4]))
}

func TestTrackTrimToTimes(t *testing.T) {
	tr := testTrack()
	tests := []struct {
		s,e      int
		expected []int // fix times
	}{
		{33000, 34200, []int{33000, 33600, 34200}},
		{33001, 34199, []int{33600}},
		{32400, 32400, []int{32400}},
		{0, 99999, []int{32400, 33000, 33600, 34200, 34800}},
		{40000, 50000, []int{}},
		{34200, 33000, []int{}},
	}

	for i,test := range tests {
		actual := []int{}
		for _,f := range tr.TrimToTimes(test.s, test.e) {
			actual = append(actual, f.Time)
		}
		assert.Equal(t, test.expected, actual, "test %d", i)
	}
}

func TestTrackSort(t *testing.T) {
	tr := testTrack()
	mixed := Track{tr[3], tr[0], tr[4], tr[1], tr[2]}
	assert.False(t, mixed.IsSorted())
	mixed.Sort()
	assert.True(t, mixed.IsSorted())
	for i := range tr {
		assert.True(t, tr[i].Equal(mixed[i]), "fix %d", i)
	}
}

func TestTrackResample(t *testing.T) {
	tr := testTrack()
	tests := []struct {
		max      int
		expected []int // fix times
	}{
		{0, []int{32400, 33000, 33600, 34200, 34800}},
		{9, []int{32400, 33000, 33600, 34200, 34800}},
		{3, []int{32400, 33600, 34800}},
		{2, []int{32400, 34800}},
		{1, []int{32400}},
	}

	for i,test := range tests {
		actual := []int{}
		for _,f := range tr.Resample(test.max) {
			actual = append(actual, f.Time)
		}
		assert.Equal(t, test.expected, actual, "test %d", i)
	}
}

func TestFlightTimestampUTC(t *testing.T) {
	f := NewFlight(NewFix(23*3600, 45, 5, 0, 0, 'A'), NewFix(86400+600, 45, 5, 0, 0, 'A'))
	f.Header.Date = time.Date(2016, time.June, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2016, time.June, 1, 23, 0, 0, 0, time.UTC), f.TimestampUTC(f.Fixes[0]))
	assert.Equal(t, time.Date(2016, time.June, 2, 0, 10, 0, 0, time.UTC), f.TimestampUTC(f.Fixes[1]))
}

func TestFlightResampleLeavesOriginal(t *testing.T) {
	f := NewFlight(testTrack()...)
	r := f.Resample(2)
	assert.Equal(t, 2, r.NumFixes())
	assert.Equal(t, 5, f.NumFixes())

	trimmed := f.TrimToTimes(33000, 33600)
	assert.Equal(t, 2, trimmed.NumFixes())
	assert.Equal(t, 5, f.NumFixes())
}
