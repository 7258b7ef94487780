package xcscore

import(
	"fmt"
	"sort"

	"github.com/skypies/geo"
)

// A Track is a slice of Fixes. They are ordered in time, beginning to end.
type Track []Fix

type byTimeAscending Track
func (a byTimeAscending) Len() int           { return len(a) }
func (a byTimeAscending) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTimeAscending) Less(i, j int) bool { return a[i].Time < a[j].Time }

func (t Track)Start() int { return t[0].Time }
func (t Track)End() int { return t[len(t)-1].Time }
func (t Track)Times() (s,e int) { return t.Start(), t.End() }
func (t Track)Duration() int { return t.End() - t.Start() }

// BoundingBox is the smallest lat/long box holding every fix in [start,end).
func (t Track)BoundingBox(start, end int) geo.LatlongBox {
	box := t[start].BoxTo(t[start].Latlong)
	for i:=start+1; i<end; i++ {
		box.Enclose(t[i].Latlong)
	}
	return box
}

// PathKM is the distance along the track, visiting every fix.
func (t Track)PathKM() float64 {
	d := 0.0
	for i:=1; i<len(t); i++ {
		d += DistKM(t[i-1], t[i])
	}
	return d
}

func (t Track)String() string {
	if len(t) == 0 { return "Track: 0 points" }
	str := fmt.Sprintf("Track: %d points, start=%s", len(t), t[0].TimeOfDay())
	if len(t) > 1 {
		s,e := t[0],t[len(t)-1]
		str += fmt.Sprintf(", %ds, %.1fKM (%.0f deg)", e.Time-s.Time, DistKM(s,e),
			s.BearingTowards(e.Latlong))
	}
	return str
}

// IsSorted reports whether fix times are nondecreasing.
func (t Track)IsSorted() bool { return sort.IsSorted(byTimeAscending(t)) }

// Sort orders fixes by time; fixes with the same time keep their logged order.
func (t Track)Sort() { sort.Stable(byTimeAscending(t)) }

// TrimToTimes returns the (possibly empty) fixes with times within [s,e], inclusive.
func (t Track)TrimToTimes(s, e int) Track {
	ret := Track{}
	for _,f := range t {
		if f.Time >= s && f.Time <= e {
			ret = append(ret, f)
		}
	}
	return ret
}

// Resample keeps at most maxFixes fixes, evenly spaced by index, always keeping the
// first and last. A maxFixes of zero (or one bigger than the track) is a no-op.
func (t Track)Resample(maxFixes int) Track {
	if maxFixes <= 0 || maxFixes >= len(t) {
		return t
	}
	if maxFixes == 1 {
		return Track{t[0]}
	}
	ret := make(Track, 0, maxFixes)
	step := float64(len(t)-1) / float64(maxFixes-1)
	for i:=0; i<maxFixes; i++ {
		ret = append(ret, t[int(float64(i)*step + 0.5)])
	}
	return ret
}
