package xcscore

import(
	"github.com/skypies/geo"
)

var(
	KTurnpointSnapKM = 1.0
)

// MatchTurnpoints walks the points in order, finding for each the first fix (at or after
// the fix that matched the previous point) within snapKM of it. Points that were never
// reached, and every point after them, get -1.
func (t Track)MatchTurnpoints(points []geo.NamedLatlong, snapKM float64) []int {
	ret := make([]int, len(points))
	for i := range ret { ret[i] = -1 }

	from := 0
	for i,p := range points {
		box := p.Latlong.Box(2*snapKM, 2*snapKM)
		pos := NewFix(0, p.Lat, p.Long, 0, 0, 'A')

		found := false
		for j:=from; j<len(t); j++ {
			if box.Contains(t[j].Latlong) && DistKM(t[j], pos) <= snapKM {
				ret[i], from, found = j, j, true
				break
			}
		}
		if !found { break }
	}

	return ret
}

// TaskProgress reports how many of the declared start, turnpoints and finish the flight
// reached, in order, and the fix index at which each was reached.
func (f *Flight)TaskProgress(snapKM float64) (int, []int) {
	if f.Task.IsEmpty() { return 0, nil }

	points := append([]geo.NamedLatlong{f.Task.Start}, f.Task.Turnpoints...)
	points = append(points, f.Task.Finish)

	matches := f.Fixes.MatchTurnpoints(points, snapKM)
	n := 0
	for _,i := range matches {
		if i < 0 { break }
		n++
	}
	return n, matches
}
