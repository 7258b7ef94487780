package optimizer

import(
	"fmt"
	"math"

	"github.com/skypies/xcscore"
)

// A RectangleSet is a contiguous range [Start,End) of a flight's fixes, plus the
// lat/long box that bounds them. The vertices are synthetic fixes (no time, no
// altitude). RectangleSets are immutable once built, and shared between candidates.
type RectangleSet struct {
	Start, End     int
	NE, SE, NW, SW xcscore.Fix

	fixes          xcscore.Track // The whole flight; shared
	diagonal       float64       // Lazily computed; negative until then
}

// NewRectangleSet bounds fixes[start:end].
func NewRectangleSet(fixes xcscore.Track, start, end int) (*RectangleSet, error) {
	if start < 0 || end > len(fixes) || start >= end {
		return nil, fmt.Errorf("rectangle [%d,%d) over %d fixes: %w", start, end, len(fixes),
			xcscore.ErrInvalidArgument)
	}
	return newRectangleSet(fixes, start, end), nil
}

func newRectangleSet(fixes xcscore.Track, start, end int) *RectangleSet {
	box := fixes.BoundingBox(start, end)

	return &RectangleSet{
		Start: start,
		End: end,
		NE: vertex(box.NE.Lat, box.NE.Long),
		SE: vertex(box.SW.Lat, box.NE.Long),
		NW: vertex(box.NE.Lat, box.SW.Long),
		SW: vertex(box.SW.Lat, box.SW.Long),
		fixes: fixes,
		diagonal: -1,
	}
}

func vertex(lat, long float64) xcscore.Fix { return xcscore.NewFix(0, lat, long, 0, 0, 0) }

func (r *RectangleSet)NumFixes() int { return r.End - r.Start }
func (r *RectangleSet)IsSingleton() bool { return r.NumFixes() == 1 }

// Fix returns the first fix in the range; for a singleton, the only one.
func (r *RectangleSet)Fix() xcscore.Fix { return r.fixes[r.Start] }

func (r *RectangleSet)Vertices() [4]xcscore.Fix { return [4]xcscore.Fix{r.NE, r.SE, r.NW, r.SW} }

// Contains compares in radians, edges inclusive.
func (r *RectangleSet)Contains(f xcscore.Fix) bool {
	return r.SW.Latrd() <= f.Latrd() && f.Latrd() <= r.NW.Latrd() &&
		r.NW.Lonrd() <= f.Lonrd() && f.Lonrd() <= r.NE.Lonrd()
}

// Overlap is true if any vertex of other lies within r. It is not symmetric: a small
// rectangle inside a large one overlaps it, but not the other way around.
func (r *RectangleSet)Overlap(other *RectangleSet) bool {
	for _,v := range other.Vertices() {
		if r.Contains(v) { return true }
	}
	return false
}

// Split halves the range at Start + NumFixes/2. Splitting a singleton is a logic error.
func (r *RectangleSet)Split() (*RectangleSet, *RectangleSet) {
	if r.NumFixes() < 2 {
		panic(fmt.Sprintf("optimizer: split of singleton %s", r))
	}
	mid := r.Start + r.NumFixes()/2
	return newRectangleSet(r.fixes, r.Start, mid), newRectangleSet(r.fixes, mid, r.End)
}

// Diagonal is the distance from the NW to the SE corner.
func (r *RectangleSet)Diagonal() float64 {
	if r.diagonal < 0 {
		r.diagonal = xcscore.DistKM(r.NW, r.SE)
	}
	return r.diagonal
}

// MaxDistance is the largest of the sixteen vertex-to-vertex distances.
func (r *RectangleSet)MaxDistance(other *RectangleSet) float64 {
	max := 0.0
	for _,a := range r.Vertices() {
		for _,b := range other.Vertices() {
			max = math.Max(max, xcscore.DistKM(a,b))
		}
	}
	return max
}

// MinDistance is zero when the rectangles overlap. Otherwise it bounds the distance
// between any two points of the rectangles from below, using the gaps between them
// in latitude and longitude; the longitude gap is scaled as if both points sat at the
// most poleward latitude of either rectangle. The smallest vertex-to-vertex distance
// is no such bound: two boxes side by side are closest along their facing edges.
// Between two single fixes it is the exact distance.
func (r *RectangleSet)MinDistance(other *RectangleSet) float64 {
	if r.Overlap(other) {
		return 0
	} else if r.IsSingleton() && other.IsSingleton() {
		return xcscore.DistKM(r.Fix(), other.Fix())
	}

	latGap := math.Max(0, math.Max(other.SW.Latrd() - r.NE.Latrd(), r.SW.Latrd() - other.NE.Latrd()))
	lonGap := math.Max(0, math.Max(other.SW.Lonrd() - r.NE.Lonrd(), r.SW.Lonrd() - other.NE.Lonrd()))
	lonSpan := math.Max(r.NE.Lonrd(), other.NE.Lonrd()) - math.Min(r.SW.Lonrd(), other.SW.Lonrd())
	lonGap = math.Min(lonGap, 2*math.Pi - lonSpan)

	poleward := math.Max(math.Max(math.Abs(r.NE.Latrd()), math.Abs(r.SW.Latrd())),
		math.Max(math.Abs(other.NE.Latrd()), math.Abs(other.SW.Latrd())))
	cosLat := math.Cos(poleward)

	sinLat, sinLon := math.Sin(latGap/2), math.Sin(lonGap/2)
	h := math.Min(1, sinLat*sinLat + cosLat*cosLat*sinLon*sinLon)
	return 2 * xcscore.KEarthRadiusKM * math.Asin(math.Sqrt(h))
}

// Equal compares the four vertices by position only.
func (r *RectangleSet)Equal(other *RectangleSet) bool {
	return r.NE.Equivalent(other.NE, false) && r.SE.Equivalent(other.SE, false) &&
		r.NW.Equivalent(other.NW, false) && r.SW.Equivalent(other.SW, false)
}

// Same is true when both cover the same range of fixes.
func (r *RectangleSet)Same(other *RectangleSet) bool {
	return r.Start == other.Start && r.End == other.End
}

func (r *RectangleSet)Less(other *RectangleSet) bool { return r.Start < other.Start }

func (r *RectangleSet)String() string {
	return fmt.Sprintf("[%d,%d) sw=(%.5f,%.5f) ne=(%.5f,%.5f)", r.Start, r.End,
		r.SW.Lat, r.SW.Long, r.NE.Lat, r.NE.Long)
}
