package optimizer

import(
	"fmt"
	"strconv"
	"strings"

	pgeo "github.com/paulmach/go.geo"
	geojson "github.com/paulmach/go.geojson"
	"github.com/skypies/xcscore"
)

// Result is the outcome of an optimization: the chosen fixes, in flight order. The
// legs and distance are computed once, so Points should not be changed afterwards.
type Result struct {
	Points   []xcscore.Fix
	Score    float64
	ScorerID string

	legs     []float64
	distance float64
}

// NewResult measures the legs, and scores the result by distance.
func NewResult(points []xcscore.Fix) *Result {
	r := &Result{Points: points, legs: []float64{}}
	for i:=1; i<len(points); i++ {
		leg := xcscore.DistKM(points[i-1], points[i])
		r.legs = append(r.legs, leg)
		r.distance += leg
	}
	return r.Scored(DistanceScorer{})
}

// Scored sets the score from s, and returns r.
func (r *Result)Scored(s Scorer) *Result {
	r.Score = s.Score(r)
	r.ScorerID = s.ID()
	return r
}

// Legs are the distances between consecutive points, in kilometers.
func (r *Result)Legs() []float64 { return append([]float64{}, r.legs...) }

// Distance is the task distance, in kilometers.
func (r *Result)Distance() float64 { return r.distance }

// Better compares results by distance; a nil result loses.
func (r *Result)Better(other *Result) bool {
	if r == nil { return false }
	if other == nil { return true }
	return r.Distance() > other.Distance()
}

// KML renders the points as a KML LineString, longitude first, with pressure altitude.
func (r *Result)KML() string {
	var sb strings.Builder
	sb.WriteString("<LineString><coordinates>")
	for _,p := range r.Points {
		sb.WriteString(strconv.FormatFloat(p.Long, 'f', -1, 64))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(p.Lat, 'f', -1, 64))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(p.PressureAlt))
		sb.WriteByte(' ')
	}
	sb.WriteString("</coordinates></LineString>")
	return sb.String()
}

// Path is the task line as a go.geo path (x=longitude, y=latitude).
func (r *Result)Path() *pgeo.Path {
	path := pgeo.NewPath()
	for _,p := range r.Points {
		path.Push(pgeo.NewPoint(p.Long, p.Lat))
	}
	return path
}

// GeoJSON is a feature collection holding the task line, then one point per waypoint.
func (r *Result)GeoJSON() ([]byte, error) {
	fc := geojson.NewFeatureCollection()

	line := r.Path().ToGeoJSON()
	line.SetProperty("distance_km", r.Distance())
	line.SetProperty("waypoints", len(r.Points))
	line.SetProperty("score", r.Score)
	line.SetProperty("scorer", r.ScorerID)
	fc.AddFeature(line)

	for i,p := range r.Points {
		f := geojson.NewPointFeature([]float64{p.Long, p.Lat})
		f.SetProperty("index", i)
		f.SetProperty("time", p.TimeOfDay())
		f.SetProperty("pressure_alt", p.PressureAlt)
		f.SetProperty("gnss_alt", p.GNSSAlt)
		if i > 0 {
			f.SetProperty("leg_km", r.legs[i-1])
		}
		fc.AddFeature(f)
	}

	return fc.MarshalJSON()
}

func (r *Result)String() string {
	str := fmt.Sprintf("%.3fKM (%s score %.3f)", r.Distance(), r.ScorerID, r.Score)
	for _,p := range r.Points {
		str += fmt.Sprintf("\n  %s", p)
	}
	return str
}
