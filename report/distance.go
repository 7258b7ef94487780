package report

import(
	"fmt"
	"strings"

	"github.com/skypies/xcscore"
)

func init() {
	HandleReport(".distance", DistanceReporter, "Best N-point task distance for each flight")
	ReportHeaders(".distance", DistanceReporterHeaders)
	SummarizeReport(".distance", DistanceSummarizer)
}

var(
	DistanceReporterHeaders = []string{
		"DATE(UTC)", "PILOT", "GLIDER", "WAYPOINTS", "DISTANCE(KM)", "TIMES(UTC)", "POSITIONS", "SCORE",
	}
)

// DistanceReporter adds one row per requested task size.
func DistanceReporter(r *Report, f *xcscore.Flight) (FlightReportOutcome, error) {
	outcome := RejectedByReport

	for _,n := range r.Options.Waypoints {
		res,err := r.Optimize(f, n)
		if err != nil {
			return Undefined, err
		} else if res == nil {
			r.I[fmt.Sprintf("[C] %d-point: not enough fixes", n)]++
			continue
		}
		r.I[fmt.Sprintf("[C] %d-point: scored", n)]++
		r.RecordLegs(res)

		key := fmt.Sprintf("[D] %d-point: best KM", n)
		if res.Distance() > r.F[key] {
			r.F[key] = res.Distance()
			r.S[fmt.Sprintf("[D] %d-point: best pilot", n)] = f.Header.Pilot
		}

		times, positions := []string{}, []string{}
		for _,p := range res.Points {
			times = append(times, p.TimeOfDay())
			positions = append(positions, xcscore.Decimal2MinDec(p.Lat, true) + " " +
				xcscore.Decimal2MinDec(p.Long, false))
		}

		r.AddRow([]string{
			f.Header.Date.Format("2006-01-02"),
			f.Header.Pilot,
			f.Header.GliderType,
			fmt.Sprintf("%d", n),
			fmt.Sprintf("%.3f", res.Distance()),
			strings.Join(times, " "),
			strings.Join(positions, "; "),
			fmt.Sprintf("%.3f", res.Score),
		})
		outcome = Accepted
	}

	return outcome, nil
}

func DistanceSummarizer(r *Report) {
	for _,n := range r.Options.Waypoints {
		key := fmt.Sprintf("[D] %d-point: best KM", n)
		if km,exists := r.F[key]; exists {
			r.Infof("best %d-point: %.3fKM\n", n, km)
		}
	}
}
