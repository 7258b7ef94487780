package report

import(
	"fmt"
	"math"

	"github.com/skypies/xcscore"
	"github.com/skypies/xcscore/optimizer"
)

func init() {
	HandleReport(".crosscheck", CrosscheckReporter, "Compare branch-and-bound against brute force")
	ReportHeaders(".crosscheck", []string{"PILOT", "WAYPOINTS", "FIXES", "BROKENLINE(KM)", "BRUTEFORCE(KM)", "DIFF(KM)"})
}

const kCrosscheckToleranceKM = 1e-3

// CrosscheckReporter scores each flight both ways; only usable on small flights, so
// set MaxFixes.
func CrosscheckReporter(r *Report, f *xcscore.Flight) (FlightReportOutcome, error) {
	for _,n := range r.Options.Waypoints {
		opts := optimizer.Options{Logger: r.Options.Logger, PairCacheSize: r.Options.PairCacheSize}
		bl,err := optimizer.New("brokenline", f, n, opts)
		if err != nil { return Undefined, err }
		bf,err := optimizer.New("bruteforce", f, n, opts)
		if err != nil { return Undefined, err }

		a,b := bl.Optimize(), bf.Optimize()
		if a == nil || b == nil {
			if a != b {
				r.I[fmt.Sprintf("[C] %d-point: MISMATCH (one found nothing)", n)]++
			}
			continue
		}

		diff := math.Abs(a.Distance() - b.Distance())
		if diff > kCrosscheckToleranceKM {
			r.I[fmt.Sprintf("[C] %d-point: MISMATCH", n)]++
			r.Infof("mismatch, %s n=%d\n bl: %s\n bf: %s\n", f.Header.Pilot, n, a, b)
		} else {
			r.I[fmt.Sprintf("[C] %d-point: agree", n)]++
		}
		r.F["[D] largest diff KM"] = math.Max(r.F["[D] largest diff KM"], diff)

		r.AddRow([]string{
			f.Header.Pilot,
			fmt.Sprintf("%d", n),
			fmt.Sprintf("%d", f.NumFixes()),
			fmt.Sprintf("%.6f", a.Distance()),
			fmt.Sprintf("%.6f", b.Distance()),
			fmt.Sprintf("%.6f", diff),
		})
	}
	return Accepted, nil
}
