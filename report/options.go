package report

// All reports share this same options struct. Some options apply to all reports, some
// only apply to one kind of report.

import(
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

type Options struct {
	Name               string
	Waypoints        []int    // Task sizes to score; each >= 2
	Pilot              string   // If set, only flights by this pilot

	MinFixes           int      // Flights with fewer fixes are skipped
	MaxFixes           int      // Flights with more are resampled down; 0 for no limit

	Optimizer          string   // ID in optimizer.Optimizers; "" for the default
	PairCacheSize      int

	ReportLogLevel     ReportLogLevel
	Logger            *slog.Logger
}

// ParseWaypoints reads a comma separated list of task sizes, e.g. "3,5".
func ParseWaypoints(s string) ([]int, error) {
	ret := []int{}
	for _,str := range strings.Split(s, ",") {
		str = strings.TrimSpace(str)
		if str == "" { continue }
		n,err := strconv.Atoi(str)
		if err != nil || n < 2 {
			return nil, fmt.Errorf("waypoints '%s': want integers >= 2", s)
		}
		ret = append(ret, n)
	}
	if len(ret) == 0 {
		return nil, fmt.Errorf("waypoints '%s': empty", s)
	}
	return ret, nil
}

func (o Options)String() string {
	str := fmt.Sprintf("%s waypoints=%v", o.Name, o.Waypoints)
	if o.Pilot != "" { str += fmt.Sprintf(" pilot=%q", o.Pilot) }
	if o.MaxFixes > 0 { str += fmt.Sprintf(" maxfixes=%d", o.MaxFixes) }
	if o.Optimizer != "" { str += " optimizer=" + o.Optimizer }
	return str
}
