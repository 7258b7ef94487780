package report

import(
	"fmt"

	"github.com/skypies/xcscore"
)

func init() {
	HandleReport(".list", ListReporter, "List flights meeting restrictions")
	ReportHeaders(".list", ListReporterHeaders)
}

var(
	ListReporterHeaders = []string{
		"DATE(UTC)", "PILOT", "GLIDER", "GLIDERID", "LOGGER",
		"FIXES", "START(UTC)", "DURATION(S)", "PATH(KM)", "TASK", "REACHED",
	}
)

func ListReporter(r *Report, f *xcscore.Flight) (FlightReportOutcome, error) {
	if f.NumFixes() == 0 {
		r.I["[C] No fixes"]++
		return RejectedByReport, nil
	}

	task, reached := "", ""
	if !f.Task.IsEmpty() {
		task = f.Task.String()
		r.I["[C] Declared a task"]++

		n,_ := f.TaskProgress(xcscore.KTurnpointSnapKM)
		reached = fmt.Sprintf("%d/%d", n, len(f.Task.Turnpoints)+2)
		if n == len(f.Task.Turnpoints)+2 {
			r.I["[C] Completed the task"]++
		}
	}

	row := []string{
		f.Header.Date.Format("2006-01-02"),
		f.Header.Pilot,
		f.Header.GliderType,
		f.Header.GliderID,
		f.Header.Manufacturer + f.Header.UniqueID,
		fmt.Sprintf("%d", f.NumFixes()),
		f.Fixes[0].TimeOfDay(),
		fmt.Sprintf("%d", f.Fixes.Duration()),
		fmt.Sprintf("%.1f", f.Fixes.PathKM()),
		task,
		reached,
	}
	r.AddRow(row)

	return Accepted, nil
}
