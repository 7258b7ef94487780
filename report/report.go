// Package report runs scoring reports over sets of flights: each registered report
// looks at one flight at a time, adding rows and counters, and is summarized at the end.
package report

import(
	"fmt"
	"sort"
	"time"

	"github.com/skypies/util/histogram"
	"github.com/skypies/xcscore"
	"github.com/skypies/xcscore/optimizer"
)

type FlightReportOutcome int
const(
	RejectedByFilter FlightReportOutcome = iota
	RejectedByReport
	Accepted
	Undefined
)
type ReportFunc func(*Report, *xcscore.Flight)(FlightReportOutcome,error)
type SummarizeFunc func(*Report)

type ReportLogLevel int
const(
	DEBUG = iota
	INFO
)

type Report struct {
	Name              string
	Options           // embedded
	Func              ReportFunc
	SummarizeFunc     // embedded, but just to avoid a more confusing name

	// Output state
	RowsText  [][]string
	HeadersText []string

	I         map[string]int
	F         map[string]float64
	S         map[string]string
	H         histogram.Histogram // Leg lengths, in meters

	Stats histogram.Set // internal performance counters
	Log string
}

func BlankReport() Report {
	return Report{
		I: map[string]int{},
		F: map[string]float64{},
		S: map[string]string{},
		RowsText: [][]string{},
		HeadersText: []string{},
		H: histogram.Histogram{ValMin:0, ValMax:500000, NumBuckets:50},
		Stats: histogram.NewSet(10000000),  // maxval, in micros; 10s
	}
}

func (r *Report)Logger(level ReportLogLevel, s string) {
	if level < r.Options.ReportLogLevel { return }
	r.Log += s
}
func (r *Report)Infof(s string,args ...interface{}) { r.Logger(INFO, fmt.Sprintf(s,args...)) }
func (r *Report)Debugf(s string,args ...interface{}) { r.Logger(DEBUG, fmt.Sprintf(s,args...)) }
func (r *Report)Info(s string) { r.Infof("%s", s) }
func (r *Report)Debug(s string) { r.Debugf("%s", s) }

func (r *Report)SetHeaders(headers []string) {
	if len(r.HeadersText) == 0 { r.HeadersText = headers }
}
func (r *Report)AddRow(text []string) {
	r.RowsText = append(r.RowsText, text)
}

// PreProcess applies the filters common to all reports, and resamples the flight.
func (r *Report)PreProcess(f *xcscore.Flight) (bool, *xcscore.Flight) {
	r.I["[A] PreProcessed"]++

	if f.NumFixes() < r.Options.MinFixes {
		r.I[fmt.Sprintf("[B] Eliminated: fewer than %d fixes", r.Options.MinFixes)]++
		return false, f
	}
	if r.Options.Pilot != "" && f.Header.Pilot != r.Options.Pilot {
		r.I["[B] Eliminated: different pilot"]++
		return false, f
	}

	if r.Options.MaxFixes > 0 && f.NumFixes() > r.Options.MaxFixes {
		r.I["[Bb] Resampled"]++
		r.Debugf("resampled %d fixes down to %d\n", f.NumFixes(), r.Options.MaxFixes)
		f = f.Resample(r.Options.MaxFixes)
	}

	r.I["[B] Passed filters"]++
	return true, f
}

func (r *Report)Process(f *xcscore.Flight) (FlightReportOutcome, error) {
	wasOK,f := r.PreProcess(f)
	if !wasOK { return RejectedByFilter,nil }
	return r.Func(r, f)
}

// Optimize runs the optimizer named in the options, and records how long it took.
func (r *Report)Optimize(f *xcscore.Flight, n int) (*optimizer.Result, error) {
	tStart := time.Now()
	defer func() {
		r.Stats.RecordValue(fmt.Sprintf("optimize-%d", n), time.Since(tStart).Nanoseconds()/1000)
	}()

	opts := optimizer.Options{Logger: r.Options.Logger, PairCacheSize: r.Options.PairCacheSize}
	o,err := optimizer.New(r.Options.Optimizer, f, n, opts)
	if err != nil { return nil, err }

	res := o.Optimize()
	if bl,ok := o.(*optimizer.BrokenLine); ok {
		r.Stats.RecordValue(fmt.Sprintf("pops-%d", n), int64(bl.Stats.Pops))
	}
	return res, nil
}

// RecordLegs feeds each leg of a result into the leg-length histogram.
func (r *Report)RecordLegs(res *optimizer.Result) {
	for _,km := range res.Legs() {
		r.H.Add(histogram.ScalarVal(km * 1000.0))
	}
}

func (r *Report)FinishSummary() {
	r.Info("**** Stage: all done\n")
	r.Debug("* (DEBUG)\n")
	if r.SummarizeFunc != nil { r.SummarizeFunc(r) }
	r.Infof("Stats (in micros):-\n%s", r.Stats)
}

func (r *Report)MetadataTable() [][]string {
	all := map[string]string{}

	for k,v := range r.I { all[k] = fmt.Sprintf("%d", v) }
	for k,v := range r.F { all[k] = fmt.Sprintf("%.3f", v) }
	for k,v := range r.S { all[k] = v }

	if stats,valid := r.H.Stats(); valid {
		all["[Z] leg stats, N"] = fmt.Sprintf("%d", stats.N)
		all["[Z] leg stats, Mean"] = fmt.Sprintf("%.0f", stats.Mean)
		all["[Z] leg stats, Stddev"] = fmt.Sprintf("%.0f", stats.Stddev)
		all["[Z] leg stats, 50%ile"] = fmt.Sprintf("%d", stats.Percentile50)
		all["[Z] leg stats, 90%ile"] = fmt.Sprintf("%d", stats.Percentile90)
	}

	keys := []string{}
	for k,_ := range all { keys = append(keys, k) }
	sort.Strings(keys)

	out := [][]string{}
	for _,k := range keys {
		out = append(out, []string{k, all[k]})
	}

	return out
}
