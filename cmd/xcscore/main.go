package main

// go run ./cmd/xcscore -waypoints=3,5 -format=kml flight.igc
// XCSCORE_LOG_LEVEL=debug go run ./cmd/xcscore -report=.crosscheck -max_fixes=60 *.igc

import(
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/skypies/xcscore"
	"github.com/skypies/xcscore/igc"
	"github.com/skypies/xcscore/optimizer"
	"github.com/skypies/xcscore/report"
)

func main() {
	defineFlags(flag.CommandLine)
	cfg,err := loadConfig(flag.CommandLine, os.Args[1:])
	if err != nil { log.Fatal(err) }

	logger,closeLog,err := newLogger(cfg.LogLevel, cfg.LogDir)
	if err != nil { log.Fatal(err) }

	err = run(cfg, flag.CommandLine.Args(), os.Stdout, logger)
	closeLog()
	if err != nil { log.Fatal(err) }
}

func run(cfg Config, files []string, w io.Writer, logger *slog.Logger) error {
	if cfg.Report == "help" {
		for _,entry := range report.ListReports() {
			fmt.Fprintf(w, "%-12s %s\n", entry.Name, entry.Description)
		}
		return nil
	}
	if len(files) == 0 {
		return fmt.Errorf("usage: xcscore [flags] file.igc [file.igc ...]")
	}

	if cfg.Report != "" || cfg.Format == "csv" {
		return runReport(cfg, files, w, logger)
	}

	opt := cfg.ReportOptions()
	for _,file := range files {
		f,err := igc.ParseFile(file, logger)
		if err != nil { return err }
		f = trim(cfg, f, logger)
		if cfg.MaxFixes > 0 && f.NumFixes() > cfg.MaxFixes {
			f = f.Resample(cfg.MaxFixes)
		}

		for _,n := range opt.Waypoints {
			res,err := score(cfg, f, n, logger)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			} else if res == nil {
				logger.Warn("not enough fixes", "file", file, "waypoints", n, "fixes", f.NumFixes())
				continue
			}
			if err := output(w, cfg.Format, file, n, res); err != nil {
				return err
			}
		}
	}
	return nil
}

// trim drops the fixes outside -from/-to.
func trim(cfg Config, f *xcscore.Flight, logger *slog.Logger) *xcscore.Flight {
	s,e,ok,_ := cfg.TimeRange() // checked by validate
	if !ok { return f }
	trimmed := f.TrimToTimes(s, e)
	logger.Debug("trimmed", "from", s, "to", e, "fixes", f.NumFixes(), "kept", trimmed.NumFixes())
	return trimmed
}

func score(cfg Config, f *xcscore.Flight, n int, logger *slog.Logger) (*optimizer.Result, error) {
	opts := optimizer.Options{Start:cfg.Start, End:cfg.End, Logger:logger, PairCacheSize:cfg.CacheSize}
	o,err := optimizer.New(cfg.Optimizer, f, n, opts)
	if err != nil { return nil, err }
	return o.Optimize(), nil
}

func output(w io.Writer, format, file string, n int, res *optimizer.Result) error {
	switch format {
	case "kml":
		_,err := fmt.Fprintf(w, "%s\n", res.KML())
		return err
	case "geojson":
		b,err := res.GeoJSON()
		if err != nil { return err }
		_,err = fmt.Fprintf(w, "%s\n", b)
		return err
	default:
		_,err := fmt.Fprintf(w, "%s %d-point: %s\n", file, n, res)
		return err
	}
}

// runReport feeds every file through a report, and writes its rows as CSV. A csv format
// with no report named gets the distance report.
func runReport(cfg Config, files []string, w io.Writer, logger *slog.Logger) error {
	opt := cfg.ReportOptions()
	opt.Logger = logger
	if opt.Name == "" {
		opt.Name = ".distance"
	}

	r,err := report.SetupReport(opt)
	if err != nil { return err }
	r.Infof("report %s\n", r.Options)

	for _,file := range files {
		f,err := igc.ParseFile(file, logger)
		if err != nil {
			r.I["[A] Unparseable"]++
			logger.Warn("skipping", "file", file, "err", err)
			continue
		}
		outcome,err := r.Process(trim(cfg, f, logger))
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		logger.Debug("processed", "file", file, "outcome", outcome)
	}
	r.FinishSummary()

	if err := r.OutputAsCSV(w); err != nil {
		return err
	}
	if cfg.Format == "text" {
		fmt.Fprintf(w, "\n")
		for _,row := range r.MetadataTable() {
			fmt.Fprintf(w, "# %-40s %s\n", row[0], row[1])
		}
		fmt.Fprintf(w, "%s", r.Log)
	}
	return nil
}
