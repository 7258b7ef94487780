// Package igc reads flight logs in the IGC format (FAI Gliding Commission).
//
// Only the records the scorer needs are decoded: A (logger), H (header), C (declared
// task) and B (fixes). The rest are skipped.
package igc

import(
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/skypies/geo"
	"github.com/skypies/xcscore"
)

const(
	DateFormat = "020106" // DDMMYY
	TimeFormat = "150405" // HHMMSS

	minBRecordLen = 35
)

// Parser carries state across the lines of one log.
type Parser struct {
	Log      *slog.Logger

	taskDone bool
	lastTime int // Seconds, including any day rollover
	dayShift int
}

// ParseFile reads the log at path. A missing file comes back as the *fs.PathError.
func ParseFile(path string, log *slog.Logger) (*xcscore.Flight, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	flight, err := Parse(f, log)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return flight, nil
}

// Parse reads a whole log. log may be nil.
func Parse(r io.Reader, log *slog.Logger) (*xcscore.Flight, error) {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	p := Parser{Log: log}

	lines := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), " \r\t"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	f := xcscore.BlankFlight()
	for i:=0; i<len(lines); i++ {
		line := lines[i]
		if len(line) == 0 { continue }

		var err error
		switch line[0] {
		case 'A': err = p.parseA(line, &f)
		case 'B': err = p.parseB(line, &f)
		case 'H': err = p.parseH(line, &f)
		case 'C':
			if !p.taskDone {
				var n int
				n, err = p.parseC(lines[i:], &f)
				i += n-1
			}
		default:
			p.Log.Debug("skipping record", "line", i+1, "type", string(line[0]))
			f.Logf("line %d: skipped %c record", i+1, line[0])
		}
		if err != nil {
			return &f, fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	if !f.Fixes.IsSorted() {
		p.Log.Warn("fixes out of time order", "fixes", len(f.Fixes))
		f.Logf("fixes out of time order; sorted")
		f.Fixes.Sort()
	}

	p.Log.Debug("parsed", "fixes", len(f.Fixes), "pilot", f.Header.Pilot, "date", f.Header.Date)
	return &f, nil
}

func (p *Parser)parseA(line string, f *xcscore.Flight) error {
	if len(line) < 7 {
		return tooShort(line)
	}
	f.Header.Manufacturer = line[1:4]
	f.Header.UniqueID = line[4:7]
	f.Header.AdditionalData = line[7:]
	return nil
}

// {{{ parseB

// B HHMMSS DDMMmmmN DDDMMmmmE V PPPPP GGGGG [extensions]
func (p *Parser)parseB(line string, f *xcscore.Flight) error {
	if len(line) < minBRecordLen {
		return tooShort(line)
	}
	t, err := parseTimeOfDay(line[1:7])
	if err != nil {
		return err
	}
	lat, err := xcscore.MinDec2Decimal(line[7:15])
	if err != nil {
		return err
	}
	long, err := xcscore.MinDec2Decimal(line[15:24])
	if err != nil {
		return err
	}
	validity := line[24]
	if validity != 'A' && validity != 'V' {
		return fmt.Errorf("fix validity %q: %w", validity, xcscore.ErrParse)
	}
	pressureAlt, err1 := strconv.Atoi(line[25:30])
	gnssAlt, err2 := strconv.Atoi(line[30:35])
	if err1 != nil || err2 != nil {
		return fmt.Errorf("altitudes %q: %w", line[25:35], xcscore.ErrParse)
	}

	// Loggers restart the clock at midnight UTC
	if t + p.dayShift < p.lastTime - 12*3600 {
		p.dayShift += 86400
		p.Log.Debug("midnight rollover", "time", line[1:7])
	}
	t += p.dayShift
	p.lastTime = t

	f.AddFix(xcscore.NewFix(t, lat, long, pressureAlt, gnssAlt, validity))
	return nil
}

func parseTimeOfDay(s string) (int, error) {
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return 0, fmt.Errorf("time %q: %w", s, xcscore.ErrParse)
	}
	return t.Hour()*3600 + t.Minute()*60 + t.Second(), nil
}

// }}}
// {{{ parseH

func (p *Parser)parseH(line string, f *xcscore.Flight) error {
	if len(line) < 5 {
		return tooShort(line)
	}
	h := &f.Header
	val := headerValue(line[5:])

	switch line[2:5] {
	case "DTE":
		if len(val) < 6 {
			return tooShort(line)
		}
		d, err := time.Parse(DateFormat, val[0:6])
		if err != nil {
			return fmt.Errorf("date %q: %w", val, xcscore.ErrParse)
		}
		h.Date = d
	case "FXA":
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return fmt.Errorf("fix accuracy %q: %w", val, xcscore.ErrParse)
		}
		h.FixAccuracy = n
	case "PLT": h.Pilot = val
	case "CM2": h.Crew = val
	case "GTY": h.GliderType = val
	case "GID": h.GliderID = val
	case "DTM": h.GPSDatum = val
	case "RFW": h.FirmwareVersion = val
	case "RHW": h.HardwareVersion = val
	case "FTY": h.FlightRecorder = val
	case "GPS": h.GPS = val
	case "PRS": h.PressureSensor = val
	case "CID": h.CompetitionID = val
	case "CCL": h.CompetitionClass = val
	default:
		p.Log.Debug("skipping header", "key", line[2:5])
		f.Logf("skipped header %s", line[2:5])
	}
	return nil
}

// headerValue drops the long-form label ("PILOTINCHARGE:", "DATE:") newer loggers write.
func headerValue(s string) string {
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return strings.TrimSpace(s[i+1:])
	}
	return s
}

// }}}
// {{{ parseC

// parseC reads the declared task, which spans several consecutive C records. It
// returns how many lines it consumed.
func (p *Parser)parseC(lines []string, f *xcscore.Flight) (int, error) {
	line := lines[0]
	if len(line) < 25 {
		return 1, tooShort(line)
	}
	nTP, err := strconv.Atoi(line[23:25])
	if err != nil {
		return 1, fmt.Errorf("turnpoint count %q: %w", line[23:25], xcscore.ErrParse)
	}
	nLines := 5 + nTP
	if len(lines) < nLines {
		return len(lines), fmt.Errorf("task wants %d C records, have %d: %w", nLines, len(lines),
			xcscore.ErrParse)
	}

	t := xcscore.Task{Description: strings.TrimSpace(line[25:])}
	// A declaration with no dates is common; leave them zero
	t.DeclarationDate, _ = time.Parse(DateFormat+TimeFormat, line[1:13])
	t.FlightDate, _ = time.Parse(DateFormat, line[13:19])
	if t.Number, err = strconv.Atoi(line[19:23]); err != nil {
		return 1, fmt.Errorf("task number %q: %w", line[19:23], xcscore.ErrParse)
	}

	points := make([]geo.NamedLatlong, nLines-1)
	for i := range points {
		if points[i], err = taskPoint(lines[1+i]); err != nil {
			return 1+i, err
		}
	}
	t.Takeoff, t.Start = points[0], points[1]
	t.Turnpoints = points[2:2+nTP]
	t.Finish, t.Landing = points[2+nTP], points[3+nTP]

	f.Task = t
	p.taskDone = true
	return nLines, nil
}

func taskPoint(line string) (geo.NamedLatlong, error) {
	if len(line) < 18 || line[0] != 'C' {
		return geo.NamedLatlong{}, fmt.Errorf("task point %q: %w", line, xcscore.ErrParse)
	}
	lat, err := xcscore.MinDec2Decimal(line[1:9])
	if err != nil {
		return geo.NamedLatlong{}, err
	}
	long, err := xcscore.MinDec2Decimal(line[9:18])
	if err != nil {
		return geo.NamedLatlong{}, err
	}
	return geo.NamedLatlong{
		Name: strings.TrimSpace(line[18:]),
		Latlong: geo.Latlong{Lat:lat, Long:long},
	}, nil
}

// }}}

func tooShort(line string) error {
	return fmt.Errorf("record too short (%d): %q: %w", len(line), line, xcscore.ErrParse)
}
