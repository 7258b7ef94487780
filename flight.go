package xcscore

import(
	"fmt"
	"time"

	"github.com/skypies/geo"
)

// Header carries the A and H records of a flight log.
type Header struct {
	Manufacturer     string // Three char logger manufacturer code
	UniqueID         string
	AdditionalData   string

	Date             time.Time // Midnight UTC of the flight date
	FixAccuracy      int       // Meters
	Pilot            string
	Crew             string
	GliderType       string
	GliderID         string
	GPSDatum         string
	FirmwareVersion  string
	HardwareVersion  string
	FlightRecorder   string
	GPS              string
	PressureSensor   string
	CompetitionID    string
	CompetitionClass string
}

func (h Header)String() string {
	return fmt.Sprintf("%s/%s %s pilot=%q glider=%s/%s", h.Manufacturer, h.UniqueID,
		h.Date.Format("2006.01.02"), h.Pilot, h.GliderType, h.GliderID)
}

// Task is a declared task (the C records).
type Task struct {
	DeclarationDate time.Time
	FlightDate      time.Time
	Number          int
	Description     string

	Takeoff         geo.NamedLatlong
	Start           geo.NamedLatlong
	Turnpoints      []geo.NamedLatlong
	Finish          geo.NamedLatlong
	Landing         geo.NamedLatlong
}

// Points lists the task points in flying order.
func (t Task)Points() []geo.NamedLatlong {
	ret := []geo.NamedLatlong{t.Takeoff, t.Start}
	ret = append(ret, t.Turnpoints...)
	return append(ret, t.Finish, t.Landing)
}

func (t Task)IsEmpty() bool {
	return t.Number == 0 && len(t.Turnpoints) == 0 && t.Start.IsNil() && t.Finish.IsNil()
}

func (t Task)String() string {
	str := fmt.Sprintf("Task %d %q:", t.Number, t.Description)
	for _,p := range t.Points() {
		str += fmt.Sprintf(" %s", p.Name)
	}
	return str
}

// Flight is a parsed flight log: a header, an optional declared task, and the
// fixes in time order.
type Flight struct {
	Header   // embedded
	Task     Task
	Fixes    Track

	DebugLog string
}

func BlankFlight() Flight {
	return Flight{Fixes: Track{}}
}

// NewFlight wraps a set of fixes, typically for tests and synthetic flights.
func NewFlight(fixes ...Fix) *Flight {
	f := BlankFlight()
	f.Fixes = append(f.Fixes, fixes...)
	return &f
}

func (f *Flight)AddFix(fix Fix) { f.Fixes = append(f.Fixes, fix) }
func (f Flight)NumFixes() int { return len(f.Fixes) }

func (f Flight)String() string {
	return f.Header.String() + " " + f.Fixes.String()
}

// TrimToTimes returns a copy of the flight holding only the fixes within [s,e].
func (f Flight)TrimToTimes(s, e int) *Flight {
	ret := f
	ret.Fixes = f.Fixes.TrimToTimes(s, e)
	return &ret
}

// Resample returns a copy of the flight with at most maxFixes fixes.
func (f Flight)Resample(maxFixes int) *Flight {
	ret := f
	ret.Fixes = f.Fixes.Resample(maxFixes)
	return &ret
}

// TimestampUTC places a fix on the flight date.
func (f Flight)TimestampUTC(fix Fix) time.Time {
	return f.Header.Date.Add(time.Duration(fix.Time) * time.Second)
}

// Logf notes something odd about the log, e.g. records the reader skipped.
func (f *Flight)Logf(format string, args ...interface{}) {
	f.DebugLog += fmt.Sprintf(format, args...) + "\n"
}
