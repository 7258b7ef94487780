package optimizer

import(
	"fmt"
	"io"
	"log/slog"

	"github.com/skypies/xcscore"
)

const DefaultPairCacheSize = 1 << 20

// Options tune an optimizer run. The zero value scores the whole flight, silently.
type Options struct {
	Start, End    int          // Scoring window [Start,End) over the fixes; End==0 means the last fix
	Logger        *slog.Logger // nil for no logging
	PairCacheSize int          // Brute force only; 0 for DefaultPairCacheSize
	Scorer        Scorer       // nil for DistanceScorer
}

// window resolves the scoring window against a flight of n fixes.
func (o Options)window(n int) (int, int, error) {
	start, end := o.Start, o.End
	if end == 0 { end = n }
	if start < 0 || end > n || (n > 0 && start >= end) {
		return 0, 0, fmt.Errorf("window [%d,%d) over %d fixes: %w", o.Start, o.End, n,
			xcscore.ErrInvalidArgument)
	}
	return start, end, nil
}

func (o Options)logger() *slog.Logger {
	if o.Logger != nil { return o.Logger }
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o Options)scorer() Scorer {
	if o.Scorer != nil { return o.Scorer }
	return DistanceScorer{}
}

func checkArgs(flight *xcscore.Flight, n int) error {
	if flight == nil {
		return fmt.Errorf("nil flight: %w", xcscore.ErrInvalidArgument)
	} else if n < 2 {
		return fmt.Errorf("%d waypoints, need at least 2: %w", n, xcscore.ErrInvalidArgument)
	}
	return nil
}
