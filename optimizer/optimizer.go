package optimizer

import(
	"fmt"
	"sort"

	"github.com/skypies/xcscore"
)

// An Optimizer picks the N fixes of a flight that make the longest broken line.
// Optimize returns nil when the flight has too few fixes.
type Optimizer interface {
	Optimize() *Result
}

// A Factory builds an optimizer for one flight and task size.
type Factory func(flight *xcscore.Flight, n int, opts Options) (Optimizer, error)

const DefaultOptimizer = "brokenline"

// Optimizers holds every available optimizer, keyed on ID.
var Optimizers = map[string]Factory{
	"brokenline": func(flight *xcscore.Flight, n int, opts Options) (Optimizer, error) {
		o,err := NewBrokenLine(flight, n, opts)
		if err != nil { return nil, err }
		return o, nil
	},
	"bruteforce": func(flight *xcscore.Flight, n int, opts Options) (Optimizer, error) {
		o,err := NewBruteForce(flight, n, opts)
		if err != nil { return nil, err }
		return o, nil
	},
}

// New builds the optimizer registered as id; an empty id gets DefaultOptimizer.
func New(id string, flight *xcscore.Flight, n int, opts Options) (Optimizer, error) {
	if id == "" { id = DefaultOptimizer }
	factory,exists := Optimizers[id]
	if !exists {
		return nil, fmt.Errorf("optimizer '%s' not known: %w", id, xcscore.ErrInvalidArgument)
	}
	return factory(flight, n, opts)
}

// Names lists the registered optimizer IDs, sorted.
func Names() []string {
	names := []string{}
	for k,_ := range Optimizers { names = append(names, k) }
	sort.Strings(names)
	return names
}

// A Scorer gives points for an optimized task. Optimizers always maximize distance;
// the scorer only rates the line they find.
type Scorer interface {
	ID() string
	Score(res *Result) float64
}

// DistanceScorer scores a task by its distance in kilometers.
type DistanceScorer struct{}

func (DistanceScorer)ID() string { return "distance" }
func (DistanceScorer)Score(res *Result) float64 { return res.Distance() }
