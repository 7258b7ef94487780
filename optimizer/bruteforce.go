package optimizer

import(
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/skypies/xcscore"
)

type fixPair struct{ i, j int }

// BruteForce tries every increasing tuple of N fixes in the window. It is exact and
// exponential in N; it exists to check BrokenLine against.
type BruteForce struct {
	flight  *xcscore.Flight
	n       int
	start   int
	end     int
	log     *slog.Logger
	scorer  Scorer

	dists   *lru.Cache[fixPair,float64]
	Lookups int
	Misses  int
}

func NewBruteForce(flight *xcscore.Flight, n int, opts Options) (*BruteForce, error) {
	if err := checkArgs(flight, n); err != nil {
		return nil, err
	}
	start, end, err := opts.window(len(flight.Fixes))
	if err != nil {
		return nil, err
	}
	size := opts.PairCacheSize
	if size <= 0 { size = DefaultPairCacheSize }
	dists, err := lru.New[fixPair,float64](size)
	if err != nil {
		return nil, err
	}

	return &BruteForce{flight:flight, n:n, start:start, end:end, log:opts.logger(),
		scorer:opts.scorer(), dists:dists}, nil
}

func (o *BruteForce)dist(i, j int) float64 {
	o.Lookups++
	if d,ok := o.dists.Get(fixPair{i,j}); ok {
		return d
	}
	o.Misses++
	d := xcscore.DistKM(o.flight.Fixes[i], o.flight.Fixes[j])
	o.dists.Add(fixPair{i,j}, d)
	return d
}

// Optimize returns nil if the window holds fewer than N fixes.
func (o *BruteForce)Optimize() *Result {
	if o.end - o.start < o.n {
		return nil
	}

	best := -1.0
	bestIdx := make([]int, o.n)
	idx := make([]int, o.n)

	var extend func(k, from int, sofar float64)
	extend = func(k, from int, sofar float64) {
		if k == o.n {
			if sofar > best {
				best = sofar
				copy(bestIdx, idx)
			}
			return
		}
		// Leave room for the remaining waypoints
		for i:=from; i <= o.end-(o.n-k); i++ {
			idx[k] = i
			d := sofar
			if k > 0 { d += o.dist(idx[k-1], i) }
			extend(k+1, i+1, d)
		}
	}
	extend(0, o.start, 0)

	o.log.Info("brute force", "waypoints", o.n, "fixes", o.end-o.start, "km", best,
		"lookups", o.Lookups, "misses", o.Misses)

	points := make([]xcscore.Fix, o.n)
	for k,i := range bestIdx {
		points[k] = o.flight.Fixes[i]
	}
	return NewResult(points).Scored(o.scorer)
}
