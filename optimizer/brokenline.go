package optimizer

import(
	"fmt"
	"log/slog"
	"math"

	"github.com/skypies/xcscore"
)

// BrokenLine finds the N fixes, in time order, that maximize the sum of the N-1 leg
// distances. It is a branch-and-bound search over candidates whose waypoints are
// constrained to bounding rectangles of fix ranges; the candidate with the largest
// upper bound is explored first, and candidates whose upper bound falls below the
// best lower bound seen so far (the floor) are dropped.
//
// Next steps the search one candidate at a time; Optimize runs it to the end. A
// BrokenLine is not safe for concurrent use.
type BrokenLine struct {
	Stats    Stats

	flight   *xcscore.Flight
	n        int
	start    int
	end      int
	log      *slog.Logger
	scorer   Scorer

	queue    candidateQueue
	minFloor float64
	best     *Candidate
}

func NewBrokenLine(flight *xcscore.Flight, n int, opts Options) (*BrokenLine, error) {
	if err := checkArgs(flight, n); err != nil {
		return nil, err
	}
	start, end, err := opts.window(len(flight.Fixes))
	if err != nil {
		return nil, err
	}

	o := &BrokenLine{flight:flight, n:n, start:start, end:end, log:opts.logger(),
		scorer:opts.scorer()}
	o.Reset()
	return o, nil
}

// Reset restarts the search from the whole window.
func (o *BrokenLine)Reset() {
	o.queue = candidateQueue{}
	o.minFloor = 0
	o.best = nil
	o.Stats = newStats()
	if o.start < o.end {
		o.queue.push(NewCandidate(newRectangleSet(o.flight.Fixes, o.start, o.end)))
	}
}

func (o *BrokenLine)N() int { return o.n }
func (o *BrokenLine)MinFloor() float64 { return o.minFloor }
func (o *BrokenLine)Pending() int { return o.queue.Len() }

// Best is the best final candidate seen so far, or nil.
func (o *BrokenLine)Best() *Candidate { return o.best }

// Next pops the candidate with the largest upper bound, and queues its refinements.
// Candidates below the floor are skipped over. The boolean is false once the queue
// is exhausted.
func (o *BrokenLine)Next() (*Candidate, bool) {
	for o.queue.Len() > 0 {
		o.Stats.recordPop(o.queue.Len())
		c := o.queue.pop()
		if c.Max() < o.minFloor {
			o.Stats.Pruned++
			continue
		}
		o.minFloor = math.Max(o.minFloor, c.Min())

		if c.IsFinal() {
			if c.Len() == o.n {
				o.Stats.Finals++
				if o.best == nil || c.Max() > o.best.Max() {
					o.best = c
				}
			}
			o.log.Debug("final", "candidate", c.Signature(), "km", c.Max(), "floor", o.minFloor)
			return c, true
		}

		children, err := o.branch(c)
		if err != nil {
			// Only an empty candidate fails to branch, and none are ever queued
			panic(err)
		}
		queued := 0
		for _,child := range children {
			if child.Max() >= o.minFloor {
				o.queue.push(child)
				queued++
			}
		}
		o.Stats.recordBranch(len(children))
		o.Stats.Children += queued
		o.log.Debug("branch", "candidate", c.Signature(), "max", c.Max(), "min", c.Min(),
			"children", len(children), "queued", queued, "floor", o.minFloor)
		return c, true
	}
	return nil, false
}

// Optimize runs the search to exhaustion. It returns nil when no N fixes can be
// picked from the window (an empty flight, or fewer fixes than N).
func (o *BrokenLine)Optimize() *Result {
	for {
		if _,ok := o.Next(); !ok { break }
	}

	o.log.Info("optimized", "waypoints", o.n, "fixes", o.end-o.start, "pops", o.Stats.Pops,
		"pruned", o.Stats.Pruned, "branches", o.Stats.Branches, "found", o.best != nil)

	if o.best == nil {
		return nil
	}
	return NewResult(o.best.Fixes()).Scored(o.scorer)
}

// branch splits the splittable set with the largest diagonal, and returns the
// candidates that refine c with the two halves. A candidate with nothing to split
// has no children.
func (o *BrokenLine)branch(c *Candidate) ([]*Candidate, error) {
	if c.Len() == 0 {
		return nil, fmt.Errorf("branch of empty candidate: %w", xcscore.ErrInvalidArgument)
	}
	b := c.largestSplittable()
	if b == nil {
		return nil, nil
	}
	lo, hi := b.Split()

	if c.Len() < o.n {
		// The root; spread the N waypoints over the sets in every feasible way
		clone := c.Clone()
		if err := clone.Replace(b, lo, hi); err != nil {
			return nil, err
		}
		ret := []*Candidate{}
		for _,sets := range permutations(clone.distinctSets(), o.n) {
			ret = append(ret, NewCandidate(sets...))
		}
		return ret, nil
	}

	return refinements(c, b, lo, hi), nil
}

// refinements replaces each occurrence of b in c with lo or hi. Since sets are in
// fix order, the occurrences taking lo come first; neither half can take more
// occurrences than it has fixes.
func refinements(c *Candidate, b, lo, hi *RectangleSet) []*Candidate {
	positions := []int{}
	for i,r := range c.Sets {
		if r.Same(b) { positions = append(positions, i) }
	}

	ret := []*Candidate{}
	m := len(positions)
	for nLo:=0; nLo<=m; nLo++ {
		if nLo > lo.NumFixes() || m-nLo > hi.NumFixes() { continue }
		child := c.Clone()
		for j,pos := range positions {
			if j < nLo {
				child.Sets[pos] = lo
			} else {
				child.Sets[pos] = hi
			}
		}
		child.boundsValid = false
		ret = append(ret, child)
	}
	return ret
}

// permutations lists every length-n sequence of sets, in nondecreasing order, where
// no set appears more times than it has fixes.
func permutations(sets []*RectangleSet, n int) [][]*RectangleSet {
	ret := [][]*RectangleSet{}
	uses := make([]int, len(sets))
	seq := make([]*RectangleSet, 0, n)

	var extend func(from int)
	extend = func(from int) {
		if len(seq) == n {
			ret = append(ret, append([]*RectangleSet{}, seq...))
			return
		}
		for i:=from; i<len(sets); i++ {
			if uses[i] >= sets[i].NumFixes() { continue }
			uses[i]++
			seq = append(seq, sets[i])
			extend(i)
			seq = seq[:len(seq)-1]
			uses[i]--
		}
	}
	extend(0)
	return ret
}
