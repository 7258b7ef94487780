package optimizer

import(
	"fmt"
	"sort"
	"strings"

	"github.com/skypies/xcscore"
)

// A Candidate is an ordered list of RectangleSets; one waypoint is to be picked from
// each, in order. The sets are kept sorted by Start. Its bounds are cached until the
// next mutation.
type Candidate struct {
	Sets        []*RectangleSet

	max, min    float64
	boundsValid bool

	seq         uint64 // Assigned by the queue, to order ties
}

func NewCandidate(sets ...*RectangleSet) *Candidate {
	c := &Candidate{Sets: append([]*RectangleSet{}, sets...)}
	c.sortSets()
	return c
}

// sortSets restores start order after a mutation, and drops the cached bounds.
func (c *Candidate)sortSets() {
	sort.SliceStable(c.Sets, func(i,j int) bool { return c.Sets[i].Less(c.Sets[j]) })
	c.boundsValid = false
}

func (c *Candidate)Len() int { return len(c.Sets) }

func (c *Candidate)Add(r *RectangleSet) error {
	if r == nil {
		return fmt.Errorf("add of nil rectangle: %w", xcscore.ErrInvalidArgument)
	}
	c.Sets = append(c.Sets, r)
	c.sortSets()
	return nil
}

// Replace drops every set covering the same range as old, and adds the new sets in
// their place in start order.
func (c *Candidate)Replace(old *RectangleSet, sets ...*RectangleSet) error {
	if len(sets) == 0 {
		return fmt.Errorf("replace %s with nothing: %w", old, xcscore.ErrInvalidArgument)
	}
	kept := c.Sets[:0]
	for _,r := range c.Sets {
		if !r.Same(old) { kept = append(kept, r) }
	}
	c.Sets = append(kept, sets...)
	c.sortSets()
	return nil
}

// Clone copies the list; the sets themselves are shared.
func (c *Candidate)Clone() *Candidate {
	return &Candidate{
		Sets: append([]*RectangleSet{}, c.Sets...),
		max: c.max,
		min: c.min,
		boundsValid: c.boundsValid,
	}
}

func (c *Candidate)computeBounds() {
	if c.boundsValid { return }
	c.max, c.min = 0, 0
	for i:=0; i<len(c.Sets)-1; i++ {
		c.max += c.Sets[i].MaxDistance(c.Sets[i+1])
		c.min += c.Sets[i].MinDistance(c.Sets[i+1])
	}
	c.boundsValid = true
}

// Max is an upper bound on the distance of any waypoint choice within the sets.
func (c *Candidate)Max() float64 { c.computeBounds(); return c.max }

// Min is a lower bound on the distance of any waypoint choice within the sets.
func (c *Candidate)Min() float64 { c.computeBounds(); return c.min }

// IsFinal is true when every set holds a single fix; Max and Min are then both the
// exact distance.
func (c *Candidate)IsFinal() bool {
	for _,r := range c.Sets {
		if !r.IsSingleton() { return false }
	}
	return true
}

// LargestDiagonal returns the earliest set with the largest diagonal, or nil.
func (c *Candidate)LargestDiagonal() *RectangleSet {
	return c.largestDiagonal(func(*RectangleSet) bool { return true })
}

// largestSplittable is LargestDiagonal restricted to sets that can be split.
func (c *Candidate)largestSplittable() *RectangleSet {
	return c.largestDiagonal(func(r *RectangleSet) bool { return !r.IsSingleton() })
}

func (c *Candidate)largestDiagonal(eligible func(*RectangleSet) bool) *RectangleSet {
	var best *RectangleSet
	for _,r := range c.Sets {
		if eligible(r) && (best == nil || r.Diagonal() > best.Diagonal()) {
			best = r
		}
	}
	return best
}

// distinctSets drops repeats of the same range.
func (c *Candidate)distinctSets() []*RectangleSet {
	sets := append([]*RectangleSet{}, c.Sets...)
	ret := sets[:0]
	for _,r := range sets {
		if len(ret) > 0 && ret[len(ret)-1].Same(r) { continue }
		ret = append(ret, r)
	}
	return ret
}

// Signature identifies a candidate by its ordered ranges.
func (c *Candidate)Signature() string {
	parts := make([]string, len(c.Sets))
	for i,r := range c.Sets {
		parts[i] = fmt.Sprintf("%d-%d", r.Start, r.End)
	}
	return strings.Join(parts, ",")
}

// Fixes picks the first fix of each set.
func (c *Candidate)Fixes() []xcscore.Fix {
	ret := make([]xcscore.Fix, len(c.Sets))
	for i,r := range c.Sets {
		ret[i] = r.Fix()
	}
	return ret
}

func (c *Candidate)String() string {
	return fmt.Sprintf("{%s} max=%.3f min=%.3f", c.Signature(), c.Max(), c.Min())
}
