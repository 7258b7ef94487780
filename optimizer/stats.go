package optimizer

import(
	"fmt"

	"github.com/skypies/util/histogram"
)

// Stats are counters from a branch-and-bound run.
type Stats struct {
	Pops      int // Candidates taken off the queue
	Pruned    int // ... of which were discarded against the floor
	Branches  int // Candidates that were split
	Children  int // Candidates queued by branching
	Finals    int // Final candidates with the full set of waypoints

	H histogram.Set // "queue": queue length at each pop; "fanout": children per branch
}

func newStats() Stats {
	return Stats{H: histogram.NewSet(100000)}
}

func (s *Stats)recordPop(queueLen int) {
	s.Pops++
	s.H.RecordValue("queue", int64(queueLen))
}

func (s *Stats)recordBranch(fanout int) {
	s.Branches++
	s.H.RecordValue("fanout", int64(fanout))
}

func (s Stats)String() string {
	str := fmt.Sprintf("pops=%d pruned=%d branches=%d children=%d finals=%d\n",
		s.Pops, s.Pruned, s.Branches, s.Children, s.Finals)
	return str + fmt.Sprintf("%s", s.H)
}
