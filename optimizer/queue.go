package optimizer

import "container/heap"

// candidateQueue is a max-heap on Candidate.Max. Ties go to the candidate queued
// first, so equal bounds never shadow each other.
type candidateQueue struct {
	Nodes []*Candidate
	next  uint64
}

func (h candidateQueue) Len() int { return len(h.Nodes) }
func (h candidateQueue) Less(i, j int) bool {
	a,b := h.Nodes[i], h.Nodes[j]
	if a.Max() != b.Max() { return a.Max() > b.Max() }
	return a.seq < b.seq
}
func (h candidateQueue) Swap(i, j int) { h.Nodes[i], h.Nodes[j] = h.Nodes[j], h.Nodes[i] }

func (h *candidateQueue) Push(x interface{}) {
	c := x.(*Candidate)
	c.seq = h.next
	h.next++
	h.Nodes = append(h.Nodes, c)
}

func (h *candidateQueue) Pop() interface{} {
	old := h.Nodes
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	h.Nodes = old[0 : n-1]
	return x
}

var _ heap.Interface = &candidateQueue{}

func (h *candidateQueue) push(c *Candidate) { heap.Push(h, c) }

// pop panics on an empty queue; callers check Len first.
func (h *candidateQueue) pop() *Candidate {
	if h.Len() == 0 {
		panic("optimizer: pop from empty candidate queue")
	}
	return heap.Pop(h).(*Candidate)
}

func (h *candidateQueue) peek() *Candidate { return h.Nodes[0] }
