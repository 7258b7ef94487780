package optimizer

import(
	"testing"
)

func TestCandidateQueue(t *testing.T) {
	fixes := candidateFixes()
	mid := NewCandidate(sets(fixes, 0,1, 1,2)...) // Further south than the ties, so a little longer
	long := NewCandidate(sets(fixes, 0,1, 5,6)...)
	tie1 := NewCandidate(sets(fixes, 2,3, 3,4)...)
	tie2 := NewCandidate(sets(fixes, 2,3, 3,4)...)

	q := candidateQueue{}
	for _,c := range []*Candidate{mid, tie1, long, tie2} {
		q.push(c)
	}
	if q.peek() != long {
		t.Errorf("peek: expected %s, got %s", long, q.peek())
	}

	// Equal bounds come out in the order they went in, and neither is lost
	for i,expected := range []*Candidate{long, mid, tie1, tie2} {
		if actual := q.pop(); actual != expected {
			t.Errorf("[%d] expected %s, got %s", i, expected, actual)
		}
	}
	if q.Len() != 0 {
		t.Errorf("expected empty queue, have %d", q.Len())
	}

	defer func() {
		if recover() == nil {
			t.Errorf("pop of empty queue did not panic")
		}
	}()
	q.pop()
}
