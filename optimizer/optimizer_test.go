package optimizer

import(
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skypies/xcscore"
)

// legScorer gives a point per leg, whatever its length.
type legScorer struct{}

func (legScorer)ID() string { return "legs" }
func (legScorer)Score(res *Result) float64 { return float64(len(res.Legs())) }

func TestOptimizerRegistry(t *testing.T) {
	assert.Equal(t, []string{"brokenline", "bruteforce"}, Names())

	f := loadFlight(t, "optimize-with-5-points.igc")
	for _,id := range append(Names(), "") {
		o,err := New(id, f, 3, Options{})
		require.NoError(t, err, id)
		res := o.Optimize()
		require.NotNil(t, res, id)
		assert.InDelta(t, 855.378391, res.Distance(), 1e-6, id)
		assert.Equal(t, "distance", res.ScorerID, id)
		assert.Equal(t, res.Distance(), res.Score, id)
	}

	_,isBrokenLine := mustNew(t, "", f).(*BrokenLine)
	assert.True(t, isBrokenLine, "default optimizer")

	if _,err := New("montecarlo", f, 3, Options{}); !errors.Is(err, xcscore.ErrInvalidArgument) {
		t.Errorf("unknown optimizer: expected ErrInvalidArgument, got %v", err)
	}
	for _,id := range Names() {
		o,err := New(id, nil, 3, Options{})
		assert.Nil(t, o, id)
		if !errors.Is(err, xcscore.ErrInvalidArgument) {
			t.Errorf("%s, nil flight: expected ErrInvalidArgument, got %v", id, err)
		}
	}
}

func mustNew(t *testing.T, id string, f *xcscore.Flight) Optimizer {
	t.Helper()
	o,err := New(id, f, 3, Options{})
	require.NoError(t, err)
	return o
}

func TestOptimizerScorer(t *testing.T) {
	f := loadFlight(t, "optimize-with-5-points.igc")
	for _,id := range Names() {
		o,err := New(id, f, 4, Options{Scorer: legScorer{}})
		require.NoError(t, err)
		res := o.Optimize()
		require.NotNil(t, res)
		assert.InDelta(t, 855.424406, res.Distance(), 1e-6, id)
		assert.Equal(t, 3.0, res.Score, id)
		assert.Equal(t, "legs", res.ScorerID, id)
	}
}
