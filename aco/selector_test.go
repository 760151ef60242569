package aco_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/acotsp/aco"
)

func TestUnvisitedNodes(t *testing.T) {
	cases := []struct {
		name    string
		visited []bool
		want    []int
	}{
		{"empty", []bool{}, []int{}},
		{"none visited", []bool{false, false, false}, []int{0, 1, 2}},
		{"all visited", []bool{true, true}, []int{}},
		{"mixed", []bool{true, false, true, false, false}, []int{1, 3, 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := aco.UnvisitedNodes(tc.visited)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("UnvisitedNodes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestUnvisitedNodes_CountMatchesFlags checks ascending order and
// len == n - visited on random flag sets.
func TestUnvisitedNodes_CountMatchesFlags(t *testing.T) {
	r := aco.NewRand(seedDet)
	for trial := 0; trial < 200; trial++ {
		n := 1 + r.Intn(40)
		visited := make([]bool, n)
		marked := 0
		for i := range visited {
			if r.Intn(2) == 0 {
				visited[i] = true
				marked++
			}
		}

		got := aco.UnvisitedNodes(visited)
		require.Len(t, got, n-marked)
		for k, v := range got {
			assert.False(t, visited[v], "index %d is visited", v)
			if k > 0 {
				assert.Less(t, got[k-1], v, "not ascending")
			}
		}
	}
}

func TestEdgeLengthsAndLevels_Aligned(t *testing.T) {
	env := newGridEnv(fourNodes(), 1, 1, 2, 10)
	env.pher[2][3] = 7

	lengths, err := aco.EdgeLengths(env, 2, []int{3, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 1}, lengths)

	levels, err := aco.PheromoneLevels(env, 2, []int{3, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 1, 1}, levels)
}

func TestEdgeLengths_PropagatesOutOfRange(t *testing.T) {
	env := newGridEnv(fourNodes(), 1, 1, 2, 10)

	_, err := aco.EdgeLengths(env, 0, []int{1, 9})
	assert.ErrorIs(t, err, aco.ErrOutOfRange)

	_, err = aco.PheromoneLevels(env, 0, []int{0})
	assert.ErrorIs(t, err, aco.ErrOutOfRange)

	_, err = aco.EdgeLengths(nil, 0, []int{1})
	assert.ErrorIs(t, err, aco.ErrNilEnvironment)
}

// TestEdgeProbabilities_SumToOne samples random positive inputs and checks
// the distribution invariants.
func TestEdgeProbabilities_SumToOne(t *testing.T) {
	r := aco.NewRand(seedDet)
	for trial := 0; trial < 500; trial++ {
		k := 1 + r.Intn(30)
		levels := make([]float64, k)
		lengths := make([]float64, k)
		for i := 0; i < k; i++ {
			levels[i] = 0.01 + 10*r.Float64()
			lengths[i] = 0.1 + 100*r.Float64()
		}
		alpha := 3 * r.Float64()
		beta := 5 * r.Float64()

		probs, err := aco.EdgeProbabilities(levels, lengths, alpha, beta)
		require.NoError(t, err)
		require.Len(t, probs, k)

		var sum float64
		for _, p := range probs {
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
			sum += p
		}
		assert.InDelta(t, 1.0, sum, eps)
	}
}

func TestEdgeProbabilities_Formula(t *testing.T) {
	// τ=[1,2], L=[1,2], α=1, β=2 ⇒ desirability [1, 0.5] ⇒ p=[2/3, 1/3].
	probs, err := aco.EdgeProbabilities([]float64{1, 2}, []float64{1, 2}, 1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, probs[0], eps)
	assert.InDelta(t, 1.0/3.0, probs[1], eps)
}

// TestEdgeProbabilities_ZeroPowZero pins Pow(0,0)==1: with α=0 a zero
// pheromone level does not zero the edge out.
func TestEdgeProbabilities_ZeroPowZero(t *testing.T) {
	probs, err := aco.EdgeProbabilities([]float64{0, 5}, []float64{1, 1}, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5}, probs)
}

func TestEdgeProbabilities_DegenerateInputs(t *testing.T) {
	// All pheromone zero with α>0: 0/0 on every entry.
	probs, err := aco.EdgeProbabilities([]float64{0, 0}, []float64{1, 2}, 1, 1)
	require.NoError(t, err)
	for _, p := range probs {
		assert.True(t, math.IsNaN(p), "want NaN, got %v", p)
	}

	// Zero length: 1/0 == +Inf dominates, Inf/Inf == NaN for that entry.
	probs, err = aco.EdgeProbabilities([]float64{1, 1}, []float64{0, 1}, 1, 1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(probs[0]))
	assert.Equal(t, 0.0, probs[1])

	_, err = aco.ChooseIndex(aco.CumulativeProbabilities(probs), 0.5)
	assert.ErrorIs(t, err, aco.ErrDegenerateDistribution)
}

func TestEdgeProbabilities_ShapeErrors(t *testing.T) {
	_, err := aco.EdgeProbabilities([]float64{1}, []float64{1, 2}, 1, 1)
	assert.ErrorIs(t, err, aco.ErrDimensionMismatch)

	_, err = aco.EdgeProbabilities(nil, nil, 1, 1)
	assert.ErrorIs(t, err, aco.ErrNoCandidates)
}

func TestCumulativeProbabilities(t *testing.T) {
	assert.Equal(t, []float64{}, aco.CumulativeProbabilities([]float64{}))
	assert.Equal(t, []float64{0.25, 0.5, 1}, aco.CumulativeProbabilities([]float64{0.25, 0.25, 0.5}))

	r := aco.NewRand(seedDet)
	for trial := 0; trial < 200; trial++ {
		k := 1 + r.Intn(50)
		levels := make([]float64, k)
		lengths := make([]float64, k)
		for i := range levels {
			levels[i] = r.Float64() + 0.001
			lengths[i] = 1 + 50*r.Float64()
		}
		probs, err := aco.EdgeProbabilities(levels, lengths, 1, 2)
		require.NoError(t, err)

		cum := aco.CumulativeProbabilities(probs)
		require.Len(t, cum, k)
		for i := 1; i < k; i++ {
			assert.GreaterOrEqual(t, cum[i], cum[i-1])
		}
		assert.InDelta(t, 1.0, cum[k-1], eps)
	}
}

func TestChooseIndex(t *testing.T) {
	cases := []struct {
		name       string
		cumulative []float64
		draw       float64
		want       int
	}{
		{"exact hit picks first reaching index", []float64{0.2, 0.5, 1.0}, 0.5, 1},
		{"zero draw picks first", []float64{0.2, 0.5, 1.0}, 0, 0},
		{"between", []float64{0.2, 0.5, 1.0}, 0.51, 2},
		{"zero-probability prefix skipped", []float64{0, 0, 1}, 0.1, 2},
		{"rounding shortfall clamps to last", []float64{0.3, 0.6, 0.9999}, 0.999999, 2},
		{"single candidate", []float64{1}, 0.7, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := aco.ChooseIndex(tc.cumulative, tc.draw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestChooseIndex_Errors(t *testing.T) {
	_, err := aco.ChooseIndex(nil, 0.5)
	assert.ErrorIs(t, err, aco.ErrNoCandidates)

	_, err = aco.ChooseIndex([]float64{math.NaN(), math.NaN()}, 0.5)
	assert.ErrorIs(t, err, aco.ErrDegenerateDistribution)

	// A bad tail must be reported even if the draw would hit earlier.
	_, err = aco.ChooseIndex([]float64{0.9, -1}, 0.1)
	assert.True(t, errors.Is(err, aco.ErrDegenerateDistribution))
}

// TestRoulette_Frequencies checks that sampling frequencies track the
// probabilities the wheel was built from.
func TestRoulette_Frequencies(t *testing.T) {
	probs := []float64{0.1, 0.6, 0.3}
	cum := aco.CumulativeProbabilities(probs)
	r := aco.NewRand(seedDet)

	const draws = 100000
	counts := make([]int, len(probs))
	for i := 0; i < draws; i++ {
		idx, err := aco.Roulette(cum, r)
		require.NoError(t, err)
		counts[idx]++
	}
	for i, p := range probs {
		assert.InDelta(t, p, float64(counts[i])/draws, 0.01, "index %d", i)
	}
}
