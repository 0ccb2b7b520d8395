package hatescan

import "gonum.org/v1/gonum/floats"

// A TrajectoryPoint pairs a token index with the running emotion score at
// that position.
type TrajectoryPoint struct {
	Index      int     `json:"index"`
	Cumulative float64 `json:"cumulative"`
}

// A Trajectory is the per-token running emotion score of one analysis. It
// holds only the immutable scored tokens; cumulative sums are recomputed
// fresh on every access, so the sequence is restartable and consumers can
// walk it any number of times.
type Trajectory struct {
	tokens []ScoredToken
}

// BuildTrajectory wraps scored tokens into a trajectory. One point per token:
// the cumulative score at position i is the sum of contributions 0..i.
func BuildTrajectory(scored []ScoredToken) Trajectory {
	return Trajectory{tokens: scored}
}

// Len returns the token count.
func (t Trajectory) Len() int {
	return len(t.tokens)
}

// Contributions returns the signed per-token contributions, hateward
// positive, safe negative.
func (t Trajectory) Contributions() []float64 {
	out := make([]float64, len(t.tokens))
	for i, st := range t.tokens {
		out[i] = st.Contribution
	}
	return out
}

// Points returns the (index, cumulative) sequence.
func (t Trajectory) Points() []TrajectoryPoint {
	contribs := t.Contributions()
	if len(contribs) == 0 {
		return nil
	}
	cum := make([]float64, len(contribs))
	floats.CumSum(cum, contribs)

	points := make([]TrajectoryPoint, len(cum))
	for i, c := range cum {
		points[i] = TrajectoryPoint{Index: i, Cumulative: c}
	}
	return points
}
