package hatescan

import "gonum.org/v1/gonum/floats"

// DetectToneShift splits the trajectory at its token-count midpoint and
// compares the dominant polarity of each half. Texts of fewer than two
// tokens never report a shift.
func DetectToneShift(traj Trajectory, cfg AnalysisConfig) ToneShift {
	shift := ToneShift{
		ShiftType:          ShiftNone,
		PivotIndex:         -1,
		FirstHalfPolarity:  DominanceNeutral,
		SecondHalfPolarity: DominanceNeutral,
	}
	n := traj.Len()
	if n < 2 {
		return shift
	}

	contribs := traj.Contributions()
	mid := n / 2
	shift.FirstHalfPolarity = dominance(floats.Sum(contribs[:mid]), cfg.ShiftThreshold)
	shift.SecondHalfPolarity = dominance(floats.Sum(contribs[mid:]), cfg.ShiftThreshold)

	switch {
	case shift.FirstHalfPolarity == DominanceSafe && shift.SecondHalfPolarity == DominanceHate:
		shift.Detected = true
		shift.ShiftType = ShiftPositiveToHate
	case shift.FirstHalfPolarity == DominanceHate && shift.SecondHalfPolarity == DominanceSafe:
		shift.Detected = true
		shift.ShiftType = ShiftHateToPositive
	default:
		return shift
	}

	shift.PivotIndex = pivotIndex(traj.Points(), mid, shift.FirstHalfPolarity)
	return shift
}

// dominance resolves a half-sum into a polarity. Sums within the threshold
// band (including exact ties at zero) are neutral.
func dominance(sum, threshold float64) Dominance {
	switch {
	case sum > threshold:
		return DominanceHate
	case sum < -threshold:
		return DominanceSafe
	}
	return DominanceNeutral
}

// pivotIndex finds the first token of the second half whose running
// cumulative sign no longer matches the first half's dominant sign. When the
// first half accumulated enough that the cumulative sign never flips, the
// midpoint itself is the pivot.
func pivotIndex(points []TrajectoryPoint, mid int, first Dominance) int {
	firstSign := -1.0
	if first == DominanceHate {
		firstSign = 1.0
	}
	for _, p := range points[mid:] {
		if sign(p.Cumulative) != firstSign {
			return p.Index
		}
	}
	return mid
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
