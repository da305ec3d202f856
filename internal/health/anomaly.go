// Package health scores sensor readings for anomalies.
package health

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultThreshold is the z-score at or above which a reading is flagged.
const DefaultThreshold = 3.0

// ZScores returns |x - mean| / std for every value, using the population
// standard deviation.
//
// Empty input yields an empty result. A constant series (std = 0) scores all
// zeros.
func ZScores(values []float32) []float32 {
	scores := make([]float32, len(values))
	if len(values) == 0 {
		return scores
	}

	x := make([]float64, len(values))
	for i, v := range values {
		x[i] = float64(v)
	}
	mean, std := stat.PopMeanStdDev(x, nil)
	if std == 0 {
		return scores
	}

	for i, v := range x {
		scores[i] = float32(math.Abs(v-mean) / std)
	}
	return scores
}

// Config holds configuration for a Detector.
type Config struct {
	Threshold float64 // Flagging threshold (default: 3.0)
}

// Detector flags readings whose z-score reaches a threshold.
type Detector struct {
	threshold float64
}

// NewDetector creates a detector.
func NewDetector(cfg Config) *Detector {
	if cfg.Threshold == 0 {
		cfg.Threshold = DefaultThreshold
	}
	return &Detector{threshold: cfg.Threshold}
}

// Threshold returns the flagging threshold.
func (d *Detector) Threshold() float64 {
	return d.threshold
}

// Flag scores values and returns the indices whose score is at least the
// threshold, in ascending order, along with all scores.
func (d *Detector) Flag(values []float32) ([]int, []float32) {
	scores := ZScores(values)
	var flagged []int
	for i, s := range scores {
		if float64(s) >= d.threshold {
			flagged = append(flagged, i)
		}
	}
	return flagged, scores
}

// MostAnomalous returns the index of the highest score, or -1 for no scores.
// Ties resolve to the lowest index.
func MostAnomalous(scores []float32) int {
	if len(scores) == 0 {
		return -1
	}
	x := make([]float64, len(scores))
	for i, s := range scores {
		x[i] = float64(s)
	}
	return floats.MaxIdx(x)
}

// TopK returns the indices of the k highest scores, highest first. Ties keep
// index order. k larger than len(scores) returns every index.
func TopK(scores []float32, k int) []int {
	if k <= 0 {
		return nil
	}
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		switch {
		case scores[a] > scores[b]:
			return -1
		case scores[a] < scores[b]:
			return 1
		default:
			return 0
		}
	})
	return idx[:min(k, len(idx))]
}
