package vienna

import (
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the base pairing along one converted trajectory.
type Summary struct {
	Steps     int
	MeanPairs float64
	StdPairs  float64
	MaxPairs  int
	MaxLength int
}

// Pairs counts the base pairs of a dot-bracket structure.
func Pairs(structure string) int {
	return strings.Count(structure, "(")
}

// Summarize computes pair statistics over recs. The standard deviation is
// zero for fewer than two steps.
func Summarize(recs []Record) Summary {
	s := Summary{Steps: len(recs)}
	if len(recs) == 0 {
		return s
	}
	pairs := make([]float64, len(recs))
	for i, r := range recs {
		pairs[i] = float64(Pairs(r.Structure))
		if len(r.Structure) > s.MaxLength {
			s.MaxLength = len(r.Structure)
		}
	}
	s.MaxPairs = int(floats.Max(pairs))
	if len(pairs) < 2 {
		s.MeanPairs = pairs[0]
		return s
	}
	s.MeanPairs, s.StdPairs = stat.MeanStdDev(pairs, nil)
	return s
}
