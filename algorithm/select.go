package algorithm

import (
	"fmt"

	"github.com/arloliu/decimate/errs"
	"github.com/arloliu/decimate/format"
)

// Selector is the signature shared by LTTB and Nth.
type Selector func(x, y []float64, nOut int) ([]int, error)

// Select runs the selector for alg over the series.
//
// Returns ErrUnknownAlgorithm for anything other than format.AlgorithmLTTB or
// format.AlgorithmNth; there is no fallback.
func Select(alg format.AlgorithmType, x, y []float64, nOut int) ([]int, error) {
	sel, err := SelectorFor(alg)
	if err != nil {
		return nil, err
	}

	return sel(x, y, nOut)
}

// SelectorFor returns the selector function for alg.
func SelectorFor(alg format.AlgorithmType) (Selector, error) {
	switch alg {
	case format.AlgorithmLTTB:
		return LTTB, nil
	case format.AlgorithmNth:
		return Nth, nil
	default:
		return nil, fmt.Errorf("%w: %s (0x%x)", errs.ErrUnknownAlgorithm, alg, uint8(alg))
	}
}

// MinOutput returns the smallest nOut the algorithm accepts.
func MinOutput(alg format.AlgorithmType) int {
	if alg == format.AlgorithmLTTB {
		return minLTTBPoints
	}

	return 1
}
