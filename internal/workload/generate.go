// SPDX-License-Identifier: MIT

package workload

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlseq/internal/rng"
)

// fewUniqueValues is the number of distinct values in a FewUnique input.
const fewUniqueValues = 8

// Generate returns n integers shaped by kind. Only Random, Shuffled and
// FewUnique draw from r; a nil r uses the default deterministic stream.
func Generate(kind Kind, n int, r *rand.Rand) ([]int, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "size %d", n)
	}
	if r == nil {
		r = rng.New(0)
	}

	out := make([]int, n)
	switch kind {
	case Random:
		for i := range out {
			out[i] = r.Intn(math.MaxInt32)
		}
	case Shuffled:
		for i := range out {
			out[i] = i
		}
		rng.Shuffle(out, r)
	case Sorted:
		for i := range out {
			out[i] = i
		}
	case Reversed:
		for i := range out {
			out[i] = n - i
		}
	case OrganPipe:
		for i := range out {
			out[i] = min(i, n-1-i)
		}
	case FewUnique:
		for i := range out {
			out[i] = r.Intn(fewUniqueValues)
		}
	case Sawtooth:
		period := int(math.Sqrt(float64(n))) + 1
		for i := range out {
			out[i] = i % period
		}
	case AllEqual:
		// zero-filled
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%q", string(kind))
	}
	return out, nil
}
