package augment

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/born-ml/augment/internal/tensor"
)

type rangeKind int

const (
	scalarKind rangeKind = iota
	intervalKind
	perChannelKind
)

// RangeSpec is the user-facing description of a sampling range. Operators
// accept a scalar, a [lo, hi] interval or one interval per channel; the
// union is normalized into a canonical Ranges value at construction time so
// sampling never branches on the original form.
type RangeSpec struct {
	kind     rangeKind
	lo, hi   float64
	channels [][2]float64
}

// Exact returns a degenerate range [v, v].
func Exact(v float64) RangeSpec {
	return RangeSpec{kind: scalarKind, lo: v, hi: v}
}

// Interval returns the range [lo, hi].
func Interval(lo, hi float64) RangeSpec {
	return RangeSpec{kind: intervalKind, lo: lo, hi: hi}
}

// PerChannel returns one [lo, hi] range per channel.
func PerChannel(ranges ...[2]float64) RangeSpec {
	return RangeSpec{kind: perChannelKind, channels: ranges}
}

// Ranges is the canonical representation: one [lo, hi] pair, or one per
// channel for per-channel specs.
type Ranges [][2]float64

// Normalize validates the spec against [domainLo, domainHi] and returns the
// canonical ranges. Malformed specs (lo > hi, bounds outside the domain,
// empty per-channel list) are rejected with a descriptive error.
func (r RangeSpec) Normalize(domainLo, domainHi float64) (Ranges, error) {
	var pairs [][2]float64
	switch r.kind {
	case scalarKind, intervalKind:
		pairs = [][2]float64{{r.lo, r.hi}}
	case perChannelKind:
		if len(r.channels) == 0 {
			return nil, fmt.Errorf("augment: per-channel range must name at least one channel")
		}
		pairs = r.channels
	}

	for i, pair := range pairs {
		lo, hi := pair[0], pair[1]
		if lo > hi {
			return nil, fmt.Errorf("augment: invalid range [%g, %g]: lower bound exceeds upper bound", lo, hi)
		}
		if lo < domainLo || hi > domainHi {
			return nil, fmt.Errorf("augment: range [%g, %g] outside valid domain [%g, %g] (entry %d)",
				lo, hi, domainLo, domainHi, i)
		}
	}
	return Ranges(pairs), nil
}

// Sample draws one value per range entry for each of n samples, returning a
// [n, C] tensor (or [1, C] when sameOnBatch). C is 1 for non-per-channel
// specs.
func (r Ranges) Sample(rng *rand.Rand, n int, sameOnBatch bool) *tensor.Tensor[float32] {
	rows := n
	if sameOnBatch {
		rows = 1
	}
	c := len(r)
	out := tensor.New[float32](tensor.Shape{rows, c})
	data := out.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < c; j++ {
			lo, hi := r[j][0], r[j][1]
			data[i*c+j] = float32(lo + rng.Float64()*(hi-lo))
		}
	}
	return out
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// clampInt bounds v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// roundPositive rounds v to the nearest integer, assuming v >= 0.
func roundPositive(v float64) int {
	return int(math.Floor(v + 0.5))
}
