package bodypose

import "math"

// AdaptiveFilter smooths one noisy scalar channel with a velocity-adaptive
// low-pass: the cutoff frequency sits at MinCutoffHz while the signal is
// slow (maximum smoothing of jitter) and rises with the filtered derivative
// so fast genuine motion passes through with little lag.
//
// A filter instance owns exactly one channel's state. Calls must arrive in
// non-decreasing timestamp order; a sample with non-positive elapsed time
// is rejected and the previous output is returned unchanged.
type AdaptiveFilter struct {
	cfg FilterConfig

	initialized   bool
	prevValue     float64 // last filtered output
	prevDeriv     float64 // last filtered derivative
	prevTimestamp float64 // milliseconds
}

// NewAdaptiveFilter creates a filter in the uninitialized state.
func NewAdaptiveFilter(cfg FilterConfig) *AdaptiveFilter {
	return &AdaptiveFilter{cfg: cfg}
}

// Filter returns the smoothed value for one sample. The first accepted
// sample is returned unchanged: with no history there is nothing to smooth
// against. Filter never fails; degenerate timestamps fall back to the last
// output.
func (f *AdaptiveFilter) Filter(value, timestampMs float64) float64 {
	if !f.initialized {
		f.initialized = true
		f.prevValue = value
		f.prevDeriv = 0
		f.prevTimestamp = timestampMs
		return value
	}

	dt := (timestampMs - f.prevTimestamp) / 1000.0
	if dt <= 0 {
		// Out-of-order or duplicate timestamp; keep state untouched.
		return f.prevValue
	}

	rawDeriv := (value - f.prevValue) / dt
	filteredDeriv := lowPass(rawDeriv, f.prevDeriv, f.cfg.DerivativeCutoffHz, dt)

	cutoff := f.cfg.MinCutoffHz + f.cfg.Beta*math.Abs(filteredDeriv)
	filtered := lowPass(value, f.prevValue, cutoff, dt)

	f.prevValue = filtered
	f.prevDeriv = filteredDeriv
	f.prevTimestamp = timestampMs
	return filtered
}

// Reset clears the filter back to the uninitialized state; the next Filter
// call behaves exactly like a first-ever call.
func (f *AdaptiveFilter) Reset() {
	f.initialized = false
	f.prevValue = 0
	f.prevDeriv = 0
	f.prevTimestamp = 0
}

// lowPass exponentially smooths x toward prev. The weight on the new
// sample grows with cutoff and elapsed time and stays in (0,1), so the
// output always lies between prev and x.
func lowPass(x, prev, cutoff, dt float64) float64 {
	r := 2.0 * math.Pi * cutoff * dt
	alpha := r / (r + 1.0)
	return alpha*x + (1.0-alpha)*prev
}
