package bodypose

// Config holds all configuration for the frame processing pipeline.
type Config struct {
	Filter             FilterConfig
	AngleFilter        FilterConfig // overrides Filter for angle channels when set (MinCutoffHz > 0)
	Stability          StabilityConfig
	Tracking           TrackingConfig
	MinVisibility      float64 // landmarks below this visibility are treated as unseen
	SmoothLandmarks    bool    // also run per-coordinate filters on raw landmark channels
	PrimaryJoint       Joint   // joint scored against CompensatoryJoints
	CompensatoryJoints []Joint
}

// FilterConfig holds parameters for one adaptive low-pass filter.
type FilterConfig struct {
	SamplingFrequencyHz float64 // nominal frame rate of the input stream
	MinCutoffHz         float64 // cutoff floor; lower = more smoothing at rest
	Beta                float64 // speed coefficient; higher = less lag on fast motion
	DerivativeCutoffHz  float64 // fixed cutoff for smoothing the derivative estimate
}

// StabilityConfig holds parameters for movement stability scoring.
type StabilityConfig struct {
	WindowSize  int     // positions kept per joint history (FIFO)
	ScaleFactor float64 // total-variation multiplier; tuned to the coordinate unit scale
}

// TrackingConfig holds parameters for cross-frame landmark continuity.
type TrackingConfig struct {
	CarryForwardFrames int // frames a lost landmark may be carried before it is dropped
}

// DefaultConfig returns a Config tuned for normalized 0-1 landmark
// coordinates at roughly 30 fps.
func DefaultConfig() Config {
	return Config{
		Filter: FilterConfig{
			SamplingFrequencyHz: 30.0,
			MinCutoffHz:         1.0,
			Beta:                0.007,
			DerivativeCutoffHz:  1.0,
		},
		AngleFilter: FilterConfig{
			SamplingFrequencyHz: 30.0,
			MinCutoffHz:         1.5,
			Beta:                0.01,
			DerivativeCutoffHz:  1.0,
		},
		Stability: StabilityConfig{
			WindowSize:  30,
			ScaleFactor: 1000.0,
		},
		Tracking: TrackingConfig{
			CarryForwardFrames: 5,
		},
		MinVisibility:   0.5,
		SmoothLandmarks: false,
		PrimaryJoint:    JointLumbar,
		CompensatoryJoints: []Joint{
			JointHipLeft, JointHipRight,
			JointKneeLeft, JointKneeRight,
		},
	}
}

// angleFilter returns the filter config used for angle channels.
func (c Config) angleFilter() FilterConfig {
	if c.AngleFilter.MinCutoffHz > 0 {
		return c.AngleFilter
	}
	return c.Filter
}
