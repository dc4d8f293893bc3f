package bodypose

// resolvedLandmark is a landmark after continuity resolution: either the
// frame's own confident detection or a recent one carried forward across a
// momentary visibility drop.
type resolvedLandmark struct {
	Landmark
	OK      bool // usable this frame
	Carried bool // substituted from a previous frame
}

// landmarkTracker carries confident landmark positions across frames so
// angles and histories do not flicker when the detector briefly loses a
// point. A lost landmark is carried for at most the configured number of
// frames, then reported unavailable until it is seen again.
type landmarkTracker struct {
	minVisibility float64
	budget        int

	last    [NumLandmarks]Landmark
	seen    [NumLandmarks]bool
	carried [NumLandmarks]int
}

func newLandmarkTracker(minVisibility float64, cfg TrackingConfig) *landmarkTracker {
	return &landmarkTracker{
		minVisibility: minVisibility,
		budget:        cfg.CarryForwardFrames,
	}
}

// resolve classifies every landmark in the frame, updating carry state.
func (t *landmarkTracker) resolve(frame *Frame) [NumLandmarks]resolvedLandmark {
	var out [NumLandmarks]resolvedLandmark
	for i := range frame.Landmarks {
		lm := frame.Landmarks[i]

		if lm.Visibility >= t.minVisibility {
			t.last[i] = lm
			t.seen[i] = true
			t.carried[i] = 0
			out[i] = resolvedLandmark{Landmark: lm, OK: true}
			continue
		}

		if t.seen[i] && t.carried[i] < t.budget {
			t.carried[i]++
			out[i] = resolvedLandmark{Landmark: t.last[i], OK: true, Carried: true}
			continue
		}

		out[i] = resolvedLandmark{Landmark: lm}
	}
	return out
}

// reset discards all carried state for a new capture session.
func (t *landmarkTracker) reset() {
	t.seen = [NumLandmarks]bool{}
	t.carried = [NumLandmarks]int{}
}
