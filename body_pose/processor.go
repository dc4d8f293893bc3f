package bodypose

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// FrameProcessor is the composition root of the pipeline: per incoming
// frame it resolves landmark continuity, derives raw joint angles, smooths
// them through per-channel adaptive filters, accumulates joint position
// histories, and emits stability and compensation scores.
//
// A processor is single-session: Reset starts a new capture with all
// filter and history state cleared.
type FrameProcessor struct {
	cfg       Config
	smoother  *MultiChannelSmoother
	tracker   *landmarkTracker
	histories map[Joint]*JointHistory
}

// NewFrameProcessor creates a processor with the given configuration.
func NewFrameProcessor(cfg *Config) *FrameProcessor {
	if cfg == nil {
		c := DefaultConfig()
		cfg = &c
	}

	// One angle channel per tracked joint.
	smoother := NewMultiChannelSmoother(cfg.angleFilter(), nil)
	for _, j := range Joints() {
		smoother.AddChannel(j.String(), cfg.angleFilter())
	}

	// Optional per-coordinate landmark channels.
	if cfg.SmoothLandmarks {
		for i := 0; i < NumLandmarks; i++ {
			for _, axis := range []string{"x", "y", "z"} {
				smoother.AddChannel(coordChannel(LandmarkIndex(i), axis), cfg.Filter)
			}
		}
	}

	histories := make(map[Joint]*JointHistory, int(numJoints))
	for _, j := range Joints() {
		histories[j] = NewJointHistory(cfg.Stability.WindowSize)
	}

	return &FrameProcessor{
		cfg:       *cfg,
		smoother:  smoother,
		tracker:   newLandmarkTracker(cfg.MinVisibility, cfg.Tracking),
		histories: histories,
	}
}

// ProcessFrame runs the full pipeline on one frame. Joints whose angle is
// unavailable this frame are simply absent from the returned metrics;
// only a nil frame is an error.
func (p *FrameProcessor) ProcessFrame(frame *Frame) (*FrameMetrics, error) {
	if frame == nil {
		return nil, fmt.Errorf("process frame: nil frame")
	}

	resolved := p.tracker.resolve(frame)

	if p.cfg.SmoothLandmarks {
		p.smoothLandmarks(&resolved, frame.TimestampMs)
	}

	// All raw angles first, then one smoothing pass against the shared
	// frame timestamp.
	raw := make(map[string]float64, int(numJoints))
	carried := make(map[Joint]bool, int(numJoints))
	for _, j := range Joints() {
		angle, wasCarried, err := p.jointAngle(j, &resolved)
		if err != nil {
			continue
		}
		raw[j.String()] = angle
		carried[j] = wasCarried
	}
	smoothed := p.smoother.SmoothAll(raw, frame.TimestampMs)

	metrics := &FrameMetrics{
		TimestampMs: frame.TimestampMs,
		Angles:      make(map[Joint]AngleSample, len(raw)),
		Stability:   make(map[Joint]float64, int(numJoints)),
	}
	for _, j := range Joints() {
		rawAngle, ok := raw[j.String()]
		if !ok {
			continue
		}
		metrics.Angles[j] = AngleSample{
			Raw:      rawAngle,
			Smoothed: smoothed[j.String()],
			Carried:  carried[j],
		}
	}

	// Accumulate joint vertex positions and score stability.
	for _, j := range Joints() {
		vertex, ok := p.jointVertex(j, &resolved)
		if !ok {
			continue
		}
		p.histories[j].Push(vertex)
	}
	for _, j := range Joints() {
		metrics.Stability[j] = MovementStability(p.histories[j].Positions(), p.cfg.Stability.ScaleFactor)
	}

	metrics.Compensation = p.compensation()

	return metrics, nil
}

// History returns the position history for a joint, oldest first.
func (p *FrameProcessor) History(j Joint) []r3.Vector {
	h, ok := p.histories[j]
	if !ok {
		return nil
	}
	return h.Positions()
}

// Reset clears all filter, tracking, and history state for a new capture
// session.
func (p *FrameProcessor) Reset() {
	p.smoother.ResetAll()
	p.tracker.reset()
	for _, h := range p.histories {
		h.Reset()
	}
}

// jointAngle derives the raw angle for one joint from resolved landmarks.
func (p *FrameProcessor) jointAngle(j Joint, resolved *[NumLandmarks]resolvedLandmark) (float64, bool, error) {
	if j == JointLumbar {
		return p.lumbarAngle(resolved)
	}

	ia, iv, ic, ok := j.triple()
	if !ok {
		return 0, false, ErrMissingLandmark
	}

	a, v, c := resolved[ia], resolved[iv], resolved[ic]
	if !a.OK || !v.OK || !c.OK {
		return 0, false, ErrLowVisibility
	}

	angle, err := JointAngle(a.Point(), v.Point(), c.Point())
	if err != nil {
		return 0, false, err
	}
	return angle, a.Carried || v.Carried || c.Carried, nil
}

// lumbarAngle measures trunk flexion at the hip midpoint, between the
// shoulder midpoint and the knee midpoint.
func (p *FrameProcessor) lumbarAngle(resolved *[NumLandmarks]resolvedLandmark) (float64, bool, error) {
	needed := []LandmarkIndex{LeftShoulder, RightShoulder, LeftHip, RightHip, LeftKnee, RightKnee}
	anyCarried := false
	for _, idx := range needed {
		if !resolved[idx].OK {
			return 0, false, ErrLowVisibility
		}
		anyCarried = anyCarried || resolved[idx].Carried
	}

	shoulderMid := midpoint(resolved[LeftShoulder].Point(), resolved[RightShoulder].Point())
	hipMid := midpoint(resolved[LeftHip].Point(), resolved[RightHip].Point())
	kneeMid := midpoint(resolved[LeftKnee].Point(), resolved[RightKnee].Point())

	angle, err := JointAngle(shoulderMid, hipMid, kneeMid)
	if err != nil {
		return 0, false, err
	}
	return angle, anyCarried, nil
}

// jointVertex returns the position tracked for a joint's stability history.
func (p *FrameProcessor) jointVertex(j Joint, resolved *[NumLandmarks]resolvedLandmark) (r3.Vector, bool) {
	if j == JointLumbar {
		l, r := resolved[LeftHip], resolved[RightHip]
		if !l.OK || !r.OK {
			return r3.Vector{}, false
		}
		return midpoint(l.Point(), r.Point()), true
	}

	idx, ok := j.vertexLandmark()
	if !ok {
		return r3.Vector{}, false
	}
	lm := resolved[idx]
	if !lm.OK {
		return r3.Vector{}, false
	}
	return lm.Point(), true
}

// compensation scores the configured primary joint against its
// compensatory set from the accumulated histories.
func (p *FrameProcessor) compensation() float64 {
	primary, ok := p.histories[p.cfg.PrimaryJoint]
	if !ok {
		return 0
	}

	compensatory := make([][]r3.Vector, 0, len(p.cfg.CompensatoryJoints))
	for _, j := range p.cfg.CompensatoryJoints {
		h, ok := p.histories[j]
		if !ok {
			continue
		}
		compensatory = append(compensatory, h.Positions())
	}

	return CompensatoryMovement(primary.Positions(), compensatory, p.cfg.Stability.ScaleFactor)
}

// smoothLandmarks runs the per-coordinate filters in place over resolved
// landmark positions so downstream angles see smoothed coordinates.
func (p *FrameProcessor) smoothLandmarks(resolved *[NumLandmarks]resolvedLandmark, timestampMs float64) {
	for i := range resolved {
		if !resolved[i].OK {
			continue
		}
		idx := LandmarkIndex(i)
		x, _ := p.smoother.Smooth(coordChannel(idx, "x"), resolved[i].X, timestampMs)
		y, _ := p.smoother.Smooth(coordChannel(idx, "y"), resolved[i].Y, timestampMs)
		z, _ := p.smoother.Smooth(coordChannel(idx, "z"), resolved[i].Z, timestampMs)
		resolved[i].X = x
		resolved[i].Y = y
		resolved[i].Z = z
	}
}

// coordChannel names the smoothing channel for one landmark coordinate.
func coordChannel(idx LandmarkIndex, axis string) string {
	return idx.String() + "." + axis
}
