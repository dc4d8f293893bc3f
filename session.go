package kinemetric

import (
	"fmt"

	"go.viam.com/rdk/logging"

	bodypose "github.com/movewise/kinemetric/body_pose"
)

// Session owns the processing pipeline and accumulated state for one
// assessment capture. Construct one per connected client/capture; Reset
// starts the next capture on the same session without leaking filter or
// history state across the boundary.
type Session struct {
	logger    logging.Logger
	processor *bodypose.FrameProcessor
	cfg       bodypose.Config

	state *AssessmentState
}

// AssessmentState tracks progress and aggregates for the current capture.
type AssessmentState struct {
	// Frames successfully processed this capture.
	FramesProcessed int

	// Timestamp of the first and latest processed frame, milliseconds.
	FirstTimestampMs float64
	LastTimestampMs  float64

	// Most recent per-frame metrics.
	LastMetrics *bodypose.FrameMetrics

	// Highest compensation score seen this capture.
	PeakCompensation float64

	// Per-joint smoothed angles and stability scores, in frame order,
	// for the end-of-capture report.
	angles    map[bodypose.Joint][]float64
	stability map[bodypose.Joint][]float64
}

func newAssessmentState() *AssessmentState {
	return &AssessmentState{
		angles:    make(map[bodypose.Joint][]float64),
		stability: make(map[bodypose.Joint][]float64),
	}
}

// NewSession creates a session with the given pipeline configuration.
// A nil config uses bodypose.DefaultConfig.
func NewSession(cfg *bodypose.Config, logger logging.Logger) *Session {
	if cfg == nil {
		c := bodypose.DefaultConfig()
		cfg = &c
	}
	return &Session{
		logger:    logger,
		processor: bodypose.NewFrameProcessor(cfg),
		cfg:       *cfg,
		state:     newAssessmentState(),
	}
}

// ProcessFrame runs one frame through the pipeline and folds the result
// into the capture aggregates.
func (s *Session) ProcessFrame(frame *bodypose.Frame) (*bodypose.FrameMetrics, error) {
	metrics, err := s.processor.ProcessFrame(frame)
	if err != nil {
		return nil, fmt.Errorf("session frame %d: %w", s.state.FramesProcessed, err)
	}

	if s.state.FramesProcessed == 0 {
		s.state.FirstTimestampMs = frame.TimestampMs
	}
	s.state.FramesProcessed++
	s.state.LastTimestampMs = frame.TimestampMs
	s.state.LastMetrics = metrics
	if metrics.Compensation > s.state.PeakCompensation {
		s.state.PeakCompensation = metrics.Compensation
	}

	for j, sample := range metrics.Angles {
		s.state.angles[j] = append(s.state.angles[j], sample.Smoothed)
	}
	for j, score := range metrics.Stability {
		s.state.stability[j] = append(s.state.stability[j], score)
	}

	return metrics, nil
}

// State returns the current capture state.
func (s *Session) State() *AssessmentState {
	return s.state
}

// Reset starts a new capture: all filters return to first-sample behavior,
// histories and aggregates are cleared.
func (s *Session) Reset() {
	s.processor.Reset()
	s.state = newAssessmentState()
	if s.logger != nil {
		s.logger.Debug("session reset for new capture")
	}
}
