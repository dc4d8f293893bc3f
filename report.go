package kinemetric

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	bodypose "github.com/movewise/kinemetric/body_pose"
)

// Report summarizes one capture for clinical consumers: per-joint range of
// motion and stability, plus the session compensation scores.
type Report struct {
	Frames           int           `json:"frames"`
	DurationMs       float64       `json:"duration_ms"`
	Joints           []JointReport `json:"joints"`
	Compensation     float64       `json:"compensation"`
	PeakCompensation float64       `json:"peak_compensation"`
}

// JointReport holds the aggregate measurements for one joint.
type JointReport struct {
	Joint         string  `json:"joint"`
	Samples       int     `json:"samples"`
	MinAngle      float64 `json:"min_angle"`
	MaxAngle      float64 `json:"max_angle"`
	MeanAngle     float64 `json:"mean_angle"`
	RangeOfMotion float64 `json:"range_of_motion"`
	MeanStability float64 `json:"mean_stability"`

	// Dominant movement direction of the joint over the capture and the
	// fraction of positional variance it explains.
	SwayAxis          [3]float64 `json:"sway_axis"`
	SwayConcentration float64    `json:"sway_concentration"`
}

// Report builds the end-of-capture summary from the session aggregates.
func (s *Session) Report() *Report {
	state := s.state

	report := &Report{
		Frames:           state.FramesProcessed,
		DurationMs:       state.LastTimestampMs - state.FirstTimestampMs,
		PeakCompensation: state.PeakCompensation,
	}
	if state.LastMetrics != nil {
		report.Compensation = state.LastMetrics.Compensation
	}

	for _, j := range bodypose.Joints() {
		angles := state.angles[j]
		if len(angles) == 0 {
			continue
		}

		jr := JointReport{
			Joint:     j.String(),
			Samples:   len(angles),
			MinAngle:  floats.Min(angles),
			MaxAngle:  floats.Max(angles),
			MeanAngle: stat.Mean(angles, nil),
		}
		jr.RangeOfMotion = jr.MaxAngle - jr.MinAngle

		if scores := state.stability[j]; len(scores) > 0 {
			jr.MeanStability = stat.Mean(scores, nil)
		}

		axis, concentration := bodypose.SwayAxis(s.processor.History(j))
		jr.SwayAxis = [3]float64{axis.X, axis.Y, axis.Z}
		jr.SwayConcentration = concentration

		report.Joints = append(report.Joints, jr)
	}

	sort.Slice(report.Joints, func(i, k int) bool {
		return report.Joints[i].Joint < report.Joints[k].Joint
	})

	return report
}

// Save writes the report as indented JSON. Parent directories must exist.
func (r *Report) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report to %s: %w", path, err)
	}
	return nil
}
