package kinemetric

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Watch drains a pose source through the session, logging per-frame joint
// summaries, and returns the end-of-capture report. Frames that fail to
// parse or process end the capture with an error; a cancelled context
// returns ctx.Err with whatever was processed discarded.
func Watch(ctx context.Context, s *Session, source PoseSource) (*Report, error) {
	if s.logger != nil {
		s.logger.Info("Watching pose stream...")
	}

	for {
		frame, err := source.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("pose source: %w", err)
		}

		metrics, err := s.ProcessFrame(frame)
		if err != nil {
			return nil, err
		}

		if s.logger != nil {
			for joint, sample := range metrics.Angles {
				s.logger.Debugf("  t=%.0fms %v: raw=%.1f smoothed=%.1f stability=%.1f",
					metrics.TimestampMs, joint, sample.Raw, sample.Smoothed, metrics.Stability[joint])
			}
			if metrics.Compensation > 0 {
				s.logger.Debugf("  t=%.0fms compensation=%.1f", metrics.TimestampMs, metrics.Compensation)
			}
		}
	}

	report := s.Report()
	if s.logger != nil {
		s.logger.Infof("Capture complete: %d frames over %.1fs", report.Frames, report.DurationMs/1000)
	}
	return report, nil
}
