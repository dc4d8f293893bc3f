package bodypose

import (
	"errors"
	"testing"
)

func TestSmootherRoutesByChannel(t *testing.T) {
	s := NewMultiChannelSmoother(testFilterConfig(), []string{"hip_left", "hip_right"})

	// First sample on each channel passes through.
	if got, err := s.Smooth("hip_left", 90, 0); err != nil || got != 90 {
		t.Fatalf("hip_left first sample: got %v, %v", got, err)
	}
	if got, err := s.Smooth("hip_right", 45, 0); err != nil || got != 45 {
		t.Fatalf("hip_right first sample: got %v, %v", got, err)
	}

	// Channels must not share state.
	left, _ := s.Smooth("hip_left", 100, 33)
	right, _ := s.Smooth("hip_right", 100, 33)
	if left == right {
		t.Fatalf("channels appear to share filter state: %v == %v", left, right)
	}
}

func TestSmootherUnknownChannel(t *testing.T) {
	s := NewMultiChannelSmoother(testFilterConfig(), []string{"lumbar"})

	if _, err := s.Smooth("nope", 1, 0); !errors.Is(err, ErrUnknownChannel) {
		t.Fatalf("unknown channel: got err %v, want ErrUnknownChannel", err)
	}
}

func TestSmoothAllSharedTimestamp(t *testing.T) {
	s := NewMultiChannelSmoother(testFilterConfig(), []string{"a", "b"})

	first := s.SmoothAll(map[string]float64{"a": 10, "b": 20}, 0)
	if first["a"] != 10 || first["b"] != 20 {
		t.Fatalf("first frame should pass through: %v", first)
	}

	second := s.SmoothAll(map[string]float64{"a": 20, "b": 30}, 33)
	if second["a"] <= 10 || second["a"] >= 20 {
		t.Fatalf("channel a should smooth between old and new value, got %v", second["a"])
	}

	// Unknown channels pass through unfiltered.
	third := s.SmoothAll(map[string]float64{"a": 20, "zz": 7}, 66)
	if third["zz"] != 7 {
		t.Fatalf("unknown channel should pass through, got %v", third["zz"])
	}
}

func TestSmootherResetAll(t *testing.T) {
	s := NewMultiChannelSmoother(testFilterConfig(), []string{"a", "b"})

	s.SmoothAll(map[string]float64{"a": 10, "b": 20}, 0)
	s.SmoothAll(map[string]float64{"a": 50, "b": 60}, 33)

	s.ResetAll()

	// Every channel behaves like a fresh filter again.
	got := s.SmoothAll(map[string]float64{"a": 123, "b": -4}, 1000)
	if got["a"] != 123 || got["b"] != -4 {
		t.Fatalf("after ResetAll first samples should pass through: %v", got)
	}
}

func TestSmootherAddChannel(t *testing.T) {
	s := NewMultiChannelSmoother(testFilterConfig(), nil)
	if s.Channels() != 0 {
		t.Fatalf("expected empty smoother, got %d channels", s.Channels())
	}

	s.AddChannel("knee_left", testFilterConfig())
	if got, err := s.Smooth("knee_left", 12, 0); err != nil || got != 12 {
		t.Fatalf("added channel: got %v, %v", got, err)
	}
}
