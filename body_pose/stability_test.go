package bodypose

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
)

const defaultScale = 1000.0

func repeatPosition(p r3.Vector, n int) []r3.Vector {
	out := make([]r3.Vector, n)
	for i := range out {
		out[i] = p
	}
	return out
}

func TestMovementStabilityStaticIs100(t *testing.T) {
	history := repeatPosition(r3.Vector{X: 0.5, Y: 0.5, Z: 0.1}, 30)

	if got := MovementStability(history, defaultScale); got != 100.0 {
		t.Fatalf("static trajectory: got %v, want 100.0", got)
	}
}

func TestMovementStabilityInsufficientHistory(t *testing.T) {
	if got := MovementStability(nil, defaultScale); got != 0 {
		t.Fatalf("empty history: got %v, want 0", got)
	}
	if got := MovementStability([]r3.Vector{{X: 1}}, defaultScale); got != 0 {
		t.Fatalf("single position: got %v, want 0", got)
	}
}

func TestMovementStabilityMonotonicInDisplacement(t *testing.T) {
	small := make([]r3.Vector, 10)
	large := make([]r3.Vector, 10)
	for i := range small {
		small[i] = r3.Vector{X: float64(i) * 0.001}
		large[i] = r3.Vector{X: float64(i) * 0.005}
	}

	s := MovementStability(small, defaultScale)
	l := MovementStability(large, defaultScale)
	if l >= s {
		t.Fatalf("larger displacement should score strictly lower: small=%v large=%v", s, l)
	}
}

func TestMovementStabilityFloorsAtZero(t *testing.T) {
	// 1.0 of cumulative movement at scale 1000 is far past the floor.
	history := []r3.Vector{{X: 0}, {X: 0.5}, {X: 1.0}}

	if got := MovementStability(history, defaultScale); got != 0 {
		t.Fatalf("large displacement: got %v, want clamp to 0", got)
	}
}

func TestCompensatoryMovementEmptySet(t *testing.T) {
	primary := repeatPosition(r3.Vector{X: 0.5}, 10)

	if got := CompensatoryMovement(primary, nil, defaultScale); got != 0 {
		t.Fatalf("empty compensatory set: got %v, want 0", got)
	}
}

func TestCompensatoryMovementFlagsDisplacedMotion(t *testing.T) {
	// Primary joint perfectly still, compensatory joints moving.
	primary := repeatPosition(r3.Vector{X: 0.5, Y: 0.5}, 10)

	moving := make([]r3.Vector, 10)
	for i := range moving {
		moving[i] = r3.Vector{X: float64(i) * 0.004}
	}

	got := CompensatoryMovement(primary, [][]r3.Vector{moving, moving}, defaultScale)
	if got <= 0 {
		t.Fatalf("still primary with moving compensators should score positive, got %v", got)
	}

	// Exact: primary 100, each compensator 100 - 9*0.004*1000 = 64.
	if math.Abs(got-36.0) > 1e-9 {
		t.Fatalf("compensation score: got %v, want 36.0", got)
	}
}

func TestCompensatoryMovementFloorsAtZero(t *testing.T) {
	// Primary moving, compensatory joints still: no substitution.
	moving := make([]r3.Vector, 10)
	for i := range moving {
		moving[i] = r3.Vector{X: float64(i) * 0.01}
	}
	still := repeatPosition(r3.Vector{X: 0.2}, 10)

	if got := CompensatoryMovement(moving, [][]r3.Vector{still}, defaultScale); got != 0 {
		t.Fatalf("moving primary: got %v, want floor at 0", got)
	}
}

func TestSwayAxisDominantDirection(t *testing.T) {
	// Oscillation along X with slight Y noise.
	history := make([]r3.Vector, 20)
	for i := range history {
		history[i] = r3.Vector{
			X: 0.05 * float64(i%5),
			Y: 0.001 * float64(i%2),
		}
	}

	axis, concentration := SwayAxis(history)
	if math.Abs(math.Abs(axis.X)-1) > 0.05 {
		t.Fatalf("sway axis should be along X, got %v", axis)
	}
	if concentration < 0.9 {
		t.Fatalf("X-dominated trajectory should concentrate variance, got %v", concentration)
	}
}

func TestSwayAxisDegenerateInputs(t *testing.T) {
	if axis, c := SwayAxis(nil); axis != (r3.Vector{}) || c != 0 {
		t.Fatalf("empty history: got %v, %v", axis, c)
	}
	if axis, c := SwayAxis([]r3.Vector{{X: 1}, {X: 2}}); axis != (r3.Vector{}) || c != 0 {
		t.Fatalf("two points: got %v, %v", axis, c)
	}

	static := repeatPosition(r3.Vector{X: 0.5}, 10)
	if axis, c := SwayAxis(static); axis != (r3.Vector{}) || c != 0 {
		t.Fatalf("zero-variance trajectory: got %v, %v", axis, c)
	}
}

func TestJointHistoryFIFOEviction(t *testing.T) {
	h := NewJointHistory(3)
	h.Push(r3.Vector{X: 1})
	h.Push(r3.Vector{X: 2})
	h.Push(r3.Vector{X: 3})
	h.Push(r3.Vector{X: 4})

	got := h.Positions()
	if h.Len() != 3 {
		t.Fatalf("history length: got %d, want 3", h.Len())
	}
	if got[0].X != 2 || got[2].X != 4 {
		t.Fatalf("oldest entry should be evicted first, got %v", got)
	}

	h.Reset()
	if h.Len() != 0 {
		t.Fatalf("reset should empty the history, got %d", h.Len())
	}
}
