package bodypose

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// JointHistory is a bounded FIFO of recent positions for one joint. It is
// owned exclusively by the frame processor; no synchronization.
type JointHistory struct {
	positions []r3.Vector
	capacity  int
}

// NewJointHistory creates an empty history holding at most capacity points.
func NewJointHistory(capacity int) *JointHistory {
	if capacity < 2 {
		capacity = 2
	}
	return &JointHistory{
		positions: make([]r3.Vector, 0, capacity),
		capacity:  capacity,
	}
}

// Push appends a position, evicting the oldest once the window is full.
func (h *JointHistory) Push(p r3.Vector) {
	if len(h.positions) == h.capacity {
		copy(h.positions, h.positions[1:])
		h.positions = h.positions[:h.capacity-1]
	}
	h.positions = append(h.positions, p)
}

// Len returns the number of stored positions.
func (h *JointHistory) Len() int {
	return len(h.positions)
}

// Positions returns the stored positions, oldest first. The returned slice
// is the internal buffer; callers must not mutate it.
func (h *JointHistory) Positions() []r3.Vector {
	return h.positions
}

// Reset discards all stored positions.
func (h *JointHistory) Reset() {
	h.positions = h.positions[:0]
}

// MovementStability scores how static a joint trajectory is: 100 for a
// perfectly still joint, falling toward 0 as cumulative movement grows.
// scaleFactor converts total variation in coordinate units to score points
// (1000 for normalized 0-1 coordinates). Fewer than 2 positions score 0.
func MovementStability(history []r3.Vector, scaleFactor float64) float64 {
	if len(history) < 2 {
		return 0
	}

	var totalVariation float64
	for i := 1; i < len(history); i++ {
		totalVariation += history[i].Sub(history[i-1]).Norm()
	}

	score := 100.0 - totalVariation*scaleFactor
	if score < 0 {
		return 0
	}
	return score
}

// CompensatoryMovement measures how much motion is displaced away from a
// primary joint onto the joints expected to compensate for it. A large
// positive score means the primary joint stayed still while compensatory
// joints moved: the hallmark of substitution. Returns 0 when there are no
// compensatory histories.
func CompensatoryMovement(primary []r3.Vector, compensatory [][]r3.Vector, scaleFactor float64) float64 {
	if len(compensatory) == 0 {
		return 0
	}

	primaryStability := MovementStability(primary, scaleFactor)

	var sum float64
	for _, h := range compensatory {
		sum += MovementStability(h, scaleFactor)
	}
	avg := sum / float64(len(compensatory))

	score := primaryStability - avg
	if score < 0 {
		return 0
	}
	return score
}

// SwayAxis returns the dominant direction of a joint's movement and the
// fraction of positional variance that direction explains. The axis is the
// principal eigenvector of the trajectory's covariance matrix. Fewer than
// 3 points, or a trajectory with no variance, yields a zero vector and 0.
func SwayAxis(history []r3.Vector) (r3.Vector, float64) {
	if len(history) < 3 {
		return r3.Vector{}, 0
	}

	// Centroid.
	var cx, cy, cz float64
	for _, p := range history {
		cx += p.X
		cy += p.Y
		cz += p.Z
	}
	n := float64(len(history))
	cx /= n
	cy /= n
	cz /= n

	// Covariance matrix.
	var cov [9]float64 // 3x3 row-major
	for _, p := range history {
		dx := p.X - cx
		dy := p.Y - cy
		dz := p.Z - cz
		cov[0] += dx * dx
		cov[1] += dx * dy
		cov[2] += dx * dz
		cov[4] += dy * dy
		cov[5] += dy * dz
		cov[8] += dz * dz
	}
	cov[3] = cov[1]
	cov[6] = cov[2]
	cov[7] = cov[5]
	for i := range cov {
		cov[i] /= n
	}

	covMat := mat.NewSymDense(3, cov[:])

	var eigen mat.EigenSym
	if ok := eigen.Factorize(covMat, true); !ok {
		return r3.Vector{}, 0
	}

	vals := eigen.Values(nil)
	var vecs mat.Dense
	eigen.VectorsTo(&vecs)

	// Eigenvalues are in ascending order; the largest is the sway axis.
	largest := vals[2]
	sum := vals[0] + vals[1] + vals[2]
	if sum <= 1e-15 || largest <= 0 {
		return r3.Vector{}, 0
	}

	axis := r3.Vector{
		X: vecs.At(0, 2),
		Y: vecs.At(1, 2),
		Z: vecs.At(2, 2),
	}
	norm := axis.Norm()
	if norm < 1e-12 || math.IsNaN(norm) {
		return r3.Vector{}, 0
	}

	return axis.Mul(1.0 / norm), largest / sum
}
