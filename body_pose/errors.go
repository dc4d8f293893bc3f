package bodypose

import "errors"

var (
	// ErrDegenerateAngle is returned when an angle cannot be formed because
	// a limb vector has zero length or a coordinate is not finite.
	ErrDegenerateAngle = errors.New("degenerate landmark geometry for angle")

	// ErrLowVisibility is returned when a landmark needed for an angle is
	// below the visibility threshold and no carry-forward budget remains.
	ErrLowVisibility = errors.New("landmark visibility below threshold")

	// ErrUnknownChannel is returned when a scalar is routed to a channel
	// the smoother was not configured with.
	ErrUnknownChannel = errors.New("unknown smoothing channel")

	// ErrMissingLandmark is returned when a landmark index is out of range.
	ErrMissingLandmark = errors.New("landmark index out of range")
)
