package bodypose

import (
	"github.com/golang/geo/r3"
)

// NumLandmarks is the number of points in one pose frame.
const NumLandmarks = 33

// LandmarkIndex identifies a point in the 33-slot pose model output.
type LandmarkIndex int

// Landmark indices in detector output order.
const (
	Nose LandmarkIndex = iota
	LeftEyeInner
	LeftEye
	LeftEyeOuter
	RightEyeInner
	RightEye
	RightEyeOuter
	LeftEar
	RightEar
	MouthLeft
	MouthRight
	LeftShoulder
	RightShoulder
	LeftElbow
	RightElbow
	LeftWrist
	RightWrist
	LeftPinky
	RightPinky
	LeftIndex
	RightIndex
	LeftThumb
	RightThumb
	LeftHip
	RightHip
	LeftKnee
	RightKnee
	LeftAnkle
	RightAnkle
	LeftHeel
	RightHeel
	LeftFootIndex
	RightFootIndex
)

var landmarkNames = [NumLandmarks]string{
	"nose",
	"left_eye_inner", "left_eye", "left_eye_outer",
	"right_eye_inner", "right_eye", "right_eye_outer",
	"left_ear", "right_ear",
	"mouth_left", "mouth_right",
	"left_shoulder", "right_shoulder",
	"left_elbow", "right_elbow",
	"left_wrist", "right_wrist",
	"left_pinky", "right_pinky",
	"left_index", "right_index",
	"left_thumb", "right_thumb",
	"left_hip", "right_hip",
	"left_knee", "right_knee",
	"left_ankle", "right_ankle",
	"left_heel", "right_heel",
	"left_foot_index", "right_foot_index",
}

func (i LandmarkIndex) String() string {
	if i < 0 || int(i) >= NumLandmarks {
		return "unknown"
	}
	return landmarkNames[i]
}

// Landmark is one tracked body point in normalized detector coordinates.
type Landmark struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"visibility"`
}

// Point returns the landmark position as an r3 vector.
func (l Landmark) Point() r3.Vector {
	return r3.Vector{X: l.X, Y: l.Y, Z: l.Z}
}

// Frame is one complete pose detection: all 33 landmarks plus the frame
// timestamp in milliseconds.
type Frame struct {
	Landmarks   [NumLandmarks]Landmark `json:"landmarks"`
	TimestampMs float64                `json:"timestamp_ms"`
}

// Joint identifies a tracked joint angle.
type Joint int

const (
	JointLumbar Joint = iota
	JointHipLeft
	JointHipRight
	JointKneeLeft
	JointKneeRight
	JointAnkleLeft
	JointAnkleRight
	JointShoulderLeft
	JointShoulderRight
	JointElbowLeft
	JointElbowRight
	numJoints
)

func (j Joint) String() string {
	switch j {
	case JointLumbar:
		return "lumbar"
	case JointHipLeft:
		return "hip_left"
	case JointHipRight:
		return "hip_right"
	case JointKneeLeft:
		return "knee_left"
	case JointKneeRight:
		return "knee_right"
	case JointAnkleLeft:
		return "ankle_left"
	case JointAnkleRight:
		return "ankle_right"
	case JointShoulderLeft:
		return "shoulder_left"
	case JointShoulderRight:
		return "shoulder_right"
	case JointElbowLeft:
		return "elbow_left"
	case JointElbowRight:
		return "elbow_right"
	default:
		return "unknown"
	}
}

// Joints lists every tracked joint in processing order.
func Joints() []Joint {
	out := make([]Joint, 0, int(numJoints))
	for j := Joint(0); j < numJoints; j++ {
		out = append(out, j)
	}
	return out
}

// triple returns the landmark indices whose middle point is the joint
// vertex. JointLumbar has no fixed triple (it is built from landmark
// midpoints) and returns ok=false.
func (j Joint) triple() (a, vertex, c LandmarkIndex, ok bool) {
	switch j {
	case JointHipLeft:
		return LeftShoulder, LeftHip, LeftKnee, true
	case JointHipRight:
		return RightShoulder, RightHip, RightKnee, true
	case JointKneeLeft:
		return LeftHip, LeftKnee, LeftAnkle, true
	case JointKneeRight:
		return RightHip, RightKnee, RightAnkle, true
	case JointAnkleLeft:
		return LeftKnee, LeftAnkle, LeftFootIndex, true
	case JointAnkleRight:
		return RightKnee, RightAnkle, RightFootIndex, true
	case JointShoulderLeft:
		return LeftElbow, LeftShoulder, LeftHip, true
	case JointShoulderRight:
		return RightElbow, RightShoulder, RightHip, true
	case JointElbowLeft:
		return LeftShoulder, LeftElbow, LeftWrist, true
	case JointElbowRight:
		return RightShoulder, RightElbow, RightWrist, true
	default:
		return 0, 0, 0, false
	}
}

// vertexLandmark returns the landmark index whose position is accumulated
// into the joint's stability history. For JointLumbar that is the hip
// midpoint, handled by the processor.
func (j Joint) vertexLandmark() (LandmarkIndex, bool) {
	_, v, _, ok := j.triple()
	return v, ok
}

// AngleSample is one joint angle measurement for a single frame.
type AngleSample struct {
	Raw      float64 // angle straight from the landmark geometry, degrees
	Smoothed float64 // angle after the adaptive filter, degrees
	Carried  bool    // true if any contributing landmark was carried forward
}

// FrameMetrics is the output of processing one frame. Joints whose angle
// was unavailable (degenerate geometry, low visibility with no carry
// budget left) are absent from Angles.
type FrameMetrics struct {
	TimestampMs  float64
	Angles       map[Joint]AngleSample
	Stability    map[Joint]float64
	Compensation float64
}
