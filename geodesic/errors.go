package geodesic

import "errors"

// Sentinel errors carried in Result.Err. Result.Error holds the message
// shown to users (see Message).
var (
	// ErrNoVertices indicates an empty model.
	ErrNoVertices = errors.New("geodesic: no vertices")

	// ErrNoFaces indicates a model without faces where the heat method was
	// requested explicitly.
	ErrNoFaces = errors.New("geodesic: no faces")

	// ErrOutOfRange indicates a start or end index outside the model.
	ErrOutOfRange = errors.New("geodesic: start or end out of range")

	// ErrUnsupported indicates a faceless model no analytic solver claims.
	ErrUnsupported = errors.New("geodesic: unsupported surface")

	// ErrHeatFailed indicates the heat method produced no path.
	ErrHeatFailed = errors.New("geodesic: heat method failed")

	// ErrBadSamples is the panic value of WithSamples for n < 2.
	ErrBadSamples = errors.New("geodesic: sample count must be at least 2")

	// ErrNilClassifier is the panic value of WithClassifier(nil).
	ErrNilClassifier = errors.New("geodesic: classifier is nil")
)

// User-facing messages, stable across releases.
const (
	MsgNoVertices  = "No vertices loaded from OBJ"
	MsgNoFaces     = "No faces loaded from OBJ"
	MsgOutOfRange  = "startId/endId out of range"
	MsgUnsupported = "Analytics currently supports plane.obj, sphere.obj, donut.obj, saddle.obj, or heat method on triangle meshes"
	MsgHeatFailed  = "Heat method failed to produce a path"
)

// Message returns the user-facing message for a sentinel from this package,
// or err.Error() for anything else.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoVertices):
		return MsgNoVertices
	case errors.Is(err, ErrNoFaces):
		return MsgNoFaces
	case errors.Is(err, ErrOutOfRange):
		return MsgOutOfRange
	case errors.Is(err, ErrUnsupported):
		return MsgUnsupported
	case errors.Is(err, ErrHeatFailed):
		return MsgHeatFailed
	default:
		return err.Error()
	}
}
