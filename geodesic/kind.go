package geodesic

import (
	"strings"

	"github.com/katalvlaran/geodesiclab/mesh"
)

// Kind selects the solver for a model.
type Kind int

// Kinds in classification priority order.
const (
	KindUnsupported Kind = iota
	KindPlane
	KindSphere
	KindTorus
	KindSaddle
	KindMesh
)

// String returns the surface type reported in results.
func (k Kind) String() string {
	switch k {
	case KindPlane:
		return "plane"
	case KindSphere:
		return "sphere"
	case KindTorus:
		return "torus"
	case KindSaddle:
		return "saddle"
	case KindMesh:
		return "mesh"
	default:
		return "unsupported"
	}
}

// Classifier decides which solver handles a model. name is the file tag the
// model was loaded from; m is never nil and has at least one vertex.
type Classifier interface {
	Classify(name string, m *mesh.Mesh) Kind
}

// ClassifierFunc adapts a function to Classifier.
type ClassifierFunc func(name string, m *mesh.Mesh) Kind

// Classify calls f.
func (f ClassifierFunc) Classify(name string, m *mesh.Mesh) Kind { return f(name, m) }

// NameClassifier infers the surface from the lower-cased base name of the
// file tag: "plane", "sphere", "torus" or "donut", "saddle", checked in
// that order as substrings. Anything else is a mesh when it has faces and
// unsupported otherwise.
type NameClassifier struct{}

// Classify implements Classifier.
func (NameClassifier) Classify(name string, m *mesh.Mesh) Kind {
	base := strings.ToLower(baseName(name))
	switch {
	case strings.Contains(base, "plane"):
		return KindPlane
	case strings.Contains(base, "sphere"):
		return KindSphere
	case strings.Contains(base, "torus"), strings.Contains(base, "donut"):
		return KindTorus
	case strings.Contains(base, "saddle"):
		return KindSaddle
	case len(m.Faces) > 0:
		return KindMesh
	default:
		return KindUnsupported
	}
}

// baseName strips everything up to the last slash or backslash.
func baseName(p string) string {
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		return p[i+1:]
	}

	return p
}
