package geodesic

import (
	"github.com/katalvlaran/geodesiclab/analytic"
	"github.com/katalvlaran/geodesiclab/heat"
	"github.com/katalvlaran/geodesiclab/surface"
)

// Options configures an Engine.
//
// PlaneSamples..SaddleSamples – points per analytic curve (at least 2).
// Classifier                  – picks the solver in Engine.Analytic.
// Heat                        – forwarded to heat.Run.
// Shoot                       – forwarded to surface.Shoot for torus and saddle.
type Options struct {
	PlaneSamples  int
	SphereSamples int
	TorusSamples  int
	SaddleSamples int
	Classifier    Classifier
	Heat          []heat.Option
	Shoot         []surface.ShootOption
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns the stock sample counts and NameClassifier.
func DefaultOptions() Options {
	return Options{
		PlaneSamples:  analytic.PlaneSamples,
		SphereSamples: analytic.SphereSamples,
		TorusSamples:  analytic.TorusSamples,
		SaddleSamples: analytic.SaddleSamples,
		Classifier:    NameClassifier{},
	}
}

// WithSamples sets the sample count for one analytic kind. KindMesh and
// KindUnsupported are ignored. Panics if n < 2.
func WithSamples(k Kind, n int) Option {
	if n < 2 {
		panic(ErrBadSamples.Error())
	}

	return func(o *Options) {
		switch k {
		case KindPlane:
			o.PlaneSamples = n
		case KindSphere:
			o.SphereSamples = n
		case KindTorus:
			o.TorusSamples = n
		case KindSaddle:
			o.SaddleSamples = n
		}
	}
}

// WithClassifier replaces NameClassifier. Panics on nil.
func WithClassifier(c Classifier) Option {
	if c == nil {
		panic(ErrNilClassifier.Error())
	}

	return func(o *Options) {
		o.Classifier = c
	}
}

// WithHeatOptions appends options for the heat method.
func WithHeatOptions(opts ...heat.Option) Option {
	return func(o *Options) {
		o.Heat = append(o.Heat, opts...)
	}
}

// WithShootOptions appends options for torus and saddle shooting.
func WithShootOptions(opts ...surface.ShootOption) Option {
	return func(o *Options) {
		o.Shoot = append(o.Shoot, opts...)
	}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
