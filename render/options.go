package render

import (
	"errors"
	"image/color"
	"math"
)

// Sentinel errors.
var (
	// ErrEmptyScene indicates nothing to draw: no mesh edges and no curve points.
	ErrEmptyScene = errors.New("render: nothing to draw")

	// ErrUnknownFormat indicates an output extension other than .png or .webp.
	ErrUnknownFormat = errors.New("render: unknown image format")

	// ErrBadOption is the panic value of option constructors given nonsense.
	ErrBadOption = errors.New("render: invalid option")
)

// Defaults.
const (
	DefaultSize        = 512
	DefaultSupersample = 2
	DefaultYaw         = 35.0 // degrees about +Z
	DefaultPitch       = 25.0 // degrees of camera tilt
	DefaultLineWidth   = 1.0  // output pixels
	DefaultMargin      = 0.08 // fraction of the image edge
)

// Default colors.
var (
	Background = color.NRGBA{R: 0x12, G: 0x14, B: 0x1a, A: 0xff}
	EdgeColor  = color.NRGBA{R: 0x5a, G: 0x60, B: 0x6e, A: 0xff}
	CurveColor = color.NRGBA{R: 0xff, G: 0xb0, B: 0x20, A: 0xff}
	StartColor = color.NRGBA{R: 0x30, G: 0xd0, B: 0x60, A: 0xff}
	EndColor   = color.NRGBA{R: 0xe0, G: 0x40, B: 0x40, A: 0xff}
)

// Options configures Preview.
type Options struct {
	Size        int     // output width and height in pixels
	Supersample int     // internal resolution factor
	Yaw, Pitch  float64 // view angles in degrees
	LineWidth   float64 // curve stroke width in output pixels; edges use half
	Margin      float64 // empty border as a fraction of Size
	Background  color.NRGBA
	Edge        color.NRGBA
	Curve       color.NRGBA
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a 512 px, 2× supersampled oblique view.
func DefaultOptions() Options {
	return Options{
		Size:        DefaultSize,
		Supersample: DefaultSupersample,
		Yaw:         DefaultYaw,
		Pitch:       DefaultPitch,
		LineWidth:   DefaultLineWidth,
		Margin:      DefaultMargin,
		Background:  Background,
		Edge:        EdgeColor,
		Curve:       CurveColor,
	}
}

// WithSize sets the output edge length. Panics if n < 16.
func WithSize(n int) Option {
	if n < 16 {
		panic(ErrBadOption.Error())
	}

	return func(o *Options) { o.Size = n }
}

// WithSupersample sets the internal resolution factor. Panics if k < 1.
func WithSupersample(k int) Option {
	if k < 1 {
		panic(ErrBadOption.Error())
	}

	return func(o *Options) { o.Supersample = k }
}

// WithView sets yaw and pitch in degrees. Panics on non-finite angles.
func WithView(yaw, pitch float64) Option {
	if math.IsNaN(yaw) || math.IsInf(yaw, 0) || math.IsNaN(pitch) || math.IsInf(pitch, 0) {
		panic(ErrBadOption.Error())
	}

	return func(o *Options) { o.Yaw, o.Pitch = yaw, pitch }
}

// WithLineWidth sets the curve stroke width. Panics unless w > 0.
func WithLineWidth(w float64) Option {
	if !(w > 0) || math.IsInf(w, 1) {
		panic(ErrBadOption.Error())
	}

	return func(o *Options) { o.LineWidth = w }
}

// WithColors sets background, edge and curve colors.
func WithColors(bg, edge, curve color.NRGBA) Option {
	return func(o *Options) { o.Background, o.Edge, o.Curve = bg, edge, curve }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
