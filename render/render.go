// Package render draws a diagnostic preview of a solve: the mesh wireframe
// and the geodesic curves seen from a fixed oblique orthographic camera.
// It is not a surface renderer; no shading or hidden-line removal happens.
//
// Geometry is rasterized at Size×Supersample with golang.org/x/image/vector
// and reduced with a Catmull-Rom filter, then encoded as PNG or WebP.
package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/katalvlaran/geodesiclab/curve"
	"github.com/katalvlaran/geodesiclab/mesh"
	"github.com/katalvlaran/geodesiclab/vec3"
)

// markerSides is the polygon resolution of endpoint markers.
const markerSides = 16

// Scene is what Preview draws. Mesh may be nil; curves and mesh must share
// one coordinate frame.
type Scene struct {
	Mesh   *mesh.Mesh
	Curves []curve.Curve
}

// camera projects world points to supersampled pixel coordinates.
type camera struct {
	cy, sy, cp, sp float64
	scale          float64
	cx, cz         float64 // projected center
	half           float64 // half the canvas edge
}

// view rotates p by yaw about +Z, then tilts by pitch. Returns screen x and
// screen up.
func (c *camera) view(p vec3.Vec) (float64, float64) {
	x := c.cy*p.X - c.sy*p.Y
	y := c.sy*p.X + c.cy*p.Y

	return x, c.cp*p.Z + c.sp*y
}

func (c *camera) project(p vec3.Vec) (float32, float32) {
	x, up := c.view(p)

	return float32(c.half + (x-c.cx)*c.scale), float32(c.half - (up-c.cz)*c.scale)
}

// fit builds a camera that frames every point of the scene.
func fit(s Scene, o Options) (*camera, bool) {
	yaw, pitch := o.Yaw*math.Pi/180, o.Pitch*math.Pi/180
	c := &camera{}
	c.sy, c.cy = math.Sincos(yaw)
	c.sp, c.cp = math.Sincos(pitch)

	lo := [2]float64{math.Inf(1), math.Inf(1)}
	hi := [2]float64{math.Inf(-1), math.Inf(-1)}
	seen := false
	grow := func(p vec3.Vec) {
		x, up := c.view(p)
		lo[0], hi[0] = math.Min(lo[0], x), math.Max(hi[0], x)
		lo[1], hi[1] = math.Min(lo[1], up), math.Max(hi[1], up)
		seen = true
	}
	if s.Mesh != nil && len(s.Mesh.Faces) > 0 {
		for _, p := range s.Mesh.Vertices {
			grow(p)
		}
	}
	for _, cv := range s.Curves {
		for _, p := range cv.Points {
			grow(p)
		}
	}
	if !seen {
		return nil, false
	}

	edge := float64(o.Size * o.Supersample)
	c.half = edge / 2
	c.cx, c.cz = (lo[0]+hi[0])/2, (lo[1]+hi[1])/2
	ext := math.Max(hi[0]-lo[0], hi[1]-lo[1])
	c.scale = 1
	if ext > vec3.Eps {
		c.scale = edge * (1 - 2*o.Margin) / ext
	}

	return c, true
}

// stroke adds the segment a→b of width w as a quad. All quads share one
// winding, so overlaps accumulate instead of cancelling.
func stroke(r *vector.Rasterizer, ax, ay, bx, by float32, w float64) {
	dx, dy := float64(bx-ax), float64(by-ay)
	l := math.Hypot(dx, dy)
	if l < 1e-6 {
		return
	}
	nx, ny := float32(-dy/l*w/2), float32(dx/l*w/2)
	r.MoveTo(ax+nx, ay+ny)
	r.LineTo(bx+nx, by+ny)
	r.LineTo(bx-nx, by-ny)
	r.LineTo(ax-nx, ay-ny)
	r.ClosePath()
}

// disc adds a regular polygon approximating a circle.
func disc(r *vector.Rasterizer, x, y float32, radius float64) {
	for i := 0; i < markerSides; i++ {
		s, c := math.Sincos(2 * math.Pi * float64(i) / markerSides)
		px, py := x+float32(radius*c), y+float32(radius*s)
		if i == 0 {
			r.MoveTo(px, py)
		} else {
			r.LineTo(px, py)
		}
	}
	r.ClosePath()
}

// paint fills dst with c through the coverage accumulated in r and resets r.
func paint(dst draw.Image, r *vector.Rasterizer, c color.NRGBA) {
	r.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
	b := dst.Bounds()
	r.Reset(b.Dx(), b.Dy())
}

// Preview draws the scene into a Size×Size image.
//
// Steps:
//  1. Frame every mesh vertex and curve point.
//  2. Fill the background at supersampled resolution.
//  3. Stroke each unique mesh edge, then each curve, then mark the first
//     and last point of every curve.
//  4. Reduce to Size with Catmull-Rom.
//
// Errors: ErrEmptyScene.
func Preview(s Scene, opts ...Option) (*image.NRGBA, error) {
	o := gatherOptions(opts...)

	// 1) Frame.
	cam, ok := fit(s, o)
	if !ok {
		return nil, ErrEmptyScene
	}

	// 2) Background.
	n := o.Size * o.Supersample
	big := image.NewRGBA(image.Rect(0, 0, n, n))
	draw.Draw(big, big.Bounds(), image.NewUniform(o.Background), image.Point{}, draw.Src)

	ss := float64(o.Supersample)
	r := vector.NewRasterizer(n, n)

	// 3) Edges, curves, markers.
	if s.Mesh != nil {
		seen := make(map[[2]int]struct{}, 3*len(s.Mesh.Faces)/2)
		for _, f := range s.Mesh.Faces {
			for k := 0; k < 3; k++ {
				a, b := f[k], f[(k+1)%3]
				if a > b {
					a, b = b, a
				}
				if _, dup := seen[[2]int{a, b}]; dup || a == b {
					continue
				}
				seen[[2]int{a, b}] = struct{}{}
				ax, ay := cam.project(s.Mesh.Vertices[a])
				bx, by := cam.project(s.Mesh.Vertices[b])
				stroke(r, ax, ay, bx, by, o.LineWidth*ss/2)
			}
		}
		paint(big, r, o.Edge)
	}

	for _, cv := range s.Curves {
		for i := 1; i < len(cv.Points); i++ {
			ax, ay := cam.project(cv.Points[i-1])
			bx, by := cam.project(cv.Points[i])
			stroke(r, ax, ay, bx, by, 2*o.LineWidth*ss)
		}
	}
	paint(big, r, o.Curve)

	radius := 3 * o.LineWidth * ss
	for _, cv := range s.Curves {
		if cv.Empty() {
			continue
		}
		x, y := cam.project(cv.Points[0])
		disc(r, x, y, radius)
	}
	paint(big, r, StartColor)
	for _, cv := range s.Curves {
		if cv.Empty() {
			continue
		}
		x, y := cam.project(cv.Points[len(cv.Points)-1])
		disc(r, x, y, radius)
	}
	paint(big, r, EndColor)

	// 4) Reduce.
	out := image.NewNRGBA(image.Rect(0, 0, o.Size, o.Size))
	if o.Supersample == 1 {
		draw.Draw(out, out.Bounds(), big, image.Point{}, draw.Src)
		return out, nil
	}
	draw.CatmullRom.Scale(out, out.Bounds(), big, big.Bounds(), draw.Src, nil)

	return out, nil
}
