package surface

import (
	"math"

	"github.com/katalvlaran/geodesiclab/vec3"
)

// FDStep is the forward-difference step used for both the metric and its
// derivatives.
const FDStep = 1e-4

// degenerateDet is the |det g| at or below which the inverse metric falls
// back to the identity.
const degenerateDet = 1e-12

// Metric is the first fundamental form g = [[G00, G01], [G01, G11]] and its
// inverse at one parameter point.
type Metric struct {
	G00, G01, G11       float64
	Inv00, Inv01, Inv11 float64
}

// Degenerate reports whether the inverse is the identity fallback.
func (m Metric) Degenerate() bool {
	return math.Abs(m.G00*m.G11-m.G01*m.G01) <= degenerateDet
}

// ComputeMetric estimates g at (u, v) from forward-difference tangents
// r_u ≈ (r(u+h, v) − r(u, v))/h and r_v likewise. When |det g| <= 1e-12 the
// inverse is the identity so downstream formulas stay finite.
func ComputeMetric(s Surface, u, v float64) Metric {
	r := s.Eval(u, v)
	ru := vec3.Scale(1/FDStep, vec3.Sub(s.Eval(u+FDStep, v), r))
	rv := vec3.Scale(1/FDStep, vec3.Sub(s.Eval(u, v+FDStep), r))

	m := Metric{
		G00: vec3.Dot(ru, ru),
		G01: vec3.Dot(ru, rv),
		G11: vec3.Dot(rv, rv),
		// identity fallback
		Inv00: 1,
		Inv11: 1,
	}
	det := m.G00*m.G11 - m.G01*m.G01
	if math.Abs(det) > degenerateDet {
		m.Inv00 = m.G11 / det
		m.Inv01 = -m.G01 / det
		m.Inv11 = m.G00 / det
	}

	return m
}

// Christoffel holds the six distinct symbols of the second kind. Uuv is
// Γᵘᵤᵥ (= Γᵘᵥᵤ) and so on.
type Christoffel struct {
	Uuu, Uuv, Uvv float64
	Vuu, Vuv, Vvv float64
}

// ComputeChristoffel evaluates Γᵏᵢⱼ = ½ gᵏˡ(∂ᵢgⱼₗ + ∂ⱼgᵢₗ − ∂ₗgᵢⱼ) with the
// metric derivatives taken by forward differences of ComputeMetric.
func ComputeChristoffel(s Surface, u, v float64) Christoffel {
	m := ComputeMetric(s, u, v)
	mu := ComputeMetric(s, u+FDStep, v)
	mv := ComputeMetric(s, u, v+FDStep)

	// E = g00, F = g01, G = g11
	eU := (mu.G00 - m.G00) / FDStep
	fU := (mu.G01 - m.G01) / FDStep
	gU := (mu.G11 - m.G11) / FDStep
	eV := (mv.G00 - m.G00) / FDStep
	fV := (mv.G01 - m.G01) / FDStep
	gV := (mv.G11 - m.G11) / FDStep

	// Lowered symbols Γ_{l,ij} = ½(∂ᵢgⱼₗ + ∂ⱼgᵢₗ − ∂ₗgᵢⱼ), times two.
	uuU, uuV := eU, 2*fU-eV
	uvU, uvV := eV, gU
	vvU, vvV := 2*fV-gU, gV

	return Christoffel{
		Uuu: 0.5 * (m.Inv00*uuU + m.Inv01*uuV),
		Uuv: 0.5 * (m.Inv00*uvU + m.Inv01*uvV),
		Uvv: 0.5 * (m.Inv00*vvU + m.Inv01*vvV),
		Vuu: 0.5 * (m.Inv01*uuU + m.Inv11*uuV),
		Vuv: 0.5 * (m.Inv01*uvU + m.Inv11*uvV),
		Vvv: 0.5 * (m.Inv01*vvU + m.Inv11*vvV),
	}
}
