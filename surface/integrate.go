package surface

// State is a point on a geodesic in parameter space together with its
// parameter velocity.
type State struct {
	U, V   float64
	DU, DV float64
}

// axpy returns s + h·k component-wise.
func (s State) axpy(h float64, k State) State {
	return State{
		U:  s.U + h*k.U,
		V:  s.V + h*k.V,
		DU: s.DU + h*k.DU,
		DV: s.DV + h*k.DV,
	}
}

// RHS evaluates the geodesic equation as a first-order system:
//
//	u'  = du
//	v'  = dv
//	du' = −(Γᵘᵤᵤ du² + 2Γᵘᵤᵥ du dv + Γᵘᵥᵥ dv²)
//	dv' = −(Γᵛᵤᵤ du² + 2Γᵛᵤᵥ du dv + Γᵛᵥᵥ dv²)
func RHS(s Surface, st State) State {
	c := ComputeChristoffel(s, st.U, st.V)
	uu, uv, vv := st.DU*st.DU, st.DU*st.DV, st.DV*st.DV

	return State{
		U:  st.DU,
		V:  st.DV,
		DU: -(c.Uuu*uu + 2*c.Uuv*uv + c.Uvv*vv),
		DV: -(c.Vuu*uu + 2*c.Vuv*uv + c.Vvv*vv),
	}
}

// RK4Step advances st by h with the classical fourth-order Runge–Kutta scheme.
func RK4Step(s Surface, st State, h float64) State {
	k1 := RHS(s, st)
	k2 := RHS(s, st.axpy(h/2, k1))
	k3 := RHS(s, st.axpy(h/2, k2))
	k4 := RHS(s, st.axpy(h, k3))

	w := h / 6
	return State{
		U:  st.U + w*(k1.U+2*k2.U+2*k3.U+k4.U),
		V:  st.V + w*(k1.V+2*k2.V+2*k3.V+k4.V),
		DU: st.DU + w*(k1.DU+2*k2.DU+2*k3.DU+k4.DU),
		DV: st.DV + w*(k1.DV+2*k2.DV+2*k3.DV+k4.DV),
	}
}

// Integrate runs fixed-step RK4 over t ∈ [0, 1] with h = 1/max(1, steps) and
// returns steps+1 states (a single state for steps <= 0), the first being
// start. The result is deterministic for a given input.
func Integrate(s Surface, start State, steps int) []State {
	if steps < 0 {
		steps = 0
	}
	h := 1 / float64(max(1, steps))
	out := make([]State, 0, steps+1)
	st := start
	out = append(out, st)
	for i := 0; i < steps; i++ {
		st = RK4Step(s, st, h)
		out = append(out, st)
	}

	return out
}

// endpoint integrates without keeping the trajectory.
func endpoint(s Surface, start State, steps int) State {
	h := 1 / float64(max(1, steps))
	st := start
	for i := 0; i < steps; i++ {
		st = RK4Step(s, st, h)
	}

	return st
}
