// SPDX-License-Identifier: MIT

package matrix

// Operator is a square linear map applied matrix-free. Implementations write
// A·x into dst; dst and x never alias and both have length Dim().
type Operator interface {
	Dim() int
	Apply(dst, x []float64)
}

// OperatorFunc adapts a closure to Operator.
type OperatorFunc struct {
	N int
	F func(dst, x []float64)
}

// Dim returns the operator size.
func (o OperatorFunc) Dim() int { return o.N }

// Apply calls the wrapped closure.
func (o OperatorFunc) Apply(dst, x []float64) { o.F(dst, x) }

// Pinned replaces the rows listed in Rows with identity rows, so that the
// solution keeps b[i] at those indices. It is the usual way to impose a
// Dirichlet condition on a singular Laplacian.
type Pinned struct {
	Op   Operator
	Rows []int
}

// Dim returns the size of the wrapped operator.
func (p Pinned) Dim() int { return p.Op.Dim() }

// Apply evaluates the wrapped operator, then overwrites pinned rows.
func (p Pinned) Apply(dst, x []float64) {
	p.Op.Apply(dst, x)
	for _, i := range p.Rows {
		dst[i] = x[i]
	}
}

// Diagonal is the operator diag(D).
type Diagonal []float64

// Dim returns len(d).
func (d Diagonal) Dim() int { return len(d) }

// Apply writes d[i]*x[i].
func (d Diagonal) Apply(dst, x []float64) {
	for i, v := range d {
		dst[i] = v * x[i]
	}
}
