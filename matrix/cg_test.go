// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geodesiclab/matrix"
)

// pathLaplacian is the graph Laplacian of a path on n vertices plus shift·I.
func pathLaplacian(n int, shift float64) matrix.Operator {
	return matrix.OperatorFunc{N: n, F: func(dst, x []float64) {
		for i := range x {
			v := shift * x[i]
			if i > 0 {
				v += x[i] - x[i-1]
			}
			if i+1 < n {
				v += x[i] - x[i+1]
			}
			dst[i] = v
		}
	}}
}

func residual(a matrix.Operator, x, b []float64) float64 {
	ax := make([]float64, len(x))
	a.Apply(ax, x)
	var s float64
	for i := range b {
		d := b[i] - ax[i]
		s += d * d
	}

	return math.Sqrt(s)
}

func TestConjugateGradient_SPD(t *testing.T) {
	const n = 30
	a := pathLaplacian(n, 0.1)
	b := make([]float64, n)
	b[3] = 1
	b[20] = -2

	res, err := matrix.ConjugateGradient(a, b, matrix.WithTolerance(1e-10))
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.LessOrEqual(t, res.Iterations, n)
	assert.Less(t, residual(a, res.X, b), 1e-8)
}

func TestConjugateGradient_Diagonal(t *testing.T) {
	d := matrix.Diagonal{2, 4, 8}
	res, err := matrix.ConjugateGradient(d, []float64{2, 2, 2})
	require.NoError(t, err)
	require.True(t, res.Converged)
	assert.InDeltaSlice(t, []float64{1, 0.5, 0.25}, res.X, 1e-9)
}

func TestConjugateGradient_ZeroRHS(t *testing.T) {
	res, err := matrix.ConjugateGradient(matrix.Diagonal{1, 1}, []float64{0, 0})
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, 0, res.Iterations)
	assert.Equal(t, []float64{0, 0}, res.X)
}

func TestConjugateGradient_IterationLimit(t *testing.T) {
	a := pathLaplacian(50, 0.01)
	b := make([]float64, 50)
	b[0] = 1

	var seen int
	res, err := matrix.ConjugateGradient(a, b,
		matrix.WithMaxIter(3),
		matrix.WithTolerance(1e-14),
		matrix.WithIterationHook(func(int, float64) { seen++ }),
	)
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, 3, res.Iterations)
	assert.Equal(t, 3, seen)

	_, err = matrix.SolveStrict(a, b, matrix.WithMaxIter(3), matrix.WithTolerance(1e-14))
	require.ErrorIs(t, err, matrix.ErrNotConverged)
}

func TestConjugateGradient_Breakdown(t *testing.T) {
	zero := matrix.Diagonal{0, 0}
	res, err := matrix.ConjugateGradient(zero, []float64{1, 1})
	require.NoError(t, err)
	assert.True(t, res.Breakdown)
	assert.False(t, res.Converged)

	_, err = matrix.SolveStrict(zero, []float64{1, 1})
	require.ErrorIs(t, err, matrix.ErrBreakdown)
}

func TestConjugateGradient_Pinned(t *testing.T) {
	// The pure Laplacian is singular; pinning vertex 0 makes the system solvable
	// and keeps x[0] == b[0].
	const n = 6
	p := matrix.Pinned{Op: pathLaplacian(n, 0), Rows: []int{0}}
	b := []float64{0, 1, 0, 0, 0, -1}

	res, err := matrix.ConjugateGradient(p, b, matrix.WithTolerance(1e-12), matrix.WithMaxIter(200))
	require.NoError(t, err)
	require.True(t, res.Converged)
	assert.InDelta(t, 0.0, res.X[0], 1e-9)
	assert.Less(t, residual(p, res.X, b), 1e-9)
}

func TestConjugateGradient_InitialGuess(t *testing.T) {
	d := matrix.Diagonal{1, 1}
	res, err := matrix.ConjugateGradient(d, []float64{3, 4}, matrix.WithInitialGuess([]float64{3, 4}))
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, 0, res.Iterations)
}

func TestConjugateGradient_Errors(t *testing.T) {
	_, err := matrix.ConjugateGradient(nil, nil)
	require.ErrorIs(t, err, matrix.ErrNilOperator)

	_, err = matrix.ConjugateGradient(matrix.Diagonal{1}, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.ConjugateGradient(matrix.Diagonal{1}, []float64{math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.ConjugateGradient(matrix.Diagonal{1}, []float64{1}, matrix.WithInitialGuess([]float64{1, 1}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	assert.Panics(t, func() { matrix.WithMaxIter(-1) })
	assert.Panics(t, func() { matrix.WithTolerance(math.Inf(1)) })
}
