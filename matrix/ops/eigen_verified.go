// Package ops provides advanced matrix operations for the ivlath/matrix package.
// EigSolver computes a verified enclosure of every eigenvalue of a real
// square matrix via Gershgorin discs, tightened by a similarity
// refinement when the midpoint eigenvectors gonum returns are real.
package ops

import (
	"fmt"
	"math"

	"github.com/ivlath/ivlath/config"
	"github.com/ivlath/ivlath/interval"
	"github.com/ivlath/ivlath/matrix"
	"github.com/ivlath/ivlath/rounded"

	"gonum.org/v1/gonum/mat"
)

// machineEps and sqrtMachineEps bound how close a conjugate eigenvalue
// pair's imaginary part must be to zero before fold_conjugate collapses
// it to a single real enclosure.
const machineEps = 2.220446049250313e-16

var sqrtMachineEps = math.Sqrt(machineEps)

// conjugateTol bounds how close two raw eigenvalues must be to a
// conjugate pair (same real part, opposite imaginary part) before
// fold_conjugate treats them as one.
const conjugateTol = 1e-9

// jacobiTol and jacobiMaxIter bound the symmetric fast path's Jacobi
// sweep: a tight off-diagonal tolerance and a generous sweep cap, the
// same magnitudes the package's plain-kernel Eigen tests exercise.
const (
	jacobiTol     = 1e-12
	jacobiMaxIter = 100
)

// EigSolver returns a verified enclosure of every eigenvalue of a.
// Blueprint:
//
//	Stage 1 (Validate): a must be square.
//	Stage 2 (Approximate): midλ, V. For symmetric a, V comes from this
//	  package's Jacobi rotation Eigen, whose eigenvector matrix Q is
//	  orthogonal by construction — so Q^-1 = Q^T exactly, no LU inversion
//	  needed. Otherwise (or if Jacobi fails to converge), fall back to
//	  gonum's general Eigen decomposition.
//	Stage 3 (Refine): if V's imaginary part is negligible, compute the
//	  verified similarity transform B = V^-1*A*V (via RealMatMul);
//	  Gershgorin discs on B are tighter than on A directly. Otherwise
//	  (genuinely complex eigenbasis, or V not invertible), fall back to
//	  Gershgorin discs on A itself — still rigorous, just looser.
//	Stage 4 (Enclose): disc i gives Re(λ) in [center-R, center+R] and
//	  Im(λ) in [-R, R], a real axis-aligned box enclosing the disc.
//	Stage 5 (fold_conjugate): a raw eigenvalue pair that is numerically a
//	  complex conjugate pair and nearly real (|Im| < sqrt(eps)*specMag)
//	  is reported as a single real enclosure in both slots, rather than
//	  two near-duplicate complex ones.
func EigSolver(o rounded.Ops, a *matrix.RealMatrix) ([]interval.ComplexInterval, error) {
	// Stage 1: Validate input shape
	n := a.Rows()
	if n != a.Cols() {
		return nil, fmt.Errorf("EigSolver: non-square %dx%d: %w", n, a.Cols(), matrix.ErrNonSquare)
	}

	mid := a.MidDense()
	var (
		lambda []complex128
		vre    *matrix.RealMatrix
		vinv   *matrix.RealMatrix
	)

	// Stage 2: Jacobi fast path for symmetric input; Q^-1 = Q^T is free.
	if eigs, q, err := Eigen(mid, jacobiTol, jacobiMaxIter); err == nil {
		lambda = make([]complex128, n)
		for i, v := range eigs {
			lambda[i] = complex(v, 0)
		}
		qt, terr := matrix.Transpose(q)
		if terr == nil {
			if lifted, lerr := matrix.FromMatrix(q, false); lerr == nil {
				if liftedT, lterr := matrix.FromMatrix(qt, false); lterr == nil {
					vre, vinv = lifted, liftedT
				}
			}
		}
	}

	// Stage 2b: gonum fallback for non-symmetric input or a failed sweep.
	if vre == nil {
		var eig mat.Eigen
		if ok := eig.Factorize(a.MidGonum(), mat.EigenRight); !ok {
			return fallbackDirectGershgorin(o, a), nil
		}
		lambda = eig.Values(nil)
		vc := mat.NewCDense(n, n, nil)
		eig.VectorsTo(vc)

		maxImag := 0.0
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if im := math.Abs(imag(vc.At(i, j))); im > maxImag {
					maxImag = im
				}
			}
		}
		if maxImag < sqrtMachineEps {
			vreGonum, verr := matrix.NewRealMatrix(n, n)
			if verr != nil {
				return nil, fmt.Errorf("EigSolver: %w", verr)
			}
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					_ = vreGonum.Set(i, j, interval.NewSingleton(real(vc.At(i, j))))
				}
			}
			if vi, ierr := MatInv(o, vreGonum); ierr == nil && !vi.IsAllNaI() {
				vre, vinv = vreGonum, vi
			}
		}
	}

	// Stage 3: Attempt the similarity-refined bound when V is available
	var centers []interval.Interval
	var radii []float64
	ng := a.NG() || o.RaisesNG()

	if vre != nil && vinv != nil {
		av, aerr := matrix.RealMatMul(o, a, vre, config.FastMatMul, 0)
		if aerr == nil {
			b, berr := matrix.RealMatMul(o, vinv, av, config.FastMatMul, 0)
			if berr == nil {
				centers, radii = gershgorinDiscs(o, b)
			}
		}
	}
	if centers == nil {
		centers, radii = gershgorinDiscsFromA(o, a)
	}

	// Stage 4: Build the box enclosure for each disc
	result := make([]interval.ComplexInterval, n)
	specMag := 0.0
	for i := 0; i < n; i++ {
		c := centers[i].Bare()
		r := radii[i]
		reLo := o.Sub(c.Lo(), r, rounded.Down)
		reHi := o.Add(c.Hi(), r, rounded.Up)
		re, err := interval.NewFromBounds(reLo, reHi)
		if err != nil {
			re = interval.NewEntire()
		}
		im, err := interval.NewFromBounds(-r, r)
		if err != nil {
			im = interval.NewEntire()
		}
		if ng || centers[i].NG() {
			re = re.WithNG()
			im = im.WithNG()
		}
		result[i] = interval.NewComplex(re, im)
		if mag := math.Abs(c.Mid()) + r; mag > specMag {
			specMag = mag
		}
	}

	// Stage 5: fold_conjugate — collapse near-real conjugate pairs
	if lambda != nil {
		foldConjugatePairs(result, lambda, specMag)
	}
	return result, nil
}

// gershgorinDiscs computes Gershgorin centers/radii from the rows of m.
func gershgorinDiscs(o rounded.Ops, m *matrix.RealMatrix) ([]interval.Interval, []float64) {
	n := m.Rows()
	centers := make([]interval.Interval, n)
	radii := make([]float64, n)
	for i := 0; i < n; i++ {
		diag, _ := m.At(i, i)
		centers[i] = diag
		radius := 0.0
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			v, _ := m.At(i, j)
			radius = o.Add(radius, v.Mag(), rounded.Up)
		}
		radii[i] = radius
	}
	return centers, radii
}

func gershgorinDiscsFromA(o rounded.Ops, a *matrix.RealMatrix) ([]interval.Interval, []float64) {
	return gershgorinDiscs(o, a)
}

func fallbackDirectGershgorin(o rounded.Ops, a *matrix.RealMatrix) []interval.ComplexInterval {
	n := a.Rows()
	centers, radii := gershgorinDiscsFromA(o, a)
	ng := a.NG() || o.RaisesNG()
	result := make([]interval.ComplexInterval, n)
	for i := 0; i < n; i++ {
		c := centers[i].Bare()
		r := radii[i]
		reLo := o.Sub(c.Lo(), r, rounded.Down)
		reHi := o.Add(c.Hi(), r, rounded.Up)
		re, err := interval.NewFromBounds(reLo, reHi)
		if err != nil {
			re = interval.NewEntire()
		}
		im, err := interval.NewFromBounds(-r, r)
		if err != nil {
			im = interval.NewEntire()
		}
		if ng {
			re = re.WithNG()
			im = im.WithNG()
		}
		result[i] = interval.NewComplex(re, im)
	}
	return result
}

// foldConjugatePairs scans raw eigenvalues for conjugate pairs that are
// nearly real and collapses both matching result slots to a single real
// enclosure: the hull of their real parts, zero imaginary part.
func foldConjugatePairs(result []interval.ComplexInterval, lambda []complex128, specMag float64) {
	n := len(lambda)
	threshold := sqrtMachineEps * specMag
	used := make([]bool, n)
	for i := 0; i < n; i++ {
		if used[i] {
			continue
		}
		for j := i + 1; j < n; j++ {
			if used[j] {
				continue
			}
			if math.Abs(real(lambda[i])-real(lambda[j])) > conjugateTol {
				continue
			}
			if math.Abs(imag(lambda[i])+imag(lambda[j])) > conjugateTol {
				continue
			}
			if math.Abs(imag(lambda[i])) >= threshold {
				continue
			}
			merged := result[i].Re.Hull(result[j].Re)
			zero := interval.NewSingleton(0)
			if result[i].Im.NG() || result[j].Im.NG() {
				zero = zero.WithNG()
			}
			result[i] = interval.NewComplex(merged, zero)
			result[j] = interval.NewComplex(merged, zero)
			used[i], used[j] = true, true
			break
		}
	}
}
