package optim

import "gonum.org/v1/gonum/mat"

// Optimizer applies gradient updates to a single dense matrix parameter.
//
// Step updates param in place from grad; both must share dimensions (the
// underlying gonum kernels panic on mismatch, which is treated as a
// programmer error rather than a runtime condition). Rate reports the
// configured learning rate for monitoring.
type Optimizer interface {
	Step(param, grad *mat.Dense)
	Rate() float64
}

// eachEntry walks param and grad in lockstep, honoring row strides, and
// calls fn with a flat buffer index k and the gradient value. fn returns
// the additive update for the parameter entry.
func eachEntry(param, grad *mat.Dense, fn func(k int, g float64) float64) {
	r, c := param.Dims()
	rp := param.RawMatrix()
	rg := grad.RawMatrix()
	k := 0
	for i := 0; i < r; i++ {
		pOff := i * rp.Stride
		gOff := i * rg.Stride
		for j := 0; j < c; j++ {
			rp.Data[pOff+j] += fn(k, rg.Data[gOff+j])
			k++
		}
	}
}
