package optim

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Adam hyperparameter defaults, applied for zero-valued config fields.
const (
	DefaultAdamRate  = 0.001
	DefaultAdamBeta1 = 0.9
	DefaultAdamBeta2 = 0.999
	DefaultAdamEps   = 1e-8
)

// AdamConfig configures an Adam optimizer. Zero-valued fields fall back to
// the package defaults above.
type AdamConfig struct {
	Rate  float64 // learning rate
	Beta1 float64 // first-moment decay
	Beta2 float64 // second-moment decay
	Eps   float64 // denominator fuzz
}

// Adam implements adaptive moment estimation (Kingma & Ba) over a single
// dense matrix: exponentially decayed first and second raw moments of the
// gradient, bias-corrected by the step count, drive a per-entry step size.
//
// Moment buffers are sized lazily on the first Step and must then keep
// matching the parameter shape for the optimizer's lifetime.
type Adam struct {
	cfg  AdamConfig
	step int
	m, v []float64
}

// NewAdam builds an Adam optimizer, filling zero config fields with the
// package defaults.
func NewAdam(cfg AdamConfig) *Adam {
	if cfg.Rate == 0 {
		cfg.Rate = DefaultAdamRate
	}
	if cfg.Beta1 == 0 {
		cfg.Beta1 = DefaultAdamBeta1
	}
	if cfg.Beta2 == 0 {
		cfg.Beta2 = DefaultAdamBeta2
	}
	if cfg.Eps == 0 {
		cfg.Eps = DefaultAdamEps
	}

	return &Adam{cfg: cfg}
}

// Rate reports the configured learning rate.
func (a *Adam) Rate() float64 { return a.cfg.Rate }

// Reset clears the moment buffers and step count, returning the optimizer
// to its freshly constructed state.
func (a *Adam) Reset() {
	a.step = 0
	a.m = nil
	a.v = nil
}

// Step applies one bias-corrected Adam update to param in place.
func (a *Adam) Step(param, grad *mat.Dense) {
	r, c := param.Dims()
	if a.m == nil {
		a.m = make([]float64, r*c)
		a.v = make([]float64, r*c)
	}
	a.step++
	corr1 := 1 - math.Pow(a.cfg.Beta1, float64(a.step))
	corr2 := 1 - math.Pow(a.cfg.Beta2, float64(a.step))
	eachEntry(param, grad, func(k int, g float64) float64 {
		a.m[k] = a.cfg.Beta1*a.m[k] + (1-a.cfg.Beta1)*g
		a.v[k] = a.cfg.Beta2*a.v[k] + (1-a.cfg.Beta2)*g*g
		mHat := a.m[k] / corr1
		vHat := a.v[k] / corr2

		return -a.cfg.Rate * mHat / (math.Sqrt(vHat) + a.cfg.Eps)
	})
}
