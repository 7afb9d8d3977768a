package optim

import "gonum.org/v1/gonum/mat"

// DefaultSGDRate is the learning rate used for a zero-valued SGDConfig.
const DefaultSGDRate = 0.01

// SGDConfig configures an SGD optimizer. A zero Rate falls back to
// DefaultSGDRate; a zero Momentum means plain gradient descent.
type SGDConfig struct {
	Rate     float64
	Momentum float64
}

// SGD implements gradient descent with optional heavy-ball momentum over a
// single dense matrix. With Momentum == 0 the velocity buffer is skipped
// entirely and each step is param -= rate·grad.
type SGD struct {
	cfg SGDConfig
	vel []float64
}

// NewSGD builds an SGD optimizer, filling a zero Rate with DefaultSGDRate.
func NewSGD(cfg SGDConfig) *SGD {
	if cfg.Rate == 0 {
		cfg.Rate = DefaultSGDRate
	}

	return &SGD{cfg: cfg}
}

// Rate reports the configured learning rate.
func (s *SGD) Rate() float64 { return s.cfg.Rate }

// Reset clears the velocity buffer.
func (s *SGD) Reset() { s.vel = nil }

// Step applies one (momentum) SGD update to param in place.
func (s *SGD) Step(param, grad *mat.Dense) {
	if s.cfg.Momentum == 0 {
		eachEntry(param, grad, func(_ int, g float64) float64 {
			return -s.cfg.Rate * g
		})

		return
	}
	if s.vel == nil {
		r, c := param.Dims()
		s.vel = make([]float64, r*c)
	}
	eachEntry(param, grad, func(k int, g float64) float64 {
		s.vel[k] = s.cfg.Momentum*s.vel[k] + g

		return -s.cfg.Rate * s.vel[k]
	})
}
