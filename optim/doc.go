// Package optim implements first-order optimizers over a single dense
// matrix parameter, as used by the similarity-transform fitting loop.
//
// Provided:
//   - Adam — adaptive moment estimation with bias correction (the fitting
//     loop's default)
//   - SGD  — plain gradient descent with optional momentum
//
// Gradients are recomputed from scratch every iteration and handed to Step
// explicitly, so there is no accumulated-gradient state to clear: the
// zero-grad step of tape-based frameworks has no counterpart here.
//
// The optimizers update the parameter in place and keep their internal
// moment/velocity buffers across calls; each iteration therefore depends on
// the previous one and a single optimizer instance must not be shared
// between concurrent fits.
package optim
