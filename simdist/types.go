// SPDX-License-Identifier: MIT

package simdist

// ScoreMethod selects the similarity metric reported by Score.
//
//   - Angular    — arccos( trace(A·C·Bᵗ·Cᵗ) / (‖A‖_F·‖B‖_F) ), an angle in
//     radians in [0, π]. The ratio is clamped to [-1, 1] before arccos so
//     floating-point rounding near identical or antipodal inputs cannot
//     produce a domain error.
//   - Euclidean  — ‖A − C·B·Cᵗ‖_F, the Frobenius norm of the residual.
//     Always finite and non-negative.
type ScoreMethod int

const (
	// Angular is the normalized-trace angle metric (default).
	Angular ScoreMethod = iota

	// Euclidean is the Frobenius residual-norm metric.
	Euclidean
)

// String implements fmt.Stringer for log fields and error context.
func (m ScoreMethod) String() string {
	switch m {
	case Angular:
		return "angular"
	case Euclidean:
		return "euclidean"
	default:
		return "unknown"
	}
}

// valid reports whether m is a defined metric.
func (m ScoreMethod) valid() bool {
	return m == Angular || m == Euclidean
}
