package wmediumd

//
// Error model (external interface)
//

// ErrorModel computes the probability of a frame being lost, as a pure
// function of SNR, rate, and length. The engine treats implementations
// as pure: same inputs, same output, every call.
type ErrorModel interface {
	// ErrorProbability returns P(loss | snrDB, rate, lenBytes) in [0,1].
	ErrorProbability(snrDB float64, rate RateIndex, lenBytes int) float64
}

// defaultSNRdB is the currently-configured constant SNR, in dB.
const defaultSNRdB = 15.0

// SNRSource resolves the SNR, in dB, between a sender and a receiver.
// The engine consults it once per frame before calling ErrorModel, so a
// per-(src,dst) extension point is concretely reachable without
// changing ErrorModel's own signature.
type SNRSource interface {
	SNRdB(src, dst MacAddr) float64
}

// ConstantSNR is an SNRSource that returns the same value for every
// pair: "the SNR value is currently a configured constant."
type ConstantSNR float64

var _ SNRSource = ConstantSNR(0)

// SNRdB implements SNRSource.
func (c ConstantSNR) SNRdB(_, _ MacAddr) float64 {
	return float64(c)
}

// DefaultSNR is the default constant SNR source (15 dB).
var DefaultSNR = ConstantSNR(defaultSNRdB)

// MatrixSNR is an SNRSource backed by a per-pair override table loaded
// from the config file's link matrix (config.go), falling back to a
// default for unlisted pairs. Lookups are symmetric: (a,b) and (b,a)
// share one entry.
type MatrixSNR struct {
	Default float64
	Matrix  map[[2]MacAddr]float64
}

var _ SNRSource = &MatrixSNR{}

// SNRdB implements SNRSource.
func (m *MatrixSNR) SNRdB(src, dst MacAddr) float64 {
	if v, ok := m.Matrix[[2]MacAddr{src, dst}]; ok {
		return v
	}
	if v, ok := m.Matrix[[2]MacAddr{dst, src}]; ok {
		return v
	}
	return m.Default
}

// ProbFn is the signature of the external, pluggable per-rate error
// probability table. wmediumd ships no implementation of the real
// probability curve: it is supplied by the caller.
type ProbFn func(snrDB float64, rate RateIndex, lenBytes int) float64

// FuncErrorModel adapts a bare ProbFn to the ErrorModel interface.
type FuncErrorModel ProbFn

var _ ErrorModel = FuncErrorModel(nil)

// ErrorProbability implements ErrorModel.
func (f FuncErrorModel) ErrorProbability(snrDB float64, rate RateIndex, lenBytes int) float64 {
	return f(snrDB, rate, lenBytes)
}
