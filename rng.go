package wmediumd

//
// Injectable randomness
//

import (
	"math/rand"
	"time"
)

// UniformSource draws uniform [0,1) samples. The send-time computation
// depends on this narrow interface rather than on math/rand's
// process-global state, so scenario tests are reproducible: a seeded
// source makes the whole sequence of tx-info/cloned-frame emissions a
// pure function of the ingress sequence.
type UniformSource interface {
	Float64() float64
}

var _ UniformSource = &rand.Rand{}

// NewSystemUniformSource returns a UniformSource seeded from the
// current time, suitable for production use.
func NewSystemUniformSource() UniformSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
