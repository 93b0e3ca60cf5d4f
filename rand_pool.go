package randvar

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
)

// defaultSource backs Choice and Sample for Variables constructed without
// an injected RNG. It is striped over several locked rand.Rands so that
// concurrent samplers do not contend on a single mutex.
var defaultSource = newRandPool(2 * runtime.GOMAXPROCS(0))

type randPool struct {
	next uint32
	rngs []*lockedRand
}

func newRandPool(n int) *randPool {
	rngs := make([]*lockedRand, n)
	for i := range rngs {
		rngs[i] = &lockedRand{
			rng: rand.New(rand.NewSource(rand.Int63())),
		}
	}

	return &randPool{rngs: rngs}
}

func (p *randPool) Float64() float64 {
	k := atomic.AddUint32(&p.next, 1) % uint32(len(p.rngs))
	return p.rngs[k].Float64()
}

type lockedRand struct {
	mx  sync.Mutex
	rng *rand.Rand
}

func (lr *lockedRand) Float64() float64 {
	lr.mx.Lock()
	result := lr.rng.Float64()
	lr.mx.Unlock()
	return result
}
