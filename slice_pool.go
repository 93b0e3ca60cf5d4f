package randvar

import "sync"

// weightScratch is the process-wide pool backing the combinator's
// weight rows.
var weightScratch = &threadSafeFloatSlicePool{}

// threadSafeFloatSlicePool recycles weight scratch slices across
// combinator calls. It is safe for concurrent use.
type threadSafeFloatSlicePool struct {
	mx   sync.Mutex
	pool [][]float64
}

func (p *threadSafeFloatSlicePool) alloc(n int) []float64 {
	p.mx.Lock()
	defer p.mx.Unlock()

	if len(p.pool) > 0 {
		m := len(p.pool)
		next := p.pool[m-1]
		p.pool = p.pool[:m-1]
		return append(next, make([]float64, n)...)
	}

	return make([]float64, n)
}

func (p *threadSafeFloatSlicePool) free(s []float64) {
	if cap(s) == 0 {
		return
	}

	p.mx.Lock()
	p.pool = append(p.pool, s[:0])
	p.mx.Unlock()
}
