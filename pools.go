package ieds

// pairSlicePool recycles the candidate buffers the Reducer fills on every
// expansion. It is not safe for concurrent use.
type pairSlicePool struct {
	pool [][]Pair
}

func (p *pairSlicePool) alloc() []Pair {
	if p == nil {
		return nil
	}

	if len(p.pool) > 0 {
		m := len(p.pool)
		next := p.pool[m-1]
		p.pool = p.pool[:m-1]
		return next
	}

	return nil
}

func (p *pairSlicePool) free(s []Pair) {
	if p != nil && cap(s) > 0 {
		p.pool = append(p.pool, s[:0])
	}
}
