package smooth

import (
	"sync"

	"github.com/cwbudde/algo-localortho/dsp/core"
)

// lineScratch holds the working buffers for filtering one line.
type lineScratch struct {
	line   []float64 // n samples, filtered in place
	ext    []float64 // line folded by r-1 samples on both ends
	prefix []float64 // running sums, reused by both box passes
	box    []float64 // causal box output, n+r-1 samples
}

var scratchPool = sync.Pool{
	New: func() any { return &lineScratch{} },
}

func getScratch(n, r int) *lineScratch {
	s := scratchPool.Get().(*lineScratch)
	m := r - 1
	s.line = core.EnsureLen(s.line, n)
	s.ext = core.EnsureLen(s.ext, n+2*m)
	s.prefix = core.EnsureLen(s.prefix, n+2*m+1)
	s.box = core.EnsureLen(s.box, n+m)
	return s
}

func putScratch(s *lineScratch) {
	scratchPool.Put(s)
}

// triangle smooths s.line with a triangle of width 2r-1. Requires 1 < r <= n.
func (s *lineScratch) triangle(r int) {
	n := len(s.line)
	m := r - 1
	ext := s.ext

	// Half-sample mirror: ext[m-k] = x[k-1], ext[m+n-1+k] = x[n-k].
	copy(ext[m:m+n], s.line)
	for k := 1; k <= m; k++ {
		ext[m-k] = s.line[k-1]
		ext[m+n-1+k] = s.line[n-k]
	}

	// Causal box: box[i] = mean(ext[i .. i+m]).
	inv := 1 / float64(r)
	p := s.prefix[:len(ext)+1]
	p[0] = 0
	for i, v := range ext {
		p[i+1] = p[i] + v
	}
	for i := range s.box {
		s.box[i] = (p[i+r] - p[i]) * inv
	}

	// Anti-causal box: line[i] = mean(box[i .. i+m]).
	p = s.prefix[:len(s.box)+1]
	p[0] = 0
	for i, v := range s.box {
		p[i+1] = p[i] + v
	}
	for i := range n {
		s.line[i] = (p[i+r] - p[i]) * inv
	}
}
