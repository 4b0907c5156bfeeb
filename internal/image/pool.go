package image

import "sync"

// scratchPool recycles pixel slices used as temporary copies.
var scratchPool = sync.Pool{
	New: func() any {
		s := make([]uint32, 0, 1024)
		return &s
	},
}

// GetScratch returns a zeroed slice of n pixels. Return it with PutScratch
// when done.
func GetScratch(n int) []uint32 {
	sp := scratchPool.Get().(*[]uint32)
	s := *sp
	if cap(s) < n {
		s = make([]uint32, n)
	} else {
		s = s[:n]
		clear(s)
	}
	return s
}

// PutScratch hands s back for reuse. Very large slices are dropped so one
// big copy does not pin memory.
func PutScratch(s []uint32) {
	if cap(s) > 1<<22 {
		return
	}
	s = s[:0]
	scratchPool.Put(&s)
}
