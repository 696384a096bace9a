package gradient

import (
	"runtime"
	"sync"
)

// parallelRange executes fn for each i in [start,end), splitting the range
// into contiguous chunks across available CPUs.
func parallelRange(start, end int, fn func(i int)) {
	total := end - start
	if total <= 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > total {
		workers = total
	}
	chunk := (total + workers - 1) / workers

	var wg sync.WaitGroup
	for s := start; s < end; s += chunk {
		e := s + chunk
		if e > end {
			e = end
		}
		wg.Add(1)
		go func(ss, ee int) {
			defer wg.Done()
			for i := ss; i < ee; i++ {
				fn(i)
			}
		}(s, e)
	}
	wg.Wait()
}
