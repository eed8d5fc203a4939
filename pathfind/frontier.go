package pathfind

import "container/heap"

// candidate is a live frontier entry: the arena index of its latest step and
// the weight accumulated to reach it. seq breaks weight ties in insertion
// order so equal-weight candidates are expanded breadth-first.
type candidate struct {
	node   int
	weight int64
	seq    uint64
}

// frontier holds the candidates still waiting to be expanded.
type frontier interface {
	push(c candidate)
	pop() (candidate, bool)
	len() int
}

func newFrontier(kind Frontier, compactEvery int) frontier {
	if kind == FrontierFIFO {
		return &fifoFrontier{items: make([]candidate, 0, 256), compactEvery: compactEvery}
	}
	f := &heapFrontier{pq: make(candidatePQ, 0, 256)}
	heap.Init(&f.pq)
	return f
}

// heapFrontier pops the lightest candidate first.
type heapFrontier struct {
	pq  candidatePQ
	seq uint64
}

func (f *heapFrontier) push(c candidate) {
	c.seq = f.seq
	f.seq++
	heap.Push(&f.pq, c)
}

func (f *heapFrontier) pop() (candidate, bool) {
	if f.pq.Len() == 0 {
		return candidate{}, false
	}
	return heap.Pop(&f.pq).(candidate), true
}

func (f *heapFrontier) len() int { return f.pq.Len() }

// candidatePQ is a min-heap of candidates ordered by (weight, seq).
// Superseded entries are not removed; the runner skips them when popped.
type candidatePQ []candidate

// Len returns the number of items in the heap.
func (pq candidatePQ) Len() int { return len(pq) }

// Less orders by weight, then by insertion.
func (pq candidatePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push.
func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// fifoFrontier pops candidates in insertion order. Consumed entries stay in
// items until head reaches compactEvery, then the live tail is shifted down.
type fifoFrontier struct {
	items        []candidate
	head         int
	compactEvery int
	compactions  int
}

func (f *fifoFrontier) push(c candidate) { f.items = append(f.items, c) }

func (f *fifoFrontier) pop() (candidate, bool) {
	if f.head >= len(f.items) {
		return candidate{}, false
	}
	if f.head >= f.compactEvery {
		n := copy(f.items, f.items[f.head:])
		f.items = f.items[:n]
		f.head = 0
		f.compactions++
	}
	c := f.items[f.head]
	f.head++
	return c, true
}

func (f *fifoFrontier) len() int { return len(f.items) - f.head }
