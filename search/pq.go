package search

// openItem is a queued cell. f and h are copies of the cell's keys at the
// time it was pushed or last fixed.
type openItem struct {
	idx          int // arena index of the cell
	f            int
	h            int
	seq          int // insertion order, last tie-break
	indexInQueue int
}

// openSet is a min-heap on (f, h, seq) implementing heap.Interface.
type openSet []*openItem

func (q openSet) Len() int { return len(q) }

func (q openSet) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	if q[i].h != q[j].h {
		return q[i].h < q[j].h
	}
	return q[i].seq < q[j].seq
}

func (q openSet) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].indexInQueue = i
	q[j].indexInQueue = j
}

func (q *openSet) Push(x any) {
	item := x.(*openItem)
	item.indexInQueue = len(*q)
	*q = append(*q, item)
}

func (q *openSet) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.indexInQueue = -1
	*q = old[:n-1]
	return item
}
