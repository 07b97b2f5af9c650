package timer

// task is one scheduled delayed effect. A cancelled task is left in
// the heap and skipped when popped (lazy deletion), mirroring the
// teacher's nodePQ comment in dijkstra.go: "the outdated entry remains
// but is ignored when popped."
type task struct {
	id        uint64
	fireAt    int64 // UnixNano, compared against Clock.Now()
	fn        func()
	cancelled bool
	fired     bool
	index     int
}

// taskHeap is a container/heap.Interface ordering tasks by fireAt,
// grounded on the teacher's nodePQ (dijkstra.go) adapted from
// distance-ordered to time-ordered.
type taskHeap []*task

func (h taskHeap) Len() int            { return len(h) }
func (h taskHeap) Less(i, j int) bool  { return h[i].fireAt < h[j].fireAt }
func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap) Push(x interface{}) {
	t := x.(*task)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *taskHeap) Pop() interface{} {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}
