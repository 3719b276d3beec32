package pathfinding

type gridNode struct {
	idx int
	f   int
	g   int
	seq int // insertion order, breaks remaining ties
}

// before orders the open set: lowest f first, then the deeper node (higher g),
// then whichever was pushed first.
func (n gridNode) before(o gridNode) bool {
	if n.f != o.f {
		return n.f < o.f
	}
	if n.g != o.g {
		return n.g > o.g
	}
	return n.seq < o.seq
}

type nodeHeap struct {
	nodes []gridNode
}

func (h *nodeHeap) reset() {
	h.nodes = h.nodes[:0]
}

func (h *nodeHeap) len() int {
	return len(h.nodes)
}

func (h *nodeHeap) push(n gridNode) {
	h.nodes = append(h.nodes, n)
	i := len(h.nodes) - 1
	for i > 0 {
		p := (i - 1) / 2
		if !n.before(h.nodes[p]) {
			break
		}
		h.nodes[i] = h.nodes[p]
		i = p
	}
	h.nodes[i] = n
}

func (h *nodeHeap) pop() (gridNode, bool) {
	if len(h.nodes) == 0 {
		return gridNode{}, false
	}
	top := h.nodes[0]
	last := h.nodes[len(h.nodes)-1]
	h.nodes = h.nodes[:len(h.nodes)-1]
	if len(h.nodes) == 0 {
		return top, true
	}
	i := 0
	for {
		left := 2*i + 1
		right := left + 1
		if left >= len(h.nodes) {
			break
		}
		best := left
		if right < len(h.nodes) && h.nodes[right].before(h.nodes[left]) {
			best = right
		}
		if !h.nodes[best].before(last) {
			break
		}
		h.nodes[i] = h.nodes[best]
		i = best
	}
	h.nodes[i] = last
	return top, true
}
