package search

import "container/heap"

// pqItem pairs a node with its insertion sequence number.
type pqItem struct {
	node Node
	seq  uint64
}

// costPQ is a min-heap of *pqItem ordered by node cost ascending, then by
// insertion sequence, so equal-cost nodes leave in the order they arrived.
type costPQ []*pqItem

// Len returns the number of items in the heap.
func (pq costPQ) Len() int { return len(pq) }

// Less orders by cost, then by arrival.
func (pq costPQ) Less(i, j int) bool {
	if pq[i].node.Cost != pq[j].node.Cost {
		return pq[i].node.Cost < pq[j].node.Cost
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq costPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *pqItem.
func (pq *costPQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }

// Pop removes and returns the last element.
// Called by heap.Pop; returns interface{} that must be cast to *pqItem.
func (pq *costPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

// priority is the uniform-cost frontier. There is no decrease-key: a position
// may sit in the heap several times with different costs.
type priority struct {
	pq   costPQ
	next uint64
}

func newPriority(capHint int) *priority {
	p := &priority{pq: make(costPQ, 0, capHint)}
	heap.Init(&p.pq)
	return p
}

// Push inserts n, stamping it with the next sequence number.
func (p *priority) Push(n Node) {
	heap.Push(&p.pq, &pqItem{node: n, seq: p.next})
	p.next++
}

// Pop removes the cheapest, earliest-inserted node.
func (p *priority) Pop() Node {
	return heap.Pop(&p.pq).(*pqItem).node
}

func (p *priority) Len() int { return p.pq.Len() }
