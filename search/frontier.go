package search

// frontier holds discovered-but-not-yet-expanded nodes.
// Implementations differ only in removal order.
type frontier interface {
	Push(n Node)
	Pop() Node
	Len() int
}

// newFrontier returns the frontier discipline for s.
func newFrontier(s Strategy, capHint int) (frontier, error) {
	switch s {
	case BreadthFirst:
		return &fifo{items: make([]Node, 0, capHint)}, nil
	case DepthFirst:
		return &lifo{items: make([]Node, 0, capHint)}, nil
	case UniformCost:
		return newPriority(capHint), nil
	default:
		return nil, ErrUnknownStrategy
	}
}

// fifo inserts at the tail and removes from the head.
type fifo struct {
	items []Node
	head  int
}

func (q *fifo) Push(n Node) { q.items = append(q.items, n) }

func (q *fifo) Pop() Node {
	n := q.items[q.head]
	q.items[q.head] = Node{}
	q.head++
	// reclaim the consumed prefix once it dominates the slice
	if q.head > 64 && q.head*2 >= len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return n
}

func (q *fifo) Len() int { return len(q.items) - q.head }

// lifo inserts at the head and removes from the head. The head is kept at
// the end of the slice.
type lifo struct {
	items []Node
}

func (s *lifo) Push(n Node) { s.items = append(s.items, n) }

func (s *lifo) Pop() Node {
	last := len(s.items) - 1
	n := s.items[last]
	s.items[last] = Node{}
	s.items = s.items[:last]
	return n
}

func (s *lifo) Len() int { return len(s.items) }
