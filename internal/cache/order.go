package cache

// handle addresses a node in the recency order's backing arena. A handle is
// stable: removing one element never moves another, so it stays valid until
// its own element is removed.
type handle int

const noHandle handle = -1

type orderNode[K comparable] struct {
	key  K
	prev handle
	next handle
}

// recencyOrder keeps resident keys ordered from least recently used (front)
// to most recently used (back). It is a doubly linked list whose nodes live
// in a growable slice and link to each other by index; freed slots are
// recycled through a free list. The directory above stores these integer
// handles instead of node pointers.
type recencyOrder[K comparable] struct {
	nodes []orderNode[K]
	free  []handle
	head  handle
	tail  handle
	size  int
}

func newRecencyOrder[K comparable](capacity int) *recencyOrder[K] {
	return &recencyOrder[K]{
		nodes: make([]orderNode[K], 0, capacity),
		head:  noHandle,
		tail:  noHandle,
	}
}

// pushBack appends key as the most recently used element and returns its handle.
func (o *recencyOrder[K]) pushBack(key K) handle {
	var h handle
	if n := len(o.free); n > 0 {
		h = o.free[n-1]
		o.free = o.free[:n-1]
		o.nodes[h] = orderNode[K]{key: key, prev: o.tail, next: noHandle}
	} else {
		h = handle(len(o.nodes))
		o.nodes = append(o.nodes, orderNode[K]{key: key, prev: o.tail, next: noHandle})
	}
	if o.tail == noHandle {
		o.head = h
	} else {
		o.nodes[o.tail].next = h
	}
	o.tail = h
	o.size++
	return h
}

// remove unlinks the element addressed by h. Only h is invalidated; handles
// of other elements remain valid.
func (o *recencyOrder[K]) remove(h handle) {
	n := o.nodes[h]
	if n.prev == noHandle {
		o.head = n.next
	} else {
		o.nodes[n.prev].next = n.next
	}
	if n.next == noHandle {
		o.tail = n.prev
	} else {
		o.nodes[n.next].prev = n.prev
	}
	// Clear the slot so the arena does not pin the key.
	var zero orderNode[K]
	o.nodes[h] = zero
	o.free = append(o.free, h)
	o.size--
}

// front returns the least recently used key. The cache never calls front on
// an empty order.
func (o *recencyOrder[K]) front() K {
	return o.nodes[o.head].key
}

func (o *recencyOrder[K]) len() int {
	return o.size
}

// keys returns resident keys from least to most recently used.
func (o *recencyOrder[K]) keys() []K {
	out := make([]K, 0, o.size)
	for h := o.head; h != noHandle; h = o.nodes[h].next {
		out = append(out, o.nodes[h].key)
	}
	return out
}
