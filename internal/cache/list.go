package cache

// nilSlot terminates the recency list and the free list.
const nilSlot int32 = -1

// slot is one arena cell. While resident it holds an entry and its list
// links; once released, next chains it into the free list.
type slot struct {
	key   int
	value int
	prev  int32
	next  int32
}

// recency is a doubly-linked list threaded through a slot arena.
// Front (head) = most recently used (MRU), Back (tail) = least recently used (LRU).
//
// Handles are indices into slots. A handle stays valid until release; splicing
// one slot never moves another, so handles held by the index never go stale.
type recency struct {
	slots []slot
	head  int32
	tail  int32
	free  int32
	n     int
}

// newRecency preallocates lazily: the first hint slots are reserved, the rest
// are appended on demand.
func newRecency(hint int) recency {
	return recency{
		slots: make([]slot, 0, min(hint, 1024)),
		head:  nilSlot,
		tail:  nilSlot,
		free:  nilSlot,
	}
}

func (r *recency) len() int { return r.n }

// pushFront stores a new entry at the MRU end and returns its handle.
// A released slot is reused before the arena grows.
func (r *recency) pushFront(key, value int) int32 {
	var h int32
	if r.free != nilSlot {
		h = r.free
		r.free = r.slots[h].next
		r.slots[h] = slot{key: key, value: value}
	} else {
		h = int32(len(r.slots))
		r.slots = append(r.slots, slot{key: key, value: value})
	}
	r.linkFront(h)
	r.n++
	return h
}

// moveToFront marks h as most recently used.
func (r *recency) moveToFront(h int32) {
	if r.head == h {
		return
	}
	r.unlink(h)
	r.linkFront(h)
}

// release unlinks h and returns its slot to the free list.
func (r *recency) release(h int32) {
	r.unlink(h)
	r.slots[h] = slot{prev: nilSlot, next: r.free}
	r.free = h
	r.n--
}

func (r *recency) back() int32 { return r.tail }

func (r *recency) linkFront(h int32) {
	s := &r.slots[h]
	s.prev = nilSlot
	s.next = r.head
	if r.head != nilSlot {
		r.slots[r.head].prev = h
	}
	r.head = h
	if r.tail == nilSlot {
		r.tail = h
	}
}

func (r *recency) unlink(h int32) {
	s := &r.slots[h]
	if s.prev != nilSlot {
		r.slots[s.prev].next = s.next
	} else {
		r.head = s.next
	}
	if s.next != nilSlot {
		r.slots[s.next].prev = s.prev
	} else {
		r.tail = s.prev
	}
	s.prev, s.next = nilSlot, nilSlot
}
