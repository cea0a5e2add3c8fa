package linkedlist

// region Node

// link addresses a node slot in the arena. Slot k lives at index k-1, so the
// zero value means "no node" and an empty List needs no initialization.
type link int32

const none link = 0

// chunkSize slots are allocated at a time. Chunks are never reallocated, so a
// pointer handed out by Cursor.PeekMut stays put while other nodes come and go.
const chunkSize = 64

type node[T any] struct {
	value T
	next  link
	prev  link
	inuse bool
}

// endregion

// region Arena
type arena[T any] struct {
	chunks [][]node[T]
	size   int
	free   link // freed slots, threaded through node.next
}

func (a *arena[T]) at(k link) *node[T] {
	i := int(k) - 1
	return &a.chunks[i/chunkSize][i%chunkSize]
}

func (a *arena[T]) alloc(v T) link {
	if a.free != none {
		k := a.free
		n := a.at(k)
		a.free = n.next
		*n = node[T]{value: v, inuse: true}
		return k
	}

	if a.size%chunkSize == 0 {
		a.chunks = append(a.chunks, make([]node[T], chunkSize))
	}
	a.size++

	k := link(a.size)
	*a.at(k) = node[T]{value: v, inuse: true}
	return k
}

// release hands back the value stored at k and returns the slot to the free
// list. The slot is zeroed so whatever the value referenced can be collected.
func (a *arena[T]) release(k link) T {
	n := a.at(k)
	v := n.value
	*n = node[T]{next: a.free}
	a.free = k
	return v
}

func (a *arena[T]) reset() {
	a.chunks = nil
	a.size = 0
	a.free = none
}

// endregion
