package linkedlist

// region Iterator

// Iter walks a list front to back, handing out copies of the values. It holds
// a shared borrow on the list that is released as soon as the last element has
// been returned, or on Close.
type Iter[T any] struct {
	list *List[T]
	next link
}

func (it *Iter[T]) Next() (T, bool) {
	if it.list == nil {
		var zero T
		return zero, false
	}

	n := it.list.node(it.next)
	it.next = n.next
	v := n.value

	if it.next == none {
		it.Close()
	}

	return v, true
}

// Close releases the list early. Closing twice is a no-op.
func (it *Iter[T]) Close() {
	if it.list == nil {
		return
	}

	it.list.borrow.runlock()
	it.list, it.next = nil, none
}

// endregion
