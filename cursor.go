package linkedlist

// region Cursor

// Cursor is the only way to change a List. It either sits on a node or is
// off-list; off-list acts as a sentinel between the tail and the head, so
// stepping past one end and stepping again in the same direction re-enters
// from the other end.
//
// A cursor borrows its list exclusively until Close. Operations on a closed
// cursor panic with ErrCursorClosed.
type Cursor[T any] struct {
	list *List[T]
	pos  link
}

func (c *Cursor[T]) bound() *List[T] {
	if c.list == nil {
		panic(ErrCursorClosed)
	}

	return c.list
}

// PeekMut returns a pointer to the current value, or nil when off-list. The
// pointer is valid until that value is taken.
func (c *Cursor[T]) PeekMut() *T {
	l := c.bound()
	if c.pos == none {
		return nil
	}

	return &l.node(c.pos).value
}

// Next moves one step towards the back and returns the new current value.
// From off-list it moves to the front but still returns nil.
func (c *Cursor[T]) Next() *T {
	l := c.bound()
	if c.pos == none {
		c.pos = l.head
		return nil
	}

	c.pos = l.node(c.pos).next
	return c.PeekMut()
}

// Prev moves one step towards the front and returns the new current value.
// From off-list it moves to the back but still returns nil.
func (c *Cursor[T]) Prev() *T {
	l := c.bound()
	if c.pos == none {
		c.pos = l.tail
		return nil
	}

	c.pos = l.node(c.pos).prev
	return c.PeekMut()
}

// Take removes the current element and returns it. The cursor moves to the
// next element, or the previous one if there is no next, or goes off-list
// when the list is left empty.
func (c *Cursor[T]) Take() (T, bool) {
	l := c.bound()
	if c.pos == none {
		var zero T
		return zero, false
	}

	v, next, prev := l.unlink(c.pos)
	if next != none {
		c.pos = next
	} else {
		c.pos = prev
	}

	return v, true
}

// InsertAfter adds v right after the current element without moving the
// cursor. On an empty list v becomes the only element and the cursor lands on
// it. Off-list on a non-empty list, v goes to the front, since off-list sits
// just before the head.
func (c *Cursor[T]) InsertAfter(v T) {
	l := c.bound()
	switch {
	case l.head == none:
		c.pos = l.first(v)
	case c.pos == none:
		l.spliceBefore(l.head, v)
	default:
		l.spliceAfter(c.pos, v)
	}
}

// InsertBefore adds v right before the current element without moving the
// cursor. On an empty list v becomes the only element and the cursor lands on
// it. Off-list on a non-empty list, v goes to the back.
func (c *Cursor[T]) InsertBefore(v T) {
	l := c.bound()
	switch {
	case l.head == none:
		c.pos = l.first(v)
	case c.pos == none:
		l.spliceAfter(l.tail, v)
	default:
		l.spliceBefore(c.pos, v)
	}
}

// Close releases the list. Closing twice is a no-op.
func (c *Cursor[T]) Close() {
	if c.list == nil {
		return
	}

	c.list.borrow.unlock()
	c.list, c.pos = nil, none
}

// endregion
