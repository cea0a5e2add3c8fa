package linkedlist

// Everything in this file is built on cursors and iterators alone.

// region Deque
func (l *List[T]) PushBack(v T) {
	c := l.CursorBack()
	defer c.Close()
	c.InsertAfter(v)
}

func (l *List[T]) PushFront(v T) {
	c := l.CursorFront()
	defer c.Close()
	c.InsertBefore(v)
}

func (l *List[T]) PopBack() (T, bool) {
	c := l.CursorBack()
	defer c.Close()
	return c.Take()
}

func (l *List[T]) PopFront() (T, bool) {
	c := l.CursorFront()
	defer c.Close()
	return c.Take()
}

func (l *List[T]) Front() (T, bool) {
	return peek(l.CursorFront())
}

func (l *List[T]) Back() (T, bool) {
	return peek(l.CursorBack())
}

func peek[T any](c *Cursor[T]) (T, bool) {
	defer c.Close()
	if p := c.PeekMut(); p != nil {
		return *p, true
	}

	var zero T
	return zero, false
}

// endregion

// region Conversions
func FromSlice[T any](vs []T) *List[T] {
	l := New[T]()
	c := l.CursorBack()
	defer c.Close()

	for i, v := range vs {
		c.InsertAfter(v)
		// The first insert already lands the cursor on the new element.
		if i > 0 {
			c.Next()
		}
	}

	return l
}

func (l *List[T]) Slice() []T {
	vs := make([]T, 0, l.Len())
	for v := range l.All() {
		vs = append(vs, v)
	}

	return vs
}

// Clone copies the values into a new list. The values themselves are copied
// the way Go assignment copies them.
func (l *List[T]) Clone() *List[T] {
	return FromSlice(l.Slice())
}

// endregion

// region Equality
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

func EqualFunc[T any](a, b *List[T], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}

	ia, ib := a.Iter(), b.Iter()
	defer ia.Close()
	defer ib.Close()

	for {
		x, ok := ia.Next()
		if !ok {
			return true
		}

		y, _ := ib.Next()
		if !eq(x, y) {
			return false
		}
	}
}

// endregion
