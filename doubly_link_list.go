package linkedlist

import (
	"iter"

	"github.com/pkg/errors"

	"github.com/snwfog/linkedlist.go/pkg/util"
)

// Dropper is implemented by values that need to release something when the
// list holding them is destroyed. Values handed out by Take are not dropped.
type Dropper interface {
	Drop()
}

// New returns an empty list. The zero value of List is an empty list too.
func New[T any]() *List[T] {
	return &List[T]{}
}

// List is a doubly linked list mutated only through a Cursor. A list is not
// safe for concurrent use; it only guarantees that a cursor never coexists with
// another cursor or an iterator.
type List[T any] struct {
	arena arena[T]
	head  link
	tail  link
	len   int

	borrow borrow
}

func (l *List[T]) Len() int {
	return l.len
}

func (l *List[T]) IsEmpty() bool {
	return l.head == none
}

// region Borrowing

// CursorFront returns a cursor on the first element, or off-list if the list
// is empty. It panics if the list is already borrowed; see TryCursorFront.
func (l *List[T]) CursorFront() *Cursor[T] {
	return must(l.TryCursorFront())
}

// CursorBack returns a cursor on the last element, or off-list if the list is
// empty. It panics if the list is already borrowed; see TryCursorBack.
func (l *List[T]) CursorBack() *Cursor[T] {
	return must(l.TryCursorBack())
}

func (l *List[T]) TryCursorFront() (*Cursor[T], error) {
	if err := l.borrow.lock(); err != nil {
		return nil, err
	}

	return &Cursor[T]{list: l, pos: l.head}, nil
}

func (l *List[T]) TryCursorBack() (*Cursor[T], error) {
	if err := l.borrow.lock(); err != nil {
		return nil, err
	}

	return &Cursor[T]{list: l, pos: l.tail}, nil
}

// Iter returns a front to back iterator. Any number of iterators may be live
// at once, but none while a cursor is. It panics if a cursor is live.
func (l *List[T]) Iter() *Iter[T] {
	return must(l.TryIter())
}

func (l *List[T]) TryIter() (*Iter[T], error) {
	if err := l.borrow.rlock(); err != nil {
		return nil, err
	}

	it := &Iter[T]{list: l, next: l.head}
	if it.next == none {
		it.Close()
	}

	return it, nil
}

// All is the range-over-func form of Iter. The list is borrowed for the
// duration of the loop only.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iter()
		defer it.Close()

		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

func must[H any](h H, err error) H {
	if err != nil {
		panic(err)
	}

	return h
}

// endregion

// Destroy takes every element off the front of the list, calling Drop on the
// ones implementing Dropper, and frees the backing storage. The list is empty
// and usable afterwards. It panics if the list is borrowed.
func (l *List[T]) Destroy() {
	c := l.CursorFront()
	defer c.Close()

	for v, ok := c.Take(); ok; v, ok = c.Take() {
		drop(v)
	}

	l.arena.reset()
}

func drop(v any) {
	if d, ok := v.(Dropper); ok && !util.IsNil(d) {
		d.Drop()
	}
}

// region Splicing
func (l *List[T]) node(k link) *node[T] {
	n := l.arena.at(k)
	if !n.inuse {
		panic(errors.Wrapf(errDangling, "slot %d", k))
	}

	return n
}

func (l *List[T]) first(v T) link {
	k := l.arena.alloc(v)
	l.head, l.tail = k, k
	l.len++
	return k
}

func (l *List[T]) spliceAfter(at link, v T) link {
	k := l.arena.alloc(v)
	x, n := l.node(at), l.node(k)

	n.prev, n.next = at, x.next
	if x.next != none {
		l.node(x.next).prev = k
	} else {
		l.tail = k
	}
	x.next = k

	l.len++
	return k
}

func (l *List[T]) spliceBefore(at link, v T) link {
	k := l.arena.alloc(v)
	x, n := l.node(at), l.node(k)

	n.prev, n.next = x.prev, at
	if x.prev != none {
		l.node(x.prev).next = k
	} else {
		l.head = k
	}
	x.prev = k

	l.len++
	return k
}

// unlink joins the neighbours of k and frees it. It returns the removed value
// together with the former neighbours.
func (l *List[T]) unlink(k link) (v T, next, prev link) {
	n := l.node(k)
	next, prev = n.next, n.prev

	if next != none {
		l.node(next).prev = prev
	} else {
		l.tail = prev
	}

	if prev != none {
		l.node(prev).next = next
	} else {
		l.head = next
	}

	l.len--
	return l.arena.release(k), next, prev
}

// endregion
