package linkedlist

import (
	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

var (
	// ErrBorrowed is the cause of every failed attempt to take a cursor or
	// iterator on a list that is already borrowed incompatibly.
	ErrBorrowed     = errors.New("list already borrowed")
	ErrCursorClosed = errors.New("cursor closed")

	errDangling = errors.New("dangling node link")
)

const exclusive = -1

// borrow tracks who holds a list: 0 nobody, -1 one cursor, n > 0 that many
// iterators.
type borrow struct {
	state atomic.Int32
}

func (b *borrow) lock() error {
	if b.state.CAS(0, exclusive) {
		return nil
	}

	return b.conflict("cursor")
}

func (b *borrow) unlock() {
	b.state.Store(0)
}

func (b *borrow) rlock() error {
	for {
		s := b.state.Load()
		if s < 0 {
			return b.conflict("iterator")
		}

		if b.state.CAS(s, s+1) {
			return nil
		}
	}
}

func (b *borrow) runlock() {
	b.state.Dec()
}

func (b *borrow) conflict(want string) error {
	s := b.state.Load()
	switch {
	case s < 0:
		return errors.Wrapf(ErrBorrowed, "%s requested while a cursor is live", want)
	case s > 0:
		return errors.Wrapf(ErrBorrowed, "%s requested while %d iterator(s) are live", want, s)
	}

	// Released between the failed CAS and now.
	return errors.Wrapf(ErrBorrowed, "%s requested during a borrow hand-off", want)
}
