// Package item provides an element type that records its own lifecycle, for
// checking that a list drops every element exactly once.
package item

import (
	"go.uber.org/atomic"
)

type Tracker struct {
	created     atomic.Int64
	dropped     atomic.Int64
	doubleDrops atomic.Int64
}

func NewTracker() *Tracker {
	return &Tracker{}
}

func (tr *Tracker) New(id int) *Item {
	tr.created.Inc()
	return &Item{Id: id, tracker: tr}
}

func (tr *Tracker) Created() int64     { return tr.created.Load() }
func (tr *Tracker) Dropped() int64     { return tr.dropped.Load() }
func (tr *Tracker) DoubleDrops() int64 { return tr.doubleDrops.Load() }

// Live is the number of items created and not yet dropped.
func (tr *Tracker) Live() int64 {
	return tr.Created() - tr.Dropped()
}

type Item struct {
	Id      int
	tracker *Tracker
	dropped atomic.Int32
}

func (it *Item) ID() uint64 {
	return uint64(it.Id)
}

func (it *Item) Dropped() bool {
	return it.dropped.Load() == 1
}

func (it *Item) Drop() {
	if !it.dropped.CAS(0, 1) {
		it.tracker.doubleDrops.Inc()
		return
	}

	it.tracker.dropped.Inc()
}
