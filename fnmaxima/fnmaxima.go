package fnmaxima

import (
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"golang.org/x/exp/constraints"
)

// FuncMaxima models a partial function from an ordered domain A to an
// ordered codomain V and keeps the exact set of its local maxima
// queryable at all times: after every mutation a point is registered as
// a maximum iff no immediate domain neighbor has a strictly greater
// value.
//
// Mutations carry the strong guarantee: when a comparator panics midway
// through SetValue or Erase, all staged changes are undone before the
// panic propagates and the container is observably unchanged.
//
// Not safe for concurrent mutation; concurrent reads are fine while no
// mutation is in flight.
type FuncMaxima[A, V any] struct {
	logger l.Wrapper

	lessA LessFunc[A]
	lessV LessFunc[V]

	fn *ordTree[Point[A, V]] // by arg ascending, unique args
	mx *ordTree[Point[A, V]] // by value descending, arg ascending
}

func New[A, V any](lessArg LessFunc[A], lessValue LessFunc[V], logger l.Wrapper) *FuncMaxima[A, V] {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "funcMaxima"))

	if lessArg == nil || lessValue == nil {
		logger.Fatal("no order funcs")
	}

	return &FuncMaxima[A, V]{
		logger: logger,
		lessA:  lessArg,
		lessV:  lessValue,
		fn:     newOrdTree(byArg[A, V](lessArg)),
		mx:     newOrdTree(byMaxima[A, V](lessArg, lessValue)),
	}
}

func NewOrdered[A, V constraints.Ordered](logger l.Wrapper) *FuncMaxima[A, V] {
	return New[A, V](OrderedLess[A], OrderedLess[V], logger)
}

func (fm *FuncMaxima[A, V]) Size() int {
	return fm.fn.size
}

// ValueAt returns the value assigned to a, or commerr.ErrNotFound.
func (fm *FuncMaxima[A, V]) ValueAt(a A) (v V, err error) {
	n := fm.fn.find(probePoint[A, V](&a))
	if n == nil {
		err = commerr.ErrNotFound

		return
	}

	v = *n.item.value

	return
}

func (fm *FuncMaxima[A, V]) Find(a A) (p Point[A, V], ok bool) {
	n := fm.fn.find(probePoint[A, V](&a))
	if n == nil {
		return
	}

	p = n.item
	ok = true

	return
}

// SetValue assigns v to a, inserting a new point or replacing the
// existing one at the same arg.
func (fm *FuncMaxima[A, V]) SetValue(a A, v V) {
	np := newPoint(a, v)

	n := fm.fn.find(probePoint[A, V](np.arg))
	if n == nil {
		fm.insertPoint(np)

		return
	}

	old := n.item

	if !fm.lessV(*old.value, *np.value) && !fm.lessV(*np.value, *old.value) {
		// Same value: no classification can change, swap in the new
		// payload wherever the old one is held.
		if registered := fm.mx.find(old); registered != nil {
			registered.item = np
		}

		n.item = np

		return
	}

	fm.replacePoint(n, np)
}

// Erase removes the point at a. Removing an absent arg is a no-op.
func (fm *FuncMaxima[A, V]) Erase(a A) {
	n := fm.fn.find(probePoint[A, V](&a))
	if n == nil {
		return
	}

	registered := fm.mx.find(n.item)

	var log mxRollback[A, V]

	committed := false

	defer func() {
		if !committed {
			fm.rollback(&log)
		}
	}()

	// The point is still physically present; omit makes every
	// classification treat it as gone already.
	removals := fm.updateMaxima(n, n, &log)

	for _, r := range removals {
		fm.mx.deleteNode(r)
	}

	if registered != nil {
		fm.mx.deleteNode(registered)
	}

	fm.fn.deleteNode(n)

	committed = true
}

func (fm *FuncMaxima[A, V]) insertPoint(np Point[A, V]) {
	n := fm.fn.insert(np)

	var log mxRollback[A, V]

	committed := false

	defer func() {
		if !committed {
			fm.rollback(&log)
			fm.fn.deleteNode(n)
		}
	}()

	removals := fm.updateMaxima(n, nil, &log)

	for _, r := range removals {
		fm.mx.deleteNode(r)
	}

	committed = true
}

func (fm *FuncMaxima[A, V]) replacePoint(n *ordNode[Point[A, V]], np Point[A, V]) {
	old := n.item

	// The stale maxima entry for the old point stays until commit; it
	// cannot be confused with any point looked up meanwhile, since args
	// are unique and the new value differs from the old one.
	staleMax := fm.mx.find(old)

	// Same arg, so the tree position stays valid: swapping the payload
	// replaces the old point without touching the structure.
	n.item = np

	var log mxRollback[A, V]

	committed := false

	defer func() {
		if !committed {
			fm.rollback(&log)

			n.item = old
		}
	}()

	removals := fm.updateMaxima(n, nil, &log)

	for _, r := range removals {
		fm.mx.deleteNode(r)
	}

	if staleMax != nil {
		fm.mx.deleteNode(staleMax)
	}

	committed = true
}

// Ascend walks all points in ascending arg order until cb returns false.
func (fm *FuncMaxima[A, V]) Ascend(cb func(p Point[A, V]) bool) {
	for n := fm.fn.min(); n != nil; n = n.next() {
		if !cb(n.item) {
			return
		}
	}
}

// AscendMaxima walks the current local maxima, highest value first,
// ties in arg order, until cb returns false.
func (fm *FuncMaxima[A, V]) AscendMaxima(cb func(p Point[A, V]) bool) {
	for n := fm.mx.min(); n != nil; n = n.next() {
		if !cb(n.item) {
			return
		}
	}
}

// Clone returns an independent container with identical observable
// state. Point payloads are shared; they are immutable.
func (fm *FuncMaxima[A, V]) Clone() *FuncMaxima[A, V] {
	return &FuncMaxima[A, V]{
		logger: fm.logger,
		lessA:  fm.lessA,
		lessV:  fm.lessV,
		fn:     fm.fn.clone(),
		mx:     fm.mx.clone(),
	}
}

// CopyFrom replaces fm's state with a copy of src's. Both stores are
// built first and swapped in afterwards, so a failure while copying
// leaves fm unchanged.
func (fm *FuncMaxima[A, V]) CopyFrom(src *FuncMaxima[A, V]) {
	if src == nil || src == fm {
		return
	}

	fn, mx := src.fn.clone(), src.mx.clone()

	fm.lessA, fm.lessV = src.lessA, src.lessV
	fm.fn, fm.mx = fn, mx
}
