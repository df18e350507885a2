package fnmaxima

// Iterator is a bidirectional walker over one of the container's
// orders. A fresh iterator is unpositioned; call First, Last or use
// IterAt to position it. Mutating the container invalidates every live
// iterator.
type Iterator[A, V any] struct {
	tree *ordTree[Point[A, V]]
	node *ordNode[Point[A, V]]
}

// Iter returns an iterator over all points in ascending arg order.
func (fm *FuncMaxima[A, V]) Iter() *Iterator[A, V] {
	return &Iterator[A, V]{tree: fm.fn}
}

// IterMaxima returns an iterator over the current local maxima, highest
// value first, ties in arg order.
func (fm *FuncMaxima[A, V]) IterMaxima() *Iterator[A, V] {
	return &Iterator[A, V]{tree: fm.mx}
}

// IterAt returns a domain iterator positioned at the point with arg a;
// the iterator is invalid if a has no assigned value.
func (fm *FuncMaxima[A, V]) IterAt(a A) *Iterator[A, V] {
	return &Iterator[A, V]{
		tree: fm.fn,
		node: fm.fn.find(probePoint[A, V](&a)),
	}
}

func (it *Iterator[A, V]) First() bool {
	it.node = it.tree.min()

	return it.node != nil
}

func (it *Iterator[A, V]) Last() bool {
	it.node = it.tree.max()

	return it.node != nil
}

func (it *Iterator[A, V]) Next() bool {
	if it.node == nil {
		return false
	}

	it.node = it.node.next()

	return it.node != nil
}

func (it *Iterator[A, V]) Prev() bool {
	if it.node == nil {
		return false
	}

	it.node = it.node.prev()

	return it.node != nil
}

func (it *Iterator[A, V]) Valid() bool {
	return it.node != nil
}

// Point returns the point at the current position. The iterator must be
// valid.
func (it *Iterator[A, V]) Point() Point[A, V] {
	return it.node.item
}
