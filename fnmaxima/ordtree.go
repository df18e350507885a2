package fnmaxima

import (
	"math/rand"
)

// ordTree is a parent-pointer treap ordered by less. The split between
// comparison work and structural work is deliberate: insert performs
// every less call during its descent, before a single pointer changes,
// and deleteNode rotates purely by priority and never calls less at
// all. A panicking comparator therefore either leaves the tree
// untouched or is never reached, and any applied insert can be undone
// later by node without running user code again.
type ordTree[T any] struct {
	less LessFunc[T]
	root *ordNode[T]
	size int
}

type ordNode[T any] struct {
	parent *ordNode[T]
	left   *ordNode[T]
	right  *ordNode[T]
	item   T
	pri    uint64
}

func newOrdTree[T any](less LessFunc[T]) *ordTree[T] {
	return &ordTree[T]{
		less: less,
	}
}

// find returns the node whose item is order-equivalent to item, or nil.
// Equality is derived from the ordering: !less(a,b) && !less(b,a).
func (t *ordTree[T]) find(item T) *ordNode[T] {
	n := t.root

	for n != nil {
		switch {
		case t.less(item, n.item):
			n = n.left
		case t.less(n.item, item):
			n = n.right
		default:
			return n
		}
	}

	return nil
}

// insert adds item and returns its node. Items equivalent to an existing
// one are linked after it; callers that need unique keys check with find
// first.
func (t *ordTree[T]) insert(item T) *ordNode[T] {
	link, parent := &t.root, (*ordNode[T])(nil)

	for n := *link; n != nil; n = *link {
		parent = n

		if t.less(item, n.item) {
			link = &n.left
		} else {
			link = &n.right
		}
	}

	// No comparisons below this line.
	n := &ordNode[T]{parent: parent, item: item, pri: rand.Uint64() | 1}
	*link = n
	t.rotateUp(n)
	t.size++

	return n
}

// deleteNode unlinks n from the tree. It rotates n down to a leaf by
// priority, so no comparator call is ever made.
func (t *ordTree[T]) deleteNode(n *ordNode[T]) {
	if n == nil {
		return
	}

	for n.left != nil || n.right != nil {
		if n.right == nil || (n.left != nil && n.left.pri < n.right.pri) {
			t.rotateRight(n)
		} else {
			t.rotateLeft(n)
		}
	}

	switch p := n.parent; {
	case p == nil:
		t.root = nil
	case p.left == n:
		p.left = nil
	default:
		p.right = nil
	}

	n.parent = nil
	t.size--
}

func (t *ordTree[T]) rotateUp(n *ordNode[T]) {
	for n.parent != nil && n.parent.pri > n.pri {
		if n.parent.left == n {
			t.rotateRight(n.parent)
		} else {
			t.rotateLeft(n.parent)
		}
	}
}

// rotateLeft lifts n's right child into n's place.
func (t *ordTree[T]) rotateLeft(n *ordNode[T]) {
	p := n.parent
	c := n.right
	m := c.left

	c.left = n
	n.parent = c

	n.right = m
	if m != nil {
		m.parent = n
	}

	t.relink(p, n, c)
}

// rotateRight lifts n's left child into n's place.
func (t *ordTree[T]) rotateRight(n *ordNode[T]) {
	p := n.parent
	c := n.left
	m := c.right

	c.right = n
	n.parent = c

	n.left = m
	if m != nil {
		m.parent = n
	}

	t.relink(p, n, c)
}

func (t *ordTree[T]) relink(p, old, n *ordNode[T]) {
	n.parent = p

	switch {
	case p == nil:
		t.root = n
	case p.left == old:
		p.left = n
	case p.right == old:
		p.right = n
	default:
		panic("fnmaxima: corrupt tree")
	}
}

func (t *ordTree[T]) min() *ordNode[T] {
	n := t.root

	for n != nil && n.left != nil {
		n = n.left
	}

	return n
}

func (t *ordTree[T]) max() *ordNode[T] {
	n := t.root

	for n != nil && n.right != nil {
		n = n.right
	}

	return n
}

func (n *ordNode[T]) next() *ordNode[T] {
	if n.right == nil {
		for n.parent != nil && n.parent.right == n {
			n = n.parent
		}

		return n.parent
	}

	n = n.right
	for n.left != nil {
		n = n.left
	}

	return n
}

func (n *ordNode[T]) prev() *ordNode[T] {
	if n.left == nil {
		for n.parent != nil && n.parent.left == n {
			n = n.parent
		}

		return n.parent
	}

	n = n.left
	for n.right != nil {
		n = n.right
	}

	return n
}

// clone deep-copies the node structure. Items are copied by value, so
// shared payloads stay shared, and no comparator call is made.
func (t *ordTree[T]) clone() *ordTree[T] {
	return &ordTree[T]{
		less: t.less,
		root: cloneNode(t.root, nil),
		size: t.size,
	}
}

func cloneNode[T any](n, parent *ordNode[T]) *ordNode[T] {
	if n == nil {
		return nil
	}

	c := &ordNode[T]{parent: parent, item: n.item, pri: n.pri}
	c.left = cloneNode(n.left, c)
	c.right = cloneNode(n.right, c)

	return c
}
