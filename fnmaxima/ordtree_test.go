package fnmaxima

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func treeItems(t *ordTree[int]) (items []int) {
	for n := t.min(); n != nil; n = n.next() {
		items = append(items, n.item)
	}

	return
}

func treeItemsReverse(t *ordTree[int]) (items []int) {
	for n := t.max(); n != nil; n = n.prev() {
		items = append(items, n.item)
	}

	return
}

func TestOrdTreeSortedOrder(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	tr := newOrdTree[int](OrderedLess[int])

	const n = 300

	for _, v := range rnd.Perm(n) {
		tr.insert(v)
	}

	assert.EqualValues(t, n, tr.size)

	items := treeItems(tr)
	require.Len(t, items, n)

	for i, v := range items {
		assert.EqualValues(t, i, v)
	}

	rev := treeItemsReverse(tr)
	for i, v := range rev {
		assert.EqualValues(t, n-1-i, v)
	}

	for i := 0; i < n; i++ {
		require.NotNil(t, tr.find(i))
	}

	assert.Nil(t, tr.find(n))
}

func TestOrdTreeDeleteNode(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))

	tr := newOrdTree[int](OrderedLess[int])

	const n = 200

	for _, v := range rnd.Perm(n) {
		tr.insert(v)
	}

	for _, v := range rnd.Perm(n) {
		node := tr.find(v)
		require.NotNil(t, node)

		tr.deleteNode(node)

		assert.Nil(t, tr.find(v))
	}

	assert.EqualValues(t, 0, tr.size)
	assert.Nil(t, tr.root)
}

func TestOrdTreeDuplicates(t *testing.T) {
	tr := newOrdTree[int](OrderedLess[int])

	tr.insert(3)
	tr.insert(3)
	tr.insert(1)

	assert.Equal(t, []int{1, 3, 3}, treeItems(tr))
}

func TestOrdTreeClone(t *testing.T) {
	tr := newOrdTree[int](OrderedLess[int])

	for _, v := range []int{5, 1, 9, 3} {
		tr.insert(v)
	}

	cp := tr.clone()
	assert.Equal(t, treeItems(tr), treeItems(cp))

	tr.deleteNode(tr.find(9))
	assert.Equal(t, []int{1, 3, 5}, treeItems(tr))
	assert.Equal(t, []int{1, 3, 5, 9}, treeItems(cp))

	cp.deleteNode(cp.find(1))
	assert.Equal(t, []int{1, 3, 5}, treeItems(tr))
	assert.EqualValues(t, 3, cp.size)
}

func TestOrdTreeNeighborWalk(t *testing.T) {
	tr := newOrdTree[int](OrderedLess[int])

	for _, v := range []int{2, 4, 6, 8} {
		tr.insert(v)
	}

	n := tr.find(4)
	require.NotNil(t, n)

	assert.EqualValues(t, 2, n.prev().item)
	assert.EqualValues(t, 6, n.next().item)
	assert.Nil(t, tr.min().prev())
	assert.Nil(t, tr.max().next())
}
