package fnmaxima

import (
	"github.com/sgostarter/i/l"
)

// mxRollback records the maxima-store insertions applied so far inside
// one mutating call, so they can be erased in reverse if a later step
// fails. Removals are never recorded: they are deferred until nothing
// can fail anymore.
type mxRollback[A, V any] struct {
	applied []*ordNode[Point[A, V]]
}

func (log *mxRollback[A, V]) push(n *ordNode[Point[A, V]]) {
	log.applied = append(log.applied, n)
}

func (fm *FuncMaxima[A, V]) rollback(log *mxRollback[A, V]) {
	for i := len(log.applied) - 1; i >= 0; i-- {
		fm.mx.deleteNode(log.applied[i])
	}

	fm.logger.WithFields(l.IntField("staged", len(log.applied))).Debug("mutation failed, staged maxima changes undone")
}

// isLocalMaximum reports whether x's value is not below either of its
// effective domain neighbors. omit marks a node that is logically
// already removed: neighbor walks skip it, and omit itself is never a
// maximum. Equal neighbor values qualify on both sides, so a flat
// plateau is all maxima.
func (fm *FuncMaxima[A, V]) isLocalMaximum(x, omit *ordNode[Point[A, V]]) bool {
	if x == omit {
		return false
	}

	if left := x.prev(); left != nil {
		if left == omit {
			left = left.prev()
		}

		if left != nil && fm.lessV(*x.item.value, *left.item.value) {
			return false
		}
	}

	if right := x.next(); right != nil {
		if right == omit {
			right = right.next()
		}

		if right != nil && fm.lessV(*x.item.value, *right.item.value) {
			return false
		}
	}

	return true
}

// reclassify re-derives n's maxima membership. A node that now
// qualifies but is not registered is inserted right away (and logged
// for rollback); a node that no longer qualifies is returned so the
// caller removes it at commit time.
func (fm *FuncMaxima[A, V]) reclassify(n, omit *ordNode[Point[A, V]], log *mxRollback[A, V]) *ordNode[Point[A, V]] {
	registered := fm.mx.find(n.item)

	if fm.isLocalMaximum(n, omit) {
		if registered == nil {
			log.push(fm.mx.insert(n.item))
		}

		return nil
	}

	return registered
}

// updateMaxima applies the classification diff for target and its two
// effective neighbors, the only points a single mutation can reclassify.
// Insertions are applied immediately and logged; the nodes returned must
// be removed from the maxima store by the caller once every fallible
// step of the operation has succeeded.
func (fm *FuncMaxima[A, V]) updateMaxima(target, omit *ordNode[Point[A, V]], log *mxRollback[A, V]) (removals []*ordNode[Point[A, V]]) {
	if fm.isLocalMaximum(target, omit) && fm.mx.find(target.item) == nil {
		log.push(fm.mx.insert(target.item))
	}

	if left := target.prev(); left != nil {
		if left == omit {
			left = left.prev()
		}

		if left != nil {
			if n := fm.reclassify(left, omit, log); n != nil {
				removals = append(removals, n)
			}
		}
	}

	if right := target.next(); right != nil {
		if right == omit {
			right = right.next()
		}

		if right != nil {
			if n := fm.reclassify(right, omit, log); n != nil {
				removals = append(removals, n)
			}
		}
	}

	return
}
