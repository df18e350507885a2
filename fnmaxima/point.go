package fnmaxima

// Point is one (arg, value) pair of the function. The payload is never
// mutated after construction; the function store, the maxima store and
// any Point handed out to a caller all share it.
type Point[A, V any] struct {
	arg   *A
	value *V
}

func newPoint[A, V any](a A, v V) Point[A, V] {
	return Point[A, V]{
		arg:   &a,
		value: &v,
	}
}

// probePoint wraps a bare domain key for lookups in the by-arg store, so
// no value payload is constructed for a search.
func probePoint[A, V any](a *A) Point[A, V] {
	return Point[A, V]{arg: a}
}

func (p Point[A, V]) Arg() A {
	return *p.arg
}

func (p Point[A, V]) Value() V {
	return *p.value
}

func byArg[A, V any](lessA LessFunc[A]) LessFunc[Point[A, V]] {
	return func(p1, p2 Point[A, V]) bool {
		return lessA(*p1.arg, *p2.arg)
	}
}

// byMaxima orders by value descending, ties broken by arg ascending.
func byMaxima[A, V any](lessA LessFunc[A], lessV LessFunc[V]) LessFunc[Point[A, V]] {
	return func(p1, p2 Point[A, V]) bool {
		if lessV(*p2.value, *p1.value) {
			return true
		}

		if lessV(*p1.value, *p2.value) {
			return false
		}

		return lessA(*p1.arg, *p2.arg)
	}
}
