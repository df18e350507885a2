package fnmaxima

import (
	"golang.org/x/exp/constraints"
)

// LessFunc reports whether a orders strictly before b. It must define a
// strict weak ordering over its type. It is allowed to panic: mutating
// operations on FuncMaxima undo everything they have staged before such
// a panic escapes, so the container is observably unchanged afterwards.
type LessFunc[T any] func(a, b T) bool

func OrderedLess[T constraints.Ordered](a, b T) bool {
	return a < b
}
