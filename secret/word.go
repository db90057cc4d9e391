package secret

import "math/bits"

// Unsigned is the set of limb types supported by the library. Words of any
// other width are rejected at compile time by this constraint.
type Unsigned interface {
	~uint32 | ~uint64
}

// Word is a machine word whose value is sensitive. All methods are
// branch-free and table-free.
type Word[T Unsigned] struct {
	v T
}

// NewWord lifts v into the secret domain.
func NewWord[T Unsigned](v T) Word[T] {
	return Word[T]{v}
}

// Raw returns the underlying word. The value remains sensitive; callers must
// keep processing it with branch-free operations.
func (x Word[T]) Raw() T { return x.v }

// Add returns x+y, wrapping.
func (x Word[T]) Add(y Word[T]) Word[T] { return Word[T]{x.v + y.v} }

// Sub returns x-y, wrapping.
func (x Word[T]) Sub(y Word[T]) Word[T] { return Word[T]{x.v - y.v} }

// And returns x&y.
func (x Word[T]) And(y Word[T]) Word[T] { return Word[T]{x.v & y.v} }

// Or returns x|y.
func (x Word[T]) Or(y Word[T]) Word[T] { return Word[T]{x.v | y.v} }

// Xor returns x^y.
func (x Word[T]) Xor(y Word[T]) Word[T] { return Word[T]{x.v ^ y.v} }

// Lt returns x < y. The comparison extracts the borrow of a full-width
// subtraction, as in crypto/internal/bigmod.
func (x Word[T]) Lt(y Word[T]) Bool[T] {
	_, borrow := bits.Sub64(uint64(x.v), uint64(y.v), 0)
	return Bool[T]{T(borrow)}
}

// Gte returns x >= y.
func (x Word[T]) Gte(y Word[T]) Bool[T] {
	return x.Lt(y).Not()
}

// Lte returns x <= y.
func (x Word[T]) Lte(y Word[T]) Bool[T] {
	return y.Lt(x).Not()
}

// Eq returns x == y. If x != y, one of x-y or y-x generates a borrow.
func (x Word[T]) Eq(y Word[T]) Bool[T] {
	_, b1 := bits.Sub64(uint64(x.v), uint64(y.v), 0)
	_, b2 := bits.Sub64(uint64(y.v), uint64(x.v), 0)
	return Bool[T]{T(1 ^ (b1 | b2))}
}

// Select returns x if c is true and y otherwise, without branching on c.
func Select[T Unsigned](c Bool[T], x, y Word[T]) Word[T] {
	m := c.Mask()
	return Word[T]{y.v ^ (m & (x.v ^ y.v))}
}
