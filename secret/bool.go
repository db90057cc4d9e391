package secret

// Bool is a branch-free boolean. The stored word is always 0 or 1.
type Bool[T Unsigned] struct {
	v T
}

// True returns the secret true value.
func True[T Unsigned]() Bool[T] { return Bool[T]{1} }

// False returns the secret false value.
func False[T Unsigned]() Bool[T] { return Bool[T]{0} }

// And returns b && c without short-circuiting.
func (b Bool[T]) And(c Bool[T]) Bool[T] { return Bool[T]{b.v & c.v} }

// Or returns b || c without short-circuiting.
func (b Bool[T]) Or(c Bool[T]) Bool[T] { return Bool[T]{b.v | c.v} }

// Not returns !b.
func (b Bool[T]) Not() Bool[T] { return Bool[T]{b.v ^ 1} }

// Mask returns an all-ones word when b is true and zero otherwise.
func (b Bool[T]) Mask() T { return -b.v }

// Bit returns 1 when b is true and 0 otherwise. The value remains
// sensitive.
func (b Bool[T]) Bit() T { return b.v }

// Declassify converts b to a plain bool. This is the one deliberate leak out
// of the secret domain; the resulting bool may drive ordinary control flow.
func (b Bool[T]) Declassify() bool { return b.v == 1 }
