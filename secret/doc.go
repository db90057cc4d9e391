// Package secret provides branch-free word and boolean types for values that
// must not influence control flow or memory-access patterns.
//
// A [Word] carries a sensitive machine word; a [Bool] carries the outcome of
// a constant-time predicate. Both support only operations whose execution
// trace is independent of the values involved. The only escapes back into
// ordinary Go values are [Word.Raw], which keeps the sensitivity contract,
// and [Bool.Declassify], which deliberately leaks one bit.
package secret
