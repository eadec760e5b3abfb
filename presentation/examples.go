package presentation

import "github.com/wordproblem/stephen/letters"

// FreeMonoid returns the presentation of the free monoid on n generators:
// no relations at all, empty word admitted. Grounded on
// fpsemi_examples::free_monoid in fpsemi-examples.hpp, reduced to the
// trivial no-relation case since the free monoid's word problem is exactly
// syntactic equality — a useful degenerate case for exercising Stephen's
// procedure without any closure work at all.
func FreeMonoid(n int) *Presentation {
	return New(WithAlphabetSize(n), WithEmptyWord())
}

// CyclicMonoid returns the presentation of the cyclic monoid of order n on
// a single generator a: the rule a^n = a^0 = ε. Grounded on
// fpsemi_examples::cyclic_group in fpsemi-examples.hpp, specialised to a
// single generator since that is what spec.md §8's boundary scenarios
// exercise.
func CyclicMonoid(n int) *Presentation {
	p := New(WithAlphabetSize(1), WithEmptyWord())
	lhs := make(letters.Word, n)
	for i := range lhs {
		lhs[i] = 0
	}
	p.AddRule(lhs, letters.Word{})

	return p
}

// Commutation returns the presentation of the free commutative monoid on
// two generators a, b: the single rule ab = ba. This is the textbook
// smallest example with a non-trivial relation-closure step, used by
// spec.md §8's end-to-end scenarios.
func Commutation() *Presentation {
	p := New(WithAlphabetSize(2), WithEmptyWord())
	p.AddRule(letters.Word{0, 1}, letters.Word{1, 0})

	return p
}

// IdempotentBand returns the presentation of the free band on one
// generator a: the rule a*a = a. Exercises a relation whose two sides
// differ in length, forcing the definition rule to allocate a node that
// relation closure then immediately coincides with an existing one.
func IdempotentBand() *Presentation {
	p := New(WithAlphabetSize(1))
	p.AddRule(letters.Word{0, 0}, letters.Word{0})

	return p
}
