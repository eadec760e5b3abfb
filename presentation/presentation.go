// Package presentation defines the immutable-after-validation description
// of a semigroup or monoid: an ordered alphabet, a flat list of rule
// pairs, and an empty-word flag, plus the inverse-presentation extension
// carrying a fixed-point-free involution on the alphabet.
package presentation

import (
	"errors"
	"fmt"

	"github.com/wordproblem/stephen/letters"
)

// Sentinel errors for presentation validation. Callers match with
// errors.Is, never by comparing error strings.
var (
	// ErrDuplicateLetter indicates the alphabet contains the same letter twice.
	ErrDuplicateLetter = errors.New("presentation: duplicate letter in alphabet")

	// ErrLetterOutOfRange indicates a rule or the alphabet itself references
	// a letter that does not belong to the alphabet.
	ErrLetterOutOfRange = errors.New("presentation: letter out of range")

	// ErrEmptyRuleSide indicates a rule has an empty side while the
	// presentation does not admit the empty word.
	ErrEmptyRuleSide = errors.New("presentation: empty rule side in a presentation without the empty word")

	// ErrInvolutionNotSelfInverse indicates ι∘ι != identity for some letter.
	ErrInvolutionNotSelfInverse = errors.New("presentation: involution is not its own inverse")

	// ErrInvolutionFixedPoint indicates ι(a) = a for some letter a, which
	// spec.md's inverse-presentation extension forbids (every generator's
	// formal inverse must be a distinct letter).
	ErrInvolutionFixedPoint = errors.New("presentation: involution has a fixed point")

	// ErrInvolutionIncomplete indicates the involution does not map every
	// alphabet letter to another alphabet letter.
	ErrInvolutionIncomplete = errors.New("presentation: involution is not defined on the whole alphabet")
)

// Option configures a Presentation at construction time, following the
// functional-options pattern used throughout this module's graph layer.
type Option func(*Presentation)

// WithAlphabetSize sets the alphabet to the dense range [0, n).
func WithAlphabetSize(n int) Option {
	return func(p *Presentation) {
		p.alphabet = make([]letters.Letter, n)
		for i := range p.alphabet {
			p.alphabet[i] = letters.Letter(i)
		}
	}
}

// WithAlphabetLetters sets the alphabet to an explicit, caller-ordered list
// of letters.
func WithAlphabetLetters(alphabet []letters.Letter) Option {
	return func(p *Presentation) {
		p.alphabet = append([]letters.Letter(nil), alphabet...)
	}
}

// WithEmptyWord marks the presentation as a monoid presentation: the empty
// word is an admissible word and rule sides may be empty.
func WithEmptyWord() Option {
	return func(p *Presentation) { p.containsEmptyWord = true }
}

// Presentation is the tuple (A, R, ε) of spec.md §3: an ordered alphabet,
// a flat list of rules stored as consecutive (u, v) pairs — the same
// "rules is a flat vector, consecutive pairs form a rule" convention
// present.hpp uses — and a flag admitting the empty word.
type Presentation struct {
	alphabet          []letters.Letter
	Rules             []letters.Word
	containsEmptyWord bool
}

// New constructs a Presentation, applying opts in order. With no options
// the alphabet is empty and the empty word is not admitted.
func New(opts ...Option) *Presentation {
	p := &Presentation{}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Alphabet returns the presentation's ordered letter list.
func (p *Presentation) Alphabet() []letters.Letter { return p.alphabet }

// ContainsEmptyWord reports whether this is a monoid presentation.
func (p *Presentation) ContainsEmptyWord() bool { return p.containsEmptyWord }

// InAlphabet reports whether l is one of this presentation's letters.
// Complexity: O(|A|); the alphabets this engine is built for are small
// enough that a map index would not earn back its own construction cost.
func (p *Presentation) InAlphabet(l letters.Letter) bool {
	for _, a := range p.alphabet {
		if a == l {
			return true
		}
	}

	return false
}

// RulePairs returns the flat Rules list grouped into (u, v) pairs, in
// rule order. stephen consumes rules through this method rather than the
// raw field so the relation-closure loop can index rules positionally
// without repeatedly re-deriving the pairing.
func (p *Presentation) RulePairs() [][2]letters.Word {
	out := make([][2]letters.Word, 0, len(p.Rules)/2)
	for i := 0; i+1 < len(p.Rules); i += 2 {
		out = append(out, [2]letters.Word{p.Rules[i], p.Rules[i+1]})
	}

	return out
}

// AddRule appends the rule (u, v) unchecked, mirroring
// Presentation::add_rule in present.hpp: no validation that u and v are
// words over the alphabet. Use AddRuleChecked when that guarantee matters.
func (p *Presentation) AddRule(u, v letters.Word) {
	p.Rules = append(p.Rules, letters.Clone(u), letters.Clone(v))
}

// AddRuleChecked validates that every letter of u and v belongs to the
// alphabet, and — when the presentation does not admit the empty word —
// that neither side is empty, before appending the rule. Mirrors
// add_rule_and_check in present.hpp.
func (p *Presentation) AddRuleChecked(u, v letters.Word) error {
	if err := p.validateWord(u); err != nil {
		return err
	}
	if err := p.validateWord(v); err != nil {
		return err
	}
	p.AddRule(u, v)

	return nil
}

// validateWord checks a single word against the alphabet and empty-word
// rule, without touching p.Rules.
func (p *Presentation) validateWord(w letters.Word) error {
	if !p.containsEmptyWord && len(w) == 0 {
		return ErrEmptyRuleSide
	}
	for _, l := range w {
		if !p.InAlphabet(l) {
			return fmt.Errorf("%w: %d", ErrLetterOutOfRange, l)
		}
	}

	return nil
}

// Validate rechecks every invariant spec.md §3 lists: alphabet letters are
// pairwise distinct, every rule consists of letters in the alphabet, and —
// unless the empty word is admitted — no rule side is empty. Mirrors
// Presentation::validate in present.hpp.
func (p *Presentation) Validate() error {
	seen := make(map[letters.Letter]bool, len(p.alphabet))
	for _, l := range p.alphabet {
		if seen[l] {
			return fmt.Errorf("%w: %d", ErrDuplicateLetter, l)
		}
		seen[l] = true
	}
	for i := 0; i+1 < len(p.Rules); i += 2 {
		if err := p.validateWord(p.Rules[i]); err != nil {
			return err
		}
		if err := p.validateWord(p.Rules[i+1]); err != nil {
			return err
		}
	}

	return nil
}

// InversePresentation extends Presentation with the involution ι: A → A
// modelling formal generator inverses (spec.md §3's inverse-presentation
// extension). Inverse is indexed in parallel with Alphabet(): Inverse[i]
// is the inverse of Alphabet()[i].
type InversePresentation struct {
	*Presentation
	Inverse []letters.Letter
}

// NewInverse constructs an InversePresentation. inverse must have the same
// length as the alphabet produced by opts and is interpreted positionally
// (inverse[i] is the inverse letter of the i-th alphabet letter).
func NewInverse(inverse []letters.Letter, opts ...Option) *InversePresentation {
	return &InversePresentation{
		Presentation: New(opts...),
		Inverse:      append([]letters.Letter(nil), inverse...),
	}
}

// InverseOf returns ι(l), the formal inverse of alphabet letter l.
func (ip *InversePresentation) InverseOf(l letters.Letter) (letters.Letter, bool) {
	for i, a := range ip.Alphabet() {
		if a == l {
			return ip.Inverse[i], true
		}
	}

	return 0, false
}

// Validate extends Presentation.Validate with spec.md §3's involution
// invariants: ι must be defined on every alphabet letter, ι∘ι = identity,
// and ι must be fixed-point-free (ι(a) != a for every a), matching the
// GLOSSARY's "fixed-point-free involution" definition.
func (ip *InversePresentation) Validate() error {
	if err := ip.Presentation.Validate(); err != nil {
		return err
	}
	alphabet := ip.Alphabet()
	if len(ip.Inverse) != len(alphabet) {
		return ErrInvolutionIncomplete
	}
	for i, a := range alphabet {
		b := ip.Inverse[i]
		if !ip.InAlphabet(b) {
			return fmt.Errorf("%w: inverse of %d is %d, not in alphabet", ErrLetterOutOfRange, a, b)
		}
		if a == b {
			return fmt.Errorf("%w: %d", ErrInvolutionFixedPoint, a)
		}
		bb, ok := ip.InverseOf(b)
		if !ok || bb != a {
			return fmt.Errorf("%w: inverse(inverse(%d)) != %d", ErrInvolutionNotSelfInverse, a, a)
		}
	}

	return nil
}
