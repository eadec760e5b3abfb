package stephen

import "errors"

// Sentinel errors for the completion engine. Callers match with
// errors.Is, never by comparing error strings.
var (
	// ErrUninitialised indicates Run, RunFor, AcceptState, Accepts or
	// IsLeftFactor was called before SetWord established a word to complete.
	ErrUninitialised = errors.New("stephen: not seeded with a word")

	// ErrNotFinished indicates AcceptState, Accepts or IsLeftFactor was
	// called after SetWord but before a run reached its fixed point.
	ErrNotFinished = errors.New("stephen: run has not finished")

	// ErrLetterOutOfRange indicates SetWord, Accepts or IsLeftFactor was
	// given a word containing a letter outside the presentation's alphabet.
	ErrLetterOutOfRange = errors.New("stephen: letter out of range")

	// ErrInverseInconsistent indicates that, for an inverse presentation,
	// completion tried to define a generator/inverse complementary edge
	// that disagreed with one already present. Fatal: per spec.md §7 the
	// instance is left unusable and the caller must start a fresh one.
	ErrInverseInconsistent = errors.New("stephen: inverse presentation consistency violated")
)
