package letters

import (
	"errors"
	"fmt"
)

// ErrUnknownSymbol indicates a symbol was looked up that the coder never
// assigned an index to.
var ErrUnknownSymbol = errors.New("letters: unknown symbol")

// Coder assigns a dense, stable Letter index to each distinct string
// symbol it sees, in first-seen order. It is the external helper that
// turns a user-facing alphabet (generator names in a config file) into
// the dense letter ids the rest of this module works with, keeping that
// concern out of presentation and stephen entirely. Grounded on
// matrix.lookupIndex's map[string]int/fail-fast shape.
type Coder struct {
	index   map[string]Letter
	symbols []string
}

// NewCoder returns an empty Coder.
func NewCoder() *Coder {
	return &Coder{index: make(map[string]Letter)}
}

// Code returns the Letter for symbol, assigning it the next dense index
// the first time it is seen.
func (c *Coder) Code(symbol string) Letter {
	if l, ok := c.index[symbol]; ok {
		return l
	}
	l := Letter(len(c.symbols))
	c.index[symbol] = l
	c.symbols = append(c.symbols, symbol)

	return l
}

// Lookup returns the Letter already assigned to symbol, failing fast if
// it was never coded.
func (c *Coder) Lookup(symbol string) (Letter, error) {
	l, ok := c.index[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}

	return l, nil
}

// CodeWord codes every symbol of a user-facing word in order.
func (c *Coder) CodeWord(symbols []string) Word {
	w := make(Word, len(symbols))
	for i, s := range symbols {
		w[i] = c.Code(s)
	}

	return w
}

// Symbol returns the string symbol originally coded to l, or false if l
// is out of range.
func (c *Coder) Symbol(l Letter) (string, bool) {
	if int(l) < 0 || int(l) >= len(c.symbols) {
		return "", false
	}

	return c.symbols[l], true
}

// Len returns the number of distinct symbols coded so far.
func (c *Coder) Len() int { return len(c.symbols) }
