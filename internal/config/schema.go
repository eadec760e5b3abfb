// Package config decodes HCL presentation documents into the presentation
// interface stephen consumes, the external helper spec.md §6 calls for:
// "strings over a user-facing alphabet must be coded to letter ids by an
// external helper", kept out of the presentation and stephen packages so
// the core never depends on HCL. Grounded on burstgridgo's
// internal/engine.DecodeGridFile / internal/schema struct-tag shape.
package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/wordproblem/stephen/letters"
	"github.com/wordproblem/stephen/presentation"
)

// ErrMissingAlphabet indicates the document has no alphabet attribute, or
// an empty one.
var ErrMissingAlphabet = errors.New("config: presentation document has no alphabet")

// ErrUnknownInverseSymbol indicates an inverse_of block names a symbol
// that was never declared in the alphabet.
var ErrUnknownInverseSymbol = errors.New("config: inverse_of references a symbol outside the alphabet")

// Presentation is the surface a decoded document exposes: the same shape
// stephen.Presentation expects, declared independently here so this
// package never has to import stephen. *presentation.Presentation and
// *presentation.InversePresentation both satisfy it; Load returns
// whichever the document described, so an inverse presentation keeps its
// InverseOf method reachable through a type assertion if a caller needs
// it directly.
type Presentation interface {
	Alphabet() []letters.Letter
	ContainsEmptyWord() bool
	InAlphabet(l letters.Letter) bool
	RulePairs() [][2]letters.Word
	Validate() error
}

// ruleBlock mirrors one `rule { lhs = [...]; rhs = [...] }` block.
type ruleBlock struct {
	LHS []string `hcl:"lhs"`
	RHS []string `hcl:"rhs"`
}

// inverseBlock mirrors one `inverse_of { a = "x"; b = "y" }` pair,
// declaring that symbol a and symbol b are formal inverses of each other.
// Presence of any inverse_of block makes the document describe an inverse
// presentation.
type inverseBlock struct {
	A string `hcl:"a"`
	B string `hcl:"b"`
}

// document is the root HCL schema: an alphabet attribute, an optional
// empty-word flag, zero or more rule blocks, and zero or more inverse_of
// blocks.
type document struct {
	Alphabet          []string        `hcl:"alphabet,optional"`
	ContainsEmptyWord bool            `hcl:"contains_empty_word,optional"`
	Rules             []*ruleBlock    `hcl:"rule,block"`
	Inverses          []*inverseBlock `hcl:"inverse_of,block"`
	Body              hcl.Body        `hcl:",remain"`
}

// Load parses the HCL presentation document at path and decodes it into a
// Presentation. Every generator symbol is coded to a dense Letter id via a
// letters.Coder in first-seen alphabet order.
func Load(path string) (Presentation, error) {
	p, _, err := LoadWithCoder(path)

	return p, err
}

// LoadWithCoder is Load plus the letters.Coder it built from the
// document's alphabet, so a caller that also needs to translate
// user-facing symbol strings (a CLI's --word flag, say) into the same
// Letter ids the decoded Presentation uses can do so without re-deriving
// the alphabet's symbol order by hand.
func LoadWithCoder(path string) (Presentation, *letters.Coder, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, nil, fmt.Errorf("config: parsing %s: %s", path, diags.Error())
	}

	var doc document
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, nil, fmt.Errorf("config: decoding %s: %s", path, diags.Error())
	}

	return build(&doc)
}

func build(doc *document) (Presentation, *letters.Coder, error) {
	if len(doc.Alphabet) == 0 {
		return nil, nil, ErrMissingAlphabet
	}

	coder := letters.NewCoder()
	for _, sym := range doc.Alphabet {
		coder.Code(sym)
	}

	opts := []presentation.Option{presentation.WithAlphabetSize(coder.Len())}
	if doc.ContainsEmptyWord {
		opts = append(opts, presentation.WithEmptyWord())
	}

	var p *presentation.Presentation
	var result Presentation
	if len(doc.Inverses) > 0 {
		inverse := make([]letters.Letter, coder.Len())
		assigned := make([]bool, coder.Len())
		for _, pair := range doc.Inverses {
			a, err := coder.Lookup(pair.A)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %s", ErrUnknownInverseSymbol, pair.A)
			}
			b, err := coder.Lookup(pair.B)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %s", ErrUnknownInverseSymbol, pair.B)
			}
			inverse[a], inverse[b] = b, a
			assigned[a], assigned[b] = true, true
		}
		for i, ok := range assigned {
			if !ok {
				return nil, nil, fmt.Errorf("%w: symbol %q has no inverse_of pairing",
					presentation.ErrInvolutionIncomplete, doc.Alphabet[i])
			}
		}
		ip := presentation.NewInverse(inverse, opts...)
		p = ip.Presentation
		result = ip
	} else {
		p = presentation.New(opts...)
		result = p
	}

	for _, r := range doc.Rules {
		lhs, err := codeWordChecked(coder, r.LHS)
		if err != nil {
			return nil, nil, err
		}
		rhs, err := codeWordChecked(coder, r.RHS)
		if err != nil {
			return nil, nil, err
		}
		if err := p.AddRuleChecked(lhs, rhs); err != nil {
			return nil, nil, fmt.Errorf("config: rule %v -> %v: %w", r.LHS, r.RHS, err)
		}
	}

	if err := result.Validate(); err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}

	return result, coder, nil
}

func codeWordChecked(coder *letters.Coder, symbols []string) (letters.Word, error) {
	w := make(letters.Word, len(symbols))
	for i, sym := range symbols {
		l, err := coder.Lookup(sym)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		w[i] = l
	}

	return w, nil
}
