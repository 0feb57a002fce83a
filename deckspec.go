package cardtable

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Deck spec errors.
var (
	ErrEmptyDeckSpec = errors.New("empty deck spec")
	ErrUnknownRank   = errors.New("unknown rank")
	ErrBadRankRange  = errors.New("rank range runs backwards")
	ErrBadCount      = errors.New("label count must be positive")
)

// Ranks in deck order.
var ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// deckSpecAST is a comma separated list of entries such as
// `A..K of ♠♥♦♣`, `10 of ♥`, or `"Joker" * 2`.
type deckSpecAST struct {
	Entries []*deckEntry `@@ ( "," @@ )*`
}

type deckEntry struct {
	Named  *namedEntry  `  @@`
	Suited *suitedEntry `| @@`
}

type namedEntry struct {
	Label string `@String`
	Count *int   `( "*" @Int )?`
}

type suitedEntry struct {
	From  string   `@(Int | Ident)`
	To    string   `( ".." @(Int | Ident) )?`
	Suits []string `"of" @Suit+`
}

var deckSpecParser = participle.MustBuild[deckSpecAST](
	participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
		{Name: "whitespace", Pattern: `\s+`},
		{Name: "String", Pattern: `"[^"]*"`},
		{Name: "Range", Pattern: `\.\.`},
		{Name: "Suit", Pattern: `[♠♥♦♣]`},
		{Name: "Int", Pattern: `\d+`},
		{Name: "Ident", Pattern: `[A-Za-z]+`},
		{Name: "Punct", Pattern: `[,*]`},
	})),
	participle.Unquote("String"),
	participle.UseLookahead(2),
)

// ParseDeckSpec expands a deck spec into labels, in the order written.
// Suited ranges expand suit by suit: `A..2 of ♠♥` gives A♠ 2♠ A♥ 2♥.
func ParseDeckSpec(spec string) ([]string, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, ErrEmptyDeckSpec
	}
	ast, err := deckSpecParser.ParseString("", spec)
	if err != nil {
		return nil, fmt.Errorf("parse deck spec: %w", err)
	}

	var labels []string
	for _, e := range ast.Entries {
		switch {
		case e.Named != nil:
			n := 1
			if e.Named.Count != nil {
				n = *e.Named.Count
			}
			if n < 1 {
				return nil, fmt.Errorf("%w: %q * %d", ErrBadCount, e.Named.Label, n)
			}
			for range n {
				labels = append(labels, e.Named.Label)
			}
		case e.Suited != nil:
			expanded, err := e.Suited.expand()
			if err != nil {
				return nil, err
			}
			labels = append(labels, expanded...)
		}
	}
	return labels, nil
}

func (e *suitedEntry) expand() ([]string, error) {
	from, err := rankIndex(e.From)
	if err != nil {
		return nil, err
	}
	to := from
	if e.To != "" {
		if to, err = rankIndex(e.To); err != nil {
			return nil, err
		}
	}
	if to < from {
		return nil, fmt.Errorf("%w: %s..%s", ErrBadRankRange, e.From, e.To)
	}
	out := make([]string, 0, len(e.Suits)*(to-from+1))
	for _, suit := range e.Suits {
		for _, rank := range ranks[from : to+1] {
			out = append(out, rank+suit)
		}
	}
	return out, nil
}

func rankIndex(rank string) (int, error) {
	r := strings.ToUpper(rank)
	switch r {
	case "1":
		r = "A"
	case "JACK":
		r = "J"
	case "QUEEN":
		r = "Q"
	case "KING":
		r = "K"
	case "ACE":
		r = "A"
	}
	for i, name := range ranks {
		if name == r {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRank, rank)
}
