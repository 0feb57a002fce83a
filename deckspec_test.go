package cardtable

import (
	"errors"
	"slices"
	"testing"
)

func TestParseDeckSpecStandard(t *testing.T) {
	labels, err := ParseDeckSpec(StandardDeckSpec)
	if err != nil {
		t.Fatalf("ParseDeckSpec: %v", err)
	}
	if len(labels) != 54 {
		t.Fatalf("len = %d, want 54", len(labels))
	}
	if labels[0] != "A♠" || labels[12] != "K♠" || labels[13] != "A♥" || labels[51] != "K♣" {
		t.Errorf("suit order wrong: %v", labels[:14])
	}
	if labels[52] != "Joker" || labels[53] != "Joker" {
		t.Errorf("tail = %v, want two jokers", labels[52:])
	}
	seen := map[string]int{}
	for _, l := range labels {
		seen[l]++
	}
	if len(seen) != 53 {
		t.Errorf("distinct labels = %d, want 53", len(seen))
	}
}

func TestParseDeckSpecForms(t *testing.T) {
	cases := []struct {
		spec string
		want []string
	}{
		{`10 of ♥`, []string{"10♥"}},
		{`A..3 of ♦♣`, []string{"A♦", "2♦", "3♦", "A♣", "2♣", "3♣"}},
		{`J..K of ♠`, []string{"J♠", "Q♠", "K♠"}},
		{`"Joker"`, []string{"Joker"}},
		{`"Wild" * 3, Q of ♥`, []string{"Wild", "Wild", "Wild", "Q♥"}},
		{`king of ♣`, []string{"K♣"}},
	}
	for _, tc := range cases {
		got, err := ParseDeckSpec(tc.spec)
		if err != nil {
			t.Errorf("%s: %v", tc.spec, err)
			continue
		}
		if !slices.Equal(got, tc.want) {
			t.Errorf("%s = %v, want %v", tc.spec, got, tc.want)
		}
	}
}

func TestParseDeckSpecErrors(t *testing.T) {
	cases := []struct {
		spec string
		want error
	}{
		{"", ErrEmptyDeckSpec},
		{"   ", ErrEmptyDeckSpec},
		{`Z of ♠`, ErrUnknownRank},
		{`K..A of ♠`, ErrBadRankRange},
		{`"Joker" * 0`, ErrBadCount},
	}
	for _, tc := range cases {
		_, err := ParseDeckSpec(tc.spec)
		if !errors.Is(err, tc.want) {
			t.Errorf("%q: err = %v, want %v", tc.spec, err, tc.want)
		}
	}
}

func TestParseDeckSpecSyntaxError(t *testing.T) {
	if _, err := ParseDeckSpec(`A..K ♠`); err == nil {
		t.Error("missing 'of' should fail")
	}
	if _, err := ParseDeckSpec(`A of ♠,`); err == nil {
		t.Error("trailing comma should fail")
	}
}

type fixedRNG struct{ val int }

func (r fixedRNG) Intn(n int) int { return r.val % n }

func TestShuffleDeterministic(t *testing.T) {
	a := StandardDeck(NewRNG(42))
	b := StandardDeck(NewRNG(42))
	if !slices.Equal(a, b) {
		t.Error("same seed should give the same order")
	}
	c := StandardDeck(NewRNG(43))
	if slices.Equal(a, c) {
		t.Error("different seeds should differ")
	}
	sorted := slices.Clone(a)
	slices.Sort(sorted)
	want, _ := ParseDeckSpec(StandardDeckSpec)
	slices.Sort(want)
	if !slices.Equal(sorted, want) {
		t.Error("shuffle should be a permutation")
	}
}

func TestShuffleWithZeroRNGRotates(t *testing.T) {
	labels := []string{"a", "b", "c"}
	Shuffle(labels, fixedRNG{0})
	// i=2 swaps with 0, i=1 swaps with 0.
	if !slices.Equal(labels, []string{"b", "c", "a"}) {
		t.Errorf("labels = %v, want [b c a]", labels)
	}
}
