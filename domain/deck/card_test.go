package deck

import "testing"

func TestCardValues(t *testing.T) {
	cases := []struct {
		rank  uint8
		value int
	}{
		{Ace, 11},
		{2, 2},
		{3, 3},
		{4, 4},
		{5, 5},
		{6, 6},
		{7, 7},
		{8, 8},
		{9, 9},
		{10, 10},
		{Jack, 10},
		{Queen, 10},
		{King, 10},
	}
	for _, tc := range cases {
		c, err := NewCard(Heart, tc.rank)
		if err != nil {
			t.Fatal(err)
		}
		if c.Value() != tc.value {
			t.Fatalf("rank %d: expected value %d, got %d", tc.rank, tc.value, c.Value())
		}
	}
}

func TestCardRankLabels(t *testing.T) {
	c := Card{suit: Heart, rank: Ace}
	if c.RankLabel() != "A" {
		t.Fatalf("expected A, got %s", c.RankLabel())
	}
	c = Card{suit: Club, rank: Jack}
	if c.RankLabel() != "J" {
		t.Fatalf("expected J, got %s", c.RankLabel())
	}
	c = Card{suit: Spade, rank: 10}
	if c.RankLabel() != "10" {
		t.Fatalf("expected 10, got %s", c.RankLabel())
	}
}

func TestCardSuitSymbols(t *testing.T) {
	symbols := map[uint8]string{Club: "♣", Diamond: "♦", Heart: "♥", Spade: "♠"}
	for suit, expected := range symbols {
		c := Card{suit: suit, rank: 5}
		if c.SuitSymbol() != expected {
			t.Fatalf("suit %d: expected %s, got %s", suit, expected, c.SuitSymbol())
		}
	}
}

func TestNewCardRejectsInvalid(t *testing.T) {
	if _, err := NewCard(4, 5); err == nil {
		t.Fatal("expected error for invalid suit")
	}
	if _, err := NewCard(Heart, 0); err == nil {
		t.Fatal("expected error for rank 0")
	}
	if _, err := NewCard(Heart, 14); err == nil {
		t.Fatal("expected error for rank 14")
	}
}

func TestNewCardAcceptsWholeDeck(t *testing.T) {
	for suit := uint8(0); suit < 4; suit++ {
		for rank := uint8(1); rank <= 13; rank++ {
			if _, err := NewCard(suit, rank); err != nil {
				t.Fatal(err)
			}
		}
	}
}
