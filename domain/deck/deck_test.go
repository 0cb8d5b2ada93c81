package deck

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

func TestNewShoeHasEveryCardOnce(t *testing.T) {
	s := NewShoe(Finite, rand.New(rand.NewSource(1)))
	if s.Remaining() != DeckSize {
		t.Fatalf("expected %d cards, got %d", DeckSize, s.Remaining())
	}
	seen := make(map[int]bool)
	for range DeckSize {
		c, err := s.Draw()
		if err != nil {
			t.Fatal(err)
		}
		if c < 1 || c > DeckSize {
			t.Fatalf("card %d out of range", c)
		}
		if seen[c] {
			t.Fatalf("card %d drawn twice", c)
		}
		seen[c] = true
	}
	if s.Remaining() != 0 {
		t.Fatalf("expected an empty shoe, %d left", s.Remaining())
	}
}

func TestFiniteShoeExhausts(t *testing.T) {
	s, err := NewStackedShoe(Finite, rand.New(rand.NewSource(1)), 7)
	if err != nil {
		t.Fatal(err)
	}
	c, err := s.Draw()
	if err != nil {
		t.Fatal(err)
	}
	if c != 7 {
		t.Fatalf("expected 7, got %d", c)
	}
	_, err = s.Draw()
	if !errors.Is(err, ErrEmptyShoe) {
		t.Fatalf("expected ErrEmptyShoe, got %v", err)
	}
}

func TestStackedShoeOrder(t *testing.T) {
	order := []int{1, 13, 26, 52}
	s, err := NewStackedShoe(Finite, nil, order...)
	if err != nil {
		t.Fatal(err)
	}
	var got []int
	for range order {
		c, err := s.Draw()
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, c)
	}
	if !slices.Equal(got, order) {
		t.Fatalf("expected %v, got %v", order, got)
	}
}

func TestStackedShoeRejectsInvalidCards(t *testing.T) {
	for _, n := range []int{0, -1, 53} {
		if _, err := NewStackedShoe(Finite, nil, 1, n); err == nil {
			t.Errorf("expected error for card %d", n)
		}
	}
}

func TestReshufflingShoeNeverEmpties(t *testing.T) {
	s := NewShoe(Reshuffling, rand.New(rand.NewSource(42)))
	for i := 0; i < 10*DeckSize; i++ {
		if _, err := s.Draw(); err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
		if s.Remaining() != DeckSize {
			t.Fatalf("draw %d: expected %d cards, got %d", i, DeckSize, s.Remaining())
		}
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{"finite", Finite, false},
		{"reshuffle", Reshuffling, false},
		{"infinite", Reshuffling, false},
		{"bogus", Finite, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolicy(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePolicy(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestReshufflingStackedShoeWithoutRand(t *testing.T) {
	s, err := NewStackedShoe(Reshuffling, nil, 5, 6)
	if err != nil {
		t.Fatal(err)
	}
	first, err := s.Draw()
	if err != nil {
		t.Fatal(err)
	}
	if first != 5 {
		t.Fatalf("expected the stacked top card 5, got %d", first)
	}
	for i := 0; i < 10; i++ {
		c, err := s.Draw()
		if err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
		if c != 5 && c != 6 {
			t.Fatalf("draw %d: card %d was never in the shoe", i, c)
		}
	}
	if s.Remaining() != 2 {
		t.Fatalf("expected 2 cards, got %d", s.Remaining())
	}
}

func TestNewShoeWithoutRand(t *testing.T) {
	s := NewShoe(Finite, nil)
	if s.Remaining() != DeckSize {
		t.Fatalf("expected %d cards, got %d", DeckSize, s.Remaining())
	}
}
