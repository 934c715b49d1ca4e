package game

import (
	"errors"
	"testing"

	"github.com/dezgeg/shenzen-solitaire/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOnTableau(t *testing.T) {
	t.Run("red 4 goes on green 5", func(t *testing.T) {
		pf := boardWithColumns(cards(green(5)))

		next, err := Place(pf, cards(red(4)), TableauAt(0))
		require.NoError(t, err)
		assert.Equal(t, cards(green(5), red(4)), next.Tableau[0])
	})

	t.Run("red 4 does not go on black 4", func(t *testing.T) {
		pf := boardWithColumns(cards(black(4)))

		_, err := Place(pf, cards(red(4)), TableauAt(0))
		assert.True(t, errors.Is(err, ErrIncompatibleCard))
	})

	t.Run("anything goes on an empty column", func(t *testing.T) {
		for _, run := range [][]deck.Card{
			cards(red(9)),
			cards(deck.Dragon(deck.Black)),
			cards(deck.Flower()),
			cards(black(6), red(5), green(4)),
		} {
			next, err := Place(Playfield{}, run, TableauAt(3))
			require.NoError(t, err)
			assert.Equal(t, run, next.Tableau[3])
		}
	})

	t.Run("a run is appended bottom card first", func(t *testing.T) {
		pf := boardWithColumns(cards(red(2), green(7)))

		next, err := Place(pf, cards(black(6), red(5)), TableauAt(0))
		require.NoError(t, err)
		assert.Equal(t, cards(red(2), green(7), black(6), red(5)), next.Tableau[0])
		assert.Len(t, pf.Tableau[0], 2)
	})

	t.Run("only the run's bottom card is checked against the top", func(t *testing.T) {
		pf := boardWithColumns(cards(green(7)))

		_, err := Place(pf, cards(red(5), black(4)), TableauAt(0))
		assert.True(t, errors.Is(err, ErrIncompatibleCard))
	})

	t.Run("nothing goes on a dragon", func(t *testing.T) {
		pf := boardWithColumns(cards(deck.Dragon(deck.Red)))

		_, err := Place(pf, cards(red(1)), TableauAt(0))
		assert.True(t, errors.Is(err, ErrRejected))
	})

	t.Run("empty run is rejected", func(t *testing.T) {
		_, err := Place(Playfield{}, nil, TableauAt(0))
		assert.True(t, errors.Is(err, ErrNoCards))
	})
}

func TestPlaceOnFreeCell(t *testing.T) {
	t.Run("a free cell takes any single card", func(t *testing.T) {
		for _, c := range []deck.Card{red(5), deck.Dragon(deck.Green), deck.Flower()} {
			next, err := Place(Playfield{}, cards(c), FreeCellAt(2))
			require.NoError(t, err)
			assert.Equal(t, InUseSlot(c), next.FreeCells[2])
		}
	})

	t.Run("occupied and flipped cells refuse", func(t *testing.T) {
		pf := boardWithCells(InUseSlot(red(1)), FlippedSlot(deck.Black), FreeSlot())

		_, err := Place(pf, cards(green(3)), FreeCellAt(0))
		assert.True(t, errors.Is(err, ErrCellOccupied))

		_, err = Place(pf, cards(green(3)), FreeCellAt(1))
		assert.True(t, errors.Is(err, ErrCellLocked))
	})

	t.Run("runs do not fit in a free cell", func(t *testing.T) {
		_, err := Place(Playfield{}, cards(black(6), red(5)), FreeCellAt(0))
		assert.True(t, errors.Is(err, ErrTooManyCards))
	})
}

func TestPlaceOnFlower(t *testing.T) {
	next, err := Place(Playfield{}, cards(deck.Flower()), FlowerSlot())
	require.NoError(t, err)
	assert.Equal(t, deck.Flower(), next.Flower)

	_, err = Place(Playfield{}, cards(red(1)), FlowerSlot())
	assert.True(t, errors.Is(err, ErrIncompatibleCard))

	_, err = Place(Playfield{}, cards(deck.Dragon(deck.Red)), FlowerSlot())
	assert.True(t, errors.Is(err, ErrIncompatibleCard))
}

func TestPlaceOnPile(t *testing.T) {
	withPile := func(top deck.Card) Playfield {
		var pf Playfield
		pf.Piles[0] = top
		return pf
	}

	t.Run("next number of the same suit is accepted", func(t *testing.T) {
		next, err := Place(withPile(green(1)), cards(green(2)), PileAt(0))
		require.NoError(t, err)
		assert.Equal(t, green(2), next.Piles[0])
	})

	t.Run("suit mismatch is rejected", func(t *testing.T) {
		_, err := Place(withPile(green(1)), cards(red(2)), PileAt(0))
		assert.True(t, errors.Is(err, ErrIncompatibleCard))
	})

	t.Run("skipping a rank is rejected", func(t *testing.T) {
		_, err := Place(withPile(green(1)), cards(green(3)), PileAt(0))
		assert.True(t, errors.Is(err, ErrIncompatibleCard))
	})

	t.Run("dragons and the flower never go on a pile", func(t *testing.T) {
		_, err := Place(Playfield{}, cards(deck.Dragon(deck.Red)), PileAt(1))
		assert.True(t, errors.Is(err, ErrIncompatibleCard))

		_, err = Place(Playfield{}, cards(deck.Flower()), PileAt(1))
		assert.True(t, errors.Is(err, ErrIncompatibleCard))
	})

	t.Run("only one card at a time", func(t *testing.T) {
		_, err := Place(Playfield{}, cards(red(1), red(2)), PileAt(1))
		assert.True(t, errors.Is(err, ErrTooManyCards))
	})

	t.Run("empty pile takes only a 1 by default", func(t *testing.T) {
		next, err := Place(Playfield{}, cards(black(1)), PileAt(2))
		require.NoError(t, err)
		assert.Equal(t, black(1), next.Piles[2])

		_, err = Place(Playfield{}, cards(black(4)), PileAt(2))
		assert.True(t, errors.Is(err, ErrIncompatibleCard))
	})

	t.Run("empty pile takes any number when configured", func(t *testing.T) {
		rules := Rules{EmptyPileAnyRank: true}

		next, err := rules.Place(Playfield{}, cards(black(4)), PileAt(2))
		require.NoError(t, err)
		assert.Equal(t, black(4), next.Piles[2])

		next, err = rules.Place(next, cards(black(5)), PileAt(2))
		require.NoError(t, err)
		assert.Equal(t, black(5), next.Piles[2])

		_, err = rules.Place(Playfield{}, cards(deck.Dragon(deck.Black)), PileAt(2))
		assert.True(t, errors.Is(err, ErrIncompatibleCard))
	})

	t.Run("out of range pile is a caller error", func(t *testing.T) {
		_, err := Place(Playfield{}, cards(black(1)), PileAt(3))
		assert.True(t, errors.Is(err, ErrInvalidPosition))
	})
}
