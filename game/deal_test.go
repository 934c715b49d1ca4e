package game

import (
	"math/rand"
	"testing"

	"github.com/dezgeg/shenzen-solitaire/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeal(t *testing.T) {
	t.Run("deals row by row into eight columns of five", func(t *testing.T) {
		d := deck.New()
		d.Shuffle(rand.New(rand.NewSource(11)))

		pf, err := Deal(d)
		require.NoError(t, err)

		for col := 0; col < NumColumns; col++ {
			require.Len(t, pf.Tableau[col], DealRows)
			for row := 0; row < DealRows; row++ {
				assert.Equal(t, d[NumColumns*row+col], pf.Tableau[col][row])
			}
		}
	})

	t.Run("everything else starts empty", func(t *testing.T) {
		pf, err := Deal(deck.New())
		require.NoError(t, err)

		for _, cell := range pf.FreeCells {
			assert.Equal(t, FreeSlot(), cell)
		}
		assert.True(t, pf.Flower.IsZero())
		assert.Equal(t, [NumPiles]deck.Card{}, pf.Piles)
		assert.NoError(t, DefaultRules().Validate(pf))
	})

	t.Run("rejects anything but a full deck", func(t *testing.T) {
		_, err := Deal(deck.New()[:39])
		assert.ErrorIs(t, err, ErrBadDeal)

		d := deck.New()
		d[5] = d[6]
		_, err = Deal(d)
		assert.ErrorIs(t, err, ErrBadDeal)
	})

	t.Run("does not keep a reference to the deck", func(t *testing.T) {
		d := deck.New()
		pf, err := Deal(d)
		require.NoError(t, err)

		d[0] = deck.Dragon(deck.Red)
		assert.Equal(t, deck.Flower(), pf.Tableau[0][0])
	})
}

func TestValidate(t *testing.T) {
	pf := NewShuffledPlayfield(rand.New(rand.NewSource(5)))
	require.NoError(t, DefaultRules().Validate(pf))

	t.Run("a missing card is reported", func(t *testing.T) {
		broken := pf.Clone()
		broken.Tableau[0] = broken.Tableau[0][:4]
		assert.Error(t, DefaultRules().Validate(broken))
	})

	t.Run("a duplicated card is reported", func(t *testing.T) {
		broken := pf.Clone()
		broken.FreeCells[0] = InUseSlot(broken.Tableau[3][0])
		assert.Error(t, DefaultRules().Validate(broken))
	})

	t.Run("a pile implies the cards beneath it", func(t *testing.T) {
		var board Playfield
		board.Piles[0] = red(9)
		board.Flower = deck.Flower()
		rest := []deck.Card{}
		for _, suit := range []deck.Suit{deck.Green, deck.Black} {
			for rank := deck.MinRank; rank <= deck.MaxRank; rank++ {
				rest = append(rest, deck.Number(suit, rank))
			}
		}
		for _, suit := range deck.Suits {
			for i := 0; i < deck.DragonsPerSuit; i++ {
				rest = append(rest, deck.Dragon(suit))
			}
		}
		board.Tableau[0] = rest

		assert.NoError(t, DefaultRules().Validate(board))
	})

	t.Run("the flower slot holds only the flower", func(t *testing.T) {
		broken := pf.Clone()
		broken.Flower = red(1)
		assert.Error(t, DefaultRules().Validate(broken))
	})
}
