package flashcard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/linguacards/internal/flashcard"
	"github.com/vytor/linguacards/internal/models"
)

func TestDeck_NextWrapsAround(t *testing.T) {
	d := flashcard.NewDeck([]models.Phrase{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	require.NotNil(t, d.Current())
	assert.Equal(t, "a", d.Current().ID)
	assert.Equal(t, 1, d.Position())

	assert.Equal(t, "b", d.Next().ID)
	assert.Equal(t, "c", d.Next().ID)
	assert.Equal(t, 3, d.Position())
	assert.Equal(t, "a", d.Next().ID, "deck loops back to the first card")
	assert.Equal(t, 3, d.Len())
}

func TestDeck_Empty(t *testing.T) {
	d := flashcard.NewDeck(nil)

	assert.Nil(t, d.Current())
	assert.Nil(t, d.Next())
	assert.Equal(t, 0, d.Position())
	assert.Equal(t, 0, d.Len())
}

func TestDeck_CopiesInput(t *testing.T) {
	phrases := []models.Phrase{{ID: "a"}}
	d := flashcard.NewDeck(phrases)
	phrases[0].ID = "mutated"

	assert.Equal(t, "a", d.Current().ID)
}
