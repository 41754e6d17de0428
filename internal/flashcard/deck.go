package flashcard

import "github.com/vytor/linguacards/internal/models"

// Deck is an ordered phrase set with a cursor on the current card.
type Deck struct {
	phrases []models.Phrase
	index   int
}

func NewDeck(phrases []models.Phrase) *Deck {
	cp := make([]models.Phrase, len(phrases))
	copy(cp, phrases)
	return &Deck{phrases: cp}
}

// Current returns the card under the cursor, or nil for an empty deck.
func (d *Deck) Current() *models.Phrase {
	if d == nil || len(d.phrases) == 0 {
		return nil
	}
	p := d.phrases[d.index]
	return &p
}

// Next advances the cursor, wrapping to the first card after the last.
func (d *Deck) Next() *models.Phrase {
	if d == nil || len(d.phrases) == 0 {
		return nil
	}
	d.index = (d.index + 1) % len(d.phrases)
	return d.Current()
}

// Position is the 1-based index of the current card, 0 when empty.
func (d *Deck) Position() int {
	if d == nil || len(d.phrases) == 0 {
		return 0
	}
	return d.index + 1
}

func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.phrases)
}
