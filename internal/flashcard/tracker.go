package flashcard

import (
	"math"
	"sort"

	"github.com/vytor/linguacards/internal/models"
)

// DefaultTotalCards is used when the active phrase set is empty or its size
// is unknown.
const DefaultTotalCards = 25

// DifficultyPoints returns the score awarded for learning a phrase.
func DifficultyPoints(d models.Difficulty) int {
	switch d {
	case models.DifficultyEasy:
		return 1
	case models.DifficultyMedium:
		return 2
	case models.DifficultyHard:
		return 3
	default:
		return 1
	}
}

// Tracker holds the progress for one selected language. Each phrase id maps
// to at most one classification, so the learned, difficult and review sets
// are disjoint by construction.
//
// A Tracker is not safe for concurrent use; its owner serializes calls.
type Tracker struct {
	languageCode string
	marks        map[string]models.Classification
	score        int
	streak       int
	totalCards   int
}

// NewTracker returns a tracker already reset for languageCode.
func NewTracker(languageCode string, totalCards int) *Tracker {
	t := &Tracker{}
	t.Reset(languageCode, totalCards)
	return t
}

// Reset discards all progress and starts over for languageCode.
func (t *Tracker) Reset(languageCode string, totalCards int) {
	if totalCards <= 0 {
		totalCards = DefaultTotalCards
	}
	t.languageCode = languageCode
	t.marks = make(map[string]models.Classification)
	t.score = 0
	t.streak = 0
	t.totalCards = totalCards
}

// Classify records c for phrase. A nil phrase means there is no active card
// and the call does nothing; the return value reports whether state changed.
func (t *Tracker) Classify(phrase *models.Phrase, c models.Classification) bool {
	if phrase == nil {
		return false
	}
	if t.marks == nil {
		t.marks = make(map[string]models.Classification)
	}

	delete(t.marks, phrase.ID)

	switch c {
	case models.Learned:
		t.marks[phrase.ID] = models.Learned
		t.score += DifficultyPoints(phrase.Difficulty)
		t.streak++
	case models.Difficult:
		t.marks[phrase.ID] = models.Difficult
		t.streak = 0
	case models.NeedsReview:
		t.marks[phrase.ID] = models.NeedsReview
		t.score++
	}
	return true
}

// ApplyStatus resolves a set of flags into a single classification, learned
// first, then difficult, then needs-review, and classifies phrase with it.
// No flags clears any classification the phrase had.
func (t *Tracker) ApplyStatus(phrase *models.Phrase, status models.CardStatus) bool {
	return t.Classify(phrase, ResolveStatus(status))
}

// ResolveStatus maps flags onto a classification by priority.
func ResolveStatus(status models.CardStatus) models.Classification {
	switch {
	case status.Learned:
		return models.Learned
	case status.Difficult:
		return models.Difficult
	case status.NeedsReview:
		return models.NeedsReview
	default:
		return models.Unclassified
	}
}

// StatusOf returns the classification currently held by phraseID.
func (t *Tracker) StatusOf(phraseID string) models.Classification {
	return t.marks[phraseID]
}

// CardStatus is StatusOf in flag form.
func (t *Tracker) CardStatus(phraseID string) models.CardStatus {
	c := t.StatusOf(phraseID)
	return models.CardStatus{
		Learned:     c == models.Learned,
		Difficult:   c == models.Difficult,
		NeedsReview: c == models.NeedsReview,
	}
}

func (t *Tracker) LanguageCode() string { return t.languageCode }
func (t *Tracker) Score() int           { return t.score }
func (t *Tracker) Streak() int          { return t.streak }
func (t *Tracker) TotalCards() int      { return t.totalCards }

// CompletedCards is the number of phrases holding any classification.
func (t *Tracker) CompletedCards() int { return len(t.marks) }

// Snapshot copies the current state for display.
func (t *Tracker) Snapshot() models.Progress {
	p := models.Progress{
		LanguageCode:   t.languageCode,
		LearnedCards:   []string{},
		DifficultCards: []string{},
		ReviewCards:    []string{},
		Score:          t.score,
		Streak:         t.streak,
		TotalCards:     t.totalCards,
		CompletedCards: len(t.marks),
	}
	for id, c := range t.marks {
		switch c {
		case models.Learned:
			p.LearnedCards = append(p.LearnedCards, id)
		case models.Difficult:
			p.DifficultCards = append(p.DifficultCards, id)
		case models.NeedsReview:
			p.ReviewCards = append(p.ReviewCards, id)
		}
	}
	sort.Strings(p.LearnedCards)
	sort.Strings(p.DifficultCards)
	sort.Strings(p.ReviewCards)

	p.CompletionPercent = CompletionPercent(p.CompletedCards, p.TotalCards)
	p.Theme = ThemeFor(p.CompletionPercent)
	return p
}

// CompletionPercent rounds completed/total to a whole percentage.
func CompletionPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// ThemeFor buckets a completion percentage: below 30, below 70, the rest.
func ThemeFor(percent int) models.Theme {
	switch {
	case percent < 30:
		return models.ThemeStarting
	case percent < 70:
		return models.ThemeProgressing
	default:
		return models.ThemeMastering
	}
}
