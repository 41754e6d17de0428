package session

import (
	"sync"
	"time"

	"github.com/vytor/linguacards/internal/flashcard"
	"github.com/vytor/linguacards/internal/models"
)

// Session is one learner's study state: the active language, its deck and
// the progress tracker. Calls on a Session are serialized.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	lastSeen time.Time
	deck     *flashcard.Deck
	tracker  *flashcard.Tracker
}

// View is a consistent read of a session for rendering.
type View struct {
	SessionID      string                `json:"session_id"`
	LanguageCode   string                `json:"language_code"`
	Phrase         *models.Phrase        `json:"phrase"`
	Classification models.Classification `json:"classification"`
	Status         models.CardStatus     `json:"status"`
	Position       int                   `json:"position"`
	DeckSize       int                   `json:"deck_size"`
	Progress       models.Progress       `json:"progress"`
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		lastSeen:  now,
		deck:      flashcard.NewDeck(nil),
		tracker:   flashcard.NewTracker("", 0),
	}
}

// SelectLanguage replaces the deck and the tracker wholesale. It is also
// how a new session is loaded for the first time.
func (s *Session) SelectLanguage(code string, phrases []models.Phrase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deck = flashcard.NewDeck(phrases)
	s.tracker = flashcard.NewTracker(code, len(phrases))
}

// Classify applies c to the current card. With no current card it does
// nothing and reports false.
func (s *Session) Classify(c models.Classification) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Classify(s.deck.Current(), c)
}

// ApplyStatus is Classify for the flag form submitted by a card.
func (s *Session) ApplyStatus(status models.CardStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.ApplyStatus(s.deck.Current(), status)
}

// Next advances to the following card, looping after the last one.
func (s *Session) Next() *models.Phrase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deck.Next()
}

func (s *Session) LanguageCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.LanguageCode()
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		SessionID:    s.ID,
		LanguageCode: s.tracker.LanguageCode(),
		Phrase:       s.deck.Current(),
		Position:     s.deck.Position(),
		DeckSize:     s.deck.Len(),
		Progress:     s.tracker.Snapshot(),
	}
	if v.Phrase != nil {
		v.Classification = s.tracker.StatusOf(v.Phrase.ID)
		v.Status = s.tracker.CardStatus(v.Phrase.ID)
	}
	return v
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
