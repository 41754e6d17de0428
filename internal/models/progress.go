package models

// Classification is the learner's most recent self-assessment of a phrase.
type Classification string

const (
	Unclassified Classification = ""
	Learned      Classification = "learned"
	Difficult    Classification = "difficult"
	NeedsReview  Classification = "needsReview"
)

// ParseClassification accepts the wire names used by forms and the JSON API.
// Clearing a mark takes an explicit "none" or "unclassified"; an empty
// string is rejected.
func ParseClassification(s string) (Classification, bool) {
	switch s {
	case "learned":
		return Learned, true
	case "difficult":
		return Difficult, true
	case "needsReview", "needs_review", "review":
		return NeedsReview, true
	case "none", "unclassified":
		return Unclassified, true
	default:
		return Unclassified, false
	}
}

// CardStatus is the flag form of a classification, as rendered on a card.
type CardStatus struct {
	Learned     bool `json:"learned"`
	Difficult   bool `json:"difficult"`
	NeedsReview bool `json:"needs_review"`
}

// Theme buckets completion for display.
type Theme string

const (
	ThemeStarting    Theme = "starting"
	ThemeProgressing Theme = "progressing"
	ThemeMastering   Theme = "mastering"
)

// Progress is a read-only snapshot of a tracker.
type Progress struct {
	LanguageCode      string   `json:"language_code"`
	LearnedCards      []string `json:"learned_cards"`
	DifficultCards    []string `json:"difficult_cards"`
	ReviewCards       []string `json:"review_cards"`
	Score             int      `json:"score"`
	Streak            int      `json:"streak"`
	TotalCards        int      `json:"total_cards"`
	CompletedCards    int      `json:"completed_cards"`
	CompletionPercent int      `json:"completion_percent"`
	Theme             Theme    `json:"theme"`
}
