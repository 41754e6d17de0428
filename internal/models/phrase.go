package models

// Difficulty is the tier a phrase belongs to. Unknown values are tolerated
// when scoring and count as easy.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Phrase is an immutable unit of learning content supplied by the catalog.
type Phrase struct {
	ID            string     `json:"id" db:"id" validate:"required,max=64"`
	LanguageCode  string     `json:"language_code" db:"language_code" validate:"required"`
	English       string     `json:"english" db:"english" validate:"required"`
	Translation   string     `json:"translation" db:"translation" validate:"required"`
	Pronunciation string     `json:"pronunciation" db:"pronunciation"`
	Example       string     `json:"example" db:"example"`
	Difficulty    Difficulty `json:"difficulty" db:"difficulty" validate:"required,oneof=easy medium hard"`
	Position      int        `json:"-" db:"position"`
}

type PhraseFilter struct {
	LanguageCode string
	Difficulty   Difficulty
	Limit        int
	Offset       int
}
