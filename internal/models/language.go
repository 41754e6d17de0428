package models

type Language struct {
	Code string `json:"code" db:"code" validate:"required,min=2,max=8"`
	Name string `json:"name" db:"name" validate:"required"`
	Flag string `json:"flag" db:"flag"`
}

// LanguageSummary is a catalog language with the size of its phrase set.
type LanguageSummary struct {
	Language
	PhraseCount int `json:"phrase_count"`
}
