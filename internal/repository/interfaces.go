package repository

import (
	"context"

	"github.com/vytor/linguacards/internal/models"
)

// LanguageRepository handles catalog language access.
// Get returns (nil, nil) when the code is unknown.
type LanguageRepository interface {
	Get(ctx context.Context, code string) (*models.Language, error)
	List(ctx context.Context) ([]models.Language, error)
	Count(ctx context.Context) (int, error)
	Upsert(ctx context.Context, language models.Language) error
}

// PhraseRepository handles catalog phrase access. Phrases come back in
// catalog order.
type PhraseRepository interface {
	Get(ctx context.Context, languageCode, id string) (*models.Phrase, error)
	List(ctx context.Context, filter models.PhraseFilter) ([]models.Phrase, error)
	Count(ctx context.Context, filter models.PhraseFilter) (int, error)
	CountByLanguage(ctx context.Context) (map[string]int, error)
	UpsertBatch(ctx context.Context, phrases []models.Phrase) (created, updated int, err error)
}
