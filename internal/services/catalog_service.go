package services

import (
	"context"

	"github.com/samber/lo"
	"github.com/vytor/linguacards/internal/errors"
	"github.com/vytor/linguacards/internal/logger"
	"github.com/vytor/linguacards/internal/models"
	"github.com/vytor/linguacards/internal/repository"
)

// CatalogService exposes the read-only phrase catalog.
type CatalogService interface {
	ListLanguages(ctx context.Context) ([]models.LanguageSummary, error)
	GetLanguage(ctx context.Context, code string) (*models.Language, error)
	Phrases(ctx context.Context, code string) ([]models.Phrase, error)
}

type catalogService struct {
	languageRepo repository.LanguageRepository
	phraseRepo   repository.PhraseRepository
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(languageRepo repository.LanguageRepository, phraseRepo repository.PhraseRepository) CatalogService {
	return &catalogService{languageRepo: languageRepo, phraseRepo: phraseRepo}
}

func (s *catalogService) ListLanguages(ctx context.Context) ([]models.LanguageSummary, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing languages")

	languages, err := s.languageRepo.List(ctx)
	if err != nil {
		log.Error("failed to list languages: %v", err)
		return nil, errors.NewInternalError(err)
	}
	counts, err := s.phraseRepo.CountByLanguage(ctx)
	if err != nil {
		log.Error("failed to count phrases: %v", err)
		return nil, errors.NewInternalError(err)
	}

	return lo.Map(languages, func(l models.Language, _ int) models.LanguageSummary {
		return models.LanguageSummary{Language: l, PhraseCount: counts[l.Code]}
	}), nil
}

func (s *catalogService) GetLanguage(ctx context.Context, code string) (*models.Language, error) {
	if code == "" {
		return nil, errors.NewValidationError("code", "must not be empty")
	}
	lang, err := s.languageRepo.Get(ctx, code)
	if err != nil {
		logger.FromContext(ctx).Error("failed to get language: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if lang == nil {
		return nil, errors.NewNotFoundError("language", code)
	}
	return lang, nil
}

// Phrases returns the ordered phrase set for code. A known language with no
// phrases yields an empty slice, not an error.
func (s *catalogService) Phrases(ctx context.Context, code string) ([]models.Phrase, error) {
	if _, err := s.GetLanguage(ctx, code); err != nil {
		return nil, err
	}
	phrases, err := s.phraseRepo.List(ctx, models.PhraseFilter{LanguageCode: code})
	if err != nil {
		logger.FromContext(ctx).Error("failed to list phrases: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if len(phrases) == 0 {
		logger.FromContext(ctx).Warn("no phrases available for language %s", code)
	}
	return phrases, nil
}
