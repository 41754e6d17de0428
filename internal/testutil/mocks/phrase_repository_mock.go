package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/linguacards/internal/models"
)

// MockPhraseRepository is a mock implementation of repository.PhraseRepository
type MockPhraseRepository struct {
	mock.Mock
}

func (m *MockPhraseRepository) Get(ctx context.Context, languageCode, id string) (*models.Phrase, error) {
	args := m.Called(ctx, languageCode, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Phrase), args.Error(1)
}

func (m *MockPhraseRepository) List(ctx context.Context, filter models.PhraseFilter) ([]models.Phrase, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Phrase), args.Error(1)
}

func (m *MockPhraseRepository) Count(ctx context.Context, filter models.PhraseFilter) (int, error) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockPhraseRepository) CountByLanguage(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockPhraseRepository) UpsertBatch(ctx context.Context, phrases []models.Phrase) (int, int, error) {
	args := m.Called(ctx, phrases)
	return args.Int(0), args.Int(1), args.Error(2)
}
