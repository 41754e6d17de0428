package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/vytor/linguacards/internal/errors"
	"github.com/vytor/linguacards/internal/models"
	"github.com/vytor/linguacards/internal/repository/sqlite"
	"github.com/vytor/linguacards/internal/services"
	"github.com/vytor/linguacards/internal/session"
	"github.com/vytor/linguacards/internal/testutil"
)

func newStudyService(t *testing.T, defaultLanguage string) (services.StudyService, *session.Store) {
	database := testutil.NewTestDB(t)
	t.Cleanup(func() { testutil.MustClose(t, database) })

	testutil.SeedLanguage(t, database, models.Language{Code: "es", Name: "Spanish"},
		testutil.Phrases("es", models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard)...)
	testutil.SeedLanguage(t, database, models.Language{Code: "ko", Name: "Korean"})

	catalog := services.NewCatalogService(sqlite.NewLanguageRepository(database.DB), sqlite.NewPhraseRepository(database.DB))
	store := session.NewStore()
	return services.NewStudyService(catalog, store, defaultLanguage), store
}

func TestStudyService_StartOnDefaultLanguage(t *testing.T) {
	svc, store := newStudyService(t, "es")
	ctx := context.Background()

	sess, err := svc.Start(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())

	view, err := svc.View(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, "es", view.LanguageCode)
	assert.Equal(t, "es-1", view.Phrase.ID)
	assert.Equal(t, 3, view.Progress.TotalCards)
	assert.Equal(t, "es-ES", view.Speech.Locale)
	assert.Equal(t, "Spanish", view.Language.Name)
	assert.Len(t, view.Languages, 2)
}

func TestStudyService_StartFallsBackToFirstLanguage(t *testing.T) {
	svc, _ := newStudyService(t, "zz")

	sess, err := svc.Start(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "es", sess.LanguageCode())
}

func TestStudyService_Session(t *testing.T) {
	svc, _ := newStudyService(t, "es")
	ctx := context.Background()
	sess, err := svc.Start(ctx)
	require.NoError(t, err)

	got, err := svc.Session(ctx, sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)

	_, err = svc.Session(ctx, "missing")
	assert.Equal(t, apperrors.ErrCodeNoSession, apperrors.As(err).Code)
	_, err = svc.Session(ctx, "")
	assert.Equal(t, apperrors.ErrCodeNoSession, apperrors.As(err).Code)
}

func TestStudyService_ScenarioAndLanguageSwitch(t *testing.T) {
	svc, _ := newStudyService(t, "es")
	ctx := context.Background()
	sess, err := svc.Start(ctx)
	require.NoError(t, err)

	for _, status := range []string{"learned", "learned", "difficult"} {
		changed, err := svc.Classify(ctx, sess, status)
		require.NoError(t, err)
		require.True(t, changed)
		svc.Next(ctx, sess)
	}

	view, err := svc.View(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, 3, view.Progress.Score)
	assert.Equal(t, 0, view.Progress.Streak)
	assert.Equal(t, 3, view.Progress.CompletedCards)
	assert.Equal(t, "es-1", view.Phrase.ID)

	require.NoError(t, svc.SelectLanguage(ctx, sess, "ko"))

	view, err = svc.View(ctx, sess)
	require.NoError(t, err)
	assert.Nil(t, view.Phrase)
	assert.Equal(t, 0, view.Progress.Score)
	assert.Equal(t, 25, view.Progress.TotalCards)
	assert.Equal(t, "ko-KR", view.Speech.Locale)

	changed, err := svc.Classify(ctx, sess, "learned")
	require.NoError(t, err)
	assert.False(t, changed, "empty phrase set makes classify a no-op")
}

func TestStudyService_ClassifyRejectsUnknownStatus(t *testing.T) {
	svc, _ := newStudyService(t, "es")
	ctx := context.Background()
	sess, err := svc.Start(ctx)
	require.NoError(t, err)

	_, err = svc.Classify(ctx, sess, "mastered")

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeValidation, apperrors.As(err).Code)
}

func TestStudyService_SelectUnknownLanguageKeepsProgress(t *testing.T) {
	svc, _ := newStudyService(t, "es")
	ctx := context.Background()
	sess, err := svc.Start(ctx)
	require.NoError(t, err)
	_, err = svc.Classify(ctx, sess, "needsReview")
	require.NoError(t, err)

	err = svc.SelectLanguage(ctx, sess, "xx")

	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, 1, sess.View().Progress.Score)
}

func TestStudyService_ApplyStatus(t *testing.T) {
	svc, _ := newStudyService(t, "es")
	ctx := context.Background()
	sess, err := svc.Start(ctx)
	require.NoError(t, err)

	assert.True(t, svc.ApplyStatus(ctx, sess, models.CardStatus{Learned: true, NeedsReview: true}))
	assert.Equal(t, models.Learned, sess.View().Classification)
}
