package session_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/linguacards/internal/flashcard"
	"github.com/vytor/linguacards/internal/models"
	"github.com/vytor/linguacards/internal/session"
)

func threePhrases() []models.Phrase {
	return []models.Phrase{
		{ID: "A", LanguageCode: "es", Difficulty: models.DifficultyEasy},
		{ID: "B", LanguageCode: "es", Difficulty: models.DifficultyMedium},
		{ID: "C", LanguageCode: "es", Difficulty: models.DifficultyHard},
	}
}

func TestSession_ClassifyAndAdvance(t *testing.T) {
	sess := session.NewStore().Create()
	sess.SelectLanguage("es", threePhrases())

	require.True(t, sess.Classify(models.Learned))
	sess.Next()
	require.True(t, sess.Classify(models.Learned))
	sess.Next()
	require.True(t, sess.Classify(models.Difficult))

	v := sess.View()
	assert.Equal(t, "C", v.Phrase.ID)
	assert.Equal(t, models.Difficult, v.Classification)
	assert.Equal(t, models.CardStatus{Difficult: true}, v.Status)
	assert.Equal(t, 3, v.Position)
	assert.Equal(t, 3, v.Progress.Score)
	assert.Equal(t, 0, v.Progress.Streak)
	assert.Equal(t, 3, v.Progress.CompletedCards)
	assert.Equal(t, []string{"A", "B"}, v.Progress.LearnedCards)
	assert.Equal(t, []string{"C"}, v.Progress.DifficultCards)

	assert.Equal(t, "A", sess.Next().ID, "deck loops back to the first card")
	assert.Equal(t, models.Learned, sess.View().Classification)
}

func TestSession_EmptyCatalogIsNoOp(t *testing.T) {
	sess := session.NewStore().Create()
	sess.SelectLanguage("ko", nil)

	for _, c := range []models.Classification{models.Learned, models.Difficult, models.NeedsReview} {
		assert.False(t, sess.Classify(c))
	}
	assert.False(t, sess.ApplyStatus(models.CardStatus{Learned: true}))
	assert.Nil(t, sess.Next())

	v := sess.View()
	assert.Nil(t, v.Phrase)
	assert.Equal(t, "ko", v.LanguageCode)
	assert.Equal(t, 0, v.Progress.Score)
	assert.Equal(t, 0, v.Progress.Streak)
	assert.Equal(t, 0, v.Progress.CompletedCards)
	assert.Equal(t, flashcard.DefaultTotalCards, v.Progress.TotalCards)
}

func TestSession_LanguageChangeResetsProgress(t *testing.T) {
	sess := session.NewStore().Create()
	sess.SelectLanguage("es", threePhrases())
	sess.Classify(models.Learned)
	sess.Next()

	sess.SelectLanguage("fr", []models.Phrase{{ID: "fr-1", Difficulty: models.DifficultyEasy}})

	v := sess.View()
	assert.Equal(t, "fr", sess.LanguageCode())
	assert.Equal(t, "fr-1", v.Phrase.ID)
	assert.Equal(t, 1, v.Position)
	assert.Equal(t, 1, v.Progress.TotalCards)
	assert.Equal(t, 0, v.Progress.Score)
	assert.Empty(t, v.Progress.LearnedCards)
}

func TestSession_ApplyStatusPriority(t *testing.T) {
	sess := session.NewStore().Create()
	sess.SelectLanguage("es", threePhrases())

	sess.ApplyStatus(models.CardStatus{Difficult: true, NeedsReview: true})

	assert.Equal(t, models.Difficult, sess.View().Classification)
}

func TestSession_ConcurrentCallsStayConsistent(t *testing.T) {
	sess := session.NewStore().Create()
	sess.SelectLanguage("es", threePhrases())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			sess.Classify(models.NeedsReview)
		}()
		go func() {
			defer wg.Done()
			sess.Next()
		}()
	}
	wg.Wait()

	p := sess.View().Progress
	assert.Equal(t, len(p.LearnedCards)+len(p.DifficultCards)+len(p.ReviewCards), p.CompletedCards)
	assert.Equal(t, 50, p.Score)
}

func TestStore_GetAndSweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store := session.NewStore(session.WithClock(func() time.Time { return now }))

	old := store.Create()
	now = now.Add(30 * time.Minute)
	fresh := store.Create()
	require.Equal(t, 2, store.Len())

	now = now.Add(45 * time.Minute)
	assert.Equal(t, 1, store.Sweep(time.Hour))

	_, ok := store.Get(old.ID)
	assert.False(t, ok)
	got, ok := store.Get(fresh.ID)
	require.True(t, ok)
	assert.Same(t, fresh, got)

	// Get refreshed the session, so it survives another sweep.
	now = now.Add(59 * time.Minute)
	assert.Equal(t, 0, store.Sweep(time.Hour))

	store.Delete(fresh.ID)
	assert.Equal(t, 0, store.Len())
}

func TestStore_CreateUsesUniqueIDs(t *testing.T) {
	store := session.NewStore()
	a, b := store.Create(), store.Create()

	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, a.ID, 36)
}
