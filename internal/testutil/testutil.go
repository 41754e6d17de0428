package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vytor/linguacards/internal/db"
	"github.com/vytor/linguacards/internal/models"
)

// NewTestDB opens an in-memory catalog database with all migrations applied.
func NewTestDB(t *testing.T) *db.DB {
	database, err := db.Open(":memory:")
	require.NoError(t, err)
	return database
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}

// SeedLanguage inserts a language and its phrases in order.
func SeedLanguage(t *testing.T, database *db.DB, lang models.Language, phrases ...models.Phrase) {
	ctx := context.Background()
	_, err := database.ExecContext(ctx, `INSERT INTO languages (code, name, flag) VALUES (?, ?, ?)`, lang.Code, lang.Name, lang.Flag)
	require.NoError(t, err)
	for i, p := range phrases {
		_, err := database.ExecContext(ctx, `
INSERT INTO phrases (language_code, id, english, translation, pronunciation, example, difficulty, position)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`, lang.Code, p.ID, p.English, p.Translation, p.Pronunciation, p.Example, string(p.Difficulty), i)
		require.NoError(t, err)
	}
}

// Phrases builds one phrase per difficulty with ids "<code>-1", "<code>-2", ...
func Phrases(code string, difficulties ...models.Difficulty) []models.Phrase {
	out := make([]models.Phrase, 0, len(difficulties))
	for i, d := range difficulties {
		id := code + "-" + string(rune('1'+i))
		out = append(out, models.Phrase{
			ID:           id,
			LanguageCode: code,
			English:      "phrase " + id,
			Translation:  "translation " + id,
			Difficulty:   d,
			Position:     i,
		})
	}
	return out
}
