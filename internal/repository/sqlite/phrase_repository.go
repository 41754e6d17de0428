package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/vytor/linguacards/internal/logger"
	"github.com/vytor/linguacards/internal/models"
	"github.com/vytor/linguacards/internal/repository"
)

var phraseColumns = []string{
	"id", "language_code", "english", "translation", "pronunciation", "example", "difficulty", "position",
}

type phraseRepository struct {
	db *sqlx.DB
}

// NewPhraseRepository creates a new PhraseRepository implementation
func NewPhraseRepository(db *sqlx.DB) repository.PhraseRepository {
	return &phraseRepository{db: db}
}

func applyPhraseFilter(query squirrel.SelectBuilder, filter models.PhraseFilter) squirrel.SelectBuilder {
	if filter.LanguageCode != "" {
		query = query.Where(squirrel.Eq{"language_code": filter.LanguageCode})
	}
	if filter.Difficulty != "" {
		query = query.Where(squirrel.Eq{"difficulty": string(filter.Difficulty)})
	}
	return query
}

func (r *phraseRepository) Get(ctx context.Context, languageCode, id string) (*models.Phrase, error) {
	log := logger.FromContext(ctx).WithPrefix("phrase_repo")

	query, args, err := sqlBuilder.Select(phraseColumns...).
		From("phrases").
		Where(squirrel.Eq{"language_code": languageCode, "id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var p models.Phrase
	if err := r.db.GetContext(ctx, &p, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("phrase not found: language=%s id=%s", languageCode, id)
			return nil, nil
		}
		log.Error("failed to get phrase: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *phraseRepository) List(ctx context.Context, filter models.PhraseFilter) ([]models.Phrase, error) {
	log := logger.FromContext(ctx).WithPrefix("phrase_repo")
	log.Debug("listing phrases: language=%s, difficulty=%s", filter.LanguageCode, filter.Difficulty)

	query := applyPhraseFilter(sqlBuilder.Select(phraseColumns...).From("phrases"), filter).
		OrderBy("language_code", "position", "id")

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		if filter.Limit <= 0 {
			query = query.Limit(uint64(1<<63 - 1))
		}
		query = query.Offset(uint64(filter.Offset))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	phrases := []models.Phrase{}
	if err := r.db.SelectContext(ctx, &phrases, sqlStr, args...); err != nil {
		log.Error("failed to list phrases: %v", err)
		return nil, err
	}
	log.Debug("found %d phrases", len(phrases))
	return phrases, nil
}

func (r *phraseRepository) Count(ctx context.Context, filter models.PhraseFilter) (int, error) {
	sqlStr, args, err := applyPhraseFilter(sqlBuilder.Select("COUNT(*)").From("phrases"), filter).ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	err = r.db.GetContext(ctx, &n, sqlStr, args...)
	return n, err
}

func (r *phraseRepository) CountByLanguage(ctx context.Context) (map[string]int, error) {
	sqlStr, args, err := sqlBuilder.Select("language_code", "COUNT(*) AS total").
		From("phrases").
		GroupBy("language_code").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []struct {
		LanguageCode string `db:"language_code"`
		Total        int    `db:"total"`
	}
	if err := r.db.SelectContext(ctx, &rows, sqlStr, args...); err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.LanguageCode] = row.Total
	}
	return counts, nil
}

// UpsertBatch inserts new phrases after the last phrase of their language,
// in batch order, and updates existing ones in place. Updated phrases keep
// their position so repeated or additive imports never reorder a deck.
func (r *phraseRepository) UpsertBatch(ctx context.Context, phrases []models.Phrase) (int, int, error) {
	log := logger.FromContext(ctx).WithPrefix("phrase_repo")
	log.Debug("upserting %d phrases", len(phrases))

	var created, updated int
	err := tx(ctx, r.db, func(tx *sqlx.Tx) error {
		next := map[string]int{}
		for _, p := range phrases {
			existsSQL, existsArgs, err := sqlBuilder.Select("COUNT(*)").
				From("phrases").
				Where(squirrel.Eq{"language_code": p.LanguageCode, "id": p.ID}).
				ToSql()
			if err != nil {
				return err
			}
			var n int
			if err := tx.GetContext(ctx, &n, existsSQL, existsArgs...); err != nil {
				return err
			}

			if n > 0 {
				updateSQL, updateArgs, err := sqlBuilder.Update("phrases").
					SetMap(map[string]any{
						"english":       p.English,
						"translation":   p.Translation,
						"pronunciation": p.Pronunciation,
						"example":       p.Example,
						"difficulty":    string(p.Difficulty),
					}).
					Where(squirrel.Eq{"language_code": p.LanguageCode, "id": p.ID}).
					ToSql()
				if err != nil {
					return err
				}
				if _, err := tx.ExecContext(ctx, updateSQL, updateArgs...); err != nil {
					log.Error("failed to update phrase %s/%s: %v", p.LanguageCode, p.ID, err)
					return err
				}
				updated++
				continue
			}

			pos, ok := next[p.LanguageCode]
			if !ok {
				maxSQL, maxArgs, err := sqlBuilder.Select("COALESCE(MAX(position), -1) + 1").
					From("phrases").
					Where(squirrel.Eq{"language_code": p.LanguageCode}).
					ToSql()
				if err != nil {
					return err
				}
				if err := tx.GetContext(ctx, &pos, maxSQL, maxArgs...); err != nil {
					return err
				}
			}
			next[p.LanguageCode] = pos + 1

			insertSQL, insertArgs, err := sqlBuilder.Insert("phrases").
				Columns(phraseColumns...).
				Values(p.ID, p.LanguageCode, p.English, p.Translation, p.Pronunciation, p.Example, string(p.Difficulty), pos).
				ToSql()
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
				log.Error("failed to insert phrase %s/%s: %v", p.LanguageCode, p.ID, err)
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	log.Debug("phrases upserted: created=%d updated=%d", created, updated)
	return created, updated, nil
}
