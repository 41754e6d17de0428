package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/vytor/linguacards/internal/logger"
	"github.com/vytor/linguacards/internal/models"
	"github.com/vytor/linguacards/internal/repository"
)

type languageRepository struct {
	db *sqlx.DB
}

// NewLanguageRepository creates a new LanguageRepository implementation
func NewLanguageRepository(db *sqlx.DB) repository.LanguageRepository {
	return &languageRepository{db: db}
}

func (r *languageRepository) Get(ctx context.Context, code string) (*models.Language, error) {
	log := logger.FromContext(ctx).WithPrefix("language_repo")
	log.Debug("getting language: code=%s", code)

	query, args, err := sqlBuilder.Select("code", "name", "flag").
		From("languages").
		Where("code = ?", code).
		ToSql()
	if err != nil {
		return nil, err
	}

	var l models.Language
	if err := r.db.GetContext(ctx, &l, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("language not found: code=%s", code)
			return nil, nil
		}
		log.Error("failed to get language: %v", err)
		return nil, err
	}
	return &l, nil
}

func (r *languageRepository) List(ctx context.Context) ([]models.Language, error) {
	log := logger.FromContext(ctx).WithPrefix("language_repo")

	query, args, err := sqlBuilder.Select("code", "name", "flag").
		From("languages").
		OrderBy("rowid").
		ToSql()
	if err != nil {
		return nil, err
	}

	languages := []models.Language{}
	if err := r.db.SelectContext(ctx, &languages, query, args...); err != nil {
		log.Error("failed to list languages: %v", err)
		return nil, err
	}
	log.Debug("found %d languages", len(languages))
	return languages, nil
}

func (r *languageRepository) Count(ctx context.Context) (int, error) {
	query, args, err := sqlBuilder.Select("COUNT(*)").From("languages").ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	err = r.db.GetContext(ctx, &n, query, args...)
	return n, err
}

func (r *languageRepository) Upsert(ctx context.Context, l models.Language) error {
	log := logger.FromContext(ctx).WithPrefix("language_repo")
	log.Debug("upserting language: code=%s", l.Code)

	query, args, err := sqlBuilder.Insert("languages").
		Columns("code", "name", "flag").
		Values(l.Code, l.Name, l.Flag).
		Suffix("ON CONFLICT(code) DO UPDATE SET name = excluded.name, flag = excluded.flag").
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Error("failed to upsert language: %v", err)
		return err
	}
	return nil
}
