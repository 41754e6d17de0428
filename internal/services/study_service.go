package services

import (
	"context"

	"github.com/vytor/linguacards/internal/errors"
	"github.com/vytor/linguacards/internal/logger"
	"github.com/vytor/linguacards/internal/models"
	"github.com/vytor/linguacards/internal/session"
	"github.com/vytor/linguacards/internal/speech"
)

// StudyView is everything the presentation layer needs to draw a card.
type StudyView struct {
	session.View
	Language  *models.Language         `json:"language"`
	Languages []models.LanguageSummary `json:"languages,omitempty"`
	Speech    speech.Settings          `json:"speech"`
}

// StudyService drives study sessions: language selection, classification
// and card advance.
type StudyService interface {
	Start(ctx context.Context) (*session.Session, error)
	Session(ctx context.Context, id string) (*session.Session, error)
	SelectLanguage(ctx context.Context, sess *session.Session, code string) error
	Classify(ctx context.Context, sess *session.Session, classification string) (bool, error)
	ApplyStatus(ctx context.Context, sess *session.Session, status models.CardStatus) bool
	Next(ctx context.Context, sess *session.Session) *models.Phrase
	View(ctx context.Context, sess *session.Session) (*StudyView, error)
}

type studyService struct {
	catalog         CatalogService
	sessions        *session.Store
	defaultLanguage string
}

// NewStudyService creates a new StudyService
func NewStudyService(catalog CatalogService, sessions *session.Store, defaultLanguage string) StudyService {
	return &studyService{catalog: catalog, sessions: sessions, defaultLanguage: defaultLanguage}
}

// Start opens a session on the default language, falling back to the first
// catalog language when the default is unknown.
func (s *studyService) Start(ctx context.Context) (*session.Session, error) {
	log := logger.FromContext(ctx)

	code := s.defaultLanguage
	if _, err := s.catalog.GetLanguage(ctx, code); err != nil {
		if !errors.IsNotFound(err) {
			return nil, err
		}
		languages, err := s.catalog.ListLanguages(ctx)
		if err != nil {
			return nil, err
		}
		if len(languages) == 0 {
			return nil, errors.NewNotFoundError("language", code)
		}
		log.Warn("default language %s not in catalog, using %s", code, languages[0].Code)
		code = languages[0].Code
	}

	sess := s.sessions.Create()
	if err := s.SelectLanguage(ctx, sess, code); err != nil {
		s.sessions.Delete(sess.ID)
		return nil, err
	}
	log.Info("study session started: session_id=%s language=%s", sess.ID, code)
	return sess, nil
}

func (s *studyService) Session(ctx context.Context, id string) (*session.Session, error) {
	if id == "" {
		return nil, errors.NewNoSessionError()
	}
	sess, ok := s.sessions.Get(id)
	if !ok {
		logger.FromContext(ctx).Debug("unknown or expired session: %s", id)
		return nil, errors.NewNoSessionError()
	}
	return sess, nil
}

func (s *studyService) SelectLanguage(ctx context.Context, sess *session.Session, code string) error {
	phrases, err := s.catalog.Phrases(ctx, code)
	if err != nil {
		return err
	}
	sess.SelectLanguage(code, phrases)
	logger.FromContext(ctx).Debug("language selected: session_id=%s language=%s phrases=%d", sess.ID, code, len(phrases))
	return nil
}

func (s *studyService) Classify(ctx context.Context, sess *session.Session, raw string) (bool, error) {
	c, ok := models.ParseClassification(raw)
	if !ok {
		return false, errors.NewValidationError("status", "must be learned, difficult, needsReview or none")
	}
	changed := sess.Classify(c)
	if !changed {
		logger.FromContext(ctx).Debug("classify ignored, no current phrase: session_id=%s", sess.ID)
	}
	return changed, nil
}

func (s *studyService) ApplyStatus(ctx context.Context, sess *session.Session, status models.CardStatus) bool {
	return sess.ApplyStatus(status)
}

func (s *studyService) Next(ctx context.Context, sess *session.Session) *models.Phrase {
	return sess.Next()
}

func (s *studyService) View(ctx context.Context, sess *session.Session) (*StudyView, error) {
	v := sess.View()
	lang, err := s.catalog.GetLanguage(ctx, v.LanguageCode)
	if err != nil {
		return nil, err
	}
	languages, err := s.catalog.ListLanguages(ctx)
	if err != nil {
		return nil, err
	}
	return &StudyView{
		View:      v,
		Language:  lang,
		Languages: languages,
		Speech:    speech.For(v.LanguageCode),
	}, nil
}
