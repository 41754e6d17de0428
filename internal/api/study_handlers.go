package api

import (
	"net/http"
	"strings"

	"github.com/vytor/linguacards/internal/logger"
)

func (s *Server) handleStudy(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	sess := sessionFromContext(r.Context())

	view, err := s.StudyService.View(r.Context(), sess)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if view.Phrase == nil {
		log.Debug("no phrases for language %s", view.LanguageCode)
	}

	s.render(w, r, "pages/study.html", pageData{
		"view":      view.View,
		"language":  view.Language,
		"languages": view.Languages,
		"speech":    view.Speech,
		"theme":     view.Progress.Theme,
	})
}

func (s *Server) handleSelectLanguage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	sess := sessionFromContext(r.Context())

	code := strings.TrimSpace(r.FormValue("code"))
	if err := s.StudyService.SelectLanguage(r.Context(), sess, code); err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("language switched: session_id=%s language=%s", sess.ID, code)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleClassifyCard(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	if _, err := s.StudyService.Classify(r.Context(), sess, r.FormValue("status")); err != nil {
		handleError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleNextCard(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	s.StudyService.Next(r.Context(), sess)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
