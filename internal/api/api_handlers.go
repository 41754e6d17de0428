package api

import (
	"encoding/json"
	"net/http"

	"github.com/vytor/linguacards/internal/errors"
	"github.com/vytor/linguacards/internal/logger"
	"github.com/vytor/linguacards/internal/models"
	"github.com/vytor/linguacards/internal/services"
)

type selectLanguageRequest struct {
	Code string `json:"code"`
}

// classifyRequest carries either a classification name or the flag form.
// Flags win when both are present.
type classifyRequest struct {
	Status string             `json:"status"`
	Flags  *models.CardStatus `json:"flags"`
}

type classifyResponse struct {
	*services.StudyView
	Changed bool `json:"changed"`
}

func (s *Server) handleAPILanguages(w http.ResponseWriter, r *http.Request) {
	languages, err := s.CatalogService.ListLanguages(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"languages": languages})
}

func (s *Server) handleAPISession(w http.ResponseWriter, r *http.Request) {
	s.writeView(w, r)
}

func (s *Server) handleAPISelectLanguage(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	var req selectLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid JSON body"))
		return
	}
	if err := s.StudyService.SelectLanguage(r.Context(), sess, req.Code); err != nil {
		handleError(w, r, err)
		return
	}
	logger.FromContext(r.Context()).Info("language switched: session_id=%s language=%s", sess.ID, req.Code)
	s.writeView(w, r)
}

func (s *Server) handleAPIClassify(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())

	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid JSON body"))
		return
	}

	var changed bool
	if req.Flags != nil {
		changed = s.StudyService.ApplyStatus(r.Context(), sess, *req.Flags)
	} else {
		var err error
		if changed, err = s.StudyService.Classify(r.Context(), sess, req.Status); err != nil {
			handleError(w, r, err)
			return
		}
	}
	view, err := s.sessionView(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, classifyResponse{StudyView: view, Changed: changed})
}

func (s *Server) handleAPINext(w http.ResponseWriter, r *http.Request) {
	s.StudyService.Next(r.Context(), sessionFromContext(r.Context()))
	s.writeView(w, r)
}

// writeView responds with the session view, without the language list.
func (s *Server) writeView(w http.ResponseWriter, r *http.Request) {
	view, err := s.sessionView(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, view)
}

func (s *Server) sessionView(r *http.Request) (*services.StudyView, error) {
	view, err := s.StudyService.View(r.Context(), sessionFromContext(r.Context()))
	if err != nil {
		return nil, err
	}
	view.Languages = nil
	return view, nil
}
