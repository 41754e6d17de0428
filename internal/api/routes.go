package api

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
)

const requestTimeout = 15 * time.Second

// Routes builds the HTTP handler. static is the asset tree served under
// /static/.
func (s *Server) Routes(static fs.FS) http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.Group(func(r chi.Router) {
		r.Use(timeoutMiddleware(requestTimeout))
		r.Use(s.sessionMiddleware)

		r.Get("/", s.handleStudy)
		r.Post("/language", s.handleSelectLanguage)
		r.Post("/cards/classify", s.handleClassifyCard)
		r.Post("/cards/next", s.handleNextCard)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(s.corsMiddleware())
		r.Use(timeoutMiddleware(requestTimeout))

		r.Get("/languages", s.handleAPILanguages)
		r.Group(func(r chi.Router) {
			r.Use(s.sessionMiddleware)
			r.Get("/session", s.handleAPISession)
			r.Post("/session/language", s.handleAPISelectLanguage)
			r.Post("/session/classify", s.handleAPIClassify)
			r.Post("/session/next", s.handleAPINext)
		})
	})

	return r
}

func (s *Server) corsMiddleware() func(http.Handler) http.Handler {
	origins := s.CORSAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
	})
	return c.Handler
}
