package autotask

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/showdesk/showdesk/pkg/cerr"
)

type Server struct {
	injector *Injector
}

func NewServer(injector *Injector) *Server {
	return &Server{injector: injector}
}

func (s *Server) Routes(r chi.Router) {
	r.Post("/events/{eventID}/tasks/generate", s.handleGenerate)
	r.Get("/events/{eventID}/tasks/preview", s.handlePreview)
}

type generateResponse struct {
	Created int `json:"created"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	created, err := s.injector.InjectStandardTasks(ctx, chi.URLParam(r, "eventID"))
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, generateResponse{Created: created})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tasks, err := s.injector.Preview(ctx, chi.URLParam(r, "eventID"))
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, tasks)
}
