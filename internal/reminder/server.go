package reminder

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/showdesk/showdesk/pkg/cerr"
)

type Server struct {
	service *Service
}

func NewServer(service *Service) *Server {
	return &Server{service: service}
}

func (s *Server) Routes(r chi.Router) {
	r.Get("/reminders", s.handleReminders)
	r.Get("/events/{eventID}/tasks/priority", s.handleTasksByPriority)
}

func (s *Server) handleReminders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reminders, err := s.service.CheckTaskReminders(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	if reminders == nil {
		reminders = []Reminder{}
	}
	cerr.SetJSONResponse(ctx, reminders)
}

func (s *Server) handleTasksByPriority(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	partition, err := s.service.TasksByPriority(ctx, chi.URLParam(r, "eventID"))
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, partition)
}
