package event

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"

	"github.com/showdesk/showdesk/internal/eventbus"
	"github.com/showdesk/showdesk/pkg/cerr"
	"github.com/showdesk/showdesk/pkg/civil"
)

type Server struct {
	repo     Repository
	eventBus *eventbus.Bus
}

func NewServer(repo Repository, eventBus *eventbus.Bus) *Server {
	return &Server{
		repo:     repo,
		eventBus: eventBus,
	}
}

// Routes mounts the event CRUD endpoints on r.
func (s *Server) Routes(r chi.Router) {
	r.Post("/events", s.handleCreate)
	r.Get("/events", s.handleList)
	r.Get("/events/{eventID}", s.handleGet)
	r.Put("/events/{eventID}", s.handleUpdate)
	r.Delete("/events/{eventID}", s.handleDelete)
}

type createRequest struct {
	Title  string `json:"title"`
	Date   string `json:"date"`
	Venue  string `json:"venue"`
	Status Status `json:"status"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}
	if req.Title == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "title is required", nil)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	status := req.Status
	if status == "" {
		status = StatusDraft
	}
	if !status.Valid() {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid status", nil)
		return
	}

	now := time.Now()
	e := &Event{
		ID:        ulid.Make().String(),
		Title:     req.Title,
		Date:      date,
		Venue:     req.Venue,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}

	s.eventBus.PublishNew(eventbus.TypeEventCreated, e.ID, map[string]string{"venue": e.Venue})

	cerr.SetJSONResponseStatus(ctx, http.StatusCreated, e)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	events, err := s.repo.List(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	if events == nil {
		events = []*Event{}
	}
	cerr.SetJSONResponse(ctx, events)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	e, err := s.repo.Get(ctx, chi.URLParam(r, "eventID"))
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, e)
}

type updateRequest struct {
	Title  *string `json:"title"`
	Date   *string `json:"date"`
	Venue  *string `json:"venue"`
	Status *Status `json:"status"`
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}

	e, err := s.repo.Get(ctx, chi.URLParam(r, "eventID"))
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}

	if req.Title != nil {
		e.Title = *req.Title
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			cerr.SetJSONError(ctx, err)
			return
		}
		e.Date = date
	}
	if req.Venue != nil {
		e.Venue = *req.Venue
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid status", nil)
			return
		}
		e.Status = *req.Status
	}
	e.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, e); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, e)
}

func parseDate(s string) (civil.Date, error) {
	if s == "" {
		return civil.Date{}, cerr.NewError(cerr.InvalidArgument, "date is required", nil)
	}
	d, err := civil.ParseDate(s)
	if err != nil {
		return civil.Date{}, cerr.NewError(cerr.InvalidArgument, "date must be an ISO calendar date (yyyy-mm-dd)", err)
	}
	return d, nil
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := s.repo.Delete(ctx, chi.URLParam(r, "eventID")); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, map[string]string{"status": "deleted"})
}
