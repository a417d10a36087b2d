package task

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

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

func (s *Server) Routes(r chi.Router) {
	r.Get("/events/{eventID}/tasks", s.handleListByEvent)
	r.Post("/events/{eventID}/tasks", s.handleCreate)
	r.Get("/tasks/{taskID}", s.handleGet)
	r.Patch("/tasks/{taskID}/status", s.handleUpdateStatus)
}

func (s *Server) handleListByEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tasks, err := s.repo.ListByEvent(ctx, chi.URLParam(r, "eventID"))
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	if tasks == nil {
		tasks = []*Task{}
	}
	cerr.SetJSONResponse(ctx, tasks)
}

type createRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Assignee    Assignee `json:"assignee"`
	Category    Category `json:"category"`
	DueDate     string   `json:"dueDate"`
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	eventID := chi.URLParam(r, "eventID")

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}
	if req.Title == "" {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "title is required", nil)
		return
	}
	dueDate, err := civil.ParseDate(req.DueDate)
	if err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "dueDate must be an ISO calendar date (yyyy-mm-dd)", err)
		return
	}
	priority := req.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	now := time.Now()
	t := &Task{
		ID:          ManualTaskID(eventID),
		EventID:     eventID,
		Title:       req.Title,
		Description: req.Description,
		Status:      StatusPending,
		Priority:    priority,
		Assignee:    req.Assignee,
		Category:    req.Category,
		DueDate:     dueDate,
		IsAutomated: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponseStatus(ctx, http.StatusCreated, t)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	t, err := s.repo.Get(ctx, chi.URLParam(r, "taskID"))
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, t)
}

type updateStatusRequest struct {
	Status Status `json:"status"`
}

func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid request body", err)
		return
	}
	if !req.Status.Valid() {
		cerr.SetNewJSONError(ctx, cerr.InvalidArgument, "invalid status", nil)
		return
	}

	t, err := s.repo.Get(ctx, chi.URLParam(r, "taskID"))
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}

	previous := t.Status
	t.Status = req.Status
	t.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, t); err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}

	s.eventBus.PublishNew(eventbus.TypeTaskStatusChanged, t.ID, map[string]string{
		"event_id": t.EventID,
		"from":     string(previous),
		"to":       string(t.Status),
	})

	cerr.SetJSONResponse(ctx, t)
}
