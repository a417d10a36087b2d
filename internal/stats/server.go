package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/showdesk/showdesk/pkg/cerr"
)

type Server struct {
	aggregator *Aggregator
}

func NewServer(aggregator *Aggregator) *Server {
	return &Server{aggregator: aggregator}
}

func (s *Server) Routes(r chi.Router) {
	r.Get("/stats", s.handleStats)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	stats, err := s.aggregator.Collect(ctx)
	if err != nil {
		cerr.SetJSONError(ctx, err)
		return
	}
	cerr.SetJSONResponse(ctx, stats)
}
