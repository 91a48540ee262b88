package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/matzehuels/critpath/pkg/buildinfo"
	"github.com/matzehuels/critpath/pkg/errors"
	cpio "github.com/matzehuels/critpath/pkg/io"
	"github.com/matzehuels/critpath/pkg/pipeline"
)

type healthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	bi := buildinfo.Get()
	respondOK(w, RequestIDFromContext(r.Context()), healthResponse{
		Status:    "healthy",
		Version:   bi.Version,
		GoVersion: bi.GoVersion,
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	respondOK(w, RequestIDFromContext(r.Context()), s.counters.Snapshot())
}

// dotResponse carries the diagram source of a scheduled project.
type dotResponse struct {
	Name     string  `json:"name"`
	Duration float64 `json:"duration"`
	DOT      string  `json:"dot"`
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	res, ok := s.execute(w, r, nil)
	if !ok {
		return
	}
	respondOK(w, RequestIDFromContext(r.Context()), res.Result)
}

// handleScheduleDOT responds with the Graphviz source. ?detailed=true adds
// all four times to node labels.
func (s *Server) handleScheduleDOT(w http.ResponseWriter, r *http.Request) {
	res, ok := s.execute(w, r, []string{pipeline.FormatDOT})
	if !ok {
		return
	}
	respondOK(w, RequestIDFromContext(r.Context()), dotResponse{
		Name:     res.Name,
		Duration: res.Result.Duration,
		DOT:      string(res.Artifacts[pipeline.FormatDOT]),
	})
}

// execute decodes the project in the request body and runs the pipeline.
// On failure it writes the error response and returns false.
func (s *Server) execute(w http.ResponseWriter, r *http.Request, formats []string) (*pipeline.Result, bool) {
	body := http.MaxBytesReader(w, r.Body, s.config.MaxBodyBytes)
	project, err := cpio.ReadProject(body, cpio.FormatJSON)
	if err != nil {
		respondError(w, r, err)
		return nil, false
	}
	// Engine memory grows with size, not with the body, so size is capped
	// before anything is allocated for the graph.
	if project.Size > s.config.MaxNodes {
		respondError(w, r, errors.New(errors.ErrCodeInvalidSize,
			"size %d exceeds the server limit of %d nodes", project.Size, s.config.MaxNodes))
		return nil, false
	}

	detailed := s.config.Detailed
	if v := r.URL.Query().Get("detailed"); v != "" {
		detailed, _ = strconv.ParseBool(v)
	}

	res, err := s.runner.Execute(r.Context(), pipeline.Options{
		Project:  project,
		Formats:  formats,
		Detailed: detailed,
		Logger:   s.logger.With("request_id", RequestIDFromContext(r.Context())),
	})
	if err != nil {
		respondError(w, r, err)
		return nil, false
	}
	return res, true
}
