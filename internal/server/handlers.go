package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/abhisek/mcqgen/internal/mcq"
	"github.com/abhisek/mcqgen/internal/mcqgen"
	"github.com/abhisek/mcqgen/internal/pipeline"
)

type generateRequest struct {
	Text         string `json:"text"`
	NumQuestions *int   `json:"num_questions,omitempty"`
	Difficulty   string `json:"difficulty,omitempty"`
}

type batchRequest struct {
	Texts               []string `json:"texts"`
	NumQuestionsPerText *int     `json:"num_questions_per_text,omitempty"`
}

type formatRequest struct {
	Record mcq.Record `json:"record"`
}

type recordsResponse struct {
	Count int          `json:"count"`
	MCQs  []mcq.Record `json:"mcqs"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !s.decode(w, r, &req) {
		return
	}

	records, err := s.pipeline.Generate(r.Context(), req.Text, s.count(req.NumQuestions), req.Difficulty)
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, recordsResponse{Count: len(records), MCQs: records})
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if !s.decode(w, r, &req) {
		return
	}

	records, err := s.pipeline.BatchProcess(r.Context(), req.Texts, s.count(req.NumQuestionsPerText))
	if err != nil {
		s.respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, recordsResponse{Count: len(records), MCQs: records})
}

func (s *Server) handleFormat(w http.ResponseWriter, r *http.Request) {
	var req formatRequest
	if !s.decode(w, r, &req) {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, mcq.FormatForDisplay(req.Record))
}

// count returns n or the configured default when the field was omitted.
func (s *Server) count(n *int) int {
	if n == nil {
		return s.cfg.NumQuestions
	}
	return *n
}

// decode reads a JSON body into v, writing a 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

// respondError maps pipeline errors to status codes.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, pipeline.ErrInvalidInput):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, mcqgen.ErrNegativeCount):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.log.Error("generation request failed", zap.Error(err))
	}
	respondJSON(w, status, errorResponse{Error: err.Error()})
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		_ = enc.Encode(v)
	}
}
