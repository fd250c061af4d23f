package server

import (
	"net/http"

	"github.com/OneForces/effectivness/internal/ats"
	"github.com/OneForces/effectivness/internal/batch"
	"github.com/OneForces/effectivness/internal/pii"
	"github.com/OneForces/effectivness/internal/whatif"
)

type scoreRequest struct {
	JDText     string `json:"jd_text" validate:"required"`
	ResumeText string `json:"resume_text" validate:"required"`
}

type batchResume struct {
	Name string `json:"name" validate:"required"`
	Text string `json:"text" validate:"required"`
}

type batchRequest struct {
	JDText  string        `json:"jd_text" validate:"required"`
	Resumes []batchResume `json:"resumes" validate:"required,min=1,dive"`
}

type whatIfRequest struct {
	JDText     string   `json:"jd_text" validate:"required"`
	ResumeText string   `json:"resume_text" validate:"required"`
	AddTerms   []string `json:"add_terms" validate:"required,min=1"`
}

type anonymizeRequest struct {
	Text string `json:"text" validate:"required"`
}

// handleScore scores one resume against one job description.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result := s.scorer.ScoreFit(r.Context(), req.JDText, req.ResumeText)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleBatch scores many resumes against one job description and returns
// them ranked.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	rows, err := batch.Score(r.Context(), s.scorer, req.JDText, toBatchResumes(req.Resumes), s.workers)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"ranking": rows})
}

// handleWhatIf reports how the score would change if the resume gained each
// of the listed skills.
func (s *Server) handleWhatIf(w http.ResponseWriter, r *http.Request) {
	var req whatIfRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	base, deltas := whatif.DeltaScores(r.Context(), s.scorer, req.JDText, req.ResumeText, req.AddTerms)
	s.jsonResponse(w, http.StatusOK, map[string]any{"base": base, "deltas": deltas})
}

// handleAnonymize strips personal data from resume text.
func (s *Server) handleAnonymize(w http.ResponseWriter, r *http.Request) {
	var req anonymizeRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"text": pii.Anonymize(req.Text)})
}

// handleATS runs the resume hygiene checks.
func (s *Server) handleATS(w http.ResponseWriter, r *http.Request) {
	var req anonymizeRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	s.jsonResponse(w, http.StatusOK, ats.Check(req.Text))
}
