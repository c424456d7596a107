package http

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/types"
)

type assistantRequest struct {
	Question     string `json:"question"`
	AssessmentID string `json:"assessment_id,omitempty"`
}

func (s *Server) askAssistant(w http.ResponseWriter, r *http.Request) {
	var req assistantRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, goerr.Wrap(errBadRequest, "invalid assistant request"))
		return
	}

	reply, err := s.uc.Assistant.Ask(r.Context(), req.Question, types.AssessmentID(req.AssessmentID))
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, reply)
}
