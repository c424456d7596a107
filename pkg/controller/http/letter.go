package http

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
)

type generateLetterRequest struct {
	TemplateID  string                   `json:"template_id"`
	Patient     model.PatientData        `json:"patient"`
	Appointment model.AppointmentDetails `json:"appointment"`
	Extra       map[string]string        `json:"extra,omitempty"`
}

func (s *Server) generateLetter(w http.ResponseWriter, r *http.Request) {
	var req generateLetterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, goerr.Wrap(errBadRequest, "invalid letter request"))
		return
	}

	generated, err := s.uc.Letter.Generate(r.Context(), req.TemplateID, req.Patient, req.Appointment, req.Extra)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, generated)
}

type previewLetterRequest struct {
	TemplateID string `json:"template_id"`
	Category   string `json:"category,omitempty"`
}

func (s *Server) previewLetter(w http.ResponseWriter, r *http.Request) {
	var req previewLetterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, goerr.Wrap(errBadRequest, "invalid preview request"))
		return
	}

	preview, err := s.uc.Letter.Preview(r.Context(), req.TemplateID, req.Category)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, preview)
}

type letterTemplatesResponse struct {
	Templates []model.LetterTemplateInfo `json:"templates"`
}

func (s *Server) listLetterTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := s.uc.Letter.Templates(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, letterTemplatesResponse{Templates: templates})
}
