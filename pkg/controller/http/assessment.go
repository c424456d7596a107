package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/interfaces"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/model"
	"github.com/ojhahemant/nhs-triage-app/pkg/domain/types"
	"github.com/ojhahemant/nhs-triage-app/pkg/service/triage"
)

type caseRequest struct {
	ClinicalDescription   string   `json:"clinical_description"`
	PatientAge            *int     `json:"patient_age,omitempty"`
	PriorSymptoms         []string `json:"prior_symptoms,omitempty"`
	ExtractedDocumentText string   `json:"extracted_document_text,omitempty"`
	ImageDescription      string   `json:"image_description,omitempty"`
}

func (req *caseRequest) evidence() *model.CaseEvidence {
	return &model.CaseEvidence{
		ClinicalDescription:   req.ClinicalDescription,
		PatientAge:            req.PatientAge,
		PriorSymptoms:         req.PriorSymptoms,
		ExtractedDocumentText: req.ExtractedDocumentText,
		ImageDescription:      req.ImageDescription,
	}
}

type createAssessmentRequest struct {
	caseRequest
	Model       string  `json:"model,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

func (s *Server) createAssessment(w http.ResponseWriter, r *http.Request) {
	var req createAssessmentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, goerr.Wrap(errBadRequest, "invalid assessment request"))
		return
	}

	created, err := s.uc.Assessment.Create(r.Context(), req.evidence(), triage.Options{
		Model:       req.Model,
		Temperature: req.Temperature,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, created)
}

type bulkAssessmentRequest struct {
	Cases       []caseRequest `json:"cases"`
	Model       string        `json:"model,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type bulkAssessmentResponse struct {
	Assessments []*model.Assessment `json:"assessments"`
}

func (s *Server) bulkCreateAssessments(w http.ResponseWriter, r *http.Request) {
	var req bulkAssessmentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, goerr.Wrap(errBadRequest, "invalid bulk request"))
		return
	}

	evidences := make([]*model.CaseEvidence, len(req.Cases))
	for i := range req.Cases {
		evidences[i] = req.Cases[i].evidence()
	}

	created, err := s.uc.Assessment.BulkCreate(r.Context(), evidences, triage.Options{
		Model:       req.Model,
		Temperature: req.Temperature,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, bulkAssessmentResponse{Assessments: created})
}

type listAssessmentsResponse struct {
	Assessments []*model.Assessment `json:"assessments"`
}

func (s *Server) listAssessments(w http.ResponseWriter, r *http.Request) {
	var opts []interfaces.ListAssessmentOption

	if category := r.URL.Query().Get("category"); category != "" {
		parsed, err := types.ParseCategory(category)
		if err != nil {
			respondError(w, r, goerr.Wrap(errBadRequest, "invalid category filter", goerr.V("category", category)))
			return
		}
		opts = append(opts, interfaces.WithCategory(parsed))
	}

	listed, err := s.uc.Assessment.List(r.Context(), opts...)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, listAssessmentsResponse{Assessments: listed})
}

func (s *Server) getAssessment(w http.ResponseWriter, r *http.Request) {
	id := types.AssessmentID(chi.URLParam(r, "id"))

	assessment, err := s.uc.Assessment.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, assessment)
}

type modelsResponse struct {
	Models []modelInfo `json:"models"`
}

type modelInfo struct {
	Name string `json:"name"`
}

func (s *Server) listModels(w http.ResponseWriter, r *http.Request) {
	models := s.uc.Models.List(r.Context())

	resp := modelsResponse{Models: make([]modelInfo, len(models))}
	for i, m := range models {
		resp.Models[i] = modelInfo{Name: m.Name}
	}

	respondJSON(w, r, http.StatusOK, resp)
}
