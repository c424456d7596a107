package http

import "net/http"

func (s *Server) getDashboard(w http.ResponseWriter, r *http.Request) {
	data, err := s.uc.Dashboard.Compute(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, data)
}
