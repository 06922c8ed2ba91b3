package handler

import "net/http"

// healthResponse is the liveness payload served at the root route.
type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// GetRoot handles GET /.
// It returns HTTP 200 with a static liveness payload when the server is running.
func (s *Server) GetRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, healthResponse{
		Status:  "ok",
		Message: "Coordinates API is running",
	})
}
