package common

import (
	"encoding/json"
	"net/http"
	"time"

	"devops-info/service/internal/constants"
	"devops-info/service/internal/logging"
	"devops-info/service/internal/models/dtos"
)

// RespondJSON writes body as JSON with the given status code.
func RespondJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err.Error())
	}
}

// RespondError sends a standardized JSON error response.
func RespondError(w http.ResponseWriter, code int, message string) {
	RespondJSON(w, code, dtos.ErrorResponse{
		Status:    string(constants.APIStatusError),
		Timestamp: time.Now().UTC(),
		Error:     message,
	})
}
