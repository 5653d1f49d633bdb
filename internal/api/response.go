package api

import (
	"net/http"

	"devops-info/service/internal/common"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, body any) {
	common.RespondJSON(w, statusCode, body)
}

// NotFoundHandler answers unmatched paths with a JSON 404.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	common.RespondError(w, http.StatusNotFound, "Not Found")
}

// MethodNotAllowedHandler answers known paths hit with the wrong verb.
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	common.RespondError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}
