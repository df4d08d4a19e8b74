package response

import (
	"encoding/json"
	"net/http"
)

// DetailResponse is the error payload shape: a single human-readable
// detail string, shown verbatim by clients.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// JSON sends a JSON response with the given status code
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	json.NewEncoder(w).Encode(v)
}

// Detail sends an error JSON response with a detail message
func Detail(w http.ResponseWriter, status int, detail string) {
	JSON(w, status, DetailResponse{Detail: detail})
}

// Common error responses
func BadRequest(w http.ResponseWriter, detail string) {
	Detail(w, http.StatusBadRequest, detail)
}

func NotFound(w http.ResponseWriter, detail string) {
	Detail(w, http.StatusNotFound, detail)
}

func InternalError(w http.ResponseWriter, detail string) {
	Detail(w, http.StatusInternalServerError, detail)
}
