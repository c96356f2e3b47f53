package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"solo-ide-backend/internal/models"
)

const maxBodyBytes = 1 << 20

const LivenessMessage = "✅ Backend is running!"

// Root is the liveness probe served on GET /.
func Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, LivenessMessage)
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorResp("Not found"))
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorResp("Method not allowed"))
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(message string) models.ErrorResponse {
	return models.ErrorResponse{Error: message}
}

// decodeBody reads the JSON body into T. A missing, empty or malformed body
// decodes to the zero value, so absent fields read as empty strings. The only
// error is a body over maxBodyBytes, which callers answer with 413.
func decodeBody[T any](w http.ResponseWriter, r *http.Request) (T, error) {
	var req T
	if r.Body == nil {
		return req, nil
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var zero T
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return zero, fmt.Errorf("Request body exceeds %d bytes", tooLarge.Limit)
		}
		if !errors.Is(err, io.EOF) {
			log.Printf("ignoring unreadable body on %s %s: %v", r.Method, r.URL.Path, err)
		}
		return zero, nil
	}
	return req, nil
}
