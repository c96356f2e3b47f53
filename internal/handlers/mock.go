package handlers

import (
	"fmt"
	"net/http"

	"solo-ide-backend/internal/models"
)

// MockHandler serves the first backend version, which answers /ask with a
// templated string and never calls a model.
type MockHandler struct{}

func NewMockHandler() *MockHandler {
	return &MockHandler{}
}

func MockReply(message string) string {
	return fmt.Sprintf("Mock AI response for: '%s'", message)
}

func (h *MockHandler) Ask(w http.ResponseWriter, r *http.Request) {
	req, err := decodeBody[models.AskRequest](w, r)
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResp(err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, models.ReplyResponse{Reply: MockReply(req.Message)})
}
