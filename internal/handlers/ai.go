package handlers

import (
	"context"
	"log"
	"net/http"

	"solo-ide-backend/internal/middleware"
	"solo-ide-backend/internal/models"
	"solo-ide-backend/internal/services"
)

const (
	NotConfiguredAnswer        = "⚠️ AI is not configured on this server. Set GEMINI_API_KEY to get real answers."
	AutocompleteFallbackSuffix = "\n# (AI not configured, no autocomplete)"
)

type aiClient interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// AIHandler serves the Gemini-backed routes. With an Unconfigured capability
// every route answers with a fixed fallback and never touches the client.
type AIHandler struct {
	capability services.Capability
	ai         aiClient
}

func NewAIHandler(capability services.Capability, ai aiClient) *AIHandler {
	if ai == nil {
		capability = services.Unconfigured
	}
	return &AIHandler{capability: capability, ai: ai}
}

func (h *AIHandler) configured() bool {
	return h.capability == services.Configured
}

func (h *AIHandler) Ask(w http.ResponseWriter, r *http.Request) {
	req, err := decodeBody[models.AskRequest](w, r)
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResp(err.Error()))
		return
	}
	if req.Question == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("No question provided"))
		return
	}

	if !h.configured() {
		writeJSON(w, http.StatusOK, models.AnswerResponse{Answer: NotConfiguredAnswer})
		return
	}

	answer, err := h.ai.Ask(r.Context(), req.Question)
	if err != nil {
		h.upstreamFailed(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.AnswerResponse{Answer: answer})
}

// Generate ignores the request body; the project prompt is fixed.
func (h *AIHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if !h.configured() {
		writeJSON(w, http.StatusOK, models.GenerateResponse{Files: services.DemoProject()})
		return
	}

	raw, err := h.ai.Ask(r.Context(), services.BuildProjectPrompt())
	if err != nil {
		h.upstreamFailed(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.GenerateResponse{Files: services.ParseProject(raw)})
}

func (h *AIHandler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	req, err := decodeBody[models.AutocompleteRequest](w, r)
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResp(err.Error()))
		return
	}
	if req.Code == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("No code provided"))
		return
	}

	if !h.configured() {
		writeJSON(w, http.StatusOK, models.AutocompleteResponse{Completion: req.Code + AutocompleteFallbackSuffix})
		return
	}

	completion, err := h.ai.Ask(r.Context(), services.BuildAutocompletePrompt(req.Code))
	if err != nil {
		h.upstreamFailed(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.AutocompleteResponse{Completion: completion})
}

func (h *AIHandler) upstreamFailed(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("AI request failed on %s [%s]: %v", r.URL.Path, middleware.GetRequestID(r.Context()), err)
	writeJSON(w, http.StatusInternalServerError, errorResp(err.Error()))
}
