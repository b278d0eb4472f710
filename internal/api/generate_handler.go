package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	app_errors "ollama-chat/backend/internal/errors"
	"ollama-chat/backend/internal/llm"
)

// GenerateHandler proxies generation requests to the inference endpoint so
// the browser client doesn't have to reach Ollama across origins. The chat
// core is not involved; the client persists the resulting assistant message
// through the normal append path.
type GenerateHandler struct {
	provider     llm.Provider
	defaultModel string
}

func NewGenerateHandler(provider llm.Provider, defaultModel string) *GenerateHandler {
	return &GenerateHandler{provider: provider, defaultModel: defaultModel}
}

// Generate godoc
// @Summary      Generate a completion
// @Description  Forwards a prompt to the Ollama /api/generate endpoint and returns the full response.
// @Tags         Generate
// @Accept       json
// @Produce      json
// @Param        request  body      GenerateProxyRequest  true  "Prompt"
// @Success      200      {object}  llm.GenerateResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      502      {object}  ErrorResponse
// @Router       /generate [post]
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateProxyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}
	if req.Model == "" {
		req.Model = h.defaultModel
	}

	resp, err := h.provider.Generate(r.Context(), &llm.GenerateRequest{
		Model:  req.Model,
		Prompt: req.Prompt,
	})
	if err != nil {
		respondWithError(w, fmt.Errorf("%w: %v", app_errors.ErrUpstreamUnavailable, err))
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}
