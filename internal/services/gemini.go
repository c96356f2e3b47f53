package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Capability records whether live AI calls are possible. It is decided once at
// startup from credential presence and never changes for the process lifetime.
type Capability int

const (
	Unconfigured Capability = iota
	Configured
)

func (c Capability) String() string {
	if c == Configured {
		return "configured"
	}
	return "unconfigured"
}

// CapabilityFor maps the Gemini API key to a Capability.
func CapabilityFor(apiKey string) Capability {
	if strings.TrimSpace(apiKey) == "" {
		return Unconfigured
	}
	return Configured
}

var ErrEmptyResponse = errors.New("Gemini returned an empty response")

type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiService(ctx context.Context, apiKey, modelName string, temperature float32) (*GeminiService, error) {
	if CapabilityFor(apiKey) == Unconfigured {
		return nil, fmt.Errorf("Gemini API key is empty")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(temperature)

	return &GeminiService{
		client: client,
		model:  model,
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// Ask sends prompt to the model once and returns the raw reply text. Upstream
// errors are returned as-is so callers see the client's own description.
func (s *GeminiService) Ask(ctx context.Context, prompt string) (string, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	for i, cand := range resp.Candidates {
		if cand.FinishReason != genai.FinishReasonStop && cand.FinishReason != genai.FinishReasonUnspecified {
			log.Printf("WARNING: Gemini candidate %d stopped due to %s", i, cand.FinishReason)
		}
	}

	text := extractText(resp)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
