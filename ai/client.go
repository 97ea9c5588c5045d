// Package ai generates coaching narratives for single trades via the Gemini
// REST API, falling back across a fixed model chain.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"trade-journal/models"
)

// ErrNoAPIKey means no provider credential is configured. Fatal for the
// single action; there is nothing to retry.
var ErrNoAPIKey = errors.New("ai: no API key configured")

// AllModelsFailedError means every model in the fallback chain failed.
// Available holds the credential's actually-usable models when the diagnostic
// listing succeeded, to aid reconfiguration.
type AllModelsFailedError struct {
	LastErr   string
	Available []string
}

func (e *AllModelsFailedError) Error() string {
	if len(e.Available) > 0 {
		return fmt.Sprintf("ai: none of the configured models worked; available models for this key: %s",
			strings.Join(e.Available, ", "))
	}
	return fmt.Sprintf("ai: all models failed, last error: %s", e.LastErr)
}

// DefaultModels is the fallback chain, preferred first. Later entries are
// smaller, degraded fallbacks; order matters.
var DefaultModels = []string{
	"gemini-2.0-flash",
	"gemini-2.5-flash",
	"gemini-1.5-flash",
	"gemini-1.5-flash-8b",
	"gemini-pro",
}

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1"

// Client calls the text-generation provider. The zero value is not usable;
// construct with NewClient.
type Client struct {
	APIKey     string
	BaseURL    string
	Models     []string
	HTTPClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    defaultBaseURL,
		Models:     DefaultModels,
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Message string `json:"message"`
}

type listModelsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// Analyze produces a short coaching narrative for one trade in the requested
// language ("es" or, by default, "en"). Models are tried strictly in order,
// one request at a time, returning the first successful text. When the whole
// chain fails the provider's model listing is consulted so the error can name
// the models this key can actually use; a failure of that diagnostic call is
// swallowed. Persisting the narrative is the caller's job.
func (c *Client) Analyze(ctx context.Context, trade *models.Trade, lang string) (string, error) {
	if c.APIKey == "" {
		return "", ErrNoAPIKey
	}

	prompt := buildPrompt(trade, lang)
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("ai: marshal request: %w", err)
	}

	var lastErr string
	for _, model := range c.Models {
		text, attemptErr := c.generate(ctx, model, body)
		if attemptErr == nil {
			log.Debug().Str("model", model).Msg("ai analysis succeeded")
			return text, nil
		}
		lastErr = attemptErr.Error()
		log.Warn().Str("model", model).Str("error", lastErr).Msg("ai model attempt failed")
	}

	if available := c.listModels(ctx); len(available) > 0 {
		return "", &AllModelsFailedError{LastErr: lastErr, Available: available}
	}
	return "", &AllModelsFailedError{LastErr: lastErr}
}

// generate performs one request/response round trip against a single model.
func (c *Client) generate(ctx context.Context, model string, body []byte) (string, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.BaseURL, model, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var result generateResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Keep the provider's message verbatim for diagnostics.
		if result.Error != nil && result.Error.Message != "" {
			return "", errors.New(result.Error.Message)
		}
		return "", errors.New(resp.Status)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no candidates in response")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

// listModels asks the provider which models this key can use. Best-effort:
// any failure returns nil.
func (c *Client) listModels(ctx context.Context) []string {
	url := fmt.Sprintf("%s/models?key=%s", c.BaseURL, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var listing listModelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil
	}

	names := make([]string, 0, len(listing.Models))
	for _, m := range listing.Models {
		// Provider names are prefixed ("models/gemini-pro"); report only the
		// trailing segment.
		if idx := strings.LastIndex(m.Name, "/"); idx >= 0 {
			names = append(names, m.Name[idx+1:])
		} else {
			names = append(names, m.Name)
		}
	}
	return names
}

func buildPrompt(trade *models.Trade, lang string) string {
	if lang == "es" {
		return fmt.Sprintf("Actúa como un coach de trading profesional. Analiza este trade: "+
			"Mercado %s, %s, Resultado %s, PnL %.2f$, Setup %s, Calidad %d/5, Estado %s. "+
			"Responde en Español detallando qué se hizo bien, qué falló y consejo psicológico. Usa Markdown.",
			trade.Market, trade.Direction, trade.Result, trade.PnL, trade.Model,
			trade.ExecutionQuality, trade.EmotionalState)
	}
	return fmt.Sprintf("Act as a professional trading coach. Analyze this trade: "+
		"Market %s, %s, Result %s, PnL %.2f$, Setup %s, Quality %d/5, State %s. "+
		"Respond in English with what went well, what failed and psychological advice. Use Markdown.",
		trade.Market, trade.Direction, trade.Result, trade.PnL, trade.Model,
		trade.ExecutionQuality, trade.EmotionalState)
}
