package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/harou24/oa-cli/internal/failure"
	"github.com/harou24/oa-cli/internal/redact"
)

const (
	openAIBaseURL        = "https://api.openai.com/v1"
	openAIDefaultTimeout = 60 * time.Second
)

// OpenAI sends one request per call to an OpenAI-compatible API. It never
// retries.
type OpenAI struct {
	config Config
	client *http.Client
}

type openAIError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type completionRequest struct {
	Model       string   `json:"model"`
	Prompt      string   `json:"prompt"`
	MaxTokens   int      `json:"max_tokens"`
	N           int      `json:"n"`
	Temperature *float64 `json:"temperature,omitempty"`
}

type completionResponse struct {
	Choices *[]struct {
		Text *string `json:"text"`
	} `json:"choices"`
}

type imageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Size   string `json:"size"`
}

type imageResponse struct {
	Data *[]struct {
		URL *string `json:"url"`
	} `json:"data"`
}

type usageResponse struct {
	Data *[]struct {
		Model *string  `json:"model"`
		Usage *float64 `json:"usage"`
		Limit *float64 `json:"limit"`
	} `json:"data"`
}

type modelsResponse struct {
	Data *[]struct {
		ID      *string `json:"id"`
		OwnedBy string  `json:"owned_by"`
		Created int64   `json:"created"`
	} `json:"data"`
}

func NewOpenAI(config Config) *OpenAI {
	if config.BaseURL == "" {
		config.BaseURL = openAIBaseURL
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	if config.Timeout <= 0 {
		config.Timeout = openAIDefaultTimeout
	}
	return &OpenAI{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// Dispatch validates the request and sends it to the endpoint for its Kind.
func (p *OpenAI) Dispatch(ctx context.Context, spec RequestSpec) (Result, error) {
	if err := spec.Validate(); err != nil {
		return Result{}, err
	}

	res := Result{Kind: spec.Kind}
	var err error
	switch spec.Kind {
	case TextCompletion:
		res.Text, err = p.Complete(ctx, spec)
	case ImageGeneration:
		res.URL, err = p.GenerateImage(ctx, spec)
	case UsageQuery:
		res.Usage, err = p.Usage(ctx)
	case ModelList:
		res.Models, err = p.ListModels(ctx)
	}
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

// Complete sends a completion request and returns the first choice's text,
// trimmed of surrounding whitespace.
func (p *OpenAI) Complete(ctx context.Context, spec RequestSpec) (string, error) {
	payload := completionRequest{
		Model:       spec.Model,
		Prompt:      spec.Prompt,
		MaxTokens:   spec.MaxTokens,
		N:           1,
		Temperature: spec.Temperature,
	}

	var response completionResponse
	if err := p.post(ctx, "/completions", payload, &response); err != nil {
		return "", err
	}

	if response.Choices == nil || len(*response.Choices) == 0 {
		return "", failure.Missing("choices")
	}
	text := (*response.Choices)[0].Text
	if text == nil {
		return "", failure.Missing("choices[0].text")
	}
	return strings.TrimSpace(*text), nil
}

// GenerateImage sends an image request and returns the first image URL.
func (p *OpenAI) GenerateImage(ctx context.Context, spec RequestSpec) (string, error) {
	payload := imageRequest{
		Model:  spec.Model,
		Prompt: spec.Prompt,
		Size:   spec.Size,
	}

	var response imageResponse
	if err := p.post(ctx, "/images/generations", payload, &response); err != nil {
		return "", err
	}

	if response.Data == nil || len(*response.Data) == 0 {
		return "", failure.Missing("data")
	}
	url := (*response.Data)[0].URL
	if url == nil {
		return "", failure.Missing("data[0].url")
	}
	return *url, nil
}

// Usage fetches the quota report. A non-2xx status is returned as a
// failure.HTTPStatus without looking at the body.
func (p *OpenAI) Usage(ctx context.Context) ([]UsageRow, error) {
	var response usageResponse
	if err := p.get(ctx, "/usage", &response); err != nil {
		return nil, err
	}

	if response.Data == nil {
		return nil, failure.Missing("data")
	}
	rows := make([]UsageRow, 0, len(*response.Data))
	for i, d := range *response.Data {
		switch {
		case d.Model == nil:
			return nil, failure.Missing(fmt.Sprintf("data[%d].model", i))
		case d.Usage == nil:
			return nil, failure.Missing(fmt.Sprintf("data[%d].usage", i))
		case d.Limit == nil:
			return nil, failure.Missing(fmt.Sprintf("data[%d].limit", i))
		}
		rows = append(rows, UsageRow{Model: *d.Model, Usage: *d.Usage, Limit: *d.Limit})
	}
	return rows, nil
}

// ListModels returns the models visible to the API key.
func (p *OpenAI) ListModels(ctx context.Context) ([]Model, error) {
	var response modelsResponse
	if err := p.get(ctx, "/models", &response); err != nil {
		return nil, err
	}

	if response.Data == nil {
		return nil, failure.Missing("data")
	}
	models := make([]Model, 0, len(*response.Data))
	for i, m := range *response.Data {
		if m.ID == nil {
			return nil, failure.Missing(fmt.Sprintf("data[%d].id", i))
		}
		models = append(models, Model{ID: *m.ID, OwnedBy: m.OwnedBy, Created: m.Created})
	}
	return models, nil
}

func (p *OpenAI) post(ctx context.Context, endpoint string, payload, out any) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.config.BaseURL+endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := p.do(req)
	if err != nil {
		return err
	}
	return decode(body, out)
}

func (p *OpenAI) get(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.config.BaseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("request creation failed: %w", err)
	}

	body, err := p.do(req)
	if err != nil {
		return err
	}
	return decode(body, out)
}

// do sends req once. Transport faults become failure.Transport and non-2xx
// answers become failure.HTTPStatus.
func (p *OpenAI) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.config.APIKey)

	start := time.Now()
	slog.Debug("sending request",
		"method", req.Method, "url", req.URL.String(), "api_key", redact.Mask(p.config.APIKey))

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, failure.New(failure.Transport, "", err)
	}
	defer resp.Body.Close()

	slog.Debug("response received", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// The usage endpoint reports the status code only.
		if req.Method != http.MethodPost {
			return nil, failure.Status(resp.StatusCode, "")
		}
		body, _ := io.ReadAll(resp.Body)
		var apiError openAIError
		if json.Unmarshal(body, &apiError) == nil && apiError.Error.Message != "" {
			return nil, failure.Status(resp.StatusCode, apiError.Error.Message)
		}
		return nil, failure.Status(resp.StatusCode, "")
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, failure.New(failure.Transport, "failed to read response body", err)
	}
	return body, nil
}

func decode(body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		fe := failure.Missing("body")
		fe.Err = err
		return fe
	}
	return nil
}
