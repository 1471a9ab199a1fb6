package providers

import (
	"errors"
	"fmt"
	"time"
)

// Kind selects the endpoint a RequestSpec is sent to.
type Kind int

const (
	TextCompletion Kind = iota + 1
	ImageGeneration
	UsageQuery
	ModelList
)

func (k Kind) String() string {
	switch k {
	case TextCompletion:
		return "text completion"
	case ImageGeneration:
		return "image generation"
	case UsageQuery:
		return "usage query"
	case ModelList:
		return "model list"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ErrInvalidSpec is returned before any network call when a RequestSpec
// lacks a field its kind requires.
var ErrInvalidSpec = errors.New("invalid request")

// RequestSpec describes one outbound call. Numeric ranges are not checked
// locally; the provider is authoritative.
type RequestSpec struct {
	Kind   Kind
	Model  string
	Prompt string

	// TextCompletion only. A nil Temperature is left to the provider.
	MaxTokens   int
	Temperature *float64

	// ImageGeneration only.
	Size string
}

// Validate checks the fields required by s.Kind.
func (s RequestSpec) Validate() error {
	switch s.Kind {
	case TextCompletion, ImageGeneration:
		if s.Model == "" {
			return fmt.Errorf("%w: %s needs a model", ErrInvalidSpec, s.Kind)
		}
		if s.Prompt == "" {
			return fmt.Errorf("%w: %s needs a prompt", ErrInvalidSpec, s.Kind)
		}
	case UsageQuery, ModelList:
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidSpec, int(s.Kind))
	}
	return nil
}

// Result is the successful outcome of Dispatch. Only the field matching Kind
// is set.
type Result struct {
	Kind   Kind
	Text   string
	URL    string
	Usage  []UsageRow
	Models []Model
}

// UsageRow is one line of the quota report.
type UsageRow struct {
	Model string  `json:"model"`
	Usage float64 `json:"usage"`
	Limit float64 `json:"limit"`
}

// Model is one entry of the provider's model catalogue.
type Model struct {
	ID      string `json:"id"`
	OwnedBy string `json:"owned_by,omitempty"`
	Created int64  `json:"created,omitempty"`
}

// Config carries everything a client needs. APIKey is resolved by the caller
// and passed in explicitly.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Float returns a pointer to v, for RequestSpec.Temperature.
func Float(v float64) *float64 { return &v }
