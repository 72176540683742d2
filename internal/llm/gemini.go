package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	lexerrors "github.com/lexafrica/lexsearch/internal/errors"
)

// Gemini client defaults.
const (
	DefaultGeminiModel = "gemini-1.5-flash"
	defaultCallTimeout = 30 * time.Second
	defaultTemperature = 0.2
	maxPromptChars     = 30000
)

// GeminiCompleter implements Completer on the Gemini API.
type GeminiCompleter struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	retry   lexerrors.RetryConfig
}

var _ Completer = (*GeminiCompleter)(nil)

// GeminiOption configures the Gemini completer.
type GeminiOption func(*GeminiCompleter)

// WithModel overrides the generation model name.
func WithModel(model string) GeminiOption {
	return func(g *GeminiCompleter) {
		if model != "" {
			g.model = model
		}
	}
}

// WithTimeout overrides the per-call timeout.
func WithTimeout(d time.Duration) GeminiOption {
	return func(g *GeminiCompleter) {
		if d > 0 {
			g.timeout = d
		}
	}
}

// NewGeminiCompleter creates a Gemini-backed completer.
// If apiKey is empty, Application Default Credentials are used.
func NewGeminiCompleter(ctx context.Context, apiKey string, opts ...GeminiOption) (*GeminiCompleter, error) {
	var clientOpts []option.ClientOption
	if apiKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(apiKey))
	}
	client, err := genai.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	g := &GeminiCompleter{
		client:  client,
		model:   DefaultGeminiModel,
		timeout: defaultCallTimeout,
		retry:   lexerrors.DefaultRetryConfig(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Complete calls the Gemini generateContent API with backoff retries.
// Prompts beyond the context budget are truncated rather than rejected.
func (g *GeminiCompleter) Complete(ctx context.Context, prompt string, cctx CompletionContext) (string, error) {
	full := contextPreamble(cctx) + prompt
	if len(full) > maxPromptChars {
		full = full[:maxPromptChars] + "\n\n[truncated]"
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	model := g.client.GenerativeModel(g.model)
	temp := float32(defaultTemperature)
	model.Temperature = &temp

	text, err := lexerrors.RetryWithResult(callCtx, g.retry, func() (string, error) {
		resp, err := model.GenerateContent(callCtx, genai.Text(full))
		if err != nil {
			return "", err
		}
		return extractText(resp)
	})
	if err != nil {
		return "", lexerrors.Collaborator(lexerrors.ErrCodeCompletionFailed, "gemini completion failed", err)
	}
	return text, nil
}

// Close releases the underlying API client.
func (g *GeminiCompleter) Close() error {
	return g.client.Close()
}

// contextPreamble renders the hint context as a short system-style prefix.
func contextPreamble(cctx CompletionContext) string {
	var b strings.Builder
	b.WriteString("You are a legal research assistant.")
	if len(cctx.Jurisdictions) > 0 {
		b.WriteString(" Jurisdictions: ")
		b.WriteString(strings.Join(cctx.Jurisdictions, ", "))
		b.WriteString(".")
	}
	if len(cctx.LegalAreas) > 0 {
		b.WriteString(" Practice areas: ")
		b.WriteString(strings.Join(cctx.LegalAreas, ", "))
		b.WriteString(".")
	}
	if cctx.Language != "" {
		b.WriteString(" Respond in ")
		b.WriteString(cctx.Language)
		b.WriteString(".")
	}
	b.WriteString("\n\n")
	return b.String()
}

// extractText flattens the first candidate's text parts.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyCompletion
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", ErrEmptyCompletion
	}
	return out, nil
}
