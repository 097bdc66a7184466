// Package summarize turns an aggregated intelligence payload into a
// structured company analysis using the Anthropic API.
package summarize

import (
	"context"
	"fmt"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/intel-cli/internal/model"
	"github.com/sells-group/intel-cli/pkg/anthropic"
)

// Summarizer produces a structured analysis from a textual payload.
type Summarizer interface {
	Summarize(ctx context.Context, payload, companyURL string) (*model.Analysis, error)
}

const (
	defaultModel     = "claude-sonnet-4-5"
	defaultMaxTokens = 2048
	// Low temperature keeps repeated analyses of the same payload close.
	defaultTemperature = 0.1
)

const systemPrompt = `You are an expert business analyst. You analyze collected ` +
	`company intelligence and produce structured, factual assessments. ` +
	`Focus only on information present in the provided data; if something ` +
	`is not available, say so clearly.`

const promptTemplate = `Analyze the following company intelligence and provide a comprehensive analysis.

Company URL: %s

%s

Please provide a structured analysis including:

Mission: What is the company's core mission and purpose?
Value Proposition: What unique value does this company provide to its customers?
Business Model: How does this company make money? What is their primary business model?

Then provide a comprehensive summary that includes:
- Company overview and what they do
- Target market and customers
- Key products or services
- Technology stack or approach (if mentioned)
- Competitive advantages
- Market opportunity
- Any notable achievements, funding, or partnerships

Be concise but thorough. Focus on factual information extracted from the data above.
If certain information is not available, indicate that clearly.

Analysis:`

// Anthropic is a Summarizer backed by the Anthropic messages API.
type Anthropic struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// Option configures an Anthropic summarizer.
type Option func(*Anthropic)

// WithModel overrides the default model.
func WithModel(model string) Option {
	return func(a *Anthropic) {
		if model != "" {
			a.model = model
		}
	}
}

// WithMaxTokens overrides the response token cap.
func WithMaxTokens(n int64) Option {
	return func(a *Anthropic) {
		if n > 0 {
			a.maxTokens = n
		}
	}
}

// NewAnthropic creates a summarizer using the given API client.
func NewAnthropic(client anthropic.Client, opts ...Option) *Anthropic {
	a := &Anthropic{
		client:    client,
		model:     defaultModel,
		maxTokens: defaultMaxTokens,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Summarize sends the payload to the model and parses the response into
// a structured Analysis.
func (a *Anthropic) Summarize(ctx context.Context, payload, companyURL string) (*model.Analysis, error) {
	if payload == "" {
		return nil, eris.New("summarize: empty payload")
	}

	temp := defaultTemperature
	resp, err := a.client.CreateMessage(ctx, anthropic.MessageRequest{
		Model:       a.model,
		MaxTokens:   a.maxTokens,
		System:      systemPrompt,
		Temperature: &temp,
		Messages: []anthropic.Message{
			{Role: "user", Content: fmt.Sprintf(promptTemplate, companyURL, payload)},
		},
	})
	if err != nil {
		return nil, eris.Wrap(err, "summarize: create message")
	}

	text := resp.Text()
	if text == "" {
		return nil, eris.New("summarize: model returned no text content")
	}

	zap.L().Debug("summarizer response received",
		zap.String("model", resp.Model),
		zap.Int64("input_tokens", resp.Usage.InputTokens),
		zap.Int64("output_tokens", resp.Usage.OutputTokens),
	)

	analysis := Parse(text)
	return &analysis, nil
}
