package reasoning

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/atletiklab/biomotor/internal/telemetry/tracing"
)

// the two upstream failures the callers can act upon; anything else is
// collapsed into a generic error and only logged in full
var (
	ErrRateLimited    = errors.New("reasoning service rate limit exceeded")
	ErrQuotaExhausted = errors.New("reasoning service quota exhausted")
)

// Client is the minimal reasoning-service contract the pipeline depends on:
// a fixed system instruction + user prompt in, one free-text completion out.
type Client interface {
	Analyze(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient builds the reasoning client. baseURL is optional and used
// to point the client at a stub server in tests.
func NewOpenAIClient(apiKey, model, baseURL string) *OpenAIClient {
	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.HTTPClient = &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

func (c *OpenAIClient) Analyze(ctx context.Context, systemPrompt, userPrompt string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reasoning.analyze")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("reasoning.model", c.model))

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", translateError(err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("reasoning service returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// translateError maps upstream status codes onto the domain errors. The raw
// upstream error text is logged here and never returned to callers verbatim.
func translateError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		log.Errorf("reasoning service api error [status %d, type %s]: %s",
			apiErr.HTTPStatusCode, apiErr.Type, apiErr.Message)

		if apiErr.Type == "insufficient_quota" || apiErr.Code == "insufficient_quota" {
			return ErrQuotaExhausted
		}
		switch apiErr.HTTPStatusCode {
		case 429:
			return ErrRateLimited
		case 402:
			return ErrQuotaExhausted
		}
		return fmt.Errorf("reasoning service error: status %d", apiErr.HTTPStatusCode)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		log.Errorf("reasoning service request error [status %d]: %s",
			reqErr.HTTPStatusCode, reqErr.Error())

		switch reqErr.HTTPStatusCode {
		case 429:
			return ErrRateLimited
		case 402:
			return ErrQuotaExhausted
		}
		return fmt.Errorf("reasoning service error: status %d", reqErr.HTTPStatusCode)
	}

	log.Errorf("reasoning service call failed: %s", err)
	return fmt.Errorf("reasoning service call: %w", err)
}
