package oracle

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	openai "github.com/sashabaranov/go-openai"
)

// Request is one completion request to the classifier service
type Request struct {
	Model        string
	Temperature  float64
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
}

// Model describes one selectable classifier model
type Model struct {
	Name    string `json:"name"`
	Created int64  `json:"created,omitempty"`
}

// Client invokes the remote text-completion service. Implementations make
// exactly one outbound call per Complete; retries are the caller's decision.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	ListModels(ctx context.Context) ([]Model, error)
}

// DefaultModels is the hardcoded fallback list used when the provider's
// model listing cannot be fetched
func DefaultModels() []Model {
	return []Model{
		{Name: "gpt-4o"},
		{Name: "gpt-4o-mini"},
		{Name: "gpt-4-turbo"},
		{Name: "gpt-4"},
		{Name: "gpt-3.5-turbo"},
	}
}

// OpenAIClient implements Client over the OpenAI chat completion API
type OpenAIClient struct {
	client *openai.Client
}

var _ Client = &OpenAIClient{}

// NewOpenAI creates a classifier client for the given API key
func NewOpenAI(apiKey string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
	}, nil
}

// Complete sends the rendered prompt to the chat completion API and returns
// the raw response text
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", classifyError(err, req.Model)
	}

	if len(resp.Choices) == 0 {
		return "", goerr.Wrap(ErrEmptyResponse, "no choices in completion response")
	}

	return resp.Choices[0].Message.Content, nil
}

// ListModels fetches the chat-capable models from the provider. It falls
// back to DefaultModels when the listing fails or yields nothing usable.
func (c *OpenAIClient) ListModels(ctx context.Context) ([]Model, error) {
	list, err := c.client.ListModels(ctx)
	if err != nil {
		return DefaultModels(), classifyError(err, "")
	}

	var models []Model
	for _, m := range list.Models {
		if !strings.Contains(m.ID, "gpt") {
			continue
		}
		models = append(models, Model{
			Name:    m.ID,
			Created: m.CreatedAt,
		})
	}

	if len(models) == 0 {
		return DefaultModels(), nil
	}
	return models, nil
}
