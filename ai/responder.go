//go:generate go run go.uber.org/mock/mockgen -source=responder.go -destination=../mocks/mock_responder.go -package=mocks
package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	openai "github.com/sashabaranov/go-openai"

	"framed-chat/domain"
	"framed-chat/errors"
)

// Turn is one role-tagged entry of the conversation handed to the provider.
type Turn struct {
	Role    domain.Role
	Content string
}

// IResponder produces one synthetic reply from an ordered conversation.
type IResponder interface {
	Complete(ctx context.Context, turns []Turn) (string, error)
}

// OpenAIResponder backs IResponder with the OpenAI chat completion API.
type OpenAIResponder struct {
	client *openai.Client
	model  string
	log    *slog.Logger
}

func NewOpenAIResponder(log *slog.Logger, apiKey, model string) *OpenAIResponder {
	return &OpenAIResponder{
		client: openai.NewClient(apiKey),
		model:  model,
		log:    log,
	}
}

func (r *OpenAIResponder) Complete(ctx context.Context, turns []Turn) (string, error) {
	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    r.model,
		Messages: toCompletionMessages(turns),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.ErrEmptyCompletion
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", errors.ErrEmptyCompletion
	}
	return content, nil
}

func toCompletionMessages(turns []Turn) []openai.ChatCompletionMessage {
	return lo.Map(turns, func(t Turn, _ int) openai.ChatCompletionMessage {
		return openai.ChatCompletionMessage{
			Role:    string(t.Role),
			Content: t.Content,
		}
	})
}
