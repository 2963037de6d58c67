package services

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// MessageGenerator produces a short text completion for a prompt. The booking
// flow treats it as optional: any failure falls back to the fixed template.
type MessageGenerator interface {
	Generate(prompt string) (string, error)
}

type OpenAIGenerator struct {
	client *openai.Client
}

func NewOpenAIGenerator(apiKey string) *OpenAIGenerator {
	return &OpenAIGenerator{client: openai.NewClient(apiKey)}
}

func (g *OpenAIGenerator) Generate(prompt string) (string, error) {
	resp, err := g.client.CreateChatCompletion(context.Background(), openai.ChatCompletionRequest{
		Model:       openai.GPT4o,
		Temperature: 0.8,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
