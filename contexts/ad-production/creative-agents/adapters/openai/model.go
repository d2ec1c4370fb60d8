package openai

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"adforge/contexts/ad-production/creative-agents/ports"
)

const defaultModel = "gpt-4o"

// Model implements the agent text-model boundary on the official openai-go
// chat completions client.
type Model struct {
	ModelName string
	Opts      []option.RequestOption
}

func NewModel(apiKey, baseURL, modelName string) (*Model, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key missing")
	}
	if modelName == "" {
		modelName = defaultModel
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Model{ModelName: modelName, Opts: opts}, nil
}

func (m *Model) Complete(ctx context.Context, prompt ports.Prompt) (string, error) {
	client := openai.NewClient(m.Opts...)

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(m.ModelName),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		},
	}
	if prompt.ForceJSON {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{},
		}
	}

	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
