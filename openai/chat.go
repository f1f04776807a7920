package openai

import "context"

const (
	PathChatCompletions = "/chat/completions"
	DefaultChatModel    = "gpt-3.5-turbo"
)

// Chat roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name,omitempty"`
}

type ChatCompletionRequest struct {
	Model            string         `json:"model"`
	Messages         []ChatMessage  `json:"messages"`
	Temperature      *float64       `json:"temperature,omitempty"`
	TopP             *float64       `json:"top_p,omitempty"`
	N                *int           `json:"n,omitempty"`
	Stream           bool           `json:"stream,omitempty"`
	Stop             []string       `json:"stop,omitempty"`
	MaxTokens        *int           `json:"max_tokens,omitempty"`
	PresencePenalty  *float64       `json:"presence_penalty,omitempty"`
	FrequencyPenalty *float64       `json:"frequency_penalty,omitempty"`
	LogitBias        map[string]int `json:"logit_bias,omitempty"`
	User             string         `json:"user,omitempty"`
}

type ChatCompletionResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []ChatChoice `json:"choices"`
	Usage   *Usage       `json:"usage,omitempty"`
}

type ChatChoice struct {
	Index        int         `json:"index"`
	Message      ChatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

// ChatCompletionChunk is one streamed event of a chat completion.
type ChatCompletionChunk struct {
	ID      string            `json:"id"`
	Object  string            `json:"object"`
	Created int64             `json:"created"`
	Model   string            `json:"model"`
	Choices []ChatChunkChoice `json:"choices"`
}

type ChatChunkChoice struct {
	Index        int       `json:"index"`
	Delta        ChatDelta `json:"delta"`
	FinishReason *string   `json:"finish_reason"`
}

type ChatDelta struct {
	Role    string `json:"role,omitempty"`
	Content string `json:"content,omitempty"`
}

func chatPayload(messages []ChatMessage, opts *ChatCompletionRequest) ChatCompletionRequest {
	payload := ChatCompletionRequest{Model: DefaultChatModel}
	if opts != nil {
		payload = *opts
		if payload.Model == "" {
			payload.Model = DefaultChatModel
		}
	}
	payload.Messages = messages
	return payload
}

// CreateChatCompletion runs a chat completion. When opts.Stream is set the
// Result holds the unread response, otherwise the decoded response.
func (c *Client) CreateChatCompletion(ctx context.Context, messages []ChatMessage, opts *ChatCompletionRequest) (Result[ChatCompletionResponse], error) {
	payload := chatPayload(messages, opts)
	return post[ChatCompletionResponse](ctx, c, PathChatCompletions, payload, payload.Stream)
}

// CreateChatCompletionStream forces streaming and decodes the chunks.
func (c *Client) CreateChatCompletionStream(ctx context.Context, messages []ChatMessage, opts *ChatCompletionRequest) (*Stream[ChatCompletionChunk], error) {
	payload := chatPayload(messages, opts)
	payload.Stream = true

	res, err := post[ChatCompletionChunk](ctx, c, PathChatCompletions, payload, true)
	if err != nil {
		return nil, err
	}
	return NewStream[ChatCompletionChunk](res.Stream), nil
}
