package openai

import "context"

const (
	PathCompletions        = "/completions"
	DefaultCompletionModel = "text-davinci-003"
)

type CompletionRequest struct {
	Model            string         `json:"model"`
	Prompt           Input          `json:"prompt"`
	Suffix           string         `json:"suffix,omitempty"`
	MaxTokens        *int           `json:"max_tokens,omitempty"`
	Temperature      *float64       `json:"temperature,omitempty"`
	TopP             *float64       `json:"top_p,omitempty"`
	N                *int           `json:"n,omitempty"`
	Stream           bool           `json:"stream,omitempty"`
	Logprobs         *int           `json:"logprobs,omitempty"`
	Echo             bool           `json:"echo,omitempty"`
	Stop             []string       `json:"stop,omitempty"`
	PresencePenalty  *float64       `json:"presence_penalty,omitempty"`
	FrequencyPenalty *float64       `json:"frequency_penalty,omitempty"`
	BestOf           *int           `json:"best_of,omitempty"`
	LogitBias        map[string]int `json:"logit_bias,omitempty"`
	User             string         `json:"user,omitempty"`
}

// CompletionResponse is both the full response and, when streaming, one event.
type CompletionResponse struct {
	ID      string             `json:"id"`
	Object  string             `json:"object"`
	Created int64              `json:"created"`
	Model   string             `json:"model"`
	Choices []CompletionChoice `json:"choices"`
	Usage   *Usage             `json:"usage,omitempty"`
}

type CompletionChoice struct {
	Text         string          `json:"text"`
	Index        int             `json:"index"`
	Logprobs     *CompletionLogs `json:"logprobs,omitempty"`
	FinishReason string          `json:"finish_reason"`
}

type CompletionLogs struct {
	Tokens        []string             `json:"tokens"`
	TokenLogprobs []float64            `json:"token_logprobs"`
	TopLogprobs   []map[string]float64 `json:"top_logprobs"`
	TextOffset    []int                `json:"text_offset"`
}

func completionPayload(prompt Input, opts *CompletionRequest) CompletionRequest {
	payload := CompletionRequest{Model: DefaultCompletionModel}
	if opts != nil {
		payload = *opts
		if payload.Model == "" {
			payload.Model = DefaultCompletionModel
		}
	}
	payload.Prompt = prompt
	return payload
}

// CreateCompletion completes prompt. When opts.Stream is set the Result holds
// the unread response, otherwise the decoded CompletionResponse.
func (c *Client) CreateCompletion(ctx context.Context, prompt Input, opts *CompletionRequest) (Result[CompletionResponse], error) {
	payload := completionPayload(prompt, opts)
	return post[CompletionResponse](ctx, c, PathCompletions, payload, payload.Stream)
}

// CreateCompletionStream forces streaming and decodes the events.
func (c *Client) CreateCompletionStream(ctx context.Context, prompt Input, opts *CompletionRequest) (*Stream[CompletionResponse], error) {
	payload := completionPayload(prompt, opts)
	payload.Stream = true

	res, err := post[CompletionResponse](ctx, c, PathCompletions, payload, true)
	if err != nil {
		return nil, err
	}
	return NewStream[CompletionResponse](res.Stream), nil
}
