package openai

import "context"

const (
	PathEmbeddings        = "/embeddings"
	DefaultEmbeddingModel = "text-embedding-ada-002"
)

type EmbeddingRequest struct {
	Model string `json:"model"`
	Input Input  `json:"input"`
	User  string `json:"user,omitempty"`
}

type EmbeddingResponse struct {
	Object string      `json:"object"`
	Model  string      `json:"model"`
	Data   []Embedding `json:"data"`
	Usage  Usage       `json:"usage"`
}

type Embedding struct {
	Index     int       `json:"index"`
	Object    string    `json:"object"`
	Embedding []float64 `json:"embedding"`
}

// CreateEmbedding embeds input. The model defaults to DefaultEmbeddingModel.
func (c *Client) CreateEmbedding(ctx context.Context, input Input, opts *EmbeddingRequest) (*EmbeddingResponse, error) {
	payload := EmbeddingRequest{Model: DefaultEmbeddingModel}
	if opts != nil {
		payload = *opts
		if payload.Model == "" {
			payload.Model = DefaultEmbeddingModel
		}
	}
	payload.Input = input

	res, err := post[EmbeddingResponse](ctx, c, PathEmbeddings, payload, false)
	if err != nil {
		return nil, err
	}
	return res.Value, nil
}
