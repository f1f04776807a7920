package openai

import "context"

const PathModerations = "/moderations"

type ModerationRequest struct {
	Input Input  `json:"input"`
	Model string `json:"model,omitempty"` // service default when empty
}

type ModerationResponse struct {
	ID      string             `json:"id"`
	Model   string             `json:"model"`
	Results []ModerationResult `json:"results"`
}

type ModerationResult struct {
	Flagged        bool               `json:"flagged"`
	Categories     map[string]bool    `json:"categories"`
	CategoryScores map[string]float64 `json:"category_scores"`
}

// CreateModeration classifies input. opts may be nil; its Input is ignored.
func (c *Client) CreateModeration(ctx context.Context, input Input, opts *ModerationRequest) (*ModerationResponse, error) {
	var payload ModerationRequest
	if opts != nil {
		payload = *opts
	}
	payload.Input = input

	res, err := post[ModerationResponse](ctx, c, PathModerations, payload, false)
	if err != nil {
		return nil, err
	}
	return res.Value, nil
}
