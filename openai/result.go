package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bodrovis/oaix/client"
	"github.com/bodrovis/oaix/internal/utils"
)

// Result holds either a raw streaming response or a decoded JSON value.
// Exactly one of the fields is set.
type Result[T any] struct {
	Stream *http.Response // unread; the caller must close Body
	Value  *T
}

// IsStream reports whether r carries a raw response.
func (r Result[T]) IsStream() bool {
	return r.Stream != nil
}

// post sends payload to path. With stream set the response is returned
// untouched, otherwise the body is decoded into T and closed.
func post[T any](ctx context.Context, c *Client, path string, payload any, stream bool) (Result[T], error) {
	body, err := utils.EncodeJSONBody(payload)
	if err != nil {
		return Result[T]{}, err
	}

	resp, err := c.Request(ctx, path, &client.RequestOptions{Body: body})
	if err != nil {
		return Result[T]{}, err
	}
	if stream {
		return Result[T]{Stream: resp}, nil
	}
	defer resp.Body.Close()

	v := new(T)
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return Result[T]{}, fmt.Errorf("decode response: %w", err)
	}
	return Result[T]{Value: v}, nil
}
