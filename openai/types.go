package openai

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Input is a single string or a list of strings, as accepted by the
// moderation, embedding and completion endpoints.
type Input struct {
	texts []string
	list  bool
}

// Text is a single-string input.
func Text(s string) Input {
	return Input{texts: []string{s}}
}

// Texts is a list input; it always encodes as a JSON array.
func Texts(ss ...string) Input {
	return Input{texts: ss, list: true}
}

// Values returns the input strings.
func (in Input) Values() []string {
	return append([]string(nil), in.texts...)
}

func (in Input) MarshalJSON() ([]byte, error) {
	if in.list {
		if in.texts == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(in.texts)
	}
	if len(in.texts) == 0 {
		return []byte(`""`), nil
	}
	return json.Marshal(in.texts[0])
}

func (in *Input) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var ss []string
		if err := json.Unmarshal(b, &ss); err != nil {
			return fmt.Errorf("input: %w", err)
		}
		*in = Texts(ss...)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("input: %w", err)
	}
	*in = Text(s)
	return nil
}

// Ptr returns a pointer to v, handy for optional request fields.
func Ptr[T any](v T) *T {
	return &v
}

// Usage is the token accounting attached to most responses.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens"`
}
