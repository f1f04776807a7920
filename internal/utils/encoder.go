package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// EncodeJSONBody serializes body as compact JSON without HTML escaping.
// The trailing newline json.Encoder appends is dropped so the wire body is
// exactly the encoded value.
func EncodeJSONBody(body any) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}
	buf.Truncate(buf.Len() - 1)
	return &buf, nil
}
