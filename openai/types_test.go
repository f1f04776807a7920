package openai_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodrovis/oaix/openai"
)

func TestInput_Marshal(t *testing.T) {
	cases := []struct {
		name string
		in   openai.Input
		want string
	}{
		{"single", openai.Text("hello"), `"hello"`},
		{"list", openai.Texts("a", "b"), `["a","b"]`},
		{"single-element list", openai.Texts("a"), `["a"]`},
		{"empty list", openai.Texts(), `[]`},
		{"zero", openai.Input{}, `""`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(b))
		})
	}
}

func TestInput_Unmarshal(t *testing.T) {
	var single openai.Input
	require.NoError(t, json.Unmarshal([]byte(`"hello"`), &single))
	assert.Equal(t, []string{"hello"}, single.Values())

	var list openai.Input
	require.NoError(t, json.Unmarshal([]byte(` ["a","b"]`), &list))
	assert.Equal(t, []string{"a", "b"}, list.Values())

	b, err := json.Marshal(list)
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, string(b))

	var bad openai.Input
	assert.Error(t, json.Unmarshal([]byte(`42`), &bad))
}

func TestPtr(t *testing.T) {
	p := openai.Ptr(3)
	require.NotNil(t, p)
	assert.Equal(t, 3, *p)
}
