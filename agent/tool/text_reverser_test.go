package tool

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverse(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":                                "",
		"ping":                            "gnip",
		"camión":                          "nóimac",
		"e\u0301a":                        "ae\u0301",
		"hola \U0001F44B\U0001F3FD mundo": "odnum \U0001F44B\U0001F3FD aloh",
	}
	for in, want := range cases {
		assert.Equal(t, want, Reverse(in), in)
		assert.Equal(t, in, Reverse(Reverse(in)), in)
	}
}

func TestTextReverserTool(t *testing.T) {
	t.Parallel()

	tl, err := NewTextReverserTool()
	require.NoError(t, err)

	raw, err := tl.InvokableRun(context.Background(), `{"text":"hola"}`)
	require.NoError(t, err)

	var out TextReverserOutput
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	assert.Equal(t, TextReverserOutput{Original: "hola", Reversed: "aloh"}, out)
}
