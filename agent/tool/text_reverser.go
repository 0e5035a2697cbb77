package tool

import (
	"context"
	"strings"

	einotool "github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/rivo/uniseg"
)

const ToolTextReverser = "text_reverser"

type TextReverserInput struct {
	Text string `json:"text" jsonschema:"description=Text to reverse"`
}

type TextReverserOutput struct {
	Original string `json:"original"`
	Reversed string `json:"reversed"`
}

func NewTextReverserTool() (einotool.InvokableTool, error) {
	return utils.InferTool(
		ToolTextReverser,
		"Reverse a piece of text character by character.",
		func(_ context.Context, in TextReverserInput) (TextReverserOutput, error) {
			return TextReverserOutput{
				Original: in.Text,
				Reversed: Reverse(in.Text),
			}, nil
		},
	)
}

// Reverse reverses s by grapheme cluster, so accents and emoji stay intact.
func Reverse(s string) string {
	var clusters []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := len(clusters) - 1; i >= 0; i-- {
		b.WriteString(clusters[i])
	}
	return b.String()
}
