package generator

import (
	"context"
	"strings"
)

// MockLLM 一个简单的占位实现，便于本地调试，不调用外部模型。
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	// 很简单地把用户输入拼接成 Markdown。
	var sb strings.Builder
	sb.WriteString("# Placeholder Article\n\n")
	sb.WriteString("This summary paragraph was produced locally without calling a model.\n\n")
	sb.WriteString("## Body\n\n")
	sb.WriteString("Content generated from the prompt:\n\n")
	sb.WriteString("```\n")
	sb.WriteString(prompt.User)
	sb.WriteString("\n```\n")
	return sb.String(), nil
}
