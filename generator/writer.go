package generator

import (
	"context"
	"errors"
)

// Writer 负责根据 Spec 生成稿件。
type Writer struct {
	llm LLMClient
}

func NewWriter(llm LLMClient) (*Writer, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	return &Writer{llm: llm}, nil
}

// Generate 构建提示词、调用模型并整理产出。
func (w *Writer) Generate(ctx context.Context, spec Spec) (Draft, error) {
	prompt := BuildArticlePrompt(spec)

	raw, err := w.llm.Complete(ctx, prompt)
	if err != nil {
		return Draft{}, err
	}
	return PostProcess(raw)
}
