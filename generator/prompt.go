package generator

import (
	"fmt"
	"strings"
)

// DefaultMinWords is the target length requested when Spec.MinWords is unset.
const DefaultMinWords = 300

// Prompt 表示发送给 LLM 的消息集合。
type Prompt struct {
	System string
	User   string
}

// BuildArticlePrompt 生成文章提示词。
func BuildArticlePrompt(spec Spec) Prompt {
	minWords := spec.MinWords
	if minWords <= 0 {
		minWords = DefaultMinWords
	}

	var sb strings.Builder
	sb.WriteString("You are a professional article writer. Output Markdown only, no extra commentary.\n")
	sb.WriteString("Requirements:\n")
	sb.WriteString(fmt.Sprintf("- Write at least %d words of cohesive prose.\n", minWords))
	sb.WriteString("- Must include a level-1 heading as the article title.\n")
	sb.WriteString("- Structure the article as introduction, development, and conclusion.\n")
	sb.WriteString("- Open with a one-paragraph summary right after the title.\n")

	var user strings.Builder
	user.WriteString(fmt.Sprintf("Topic: %s\n", spec.Topic))
	if strings.TrimSpace(spec.Context) != "" {
		user.WriteString("\nBackground research from the encyclopedia:\n")
		user.WriteString(spec.Context)
		user.WriteString("\n\nGround the article in this research. Do not invent facts that contradict it.\n")
	} else {
		user.WriteString("\nNo background research was found; write from general knowledge and stay factual.\n")
	}
	user.WriteString("Produce the complete Markdown article now.")

	return Prompt{
		System: sb.String(),
		User:   user.String(),
	}
}
