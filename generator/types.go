package generator

// Spec describes the intended article before生成.
type Spec struct {
	Topic string
	// Context is the research passage grounding the article. May be empty
	// when the lookup found nothing.
	Context string
	// MinWords is the requested minimum length. Advisory only: it is passed
	// to the model inside the prompt and never enforced on the output.
	MinWords int
}

// Draft is the模型产出的稿件（Markdown 形式）。
type Draft struct {
	Title     string
	Digest    string
	Markdown  string
	WordCount int
}
