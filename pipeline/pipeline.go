package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"wiki_article_writer/generator"
	"wiki_article_writer/research"
)

// ErrEmptyTopic is returned before any adapter call when the topic is empty
// or whitespace only.
var ErrEmptyTopic = errors.New("topic must not be empty")

// Stage identifies which external call a failure came from.
type Stage string

const (
	StageResearch   Stage = "research"
	StageGeneration Stage = "generation"
)

// StageError tags an adapter failure with the stage it came from so callers
// can tell a research failure from a generation failure.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Article is the final result handed back to the caller. It lives for one
// request only; nothing is cached or persisted.
type Article struct {
	Topic       string `json:"topic"`
	Title       string `json:"title,omitempty"`
	Digest      string `json:"digest,omitempty"`
	Content     string `json:"content"`
	WordCount   int    `json:"word_count"`
	SourceTitle string `json:"source_title,omitempty"`
	SourceURL   string `json:"source_url,omitempty"`
}

// ArticleWriter is the generation adapter. *generator.Writer satisfies it.
type ArticleWriter interface {
	Generate(ctx context.Context, spec generator.Spec) (generator.Draft, error)
}

// Pipeline sequences the research lookup and the writing step.
type Pipeline struct {
	research research.Client
	writer   ArticleWriter
	minWords int
}

func New(researchClient research.Client, writer ArticleWriter, minWords int) (*Pipeline, error) {
	if researchClient == nil {
		return nil, errors.New("research client is required")
	}
	if writer == nil {
		return nil, errors.New("writer is required")
	}
	if minWords <= 0 {
		minWords = generator.DefaultMinWords
	}
	return &Pipeline{research: researchClient, writer: writer, minWords: minWords}, nil
}

// Generate runs the two stages in order and assembles the Article. Either
// both stages complete, or the whole request fails with a StageError; there
// is no partial result and no retry.
func (p *Pipeline) Generate(ctx context.Context, topic string) (Article, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return Article{}, ErrEmptyTopic
	}

	summary, err := p.research.Lookup(ctx, topic)
	if err != nil {
		return Article{}, &StageError{Stage: StageResearch, Err: err}
	}
	if summary.Empty() {
		// Topic not found is not fatal: the writer falls back to general
		// knowledge.
		log.Printf("[pipeline] no research context for topic=%q, proceeding without it", topic)
	}

	draft, err := p.writer.Generate(ctx, generator.Spec{
		Topic:    topic,
		Context:  summary.Extract,
		MinWords: p.minWords,
	})
	if err != nil {
		return Article{}, &StageError{Stage: StageGeneration, Err: err}
	}

	log.Printf("[pipeline] generated article topic=%q words=%d", topic, draft.WordCount)

	return Article{
		Topic:       topic,
		Title:       draft.Title,
		Digest:      draft.Digest,
		Content:     draft.Markdown,
		WordCount:   draft.WordCount,
		SourceTitle: summary.PageTitle,
		SourceURL:   summary.PageURL,
	}, nil
}
