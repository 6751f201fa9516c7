package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"wiki_article_writer/config"
	"wiki_article_writer/generator"
	"wiki_article_writer/pipeline"
	"wiki_article_writer/research"
	"wiki_article_writer/server"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	configPath := flag.String("config", "config/config.json", "path to config.json")
	topic := flag.String("topic", "", "generate one article for this topic and print it")
	serve := flag.Bool("serve", false, "start web server")
	addr := flag.String("addr", "", "http listen address when --serve (overrides config.server_addr)")
	mock := flag.Bool("mock", false, "use local mock adapters instead of external APIs")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	p, err := buildPipeline(cfg, *mock)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Web server mode
	if *serve {
		srv, err := server.New(p)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		listen := cfg.ServerAddr
		if *addr != "" {
			listen = *addr
		}
		if listen == "" {
			listen = ":8080"
		}
		log.Printf("Starting web server on %s", listen)
		if err := http.ListenAndServe(listen, srv.Routes()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if *topic == "" {
		fmt.Fprintln(os.Stderr, "--topic is required (or use --serve)")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()
	log.Printf("[cli] generating article topic=%q", *topic)
	article, err := p.Generate(ctx, *topic)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log.Printf("[cli] done topic=%q words=%d source=%s", article.Topic, article.WordCount, article.SourceURL)
	fmt.Println(article.Content)
}

func buildPipeline(cfg config.Config, mock bool) (*pipeline.Pipeline, error) {
	var (
		researchClient research.Client
		llm            generator.LLMClient
	)
	if mock {
		researchClient = research.Mock{}
		llm = generator.MockLLM{}
	} else {
		wiki, err := research.NewWikipedia(cfg.Wikipedia.BaseURL, cfg.Wikipedia.Contact, nil)
		if err != nil {
			return nil, err
		}
		researchClient = wiki
		llm, err = buildLLM(cfg)
		if err != nil {
			return nil, err
		}
	}

	writer, err := generator.NewWriter(llm)
	if err != nil {
		return nil, err
	}
	return pipeline.New(researchClient, writer, cfg.MinWords)
}

func buildLLM(cfg config.Config) (generator.LLMClient, error) {
	if cfg.LLM == nil || cfg.LLM.Provider == "" {
		return nil, fmt.Errorf("llm config missing; please set llm.provider/model/api_key in config or OPENAI_API_KEY")
	}
	switch cfg.LLM.Provider {
	case "openai":
		return generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
			Provider: cfg.LLM.Provider,
			Model:    cfg.LLM.Model,
			APIKey:   cfg.LLM.APIKey,
			BaseURL:  cfg.LLM.BaseURL,
		})
	case "deepseek":
		// DeepSeek 提供 OpenAI 兼容接口，需填写 base_url。
		if cfg.LLM.BaseURL == "" {
			return nil, fmt.Errorf("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
		return generator.NewOpenAILLMFromConfig(&generator.LLMSettings{
			Provider: cfg.LLM.Provider,
			Model:    cfg.LLM.Model,
			APIKey:   cfg.LLM.APIKey,
			BaseURL:  cfg.LLM.BaseURL,
		})
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.LLM.Provider)
	}
}
