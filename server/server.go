package server

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/yuin/goldmark"

	"wiki_article_writer/pipeline"
)

//go:embed web/index.html
var embeddedWeb embed.FS

const requestTimeout = 120 * time.Second

// ArticleService is what the shells call into. *pipeline.Pipeline satisfies it.
type ArticleService interface {
	Generate(ctx context.Context, topic string) (pipeline.Article, error)
}

type Server struct {
	svc  ArticleService
	page *template.Template
}

func New(svc ArticleService) (*Server, error) {
	if svc == nil {
		return nil, errors.New("article service required")
	}
	page, err := template.ParseFS(embeddedWeb, "web/index.html")
	if err != nil {
		return nil, err
	}
	return &Server{svc: svc, page: page}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/articles", s.handleArticleCreate)
	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/generate", s.handleFormGenerate)
	mux.HandleFunc("/", s.handleIndex)
	return logMiddleware(mux)
}

// --- API shell ---

type articleCreateReq struct {
	Topic string `json:"topic"`
}

type errorResp struct {
	Error string `json:"error"`
	Stage string `json:"stage,omitempty"`
}

func (s *Server) handleArticleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req articleCreateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONStatus(w, http.StatusBadRequest, errorResp{Error: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	article, err := s.svc.Generate(ctx, req.Topic)
	if err != nil {
		status, stage := classify(err)
		writeJSONStatus(w, status, errorResp{Error: err.Error(), Stage: stage})
		return
	}
	writeJSON(w, article)
}

// --- Form shell ---

type pageData struct {
	Topic   string
	Article *pipeline.Article
	// HTML is the goldmark-rendered article body.
	HTML  template.HTML
	Error string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.renderPage(w, pageData{})
}

func (s *Server) handleFormGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	topic := r.FormValue("topic")

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	article, err := s.svc.Generate(ctx, topic)
	if err != nil {
		s.renderPage(w, pageData{Topic: topic, Error: err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(article.Content), &buf); err != nil {
		s.renderPage(w, pageData{Topic: topic, Error: err.Error()})
		return
	}
	s.renderPage(w, pageData{
		Topic:   topic,
		Article: &article,
		HTML:    template.HTML(buf.String()),
	})
}

func (s *Server) renderPage(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		log.Printf("[server] render page: %v", err)
	}
}

// --- Helpers ---

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "healthy"})
}

// classify maps pipeline errors to an HTTP status and a stage label.
func classify(err error) (int, string) {
	if errors.Is(err, pipeline.ErrEmptyTopic) {
		return http.StatusBadRequest, ""
	}
	var se *pipeline.StageError
	if errors.As(err, &se) {
		return http.StatusBadGateway, string(se.Stage)
	}
	return http.StatusInternalServerError, ""
}

func writeJSON(w http.ResponseWriter, v any) {
	writeJSONStatus(w, http.StatusOK, v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[server] %s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
