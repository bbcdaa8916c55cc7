package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ncats-translator/trapi-summarizer/internal/domain"
	"github.com/ncats-translator/trapi-summarizer/internal/service"
)

type stubConfigManager struct {
	cfg *domain.Config
}

func (s *stubConfigManager) GetConfig() *domain.Config             { return s.cfg }
func (s *stubConfigManager) GetServerConfig() *domain.ServerConfig { return &s.cfg.Server }
func (s *stubConfigManager) Reload() error                         { return nil }
func (s *stubConfigManager) Validate() error                       { return nil }
func (s *stubConfigManager) IsProduction() bool                    { return false }
func (s *stubConfigManager) IsDevelopment() bool                   { return true }

type stubAnnotationClient struct {
	table map[string]domain.Annotation
}

func (s stubAnnotationClient) Annotate(_ context.Context, curies []string) (map[string]domain.Annotation, error) {
	out := make(map[string]domain.Annotation, len(curies))
	for _, curie := range curies {
		if ann, ok := s.table[curie]; ok {
			out[curie] = ann
		}
	}
	return out, nil
}

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)
	cfgManager := &stubConfigManager{cfg: &domain.Config{
		Server:  domain.ServerConfig{Host: "localhost", Port: 8080},
		Logging: domain.LoggingConfig{Level: "info"},
	}}
	summarizer := service.New(3, nil, logrus.New())
	annotations := stubAnnotationClient{table: map[string]domain.Annotation{
		"CHEBI:1": {"name": "aspirin"},
	}}
	return NewServer(cfgManager, summarizer, annotations, logrus.New())
}

func TestHandleHealth(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	server.router.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestHandleSummarizeEmptyAnswers(t *testing.T) {
	server := newTestServer()
	body, _ := json.Marshal(summarizeRequest{QID: "Q1", Answers: []domain.AgentAnswer{}})
	req := httptest.NewRequest("POST", "/api/v1/summarize", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.router.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var out domain.FinalSummary
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if out.Meta.QID != "Q1" {
		t.Errorf("expected qid Q1, got %q", out.Meta.QID)
	}
}

func TestHandleAnnotate(t *testing.T) {
	server := newTestServer()
	body, _ := json.Marshal(annotateRequest{Curies: []string{"CHEBI:1", "CHEBI:2"}})
	req := httptest.NewRequest("POST", "/api/v1/annotate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.router.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var out struct {
		Annotations map[string]domain.Annotation `json:"annotations"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if out.Annotations["CHEBI:1"]["name"] != "aspirin" {
		t.Errorf("unexpected annotation for CHEBI:1: %v", out.Annotations["CHEBI:1"])
	}
	if _, ok := out.Annotations["CHEBI:2"]; ok {
		t.Errorf("expected no annotation for unknown curie, got %v", out.Annotations["CHEBI:2"])
	}
}

func TestHandleSummarizeRejectsMalformedBody(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest("POST", "/api/v1/summarize", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.router.ServeHTTP(w, req)

	if w.Code != 400 {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
