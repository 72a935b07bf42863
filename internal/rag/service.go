// Package rag is the boundary to the external retrieval collaborator and
// the context-retrieval stage built on top of it. The retrieval engine
// itself (indexing, embedding, graph construction) is opaque; this
// package only defines the shape of calls into it.
package rag

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Entity is a knowledge-graph entity returned by the retrieval service.
type Entity struct {
	Name        string `json:"entity"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// Relation is a knowledge-graph relation returned by the retrieval service.
type Relation struct {
	Source      string `json:"source"`
	Target      string `json:"target"`
	Description string `json:"description,omitempty"`
}

// Service is the retrieval collaborator contract. Implementations are
// responsible for their own retry behavior; this package surfaces their
// failures as *RetrievalError without retrying.
type Service interface {
	// Query returns entities and relations relevant to the text.
	Query(ctx context.Context, text, mode string) ([]Entity, []Relation, error)
	// QueryContext returns raw context text relevant to the query,
	// without any answer generation.
	QueryContext(ctx context.Context, text, mode string) (string, error)
	// Index adds documents to the retrieval store.
	Index(ctx context.Context, documents []string) error
}

// RetrievalError wraps a failure of the retrieval collaborator.
type RetrievalError struct {
	Op  string
	Err error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("retrieval %s failed: %v", e.Op, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// HTTPService talks to a retrieval server over its JSON HTTP API.
type HTTPService struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPService creates a client for a retrieval server.
func NewHTTPService(baseURL string) *HTTPService {
	return &HTTPService{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
}

type queryRequest struct {
	Query           string `json:"query"`
	Mode            string `json:"mode"`
	OnlyNeedContext bool   `json:"only_need_context"`
}

type queryResponse struct {
	Context   string     `json:"context"`
	Entities  []Entity   `json:"entities"`
	Relations []Relation `json:"relations"`
}

// Query returns entities and relations relevant to the text.
func (s *HTTPService) Query(ctx context.Context, text, mode string) ([]Entity, []Relation, error) {
	var resp queryResponse
	if err := s.post(ctx, "/query", queryRequest{Query: text, Mode: mode, OnlyNeedContext: true}, &resp); err != nil {
		return nil, nil, err
	}
	return resp.Entities, resp.Relations, nil
}

// QueryContext returns raw context text for the query.
func (s *HTTPService) QueryContext(ctx context.Context, text, mode string) (string, error) {
	var resp queryResponse
	if err := s.post(ctx, "/query", queryRequest{Query: text, Mode: mode, OnlyNeedContext: true}, &resp); err != nil {
		return "", err
	}
	return resp.Context, nil
}

type indexRequest struct {
	Texts []string `json:"texts"`
}

// Index adds documents to the retrieval store.
func (s *HTTPService) Index(ctx context.Context, documents []string) error {
	return s.post(ctx, "/documents/texts", indexRequest{Texts: documents}, nil)
}

func (s *HTTPService) post(ctx context.Context, path string, payload, out any) error {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+path, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("retrieval server returned status %d: %s", resp.StatusCode, string(body))
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}
