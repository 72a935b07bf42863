package rag

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"sarabun/internal/document"
)

const (
	// ContextThreshold is the minimum retrieved-context length in runes
	// before the static fallback example is appended.
	ContextThreshold = 200

	// RequestPreviewRunes bounds how much of the raw request goes into
	// the search query.
	RequestPreviewRunes = 100
)

// actionKeywords maps request trigger phrases to search-query additions.
// Order is fixed so query construction is deterministic.
var actionKeywords = []struct {
	trigger  string
	addition string
}{
	{"ขออนุมัติ", "ขออนุมัติ"},
	{"เดินทาง", "เดินทาง ปฏิบัติงาน"},
	{"ตรวจสอบ", "ตรวจสอบ คลื่นความถี่"},
	{"รายงาน", "รายงานผล"},
}

// Context is the bag of retrieved material handed to generation.
type Context struct {
	Passages  []string
	Entities  []Entity
	Relations []Relation

	// FromFallback is true when the static category example was appended
	// because retrieved content was too sparse.
	FromFallback bool
}

// Retriever builds search queries and fetches grounding context from the
// retrieval collaborator.
type Retriever struct {
	svc    Service
	mode   string
	logger *zap.Logger
}

// NewRetriever creates a Retriever. mode selects the collaborator's query
// mode; a nil logger disables logging.
func NewRetriever(svc Service, mode string, logger *zap.Logger) *Retriever {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Retriever{svc: svc, mode: mode, logger: logger}
}

// Retrieve fetches entities, relations, and context passages for the
// request. When retrieved content is shorter than ContextThreshold runes,
// the category's static fallback example is appended so the bag is never
// empty for categories that have one. Collaborator failures surface as
// *RetrievalError; retrying them is the collaborator's responsibility.
func (r *Retriever) Retrieve(ctx context.Context, request string, category document.Category) (*Context, error) {
	query := BuildSearchQuery(request, category)
	r.logger.Debug("retrieving context", zap.String("query", query))

	entities, relations, err := r.svc.Query(ctx, query, r.mode)
	if err != nil {
		return nil, &RetrievalError{Op: "query", Err: err}
	}

	contextText, err := r.svc.QueryContext(ctx, query, r.mode)
	if err != nil {
		return nil, &RetrievalError{Op: "query context", Err: err}
	}

	result := &Context{
		Entities:  entities,
		Relations: relations,
	}
	if contextText != "" {
		result.Passages = append(result.Passages, contextText)
	}

	if utf8.RuneCountInString(contextText) < ContextThreshold {
		if fallback := document.FallbackExample(category); fallback != "" {
			result.Passages = append(result.Passages, fallback)
			result.FromFallback = true
			r.logger.Info("retrieved context too sparse, using fallback example",
				zap.String("category", string(category)))
		}
	}

	r.logger.Info("context retrieved",
		zap.Int("entities", len(entities)),
		zap.Int("relations", len(relations)),
		zap.Int("passages", len(result.Passages)),
		zap.Bool("fallback", result.FromFallback))

	return result, nil
}

// BuildSearchQuery combines the category's header term, detected action
// keywords, and a bounded prefix of the raw request.
func BuildSearchQuery(request string, category document.Category) string {
	parts := []string{document.Get(category).SearchHeader}

	for _, kw := range actionKeywords {
		if strings.Contains(request, kw.trigger) {
			parts = append(parts, kw.addition)
		}
	}

	parts = append(parts, truncateRunes(request, RequestPreviewRunes))
	return strings.Join(parts, " ")
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
