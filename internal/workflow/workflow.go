// Package workflow sequences the document generation pipeline:
// Classify -> Retrieve -> Generate -> Validate, looping back to Generate
// on validation failure up to a fixed bound. Stages run strictly
// sequentially; the only blocking points are the completion client and
// the retrieval collaborator.
package workflow

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sarabun/internal/document"
	"sarabun/internal/generator"
	"sarabun/internal/llm"
	"sarabun/internal/rag"
)

// MaxValidationRetries bounds how many times generation is retried after
// a failed validation, so a run makes at most MaxValidationRetries+1
// Generate calls.
const MaxValidationRetries = 3

// Result is the outcome of one generation run.
//
// The pipeline is deliberately best-effort on exhaustion: when every
// regeneration fails validation, Document holds the LAST draft produced
// and Verdict.Valid is false. Callers that need a hard guarantee must
// check Verdict before using the document.
type Result struct {
	Document   string
	Verdict    document.Verdict
	Category   document.Category
	Confidence float64
	Attempts   int // number of Generate invocations
	RunID      string
}

// Controller drives the pipeline. One Controller may serve concurrent
// runs as long as the underlying completion and retrieval collaborators
// are safe for concurrent use; the controller itself holds no mutable
// state across runs.
type Controller struct {
	client    llm.Client
	retriever *rag.Retriever
	generator *generator.Generator
	validator *document.Validator
	logger    *zap.Logger
}

// New creates a Controller. client should already be wrapped for
// resilience (see llm.NewResilient); a nil logger disables logging.
func New(client llm.Client, retriever *rag.Retriever, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		client:    client,
		retriever: retriever,
		generator: generator.New(client, logger),
		validator: document.NewValidator(logger),
		logger:    logger,
	}
}

// GenerateDocument runs the full pipeline for a request. An empty
// category means auto-classification. Completion and retrieval failures
// abort the run with no partial document; validation failures never
// abort, they drive the bounded retry loop (see Result for the
// best-effort contract).
func (c *Controller) GenerateDocument(ctx context.Context, request string, category document.Category) (*Result, error) {
	st := State{
		Request:          request,
		Category:         category,
		CategoryExplicit: category != "",
		RunID:            uuid.NewString(),
	}
	logger := c.logger.With(zap.String("run_id", st.RunID))

	st, err := c.classify(ctx, st, logger)
	if err != nil {
		return nil, err
	}

	st, err = c.retrieve(ctx, st, logger)
	if err != nil {
		return nil, err
	}

	// Extract once; retries reuse the same fields.
	st.Extracted = document.Extract(st.Request)

	for {
		st, err = c.generate(ctx, st, logger)
		if err != nil {
			return nil, err
		}

		st = c.validate(st, logger)

		if st.Valid || st.RetryCount >= MaxValidationRetries {
			break
		}
		st.RetryCount++
		logger.Info("retrying generation",
			zap.Int("retry", st.RetryCount),
			zap.Strings("errors", st.ValidationErrors))
	}

	doc := st.FinalDocument
	if doc == "" {
		doc = st.Draft
	}

	return &Result{
		Document:   doc,
		Verdict:    document.Verdict{Errors: st.ValidationErrors, Valid: st.Valid},
		Category:   st.Category,
		Confidence: st.Confidence,
		Attempts:   st.GenerateCalls,
		RunID:      st.RunID,
	}, nil
}

// classify resolves the category. An explicitly supplied category passes
// through with confidence 1.0; otherwise one completion call answers a
// closed-set classification prompt and the response is matched by
// substring against the known category names in table order.
func (c *Controller) classify(ctx context.Context, st State, logger *zap.Logger) (State, error) {
	if st.CategoryExplicit {
		logger.Info("category pre-selected", zap.String("category", string(st.Category)))
		st.Confidence = 1.0
		return st, nil
	}

	response, err := c.client.Complete(ctx, document.ClassificationPrompt(st.Request))
	if err != nil {
		return st, err
	}
	response = strings.TrimSpace(response)

	st.Category = document.DefaultCategory
	st.Confidence = 0.5
	for _, cat := range document.Categories() {
		if strings.Contains(response, string(cat)) {
			st.Category = cat
			st.Confidence = 0.8
			break
		}
	}

	logger.Info("auto-classified",
		zap.String("category", string(st.Category)),
		zap.Float64("confidence", st.Confidence))
	return st, nil
}

func (c *Controller) retrieve(ctx context.Context, st State, logger *zap.Logger) (State, error) {
	rctx, err := c.retriever.Retrieve(ctx, st.Request, st.Category)
	if err != nil {
		return st, err
	}
	st.Context = rctx
	return st, nil
}

func (c *Controller) generate(ctx context.Context, st State, logger *zap.Logger) (State, error) {
	draft, err := c.generator.Generate(ctx, st.Request, st.Category, st.Extracted, st.Context)
	if err != nil {
		return st, err
	}
	st.Draft = draft
	st.GenerateCalls++
	return st, nil
}

func (c *Controller) validate(st State, logger *zap.Logger) State {
	verdict := c.validator.Validate(st.Draft, st.Category, st.Request)

	if verdict.Valid {
		logger.Info("validation passed", zap.Int("attempts", st.GenerateCalls))
		st.ValidationErrors = nil
		st.Valid = true
		st.FinalDocument = st.Draft
		return st
	}

	st.ValidationErrors = verdict.Errors
	st.Valid = false
	return st
}
