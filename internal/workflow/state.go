package workflow

import (
	"sarabun/internal/document"
	"sarabun/internal/rag"
)

// State is the record threaded through the pipeline stages. Each stage
// takes a State by value and returns a derived copy; one State belongs to
// exactly one generation run and is never shared across runs.
type State struct {
	// Input
	Request          string
	Category         document.Category
	CategoryExplicit bool

	// Classification
	Confidence float64

	// Run identity, for log correlation.
	RunID string

	// Extracted once per run, reused across regeneration attempts.
	Extracted document.ExtractedFields

	// Retrieval
	Context *rag.Context

	// Generation
	Draft         string
	GenerateCalls int

	// Validation
	ValidationErrors []string
	RetryCount       int
	Valid            bool

	// Output
	FinalDocument string
}
