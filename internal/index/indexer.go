// Package index feeds reference documents into the retrieval
// collaborator: one-shot indexing of files and directories, plus a
// filesystem watcher that re-indexes corpus files as they change.
package index

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"sarabun/internal/rag"
)

// Indexer converts corpus files to plain text and hands them to the
// retrieval service.
type Indexer struct {
	svc    rag.Service
	logger *zap.Logger
}

// NewIndexer creates an Indexer. A nil logger disables logging.
func NewIndexer(svc rag.Service, logger *zap.Logger) *Indexer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Indexer{svc: svc, logger: logger}
}

// IndexFile indexes a single corpus file.
func (ix *Indexer) IndexFile(ctx context.Context, path string) error {
	doc, err := ix.prepare(path)
	if err != nil {
		return err
	}

	if err := ix.svc.Index(ctx, []string{doc}); err != nil {
		return &rag.RetrievalError{Op: "index", Err: err}
	}

	ix.logger.Info("indexed file", zap.String("path", path))
	return nil
}

// IndexDirectory indexes every file in dir matching pattern (for example
// "*.md"). It returns the number of documents indexed.
func (ix *Indexer) IndexDirectory(ctx context.Context, dir, pattern string) (int, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return 0, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}

	var documents []string
	for _, path := range matches {
		doc, err := ix.prepare(path)
		if err != nil {
			ix.logger.Warn("skipping corpus file", zap.String("path", path), zap.Error(err))
			continue
		}
		documents = append(documents, doc)
	}

	if len(documents) == 0 {
		ix.logger.Info("no corpus files matched",
			zap.String("dir", dir), zap.String("pattern", pattern))
		return 0, nil
	}

	if err := ix.svc.Index(ctx, documents); err != nil {
		return 0, &rag.RetrievalError{Op: "index", Err: err}
	}

	ix.logger.Info("indexed directory",
		zap.String("dir", dir), zap.Int("documents", len(documents)))
	return len(documents), nil
}

// prepare reads a corpus file, strips YAML front matter, flattens
// markdown to plain text, and prepends a provenance header.
func (ix *Indexer) prepare(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	meta, body := splitFrontMatter(raw)

	text := markdownToText(body)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%s has no indexable content", path)
	}

	source := filepath.Base(path)
	if title, ok := meta["title"].(string); ok && title != "" {
		source = title
	}

	return fmt.Sprintf("# Source: %s\n\n%s", source, text), nil
}

// splitFrontMatter separates a leading YAML front-matter block from the
// document body. Malformed front matter is treated as body text.
func splitFrontMatter(raw []byte) (map[string]any, []byte) {
	const delim = "---\n"
	if !bytes.HasPrefix(raw, []byte(delim)) {
		return nil, raw
	}

	rest := raw[len(delim):]
	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return nil, raw
	}

	var meta map[string]any
	if err := yaml.Unmarshal(rest[:end], &meta); err != nil {
		return nil, raw
	}

	body := rest[end+len("\n---"):]
	return meta, bytes.TrimLeft(body, "-\n")
}

// markdownToText flattens markdown to plain text by walking the parsed
// AST and collecting text segments, one line per block.
func markdownToText(src []byte) string {
	md := goldmark.New()
	doc := md.Parser().Parse(gmtext.NewReader(src))

	var buf bytes.Buffer
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := n.(*ast.Text); ok {
				buf.Write(t.Segment.Value(src))
				if t.SoftLineBreak() || t.HardLineBreak() {
					buf.WriteByte('\n')
				}
			}
			return ast.WalkContinue, nil
		}
		if n.Type() == ast.TypeBlock {
			buf.WriteByte('\n')
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(buf.String())
}
