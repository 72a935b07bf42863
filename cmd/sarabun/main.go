// Command sarabun generates Thai official documents from free-text
// requests, grounded on a retrieval corpus and validated against
// category-specific structural rules.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"sarabun/internal/config"
	"sarabun/internal/document"
	"sarabun/internal/index"
	"sarabun/internal/llm"
	"sarabun/internal/rag"
	"sarabun/internal/workflow"
)

var (
	logger    *zap.Logger
	cfg       config.Config
	debugMode bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sarabun",
		Short: "Thai official document generator",
		Long: `sarabun drafts Thai official documents (internal memos, external
letters, meeting minutes) from a free-text request, grounding the draft
on retrieved reference documents and validating it against the
structural rules of the chosen category.`,
		PersistentPreRunE: setup,
		SilenceUsage:      true,
	}
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(indexCmd())
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(watchCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	zapCfg := zap.NewProductionConfig()
	if debugMode {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	var err error
	logger, err = zapCfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	cfg, err = config.Load()
	if err != nil {
		logger.Warn("could not load config, using defaults", zap.Error(err))
	}
	return nil
}

// newCompletionClient builds the resilient completion client from config,
// falling back to environment-variable provider detection.
func newCompletionClient() (llm.Client, error) {
	var inner llm.Client
	var err error

	if cfg.APIKey != "" {
		inner, err = llm.NewClientFromConfig(&llm.ProviderConfig{
			Provider: llm.Provider(cfg.Provider),
			APIKey:   cfg.APIKey,
			BaseURL:  cfg.BaseURL,
			Model:    cfg.Model,
		})
	} else {
		inner, err = llm.NewClientFromEnv()
	}
	if err != nil {
		return nil, err
	}

	return llm.NewResilient(inner, cfg.Timeouts, logger), nil
}

func newRAGHandle() *rag.Handle {
	return rag.NewHandle(func() (rag.Service, error) {
		return rag.NewHTTPService(cfg.RAGServerURL), nil
	})
}

func generateCmd() *cobra.Command {
	var categoryFlag string

	cmd := &cobra.Command{
		Use:   "generate [request]",
		Short: "Generate a document from a free-text request",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request := strings.Join(args, " ")

			var category document.Category
			if categoryFlag != "" {
				cat, ok := document.ParseCategory(categoryFlag)
				if !ok {
					return fmt.Errorf("unknown category %q (use 1-3 or a Thai category name)", categoryFlag)
				}
				category = cat
			}

			client, err := newCompletionClient()
			if err != nil {
				return err
			}

			handle := newRAGHandle()
			defer handle.Close()

			svc, err := handle.Service()
			if err != nil {
				return err
			}

			retriever := rag.NewRetriever(svc, cfg.QueryMode, logger)
			controller := workflow.New(client, retriever, logger)

			result, err := controller.GenerateDocument(cmd.Context(), request, category)
			if err != nil {
				return describeFailure(err)
			}

			fmt.Println(strings.Repeat("=", 60))
			fmt.Printf("GENERATED DOCUMENT  (%s, confidence %.1f)\n", result.Category, result.Confidence)
			fmt.Println(strings.Repeat("=", 60))
			fmt.Println(result.Document)

			if !result.Verdict.Valid {
				fmt.Fprintln(os.Stderr, "\nWARNING: document did not pass validation:")
				for _, e := range result.Verdict.Errors {
					fmt.Fprintf(os.Stderr, "  - %s\n", e)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "document category (1-3 or Thai name); auto-classified when omitted")
	return cmd
}

// describeFailure maps pipeline errors onto user-facing messages that
// distinguish unreachable collaborators from generation problems.
func describeFailure(err error) error {
	var cerr *llm.CompletionError
	if errors.As(err, &cerr) {
		return fmt.Errorf("could not reach the language service (%s after %d attempt(s)): %w",
			cerr.Kind, cerr.Attempts, err)
	}
	var rerr *rag.RetrievalError
	if errors.As(err, &rerr) {
		return fmt.Errorf("could not reach the retrieval service: %w", err)
	}
	return err
}

func indexCmd() *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "index [directory]",
		Short: "Index reference documents into the retrieval store",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := cfg.CorpusDir
			if len(args) > 0 {
				dir = args[0]
			}

			handle := newRAGHandle()
			defer handle.Close()

			svc, err := handle.Service()
			if err != nil {
				return err
			}

			ix := index.NewIndexer(svc, logger)
			n, err := ix.IndexDirectory(cmd.Context(), dir, pattern)
			if err != nil {
				return describeFailure(err)
			}

			fmt.Printf("Indexed %d document(s) from %s\n", n, dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&pattern, "pattern", "*.md", "glob pattern for corpus files")
	return cmd
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List available document categories",
		Run: func(cmd *cobra.Command, args []string) {
			for i, cat := range document.Categories() {
				info := document.Get(cat)
				fmt.Printf("%d. %s (%s)\n   %s\n", i+1, info.Name, info.NameEN, info.Description)
			}
		},
	}
}

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [directory]",
		Short: "Watch the corpus directory and re-index changed files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := cfg.CorpusDir
			if len(args) > 0 {
				dir = args[0]
			}

			handle := newRAGHandle()
			defer handle.Close()

			svc, err := handle.Service()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := index.NewWatcher(index.NewIndexer(svc, logger), dir, logger)
			if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
