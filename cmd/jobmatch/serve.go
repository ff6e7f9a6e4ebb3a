package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/cv-jobmatch/internal/config"
	"github.com/jonathan/cv-jobmatch/internal/jobs"
	"github.com/jonathan/cv-jobmatch/internal/llm"
	"github.com/jonathan/cv-jobmatch/internal/pipeline"
	"github.com/jonathan/cv-jobmatch/internal/search"
	"github.com/jonathan/cv-jobmatch/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the CV match and tailoring endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	ctx := context.Background()

	store, err := jobs.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	llmClient, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return err
	}
	defer func() { _ = llmClient.Close() }()

	searchClient := search.New(logger, cfg.JobSearchURL)

	pipe := pipeline.New(logger,
		llm.NewSkillExtractor(llmClient),
		llm.NewTailorer(llmClient),
		searchClient,
		store)

	srv := server.New(server.Config{Port: cfg.Port}, logger, pipe, pipe)
	return srv.Start()
}
