package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"wiselydiary/backend/internal/config"
	"wiselydiary/backend/internal/db"
	"wiselydiary/backend/internal/handler"
	transport "wiselydiary/backend/internal/http"
	"wiselydiary/backend/internal/logger"
	"wiselydiary/backend/internal/metrics"
	"wiselydiary/backend/internal/network"
	"wiselydiary/backend/internal/repository"
	"wiselydiary/backend/internal/service"
	"wiselydiary/backend/internal/service/ai"
	"wiselydiary/backend/internal/snowflake"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:           "wiselydiary",
		Short:         "Diary journaling backend with LLM summaries and letters.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env is fine; real environment variables still apply.
			_ = godotenv.Load()
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(config.KeyAddr, ":8080", "listen address")
	flags.String(config.KeyDataDir, "./data", "data directory")
	flags.String(config.KeyDBPath, "", "SQLite database path (default <data-dir>/wiselydiary.db)")
	flags.String(config.KeyLogLevel, "info", "log level: debug, info, warn, error")
	flags.String(config.KeyLogFormat, "text", "log format: text or json")
	flags.String(config.KeyTimezone, "Asia/Seoul", "time zone used to resolve diary dates")
	flags.String("llm-provider", "openai", "LLM provider: openai, anthropic, compatible")
	flags.String("llm-model", "gpt-4o-mini", "model used for summaries and letters")
	flags.String("llm-base-url", "", "override the LLM API base URL")
	bindFlags(v, cmd, map[string]string{
		config.KeyAddr:        config.KeyAddr,
		config.KeyDataDir:     config.KeyDataDir,
		config.KeyDBPath:      config.KeyDBPath,
		config.KeyLogLevel:    config.KeyLogLevel,
		config.KeyLogFormat:   config.KeyLogFormat,
		config.KeyTimezone:    config.KeyTimezone,
		config.KeyLLMProvider: "llm-provider",
		config.KeyLLMModel:    "llm-model",
		config.KeyLLMBaseURL:  "llm-base-url",
	})

	return cmd
}

func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) {
	for key, flag := range keys {
		if err := v.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func run(parent context.Context, cfg config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, terminationSignals...)
	defer stop()

	logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	if err := snowflake.Init(cfg.NodeID); err != nil {
		return fmt.Errorf("init snowflake: %w", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("database open failed", "module", "server", "action", "start", "resource", "db", "result", "failed", "path", cfg.DBPath, "error", err)
		return err
	}
	defer dbConn.Close()

	maxUpload, err := humanize.ParseBytes(cfg.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("parse max upload size %q: %w", cfg.MaxUploadSize, err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.RegisterCollectors(registry)

	clients := network.NewClientFactory(cfg.LLM.ProxyURL)
	aiCfg := ai.Config{
		Provider:    cfg.LLM.Provider,
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		HTTPClient:  clients.NewHTTPClient(cfg.LLM.Timeout),
	}
	provider, err := ai.NewProvider(aiCfg)
	if err != nil {
		return fmt.Errorf("create llm provider: %w", err)
	}
	gateway := ai.NewGateway(provider, ai.NewRateLimiter(cfg.LLM.RateLimit))

	// Embeddings are an OpenAI endpoint; other providers store chunks without vectors.
	var embedder ai.Embedder
	if cfg.LLM.Provider != ai.ProviderAnthropic && cfg.LLM.EmbeddingModel != "" {
		e, err := ai.NewOpenAIEmbedder(aiCfg, cfg.LLM.EmbeddingModel)
		if err != nil {
			logger.Warn("embedder disabled", "module", "server", "action", "start", "resource", "embedding", "result", "failed", "error", err)
		} else {
			embedder = e
		}
	}

	diaryRepo := repository.NewDiaryRepository(dbConn)
	summaryRepo := repository.NewDiarySummaryRepository(dbConn)
	documentRepo := repository.NewDocumentRepository(dbConn)

	vectorStore := service.NewVectorStoreService(documentRepo, embedder)
	ragService := service.NewRAGService(gateway, vectorStore, service.DefaultReferenceLimit)
	diaryService := service.NewDiaryService(
		repository.NewTxManager(dbConn),
		diaryRepo,
		summaryRepo,
		ragService,
		gateway,
		service.DiaryOptions{
			Location:            cfg.Location(),
			FreeformModel:       cfg.LLM.FreeformModel,
			FreeformTemperature: cfg.LLM.FreeformTemperature,
		},
	)

	router := transport.NewRouter(
		handler.NewDiaryHandler(diaryService),
		handler.NewRAGHandler(vectorStore, int64(maxUpload)),
		transport.RouterOptions{
			BodyLimit: cfg.MaxUploadSize,
			Gatherer:  registry,
			Health:    dbConn.PingContext,
		},
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server started", "module", "server", "action", "start", "resource", "http", "result", "ok", "addr", cfg.Addr, "provider", provider.Name(), "model", cfg.LLM.Model, "embeddings", embedder != nil)
		if err := router.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("server stopping", "module", "server", "action", "stop", "resource", "http", "result", "started")
		return router.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", "module", "server", "action", "stop", "resource", "http", "result", "failed", "error", err)
		return err
	}
	logger.Info("server stopped", "module", "server", "action", "stop", "resource", "http", "result", "ok")
	return nil
}
