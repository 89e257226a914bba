package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"legaldoc-backend/config"
	"legaldoc-backend/handlers"
	"legaldoc-backend/logging"
	"legaldoc-backend/metrics"
	"legaldoc-backend/migrations"
	"legaldoc-backend/report"
	"legaldoc-backend/repository"
	"legaldoc-backend/service"
	"legaldoc-backend/session"
	"legaldoc-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	// Postgres is only needed for the postgres history backend or the document archive
	var db *pgxpool.Pool
	if cfg.Database.URL != "" {
		if err := migrations.Up(cfg.Database.URL); err != nil {
			return err
		}
		pool, err := initPostgres(ctx, cfg.Database.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
		db = pool
		logger.Info("postgres connection established")
	}

	historyRepo, err := initHistory(cfg, db)
	if err != nil {
		return err
	}

	var geminiClient *genai.Client
	if cfg.Gemini.APIKey != "" {
		geminiClient, err = genai.NewClient(ctx, option.WithAPIKey(cfg.Gemini.APIKey))
		if err != nil {
			return err
		}
		defer geminiClient.Close()
		logger.Info("gemini client initialized", zap.String("model", cfg.Gemini.Model))
	}

	nlp := service.NewRuleBasedNLP()
	if cfg.NLP.Backend == config.BackendGemini {
		textGen := service.NewGeminiGenerator(geminiClient, cfg.Gemini.Model, service.GeminiWithLogger(logger))
		jsonGen := service.NewGeminiGenerator(geminiClient, cfg.Gemini.Model,
			service.GeminiWithJSONResponse(), service.GeminiWithTemperature(0), service.GeminiWithLogger(logger))
		nlp = service.NewGeminiNLP(textGen, jsonGen, cfg.Gemini.SummaryChunkSize)
	}
	logger.Info("nlp backend selected", zap.String("backend", cfg.NLP.Backend))

	translator, err := initTranslator(ctx, cfg, geminiClient, logger)
	if err != nil {
		return err
	}

	var archiveService *service.ArchiveService
	store, err := storage.NewStorage(ctx, storage.StorageConfig{
		Type:         storage.StorageType(cfg.Storage.Type),
		LocalPath:    cfg.Storage.LocalPath,
		S3Bucket:     cfg.Storage.S3Bucket,
		S3Region:     cfg.Storage.S3Region,
		AWSAccessKey: cfg.Storage.AWSAccessKey,
		AWSSecretKey: cfg.Storage.AWSSecretKey,
	})
	if err != nil {
		return err
	}
	if store != nil {
		archiveService = service.NewArchiveService(store, repository.NewDocumentRepository(db), logger)
		logger.Info("document archive enabled", zap.String("storage", cfg.Storage.Type))
	}

	sessions, err := initSessions(ctx, cfg)
	if err != nil {
		return err
	}

	lawyerRepo, err := repository.LoadLawyerRepository(cfg.Lawyers.Path)
	if err != nil {
		logger.Warn("lawyer directory unavailable", zap.String("path", cfg.Lawyers.Path), zap.Error(err))
		lawyerRepo = repository.NewLawyerRepository(nil)
	}

	analysisOpts := []service.AnalysisServiceOption{
		service.AnalysisWithLogger(logger),
		service.AnalysisWithMetrics(m),
		service.AnalysisWithSummarizer(nlp.Summarizer),
		service.AnalysisWithClassifier(service.NewCaseClassifier(
			service.ClassifierWithFallback(nlp.Classifier),
			service.ClassifierWithLogger(logger),
		)),
		service.AnalysisWithExtractor(service.NewFileTextExtractor(logger)),
		service.AnalysisWithInsights(cfg.Analysis.IncludeInsights),
	}
	if archiveService != nil {
		analysisOpts = append(analysisOpts, service.AnalysisWithArchive(archiveService))
	}
	analysisService := service.NewAnalysisService(analysisOpts...)

	historyService := service.NewHistoryService(historyRepo,
		service.HistoryWithMetrics(m),
		service.HistoryWithLogger(logger),
	)
	verifier := service.NewBcryptVerifier(cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.PasswordHash)
	if cfg.Admin.PasswordHash == "" {
		logger.Warn("admin.password_hash not set; admin dashboard is disabled")
	}

	gin.SetMode(gin.ReleaseMode)
	router := handlers.NewRouter(handlers.RouterConfig{
		Analysis: handlers.NewAnalysisHandler(analysisService, archiveService,
			report.NewChromiumRenderer(cfg.Report.ChromePath, cfg.Report.Timeout), cfg.Server.MaxUploadBytes, logger),
		Assistant: handlers.NewAssistantHandler(
			service.NewTranslationService(translator, m, logger),
			service.NewChatService(analysisService, nlp.QA, m, logger),
			logger,
		),
		Account:      handlers.NewAccountHandler(historyService, sessions, verifier, cfg.Session.TTL, logger),
		Lawyer:       handlers.NewLawyerHandler(service.NewLawyerService(lawyerRepo), logger),
		Sessions:     sessions,
		Metrics:      m.Handler(),
		Logger:       logger,
		RequireLogin: cfg.Server.RequireLogin,
	})
	router.MaxMultipartMemory = cfg.Server.MaxUploadBytes

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func initPostgres(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func initHistory(cfg *config.Config, db *pgxpool.Pool) (repository.HistoryRepository, error) {
	if cfg.History.Backend == config.BackendPostgres {
		return repository.NewPostgresHistoryRepository(db), nil
	}
	return repository.NewFileHistoryRepository(cfg.History.FilePath)
}

func initTranslator(ctx context.Context, cfg *config.Config, geminiClient *genai.Client, logger *zap.Logger) (service.Translator, error) {
	switch cfg.Translate.Backend {
	case config.BackendGemini:
		if geminiClient == nil {
			logger.Warn("translation disabled: gemini.api_key not set")
			return nil, nil
		}
		return service.NewGeminiTranslator(service.NewGeminiGenerator(geminiClient, cfg.Gemini.Model,
			service.GeminiWithLogger(logger))), nil
	default:
		if cfg.Translate.APIKey == "" {
			logger.Warn("translation disabled: translate.api_key not set")
			return nil, nil
		}
		return service.NewGoogleTranslator(ctx, cfg.Translate.APIKey)
	}
}

func initSessions(ctx context.Context, cfg *config.Config) (session.Store, error) {
	if cfg.Session.Backend != config.BackendRedis {
		return session.NewMemoryStore(cfg.Session.TTL), nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return session.NewRedisStore(client, cfg.Session.TTL), nil
}
