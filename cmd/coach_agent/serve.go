package main

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/jonathan/career-coach/internal/ats"
	"github.com/jonathan/career-coach/internal/benchmark"
	"github.com/jonathan/career-coach/internal/config"
	"github.com/jonathan/career-coach/internal/conversation"
	"github.com/jonathan/career-coach/internal/logger"
	"github.com/jonathan/career-coach/internal/mining"
	"github.com/jonathan/career-coach/internal/quality"
	"github.com/jonathan/career-coach/internal/server"
	"github.com/jonathan/career-coach/internal/session"
)

var (
	servePort   int
	serveConfig string
	serveDebug  bool
	serveJSON   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the turn-processing and stateless analysis endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to a JSON config file")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Verbose/debug logging")
	serveCmd.Flags().BoolVar(&serveJSON, "json", false, "JSON log encoding")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{}
	if serveConfig != "" {
		loaded, err := config.LoadConfig(serveConfig)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	cfg = cfg.MergeWithDefaults(config.DefaultServiceConfig())
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(serveJSON || cfg.JSONLogs, serveDebug || cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	provider, err := config.NewFileProvider(cfg.ThresholdsPath, cfg.ATSProfilesPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration tables: %w", err)
	}

	store, err := buildSessionStore(&cfg)
	if err != nil {
		return fmt.Errorf("failed to create session store: %w", err)
	}
	defer func() { _ = store.Close() }()

	profiles, err := provider.GetATSProfiles()
	if err != nil {
		return err
	}

	analyzer := quality.NewAnalyzer()
	miner := mining.NewMiner()
	engine := benchmark.NewEngine(provider)
	scorer := ats.NewScorer(profiles)

	controller := conversation.NewController(conversation.Deps{
		Store:    store,
		Analyzer: analyzer,
		Miner:    miner,
		Engine:   engine,
		Scorer:   scorer,
		Provider: provider,
		Logger:   log,
	})

	srv := server.New(server.Config{Port: cfg.Port}, server.Deps{
		Controller: controller,
		Analyzer:   analyzer,
		Miner:      miner,
		Engine:     engine,
		Logger:     log,
	})

	return srv.Start()
}

func buildSessionStore(cfg *config.Config) (session.Store, error) {
	switch cfg.SessionStore {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return session.NewStore(session.StoreTypeRedis,
			session.WithRedisClient(client),
			session.WithRedisTTL(time.Duration(cfg.SessionTTLMinutes)*time.Minute))
	default:
		return session.NewStore(session.StoreTypeMemory)
	}
}
