package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Laisky/errors/v2"
	gmw "github.com/Laisky/gin-middlewares/v6"
	glog "github.com/Laisky/go-utils/v5/log"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"github.com/llm-council/council-relay/common"
	"github.com/llm-council/council-relay/common/client"
	"github.com/llm-council/council-relay/common/config"
	"github.com/llm-council/council-relay/common/graceful"
	"github.com/llm-council/council-relay/common/logger"
	"github.com/llm-council/council-relay/middleware"
	"github.com/llm-council/council-relay/monitor"
	"github.com/llm-council/council-relay/relay/adaptor/openai"
	"github.com/llm-council/council-relay/relay/council"
	"github.com/llm-council/council-relay/router"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	common.Init()
	logger.SetupLogger()

	// Setup enhanced logger with alertPusher integration
	logger.SetupEnhancedLogger(ctx)

	logger.Logger.Info("council relay started", zap.String("version", common.Version))

	if config.GinMode != gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	client.Init()

	cc := council.NewClient(council.LoadConfig())
	cfg := cc.Config()
	logger.Logger.Info("council configured",
		zap.String("provider", cfg.Provider.String()),
		zap.String("endpoint", cfg.APIURL),
		zap.Strings("council_models", cfg.CouncilModels),
		zap.String("chairman_model", cfg.ChairmanModel),
		zap.Duration("query_timeout", cfg.QueryTimeout),
		zap.Int("max_concurrency", cfg.MaxConcurrency))
	if cfg.APIKey == "" {
		logger.Logger.Warn("no api key configured for the active provider, every query will fail",
			zap.String("provider", cfg.Provider.String()))
	}
	if config.DebugEnabled {
		go openai.InitTokenEncoders(cfg.CouncilModels)
	}

	logLevel := glog.LevelInfo
	if config.DebugEnabled {
		logLevel = glog.LevelDebug
	}

	// Initialize HTTP server
	server := gin.New()
	server.RedirectTrailingSlash = false
	server.Use(
		middleware.PanicRecover(),
		gmw.NewLoggerMiddleware(
			gmw.WithLoggerMwColored(),
			gmw.WithLevel(logLevel.String()),
			gmw.WithLogger(logger.Logger.Named("gin")),
		),
	)
	server.Use(middleware.RequestId())

	if config.EnablePrometheusMetrics {
		server.GET("/metrics", gin.WrapH(monitor.Handler()))
		logger.Logger.Info("Prometheus metrics endpoint available at /metrics")
	}

	router.SetRouter(server, cc)

	port := common.ListenPort()
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           server,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Logger.Info("server started", zap.String("address", "http://localhost:"+port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Logger.Fatal("failed to start HTTP server", zap.Error(err))
		}
	case <-ctx.Done():
	}

	shutdown(srv)
}

// shutdown stops accepting connections, then waits for in-flight council queries,
// all within SHUTDOWN_TIMEOUT.
func shutdown(srv *http.Server) {
	timeout := time.Duration(config.ShutdownTimeoutSec) * time.Second
	logger.Logger.Info("shutting down", zap.Duration("timeout", timeout))
	graceful.SetDraining()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("http server shutdown", zap.Error(err))
	}
	if err := graceful.Drain(ctx); err != nil {
		logger.Logger.Error("drain in-flight requests", zap.Error(err))
		return
	}
	logger.Logger.Info("server stopped")
}
