package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	gutils "github.com/Laisky/go-utils/v5"
	glog "github.com/Laisky/go-utils/v5/log"
	"github.com/Laisky/zap"
	"github.com/Laisky/zap/zapcore"
	"github.com/gin-gonic/gin"

	"github.com/llm-council/council-relay/common/config"
)

var (
	Logger glog.Logger
	// LogDir is the directory SetupLogger writes into; empty keeps console-only logging.
	LogDir string

	setupLogOnce sync.Once
	initLogOnce  sync.Once
)

// init initializes the logger automatically when the package is imported
func init() {
	initLogger()
}

// initLogger initializes the go-utils logger
func initLogger() {
	initLogOnce.Do(func() {
		var err error
		level := glog.LevelInfo
		if config.DebugEnabled {
			level = glog.LevelDebug
		}

		Logger, err = glog.NewConsoleWithName("council", level)
		if err != nil {
			panic(fmt.Sprintf("failed to create logger: %+v", err))
		}
	})
}

// LogFilePath returns the file SetupLogger writes to for the given day.
func LogFilePath(dir string, day time.Time) string {
	if config.OnlyOneLogFile {
		return filepath.Join(dir, "council.log")
	}
	return filepath.Join(dir, fmt.Sprintf("council-%s.log", day.Format("20060102")))
}

// SetupLogger tees structured logs and gin access logs into a file under LogDir.
func SetupLogger() {
	setupLogOnce.Do(func() {
		if LogDir == "" {
			return
		}

		logPath := LogFilePath(LogDir, time.Now())
		fd, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatal("failed to open log file")
		}
		gin.DefaultWriter = io.MultiWriter(os.Stdout, fd)
		gin.DefaultErrorWriter = io.MultiWriter(os.Stderr, fd)

		level := zapcore.InfoLevel
		if config.DebugEnabled {
			level = zapcore.DebugLevel
		}
		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(fd),
			level,
		)
		Logger = Logger.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, fileCore)
		})).With(zap.String("log_file", logPath))
	})
}

// SetupEnhancedLogger sets up the logger with alertPusher integration
func SetupEnhancedLogger(ctx context.Context) {
	opts := []zap.Option{}

	if config.LogPushAPI != "" {
		ratelimiter, err := gutils.NewRateLimiter(ctx, gutils.RateLimiterArgs{
			Max:     1,
			NPerSec: 1,
		})
		if err != nil {
			Logger.Panic("create ratelimiter", zap.Error(err))
		}

		alertPusher, err := glog.NewAlert(
			ctx,
			config.LogPushAPI,
			glog.WithAlertType(config.LogPushType),
			glog.WithAlertToken(config.LogPushToken),
			glog.WithAlertHookLevel(zap.ErrorLevel),
			glog.WithRateLimiter(ratelimiter),
		)
		if err != nil {
			Logger.Panic("create AlertPusher", zap.Error(err))
		}

		opts = append(opts, zap.HooksWithFields(alertPusher.GetZapHook()))
		Logger.Info("alert pusher configured",
			zap.String("alert_api", config.LogPushAPI),
			zap.String("alert_type", config.LogPushType),
		)
	}

	hostname, err := os.Hostname()
	if err != nil {
		Logger.Panic("get hostname", zap.Error(err))
	}

	Logger = Logger.WithOptions(opts...).With(
		zap.String("host", hostname),
	)

	if config.DebugEnabled {
		_ = Logger.ChangeLevel("debug")
		Logger.Debug("running in debug mode")
	} else {
		_ = Logger.ChangeLevel("info")
	}
}
