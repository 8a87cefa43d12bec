package common

import (
	"flag"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Laisky/zap"

	"github.com/llm-council/council-relay/common/config"
	"github.com/llm-council/council-relay/common/logger"
)

var (
	Port         = flag.Int("port", 3000, "the listening port")
	PrintVersion = flag.Bool("version", false, "print version and exit")
	LogDir       = flag.String("log-dir", "", "specify the log directory, empty disables file logging")
)

// Init parses flags and prepares the log directory.
func Init() {
	flag.Parse()

	if *PrintVersion {
		os.Stdout.WriteString(Version + "\n")
		os.Exit(0)
	}

	if *LogDir != "" {
		expanded := expandLogDirPath(*LogDir)
		lg := logger.Logger.With(zap.String("log_dir", expanded))
		lg.Debug("starting to set log dir")

		var err error
		expanded, err = filepath.Abs(expanded)
		if err != nil {
			lg.Fatal("failed to get absolute log dir", zap.Error(err))
		}

		if err = os.MkdirAll(expanded, 0o777); err != nil {
			lg.Fatal("failed to create log dir", zap.Error(err))
		}

		lg.Info("set log dir", zap.String("log_dir", expanded))
		logger.LogDir = expanded
		*LogDir = expanded
	}
}

// ListenPort prefers the PORT environment variable over the --port flag.
func ListenPort() string {
	if config.ServerPort != "" {
		return config.ServerPort
	}
	return strconv.Itoa(*Port)
}
