package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Laisky/errors/v2"
	glog "github.com/Laisky/go-utils/v5/log"
	"github.com/Laisky/zap"
	_ "github.com/joho/godotenv/autoload"

	"github.com/llm-council/council-relay/common/client"
	"github.com/llm-council/council-relay/relay/council"
)

func main() {
	logger, err := glog.NewConsoleWithName("council-cli", glog.LevelInfo)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %+v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		logger.Error("council query failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger glog.Logger, args []string, stdin io.Reader, stdout io.Writer) error {
	opts, err := parseOptions(args, stdin)
	if err != nil {
		return errors.Wrap(err, "parse options")
	}

	cfg := council.LoadConfig()
	if len(opts.Models) > 0 {
		cfg.CouncilModels = opts.Models
	}

	client.Init()
	cc := council.NewClient(cfg, council.WithTimeout(opts.Timeout))

	resolved := cc.Config()
	logger.Info("querying council",
		zap.String("provider", resolved.Provider.String()),
		zap.Strings("models", resolved.CouncilModels),
		zap.Duration("timeout", resolved.QueryTimeout))

	results := cc.QueryCouncil(ctx, opts.messages())

	if opts.JSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results.Responses()); err != nil {
			return errors.Wrap(err, "encode results")
		}
	} else {
		renderReport(stdout, resolved.CouncilModels, results)
	}

	if len(results) > 0 && len(results.Succeeded()) == 0 {
		return errors.Errorf("all %d models failed", len(results))
	}
	return nil
}
