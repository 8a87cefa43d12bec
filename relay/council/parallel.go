package council

import (
	"context"
	"time"

	"github.com/Laisky/zap"
	"golang.org/x/sync/errgroup"

	"github.com/llm-council/council-relay/common/config"
	"github.com/llm-council/council-relay/common/logger"
	"github.com/llm-council/council-relay/monitor"
	"github.com/llm-council/council-relay/relay/adaptor/openai"
	"github.com/llm-council/council-relay/relay/model"
)

// QueryModels queries every model concurrently and waits for all of them.
// The map has one entry per distinct identifier; a duplicated identifier keeps its last occurrence's result.
// One model failing never cancels or hides the others.
func (c *Client) QueryModels(ctx context.Context, models []string, messages []model.Message) ResultMap {
	startTime := time.Now()
	if config.DebugEnabled && len(models) > 0 {
		logger.Logger.Debug("council fan-out",
			zap.Int("models", len(models)),
			zap.Int("messages", len(messages)),
			zap.Int("prompt_tokens_estimate", openai.CountTokenMessages(messages, models[0])))
	}

	results := make([]Result, len(models))

	// a plain Group: a failed model must not cancel its siblings
	var g errgroup.Group
	if c.cfg.MaxConcurrency > 0 {
		g.SetLimit(c.cfg.MaxConcurrency)
	}
	for i, modelID := range models {
		g.Go(func() error {
			results[i] = c.QueryModel(ctx, modelID, messages)
			return nil
		})
	}
	_ = g.Wait()

	out := make(ResultMap, len(models))
	for _, r := range results {
		out[r.Model] = r
	}

	elapsed := time.Since(startTime)
	monitor.RecordFanout(len(models), elapsed)
	logger.Logger.Info("council fan-out finished",
		zap.Int("models", len(models)),
		zap.Int("succeeded", len(out.Succeeded())),
		zap.Duration("elapsed", elapsed))
	return out
}

// QueryCouncil fans out to the configured council.
func (c *Client) QueryCouncil(ctx context.Context, messages []model.Message) ResultMap {
	return c.QueryModels(ctx, c.cfg.Models(), messages)
}

// QueryChairman asks the chairman model alone.
func (c *Client) QueryChairman(ctx context.Context, messages []model.Message) Result {
	return c.QueryModel(ctx, c.cfg.ChairmanModel, messages)
}
