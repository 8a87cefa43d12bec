package council

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"

	"github.com/llm-council/council-relay/common/helper"
	"github.com/llm-council/council-relay/common/logger"
	"github.com/llm-council/council-relay/monitor"
	"github.com/llm-council/council-relay/relay/adaptor"
	"github.com/llm-council/council-relay/relay/meta"
	"github.com/llm-council/council-relay/relay/model"
)

// QueryModel sends messages to one model with the client's configured timeout.
// Failures are reported through Result.Err, never as a panic or error return.
func (c *Client) QueryModel(ctx context.Context, modelID string, messages []model.Message) Result {
	return c.QueryModelWithTimeout(ctx, modelID, messages, c.cfg.QueryTimeout)
}

// QueryModelWithTimeout is QueryModel with an explicit bound; timeout <= 0 uses the configured one.
func (c *Client) QueryModelWithTimeout(ctx context.Context, modelID string, messages []model.Message, timeout time.Duration) Result {
	if timeout <= 0 {
		timeout = c.cfg.QueryTimeout
	}

	m := meta.New(c.cfg.Provider, c.cfg.APIURL, c.cfg.APIKey, modelID)
	c.adaptor.Init(m)

	resp, qerr := c.doQuery(ctx, m, messages, timeout)
	result := Result{
		Model:    modelID,
		Response: resp,
		Err:      qerr,
		Duration: time.Since(m.StartTime),
	}

	outcome := monitor.OutcomeSuccess
	if qerr != nil {
		outcome = string(qerr.Kind)
		logger.Logger.Warn("council model query failed",
			zap.String("model", modelID),
			zap.String("provider", c.cfg.Provider.String()),
			zap.String("kind", string(qerr.Kind)),
			zap.Int("status", qerr.StatusCode),
			zap.Duration("elapsed", result.Duration),
			zap.Error(qerr.Err))
	} else {
		logger.Logger.Debug("council model query succeeded",
			zap.String("model", modelID),
			zap.Duration("elapsed", result.Duration))
	}
	monitor.RecordModelQuery(c.cfg.Provider.String(), modelID, outcome, result.Duration)

	return result
}

func (c *Client) doQuery(ctx context.Context, m *meta.Meta, messages []model.Message, timeout time.Duration) (*model.QueryResult, *QueryError) {
	if !m.HasAPIKey() {
		return nil, newQueryError(KindMissingCredential, 0,
			errors.Errorf("no api key configured for provider %s", m.Provider))
	}

	body, err := json.Marshal(model.NewChatRequest(m.ActualModelName, messages))
	if err != nil {
		return nil, newQueryError(KindTransport, 0, errors.Wrap(err, "marshal chat request"))
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := adaptor.DoRequestHelper(ctx, c.httpClient, c.adaptor, m, bytes.NewReader(body))
	if err != nil {
		return nil, newQueryError(KindTransport, 0, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, newQueryError(KindTransport, resp.StatusCode, errors.Wrap(err, "read response body"))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, newQueryError(KindUpstreamStatus, resp.StatusCode,
			errors.Errorf("upstream returned status %d: %s", resp.StatusCode, helper.Snippet(respBody)))
	}

	result, err := parseChatResponse(respBody)
	if err != nil {
		return nil, newQueryError(KindMalformedResponse, resp.StatusCode, err)
	}
	return result, nil
}

// parseChatResponse extracts the first choice's message.
func parseChatResponse(body []byte) (*model.QueryResult, error) {
	var chatResp model.ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, errors.Wrapf(err, "decode chat response: %s", helper.Snippet(body))
	}
	if len(chatResp.Choices) == 0 {
		return nil, errors.New("chat response has no choices")
	}
	msg := chatResp.Choices[0].Message
	if msg == nil {
		return nil, errors.New("first choice has no message")
	}
	return model.NewQueryResult(msg), nil
}
