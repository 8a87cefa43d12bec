package controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	gmw "github.com/Laisky/gin-middlewares/v6"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/llm-council/council-relay/common"
	"github.com/llm-council/council-relay/common/ctxkey"
	"github.com/llm-council/council-relay/common/helper"
	"github.com/llm-council/council-relay/middleware"
	"github.com/llm-council/council-relay/relay/council"
	"github.com/llm-council/council-relay/relay/model"
)

// MaxModelsPerRequest bounds the fan-out a single API call may ask for.
const MaxModelsPerRequest = 32

// CouncilQueryRequest asks a set of models the same conversation.
// Models is optional and defaults to the configured council.
type CouncilQueryRequest struct {
	Messages []model.Message `json:"messages" binding:"dive"`
	Models   []string        `json:"models,omitempty"`
}

// ChairmanRequest asks the chairman model alone.
type ChairmanRequest struct {
	Messages []model.Message `json:"messages" binding:"dive"`
}

// ModelReply is one entry of the chairman response.
type ModelReply struct {
	Model      string             `json:"model"`
	Result     *model.QueryResult `json:"result"`
	DurationMs int64              `json:"duration_ms"`
}

// CouncilQueryResponse carries a result (or null) per requested model plus the failure reasons.
type CouncilQueryResponse struct {
	Success    bool                          `json:"success"`
	Data       map[string]*model.QueryResult `json:"data"`
	Errors     map[string]string             `json:"errors,omitempty"`
	DurationMs int64                         `json:"duration_ms"`
}

// QueryCouncil fans the conversation out to every requested model.
func QueryCouncil(cc *council.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CouncilQueryRequest
		if err := common.UnmarshalBodyReusable(c, &req); err != nil {
			middleware.AbortWithError(c, http.StatusBadRequest, errors.Wrap(err, "invalid council query"))
			return
		}

		models := normalizeModels(req.Models)
		if len(models) == 0 {
			models = cc.Config().Models()
		}
		if len(models) > MaxModelsPerRequest {
			middleware.AbortWithError(c, http.StatusBadRequest,
				errors.Errorf("too many models: %d > %d", len(models), MaxModelsPerRequest))
			return
		}
		c.Set(ctxkey.RequestModels, models)

		lg := gmw.GetLogger(c)
		startTime := time.Now()
		results := cc.QueryModels(c.Request.Context(), models, req.Messages)

		resp := CouncilQueryResponse{
			Success:    true,
			Data:       results.Responses(),
			DurationMs: helper.CalcElapsedTime(startTime),
		}
		for _, id := range results.Failed() {
			if resp.Errors == nil {
				resp.Errors = make(map[string]string)
			}
			resp.Errors[id] = results[id].Err.Error()
		}

		lg.Info("council query served",
			zap.Int("models", len(models)),
			zap.Int("failed", len(resp.Errors)),
			zap.Int64("duration_ms", resp.DurationMs))
		c.JSON(http.StatusOK, resp)
	}
}

// QueryChairman sends the conversation to the chairman model.
func QueryChairman(cc *council.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChairmanRequest
		if err := common.UnmarshalBodyReusable(c, &req); err != nil {
			middleware.AbortWithError(c, http.StatusBadRequest, errors.Wrap(err, "invalid chairman query"))
			return
		}

		chairman := cc.Config().ChairmanModel
		c.Set(ctxkey.RequestModels, []string{chairman})

		r := cc.QueryChairman(c.Request.Context(), req.Messages)
		if !r.OK() {
			middleware.AbortWithError(c, chairmanFailureStatus(r.Err),
				errors.Wrapf(r.Err, "chairman %s failed", chairman))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": ModelReply{
				Model:      r.Model,
				Result:     r.Response,
				DurationMs: r.Duration.Milliseconds(),
			},
		})
	}
}

// GetCouncilConfig shows the active council without its credential.
func GetCouncilConfig(cc *council.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    cc.Config().Public(),
		})
	}
}

func chairmanFailureStatus(qerr *council.QueryError) int {
	if qerr == nil {
		return http.StatusBadGateway
	}
	switch qerr.Kind {
	case council.KindMissingCredential:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

// normalizeModels trims identifiers and drops blanks, keeping the caller's order.
func normalizeModels(models []string) []string {
	var out []string
	for _, m := range models {
		if m = strings.TrimSpace(m); m != "" {
			out = append(out, m)
		}
	}
	return out
}
