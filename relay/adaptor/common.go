package adaptor

import (
	"context"
	"io"
	"net/http"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"

	"github.com/llm-council/council-relay/common/logger"
	"github.com/llm-council/council-relay/relay/meta"
)

// SetupCommonRequestHeader sets the JSON content type and bearer credential every provider expects.
func SetupCommonRequestHeader(req *http.Request, meta *meta.Meta) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+meta.APIKey)
}

// DoRequestHelper builds the upstream request through a and sends it with client.
// The caller owns the response body.
func DoRequestHelper(ctx context.Context, client *http.Client, a Adaptor, meta *meta.Meta, requestBody io.Reader) (*http.Response, error) {
	fullRequestURL, err := a.GetRequestURL(meta)
	if err != nil {
		return nil, errors.Wrap(err, "get request url failed")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullRequestURL, requestBody)
	if err != nil {
		return nil, errors.Wrap(err, "new request failed")
	}

	if err = a.SetupRequestHeader(req, meta); err != nil {
		return nil, errors.Wrap(err, "setup request header failed")
	}

	logger.Logger.Debug("sending request to upstream provider",
		zap.String("url", fullRequestURL),
		zap.String("model", meta.OriginModelName),
		zap.String("upstream_model", meta.ActualModelName),
		zap.String("provider", a.GetChannelName()))

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "do request failed")
	}
	if resp == nil {
		return nil, errors.New("resp is nil")
	}
	return resp, nil
}
