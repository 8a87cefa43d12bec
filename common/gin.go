package common

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/Laisky/errors/v2"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/llm-council/council-relay/common/ctxkey"
)

// MaxRequestBodyBytes bounds how much of an inbound API body is buffered.
const MaxRequestBodyBytes = 8 << 20

// GetRequestBody reads the request body once and caches it on the gin context.
func GetRequestBody(c *gin.Context) ([]byte, error) {
	if cached, ok := c.Get(ctxkey.KeyRequestBody); ok {
		if body, ok := cached.([]byte); ok {
			return body, nil
		}
	}
	if c.Request == nil || c.Request.Body == nil {
		return nil, nil
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, MaxRequestBodyBytes+1))
	_ = c.Request.Body.Close()
	if err != nil {
		return nil, errors.Wrap(err, "read request body")
	}
	if len(body) > MaxRequestBodyBytes {
		return nil, errors.Errorf("request body exceeds %d bytes", MaxRequestBodyBytes)
	}

	c.Set(ctxkey.KeyRequestBody, body)
	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	return body, nil
}

// UnmarshalBodyReusable decodes the JSON body into v and runs gin's binding validation,
// leaving the body readable for later handlers.
func UnmarshalBodyReusable(c *gin.Context, v any) error {
	body, err := GetRequestBody(c)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return errors.New("request body is empty")
	}
	if err = json.Unmarshal(body, v); err != nil {
		return errors.Wrap(err, "decode request body")
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	if err = binding.Validator.ValidateStruct(v); err != nil {
		return errors.Wrap(err, "validate request body")
	}
	return nil
}
