package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Laisky/errors/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llm-council/council-relay/common/graceful"
	"github.com/llm-council/council-relay/common/helper"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	return r
}

func TestRequestIdGeneratesAndEchoes(t *testing.T) {
	r := newEngine(RequestId())
	var seen string
	r.GET("/", func(c *gin.Context) { seen = c.GetString(helper.RequestIdKey) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(helper.RequestIdKey))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(helper.RequestIdKey, "caller-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "caller-id", seen)
	assert.Equal(t, "caller-id", w.Header().Get(helper.RequestIdKey))
}

func TestPanicRecover(t *testing.T) {
	r := newEngine(RequestId(), PanicRecover())
	r.POST("/", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"messages":[]}`)))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Message string `json:"message"`
			Type    string `json:"type"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "council_panic", body.Error.Type)
	assert.Contains(t, body.Error.Message, "boom")
	assert.Contains(t, body.Error.Message, w.Header().Get(helper.RequestIdKey))
}

func TestAbortWithError(t *testing.T) {
	r := newEngine(RequestId())
	r.GET("/", func(c *gin.Context) {
		AbortWithError(c, http.StatusBadRequest, errors.New("bad input"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bad input")
	assert.Contains(t, w.Body.String(), "council_error")
}

func TestIgnoreServerError(t *testing.T) {
	assert.True(t, ignoreServerError(http.StatusBadRequest, errors.New("x")))
	assert.True(t, ignoreServerError(http.StatusBadGateway, errors.Wrap(context.Canceled, "client left")))
	assert.False(t, ignoreServerError(http.StatusBadGateway, errors.New("x")))
}

func TestRequestTracker(t *testing.T) {
	r := newEngine(RequestTracker())
	var inFlight int64
	r.GET("/", func(c *gin.Context) { inFlight = graceful.InFlight() })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, inFlight)
	assert.EqualValues(t, 0, graceful.InFlight())
}
