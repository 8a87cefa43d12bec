package common

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bodyFixture struct {
	Role string `json:"role" binding:"required"`
}

func newBodyContext(body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	return c
}

func TestUnmarshalBodyReusable(t *testing.T) {
	c := newBodyContext(`{"role":"user"}`)

	var v bodyFixture
	require.NoError(t, UnmarshalBodyReusable(c, &v))
	assert.Equal(t, "user", v.Role)

	rest, err := io.ReadAll(c.Request.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"role":"user"}`, string(rest))

	cached, err := GetRequestBody(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"role":"user"}`, string(cached))
}

func TestUnmarshalBodyReusableErrors(t *testing.T) {
	var v bodyFixture
	assert.Error(t, UnmarshalBodyReusable(newBodyContext(""), &v))
	assert.Error(t, UnmarshalBodyReusable(newBodyContext("{"), &v))
	assert.Error(t, UnmarshalBodyReusable(newBodyContext(`{"role":""}`), &v))
}
