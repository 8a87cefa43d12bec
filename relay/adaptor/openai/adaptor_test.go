package openai

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llm-council/council-relay/relay/channeltype"
	"github.com/llm-council/council-relay/relay/meta"
)

func TestStripVendorPrefix(t *testing.T) {
	cases := map[string]string{
		"openai/gpt-4o":               "gpt-4o",
		"gpt-4o":                      "gpt-4o",
		"anthropic/claude-sonnet-4.5": "claude-sonnet-4.5",
		"org/team/model":              "team/model",
		"/leading":                    "leading",
	}
	for input, want := range cases {
		assert.Equal(t, want, StripVendorPrefix(input), "input %q", input)
	}
}

func TestInitRewritesModelName(t *testing.T) {
	m := meta.New(channeltype.OpenAI, DefaultAPIURL, "sk-test", "openai/gpt-4o")
	a := &Adaptor{}
	a.Init(m)

	assert.Equal(t, "gpt-4o", m.ActualModelName)
	assert.Equal(t, "openai/gpt-4o", m.OriginModelName)
}

func TestGetRequestURL(t *testing.T) {
	a := &Adaptor{}

	url, err := a.GetRequestURL(meta.New(channeltype.OpenAI, "https://gateway.internal/v1/chat/completions", "k", "m"))
	require.NoError(t, err)
	assert.Equal(t, "https://gateway.internal/v1/chat/completions", url)

	_, err = a.GetRequestURL(meta.New(channeltype.OpenAI, "", "k", "m"))
	assert.Error(t, err)
}

func TestSetupRequestHeader(t *testing.T) {
	req, err := http.NewRequest(http.MethodPost, DefaultAPIURL, nil)
	require.NoError(t, err)

	a := &Adaptor{}
	require.NoError(t, a.SetupRequestHeader(req, meta.New(channeltype.OpenAI, DefaultAPIURL, "sk-test", "gpt-4o")))

	assert.Equal(t, "Bearer sk-test", req.Header.Get("Authorization"))
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
}
