package openai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llm-council/council-relay/common/config"
	"github.com/llm-council/council-relay/relay/model"
)

func withApproximateTokens(t *testing.T) {
	t.Helper()
	original := config.ApproximateTokenEnabled
	config.ApproximateTokenEnabled = true
	t.Cleanup(func() { config.ApproximateTokenEnabled = original })
}

func TestCountTokenMessagesApproximate(t *testing.T) {
	withApproximateTokens(t)

	messages := []model.Message{
		{Role: "system", Content: "be brief"},
		{Role: "user", Content: "what is two plus two?"},
	}

	// 3 per message + ceil(len*0.38) for role and content + 3 reply priming
	want := 3 + 3 + 4 + 3 + 2 + 8 + 3
	assert.Equal(t, want, CountTokenMessages(messages, "openai/gpt-4o"))
}

func TestCountTokenMessagesEmpty(t *testing.T) {
	withApproximateTokens(t)

	assert.Equal(t, 3, CountTokenMessages(nil, "x-ai/grok-4"))
}

func TestCountTokenMessagesWithoutLoadedEncoders(t *testing.T) {
	original := config.ApproximateTokenEnabled
	config.ApproximateTokenEnabled = false
	t.Cleanup(func() { config.ApproximateTokenEnabled = original })

	require.Nil(t, getTokenEncoder("openai/gpt-4o"))

	done := make(chan int, 1)
	go func() {
		done <- CountTokenMessages([]model.Message{{Role: "user", Content: "what is two plus two?"}}, "openai/gpt-4o")
	}()

	select {
	case got := <-done:
		// falls back to ceil(len*0.38) without touching the network
		assert.Equal(t, 3+2+8+3, got)
	case <-time.After(time.Second):
		t.Fatal("token count blocked waiting for an encoder")
	}
}

func TestInitTokenEncodersSkippedInApproximateMode(t *testing.T) {
	withApproximateTokens(t)

	InitTokenEncoders([]string{"openai/gpt-4o"})
	assert.Nil(t, getTokenEncoder("openai/gpt-4o"))
}
