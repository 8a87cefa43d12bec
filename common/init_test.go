package common

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llm-council/council-relay/common/config"
)

func TestListenPort(t *testing.T) {
	originalPort, originalEnv := *Port, config.ServerPort
	t.Cleanup(func() {
		*Port = originalPort
		config.ServerPort = originalEnv
	})

	*Port = 4000
	config.ServerPort = ""
	assert.Equal(t, "4000", ListenPort())

	config.ServerPort = "8080"
	assert.Equal(t, "8080", ListenPort())
}
