package openai

import (
	"math"
	"sync"

	"github.com/Laisky/zap"
	"github.com/pkoukk/tiktoken-go"

	"github.com/llm-council/council-relay/common/config"
	"github.com/llm-council/council-relay/common/logger"
	"github.com/llm-council/council-relay/relay/model"
)

var (
	tokenEncoderMu      sync.RWMutex
	tokenEncoderMap     = map[string]*tiktoken.Tiktoken{}
	defaultTokenEncoder *tiktoken.Tiktoken
)

// InitTokenEncoders loads the default cl100k encoder and the encoders of models.
// tiktoken may download encoding files here, so callers run it off the request path;
// until it finishes every count uses the length approximation.
func InitTokenEncoders(models []string) {
	if config.ApproximateTokenEnabled {
		return
	}

	logger.Logger.Info("loading token encoders", zap.Int("models", len(models)))
	defaultEnc, err := tiktoken.EncodingForModel("gpt-3.5-turbo")
	if err != nil {
		logger.Logger.Warn("failed to load default token encoder, using approximate token counts",
			zap.Error(err))
	}

	loaded := make(map[string]*tiktoken.Tiktoken, len(models))
	for _, m := range models {
		name := StripVendorPrefix(m)
		if enc, err := tiktoken.EncodingForModel(name); err == nil {
			loaded[name] = enc
		}
	}

	tokenEncoderMu.Lock()
	defer tokenEncoderMu.Unlock()
	if defaultEnc != nil {
		defaultTokenEncoder = defaultEnc
	}
	for name, enc := range loaded {
		tokenEncoderMap[name] = enc
	}
	logger.Logger.Info("token encoders loaded", zap.Int("dedicated", len(loaded)))
}

// getTokenEncoder never loads anything; nil means no encoder is available yet.
func getTokenEncoder(modelName string) *tiktoken.Tiktoken {
	tokenEncoderMu.RLock()
	defer tokenEncoderMu.RUnlock()
	if enc, ok := tokenEncoderMap[StripVendorPrefix(modelName)]; ok {
		return enc
	}
	return defaultTokenEncoder
}

func getTokenNum(tokenEncoder *tiktoken.Tiktoken, text string) int {
	if config.ApproximateTokenEnabled || tokenEncoder == nil {
		return int(math.Ceil(float64(len(text)) * 0.38))
	}
	return len(tokenEncoder.Encode(text, nil, nil))
}

// CountTokenMessages estimates the prompt tokens of a conversation for modelName.
// The per-message overheads follow the OpenAI chat format accounting.
func CountTokenMessages(messages []model.Message, modelName string) int {
	var tokenEncoder *tiktoken.Tiktoken
	if !config.ApproximateTokenEnabled {
		tokenEncoder = getTokenEncoder(modelName)
	}

	tokensPerMessage := 3
	tokenNum := 0
	for _, message := range messages {
		tokenNum += tokensPerMessage
		tokenNum += getTokenNum(tokenEncoder, message.Role)
		tokenNum += getTokenNum(tokenEncoder, message.Content)
	}
	tokenNum += 3 // every reply is primed with <|start|>assistant<|message|>
	return tokenNum
}
