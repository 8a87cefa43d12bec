package helper

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// RequestIdKey is both the gin context key and the response header carrying the request id.
const RequestIdKey = "X-Council-Request-Id"

// GenRequestID returns a time-ordered unique id for an inbound request.
func GenRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// MessageWithRequestId appends the request id so users can quote it when reporting problems.
func MessageWithRequestId(message string, id string) string {
	if id == "" {
		return message
	}
	return fmt.Sprintf("%s (request id: %s)", message, id)
}

// Shorten trims whitespace and clamps the string to the provided rune length.
func Shorten(text string, limit int) string {
	text = strings.TrimSpace(text)
	if limit <= 0 || len(text) <= limit {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "…"
}

// Snippet trims response bodies for logging without exceeding 256 characters.
func Snippet(body []byte) string {
	return Shorten(string(body), 256)
}
