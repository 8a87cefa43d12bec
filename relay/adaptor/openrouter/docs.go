// Package openrouter implements the OpenRouter adaptor. OpenRouter is an aggregation gateway that
// routes one OpenAI-compatible API to many model vendors, so council identifiers such as
// "anthropic/claude-sonnet-4.5" are sent upstream exactly as configured.
package openrouter
