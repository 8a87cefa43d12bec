package main

import (
	"flag"
	"io"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"

	"github.com/llm-council/council-relay/common/env"
	"github.com/llm-council/council-relay/relay/model"
)

// maxPromptBytes bounds a prompt read from stdin.
const maxPromptBytes = 1 << 20

type options struct {
	Prompt  string
	System  string
	Models  []string
	Timeout time.Duration
	JSON    bool
}

// parseOptions reads flags, then the prompt from -prompt, the positional arguments or stdin, in that order.
func parseOptions(args []string, stdin io.Reader) (options, error) {
	fs := flag.NewFlagSet("council", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		opts   options
		models string
	)
	fs.StringVar(&opts.Prompt, "prompt", "", "the user prompt sent to every model")
	fs.StringVar(&opts.System, "system", "", "optional system prompt")
	fs.StringVar(&models, "models", "", "comma-separated models overriding COUNCIL_MODELS")
	fs.DurationVar(&opts.Timeout, "timeout", 0, "per-model timeout, e.g. 90s (default COUNCIL_QUERY_TIMEOUT)")
	fs.BoolVar(&opts.JSON, "json", false, "print the raw result map as JSON")
	if err := fs.Parse(args); err != nil {
		return options{}, errors.Wrap(err, "parse flags")
	}

	opts.Models = env.SplitList(models)

	if strings.TrimSpace(opts.Prompt) == "" && fs.NArg() > 0 {
		opts.Prompt = strings.Join(fs.Args(), " ")
	}
	if strings.TrimSpace(opts.Prompt) == "" && stdin != nil {
		raw, err := io.ReadAll(io.LimitReader(stdin, maxPromptBytes))
		if err != nil {
			return options{}, errors.Wrap(err, "read prompt from stdin")
		}
		opts.Prompt = string(raw)
	}

	opts.Prompt = strings.TrimSpace(opts.Prompt)
	if opts.Prompt == "" {
		return options{}, errors.New("prompt is empty, pass -prompt, arguments or stdin")
	}
	if opts.Timeout < 0 {
		return options{}, errors.Errorf("invalid timeout %s", opts.Timeout)
	}

	return opts, nil
}

// messages builds the conversation, system prompt first.
func (o options) messages() []model.Message {
	var msgs []model.Message
	if s := strings.TrimSpace(o.System); s != "" {
		msgs = append(msgs, model.Message{Role: "system", Content: s})
	}
	return append(msgs, model.Message{Role: "user", Content: o.Prompt})
}
