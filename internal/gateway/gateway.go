// Package gateway turns a session request into a validated question batch.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"trivia/internal/llm"
	"trivia/internal/question"
	"trivia/internal/verbose"
)

var (
	// ErrInvalidRequest reports a request the gateway refuses to send.
	ErrInvalidRequest = errors.New("invalid generation request")
	// ErrTransport reports a failure talking to the provider.
	ErrTransport = errors.New("question provider unavailable")
	// ErrEmptyResponse reports a provider reply with no text.
	ErrEmptyResponse = errors.New("question provider returned no content")
)

// Options tune a Gateway.
type Options struct {
	// Timeout bounds one Generate call. Zero means no limit.
	Timeout     time.Duration
	Temperature *float64
	Logger      *verbose.Logger
}

// Gateway requests question batches from a provider.
type Gateway struct {
	provider llm.Provider
	opts     Options
	now      func() time.Time
}

// New builds a gateway over provider.
func New(provider llm.Provider, opts Options) *Gateway {
	return &Gateway{provider: provider, opts: opts, now: time.Now}
}

// Generate sends one request and returns exactly req.Count questions,
// or an error. It never returns a partial batch.
func (g *Gateway) Generate(ctx context.Context, req Request) ([]question.Question, error) {
	if g == nil || g.provider == nil {
		return nil, fmt.Errorf("%w: no provider configured", ErrTransport)
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if g.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()
	}

	prompt := llm.Prompt{
		Messages:    []llm.Message{{Role: "user", Content: BuildPrompt(req)}},
		Temperature: g.opts.Temperature,
		JSONMode:    true,
	}
	log := g.opts.Logger
	log.Block(fmt.Sprintf("LLM prompt (%d questions, %s)", req.Count, req.Difficulty), prompt.Messages[0].Content, verbose.StyleHeadingPrompt, verbose.StyleDim)

	start := g.now()
	text, usage, err := g.call(ctx, prompt)
	elapsed := g.now().Sub(start)
	if err != nil {
		log.Printf(verbose.StyleHeadingError, "generation failed after %s: %v", elapsed.Round(time.Millisecond), err)
		return nil, err
	}
	log.Printf(verbose.StyleHeadingMetrics, "response received in %s: %d bytes, %d tokens", elapsed.Round(time.Millisecond), len(text), usage.TotalTokens)
	log.Block("LLM response", text, verbose.StyleHeadingOutput, verbose.StyleDim)

	questions, err := question.ParseResponse(text, req.Count)
	if err != nil {
		log.Printf(verbose.StyleHeadingError, "response rejected: %v", err)
		return nil, err
	}
	return questions, nil
}

func (g *Gateway) call(ctx context.Context, prompt llm.Prompt) (string, llm.Usage, error) {
	stream, err := g.provider.Stream(ctx, prompt)
	if err != nil {
		return "", llm.Usage{}, transportError(ctx, err)
	}
	text, usage, err := llm.Collect(stream)
	if err != nil && !errors.Is(err, io.EOF) {
		return "", usage, transportError(ctx, err)
	}
	if text == "" {
		return "", usage, ErrEmptyResponse
	}
	return text, usage, nil
}

func transportError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
		return fmt.Errorf("%w: %w: %v", ErrTransport, ctxErr, err)
	}
	return fmt.Errorf("%w: %w", ErrTransport, err)
}
