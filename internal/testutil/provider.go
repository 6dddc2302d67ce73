package testutil

import (
	"context"
	"sync"

	"trivia/internal/llm"
)

// ScriptedReply is one canned provider outcome.
type ScriptedReply struct {
	Text string
	Err  error
	// Block waits for ctx cancellation before replying.
	Block bool
}

// ScriptedProvider replays replies in order and records prompts.
// The last reply repeats once the script is exhausted.
type ScriptedProvider struct {
	mu      sync.Mutex
	replies []ScriptedReply
	prompts []llm.Prompt
}

// NewScriptedProvider builds a provider that replays replies.
func NewScriptedProvider(replies ...ScriptedReply) *ScriptedProvider {
	return &ScriptedProvider{replies: replies}
}

// Stream returns the next scripted reply.
func (p *ScriptedProvider) Stream(ctx context.Context, prompt llm.Prompt) (llm.Stream, error) {
	p.mu.Lock()
	p.prompts = append(p.prompts, prompt)
	var reply ScriptedReply
	if len(p.replies) > 0 {
		reply = p.replies[0]
		if len(p.replies) > 1 {
			p.replies = p.replies[1:]
		}
	}
	p.mu.Unlock()

	if reply.Block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if reply.Err != nil {
		return nil, reply.Err
	}
	return llm.StaticStream(llm.StreamEvent{Type: llm.StreamEventMessage, Message: reply.Text}), nil
}

// Prompts returns the prompts received so far.
func (p *ScriptedProvider) Prompts() []llm.Prompt {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]llm.Prompt(nil), p.prompts...)
}
