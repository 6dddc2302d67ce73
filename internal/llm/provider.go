package llm

import (
	"context"
	"io"
)

// StreamEventType identifies the kind of provider event.
type StreamEventType string

const (
	// StreamEventMessage carries assistant text.
	StreamEventMessage StreamEventType = "message"
	// StreamEventUsage carries token accounting when the provider reports it.
	StreamEventUsage StreamEventType = "usage"
)

// Usage reports token counts for one completion.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// StreamEvent is a single provider event.
type StreamEvent struct {
	Type    StreamEventType
	Message string
	Usage   Usage
}

// Stream yields provider events until io.EOF.
type Stream interface {
	Recv() (StreamEvent, error)
}

// Message is one chat turn.
type Message struct {
	Role    string
	Content string
}

// Prompt is the fully assembled request sent to a provider.
type Prompt struct {
	Instructions string
	Messages     []Message
	// Temperature is sent when non-nil.
	Temperature *float64
	// JSONMode asks the provider to constrain output to a JSON object.
	JSONMode bool
}

// Provider streams completions for a prompt.
type Provider interface {
	Stream(ctx context.Context, prompt Prompt) (Stream, error)
}

// Collect drains a stream and concatenates its message events.
func Collect(stream Stream) (string, Usage, error) {
	var text string
	var usage Usage
	for {
		event, err := stream.Recv()
		if err == io.EOF {
			return text, usage, nil
		}
		if err != nil {
			return text, usage, err
		}
		switch event.Type {
		case StreamEventMessage:
			text += event.Message
		case StreamEventUsage:
			usage = event.Usage
		}
	}
}

// staticStream exposes a slice of events as a Stream.
type staticStream struct {
	events []StreamEvent
	index  int
}

// Recv returns the next event or io.EOF when complete.
func (s *staticStream) Recv() (StreamEvent, error) {
	if s.index >= len(s.events) {
		return StreamEvent{}, io.EOF
	}
	event := s.events[s.index]
	s.index++
	return event, nil
}

// StaticStream returns a stream over fixed events.
func StaticStream(events ...StreamEvent) Stream {
	return &staticStream{events: events}
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, prompt Prompt) (Stream, error)

// Stream calls f.
func (f ProviderFunc) Stream(ctx context.Context, prompt Prompt) (Stream, error) {
	return f(ctx, prompt)
}
